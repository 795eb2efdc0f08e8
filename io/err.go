package io

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	// Commit errors
	ErrCommitName = errors.New(f("output name invalid"))
)
