// Package io provides the output transport of the assembler.
// Files are committed atomically: nothing is left behind on failure.
package io

import (
	"errors"
	"io"
	"io/fs"
	"strings"
)

// TEMP_SUFFIX is appended to the output name while it is being written.
const TEMP_SUFFIX = ".tmp"

// Commit writes src to name in filesys. The data is written to a temporary
// file which replaces name only after all of src was written and closed.
func Commit(filesys CreateFS, name string, src io.WriterTo) (err error) {
	if len(name) == 0 || strings.HasSuffix(name, "/") {
		err = ErrCommitName
		return
	}

	temp := name + TEMP_SUFFIX

	file, err := filesys.Create(temp)
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(err, ignoreMissing(filesys.Remove(temp)))
		}
	}()

	_, err = src.WriteTo(file)
	if err != nil {
		file.Close()
		return
	}

	err = file.Close()
	if err != nil {
		return
	}

	err = filesys.Rename(temp, name)
	return
}

// ignoreMissing drops errors from removing a file that is already gone.
func ignoreMissing(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
