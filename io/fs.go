package io

import (
	"io"
	"os"
	"path/filepath"
)

// CreateFS defines a file system interface that supports creating, renaming
// and removing files. It is the output side of the assembler: a program is
// written to a temporary file and renamed into place only once complete.
type CreateFS interface {
	// Create creates a new file for writing, truncating any existing file.
	Create(name string) (file io.WriteCloser, err error)
	// Rename atomically replaces newname with oldname.
	Rename(oldname, newname string) (err error)
	// Remove deletes a file.
	Remove(name string) (err error)
}

// DirFS is a CreateFS rooted at an operating system directory.
// Names are slash separated and relative to the directory.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) join(name string) string {
	return filepath.Join(string(dir), filepath.FromSlash(name))
}

func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(dir.join(name))
}

func (dir DirFS) Rename(oldname, newname string) (err error) {
	return os.Rename(dir.join(oldname), dir.join(newname))
}

func (dir DirFS) Remove(name string) (err error) {
	return os.Remove(dir.join(name))
}
