// Package textfile reads whole text files and splits them into lines.
package textfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"syscall"
)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("file not found")

var errIsDir = errors.New("is a directory")

// NotFoundError reports that the requested path does not resolve to a
// readable file: it is missing, a directory, below a non-directory, or not
// permitted.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	reason := e.Err
	var pe *fs.PathError
	if errors.As(reason, &pe) {
		reason = pe.Err
	}
	if reason == nil {
		return fmt.Sprintf("textfile: %s: not found", e.Path)
	}
	return fmt.Sprintf("textfile: %s: not found: %v", e.Path, reason)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Is lets callers test against ErrNotFound as well as fs.ErrNotExist.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReadAll returns the full contents of the file at path.
func ReadAll(path string) (string, error) {
	return ReadAllFS(osFS{}, path)
}

// ReadLines returns the contents of the file at path split on "\n".
func ReadLines(path string) ([]string, error) {
	return ReadLinesFS(osFS{}, path)
}

// ReadAllFS is ReadAll over an arbitrary file system.
func ReadAllFS(fsys fs.FS, name string) (_ string, err error) {
	f, err := fsys.Open(name)
	if err != nil {
		if unreadable(err) {
			return "", &NotFoundError{Path: name, Err: err}
		}
		return "", fmt.Errorf("textfile: %w", err)
	}
	defer closeFile(&err, f)

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("textfile: stat %s: %w", name, err)
	}
	if info.IsDir() {
		return "", &NotFoundError{Path: name, Err: errIsDir}
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("textfile: read %s: %w", name, err)
	}
	return string(b), nil
}

// ReadLinesFS is ReadLines over an arbitrary file system.
func ReadLinesFS(fsys fs.FS, name string) ([]string, error) {
	content, err := ReadAllFS(fsys, name)
	if err != nil {
		return nil, err
	}
	return strings.Split(content, "\n"), nil
}

func unreadable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, fs.ErrPermission)
}

// closeFile releases f and joins a close failure into *err.
func closeFile(err *error, f io.Closer) {
	cerr := f.Close()
	if cerr == nil {
		return
	}
	cerr = fmt.Errorf("textfile: close: %w", cerr)
	if *err == nil {
		*err = cerr
		return
	}
	*err = errors.Join(*err, cerr)
}

// osFS opens paths as given, so relative and absolute paths both work.
// os.DirFS would reject absolute paths as invalid fs.FS names.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
