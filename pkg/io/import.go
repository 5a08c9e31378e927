package io

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/graph"
)

// ImportJSON reads the graph document at path.
//
// ImportJSON returns an error if:
//   - path is not a usable file path (INVALID_PATH)
//   - the file does not exist (FILE_NOT_FOUND)
//   - the file cannot be read (INTERNAL_ERROR)
//   - the document is malformed (INVALID_FORMAT)
func ImportJSON(path string) (*digraph.Graph, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		case isDirError(err):
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
		default:
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
		}
	}
	g, err := graph.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	return g, nil
}

// isDirError reports whether err came from reading a directory.
func isDirError(err error) bool {
	var pe *fs.PathError
	if !stderrors.As(err, &pe) {
		return false
	}
	info, statErr := os.Stat(pe.Path)
	return statErr == nil && info.IsDir()
}
