package io

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/graph"
)

// ExportJSON writes g to path in the canonical schema, replacing any
// existing file. The file is created with 0644 permissions.
//
// ExportJSON returns an error if:
//   - path is not a usable file path, or its directory is missing (INVALID_PATH)
//   - the file cannot be written (INTERNAL_ERROR)
func ExportJSON(g *digraph.Graph, path string) error {
	if err := errors.ValidateFilePath(path); err != nil {
		return err
	}
	data, err := graph.Marshal(g)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "chmod %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		if isDirError(err) {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "rename %s", path)
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "rename %s", path)
	}
	return nil
}
