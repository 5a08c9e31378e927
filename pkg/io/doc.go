// Package io reads and writes graph documents on disk.
//
// [ImportJSON] and [ExportJSON] wrap the codec in pkg/graph with path
// validation and coded errors, so callers can tell a missing file
// ([errors.ErrCodeFileNotFound]) from a bad path ([errors.ErrCodeInvalidPath])
// or a malformed document ([errors.ErrCodeInvalidFormat]).
//
//	g, err := io.ImportJSON("data/A0.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.ExportJSON(g, "out/A0.json")
//
// Exports always use the canonical schema, whatever schema was imported.
// ExportJSON writes to a temporary file in the target directory and renames
// it into place, so a failed export never leaves a truncated document.
//
// # Concurrency
//
// Both functions are safe to call concurrently on different graphs.
// ExportJSON reads g and must not race with modifications to it.
//
// [errors.ErrCodeFileNotFound]: github.com/matzehuels/geograph/pkg/errors.ErrCodeFileNotFound
// [errors.ErrCodeInvalidPath]: github.com/matzehuels/geograph/pkg/errors.ErrCodeInvalidPath
// [errors.ErrCodeInvalidFormat]: github.com/matzehuels/geograph/pkg/errors.ErrCodeInvalidFormat
package io
