// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns an artworks CSV export into the JSON array the site
// loads. The whole input is parsed and normalized in memory before any
// output is produced, so a failure never leaves a partial file behind.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/artworks/pkg/types"
)

const (
	// dirPerm is applied to output directories created on demand.
	dirPerm = 0o755
	// filePerm is applied to the written JSON file.
	filePerm = 0o644
)

// Encode writes ds to w as a JSON array indented by two spaces. Non-ASCII
// and HTML characters are written literally and no trailing newline is
// added. An empty Dataset encodes as [].
func Encode(w io.Writer, ds types.Dataset) error {
	data, err := Marshal(ds)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal returns the encoding Encode writes.
func Marshal(ds types.Dataset) ([]byte, error) {
	if ds == nil {
		ds = types.Dataset{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile serializes ds and writes it to path, replacing any existing
// file. The parent directory and its ancestors are created when missing.
// The content goes to a temporary file in the same directory first and is
// renamed into place, so path holds either the old content or the full new
// content.
func WriteFile(path string, ds types.Dataset) error {
	data, err := Marshal(ds)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// Load reads csvPath and returns its normalized Dataset. Failures are
// reported as *Error with kind ErrFileAccess or ErrParse.
func Load(csvPath string) (types.Dataset, error) {
	data, err := os.ReadFile(csvPath)
	if err != nil {
		return nil, fileAccessError(csvPath, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, parseError(csvPath, err)
	}
	return Normalize(ds), nil
}

// Convert reads the CSV at csvPath, trims every value, and writes the JSON
// array to outPath. An empty outPath means types.DefaultOutPath. It returns
// the number of records written.
func Convert(csvPath, outPath string) (int, error) {
	if outPath == "" {
		outPath = types.DefaultOutPath
	}
	ds, err := Load(csvPath)
	if err != nil {
		return 0, err
	}
	if err := WriteFile(outPath, ds); err != nil {
		return 0, writeError(outPath, err)
	}
	return len(ds), nil
}

// Summary formats the confirmation line printed after a successful run.
func Summary(outPath string, n int) string {
	return fmt.Sprintf("Wrote %s with %d records.", outPath, n)
}
