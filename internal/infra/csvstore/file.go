package csvstore

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"flatcart/internal/infra"
)

// ensureFile creates the backing file with its header row when absent. An
// existing file is left untouched, whatever its contents.
func ensureFile(path string, header []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return infra.WrapStoreErr(infra.KindIOFailure, "failed to create data directory", err)
	}

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return infra.WrapStoreErr(infra.KindIOFailure, "failed to stat "+path, err)
	}

	return writeRows(path, header, nil)
}

// readRows returns the data rows of the table with the header stripped. An
// absent file reads as an empty table, not an error.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindIOFailure, "failed to open "+path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width is validated by the codec
	rows, err := r.ReadAll()
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindFormatFailure, "malformed table "+path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// writeRows truncates the file and writes header plus rows. There is no
// atomic rename: a crash mid-write can leave the table truncated.
func writeRows(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return infra.WrapStoreErr(infra.KindIOFailure, "failed to create "+path, err)
	}

	w := csv.NewWriter(f)
	_ = w.Write(header)
	_ = w.WriteAll(rows)
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return infra.WrapStoreErr(infra.KindIOFailure, "failed to write "+path, err)
	}
	if err := f.Close(); err != nil {
		return infra.WrapStoreErr(infra.KindIOFailure, "failed to close "+path, err)
	}
	return nil
}

// appendRow adds exactly one row to the end of the file.
func appendRow(path string, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return infra.WrapStoreErr(infra.KindIOFailure, "failed to open "+path, err)
	}

	w := csv.NewWriter(f)
	_ = w.Write(row)
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return infra.WrapStoreErr(infra.KindIOFailure, "failed to append to "+path, err)
	}
	if err := f.Close(); err != nil {
		return infra.WrapStoreErr(infra.KindIOFailure, "failed to close "+path, err)
	}
	return nil
}
