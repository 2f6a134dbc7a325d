package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
)

// WriteMappingReport writes the joined rows to the configured destination.
// A path of "-" writes to stdout; file writes take an advisory lock so two
// concurrent runs cannot interleave output in the same file.
func WriteMappingReport(rows []MappingRow, format, path string) error {
	if path == "-" {
		return writeMapping(rows, format, os.Stdout)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock output file %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("output file %s is locked by another run", path)
	}
	defer func() {
		lock.Unlock()
		os.Remove(lock.Path())
	}()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := writeMapping(rows, format, file); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to finalize output file %s: %w", path, err)
	}

	return nil
}

// writeMapping routes to the appropriate format writer.
func writeMapping(rows []MappingRow, format string, w io.Writer) error {
	switch format {
	case "csv":
		return writeMappingCSV(rows, w)
	case "tsv":
		return writeMappingTSV(rows, w)
	case "json":
		return writeMappingJSON(rows, w)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeMappingCSV writes the header row and one record per mapping row.
func writeMappingCSV(rows []MappingRow, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(mappingHeader); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writer.Write(row.fields()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeMappingTSV writes tab-separated output with the same columns.
func writeMappingTSV(rows []MappingRow, w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	if err := writer.Write(mappingHeader); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writer.Write(row.fields()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeMappingJSON writes the rows as a pretty-printed JSON array.
func writeMappingJSON(rows []MappingRow, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}
