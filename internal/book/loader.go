package book

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"go.uber.org/zap"
)

// LoadFile reads the dataset at path and returns the collection. Any
// failure to read or parse the file, or a document without the required
// shape, is a *DataFormatError; callers treat it as fatal.
func LoadFile(path string, logger *zap.Logger) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataFormatError{Path: path, Reason: "cannot open dataset", Err: err}
	}
	defer f.Close()

	c, err := Load(f, logger)
	if err != nil {
		if dfe, ok := err.(*DataFormatError); ok {
			dfe.Path = path
		}
		return nil, err
	}
	return c, nil
}

// Load parses a dataset document: a JSON object with a "books" array.
// An empty array is a valid, empty collection. Record fields are decoded
// leniently; shape problems inside a single record surface at query time,
// not here.
func Load(r io.Reader, logger *zap.Logger) (Collection, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DataFormatError{Reason: "cannot read dataset", Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DataFormatError{Reason: "dataset is not a JSON object", Err: err}
	}

	raw, ok := doc["books"]
	if !ok {
		return nil, &DataFormatError{Reason: `dataset has no "books" key`}
	}

	// Unmarshal accepts null for a slice without error, so a null "books"
	// value has to be rejected explicitly.
	if string(bytes.TrimSpace(raw)) == "null" {
		return nil, &DataFormatError{Reason: `"books" is not an array of records`}
	}

	var books Collection
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, &DataFormatError{Reason: `"books" is not an array of records`, Err: err}
	}

	if len(books) == 0 {
		logger.Warn("dataset loaded with zero books")
	} else {
		logger.Info("dataset loaded", zap.Int("books", len(books)))
	}
	return books, nil
}
