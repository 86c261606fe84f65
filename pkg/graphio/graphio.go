// Package graphio provides serialization types for AIN collections,
// relation graphs, and timeline level assignments.
//
// This package defines the canonical wire format for ainviz data, used for
// JSON files, API responses, and the document store.
//
// # Collection Format
//
// Collections use a simple items + degrees JSON format:
//
//	{
//	  "items": [
//	    {"lower": 0, "upper": 2},
//	    {"lower": 1, "upper": 5, "expected": 2.5}
//	  ],
//	  "degrees": [[0, 0.6], [0.4, 0]]
//	}
//
// The degrees matrix holds the externally computed directional preference
// degrees; entry [i][j] is the degree to which item i exceeds item j. The
// comparison algorithm itself lives outside this repository.
//
// # Common Operations
//
//	c, _ := graphio.ReadCollectionFile("ains.json")   // File → Collection
//	graphio.WriteGraphDocFile(doc, "graph.json")      // GraphDoc → File
//	data, _ := graphio.MarshalGraphDoc(doc)           // GraphDoc → []byte
//
// # Concurrency
//
// All functions are safe for concurrent use; the types are plain data.
package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ainkit/ainviz/pkg/errors"
)

// =============================================================================
// Collection I/O
// =============================================================================

// ReadCollectionFile reads a JSON file and returns the decoded collection.
func ReadCollectionFile(path string) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Collection{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCollection(f)
}

// ReadCollection decodes a JSON collection from an io.Reader.
func ReadCollection(r io.Reader) (Collection, error) {
	var c Collection
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Collection{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode collection")
	}
	return c, nil
}

// MarshalCollection converts a collection to indented JSON bytes.
func MarshalCollection(c Collection) ([]byte, error) {
	return marshalIndented(c)
}

// =============================================================================
// GraphDoc I/O
// =============================================================================

// MarshalGraphDoc converts a graph document to indented JSON bytes.
// Nodes and edges are already in deterministic index order.
func MarshalGraphDoc(doc GraphDoc) ([]byte, error) {
	return marshalIndented(doc)
}

// WriteGraphDocFile writes a graph document to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphDocFile(doc GraphDoc, path string) error {
	return writeJSONFile(doc, path)
}

// UnmarshalGraphDoc deserializes JSON bytes to a GraphDoc.
func UnmarshalGraphDoc(data []byte) (GraphDoc, error) {
	var doc GraphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return GraphDoc{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph document")
	}
	return doc, nil
}

// =============================================================================
// TimelineDoc I/O
// =============================================================================

// MarshalTimelineDoc converts a timeline document to indented JSON bytes.
func MarshalTimelineDoc(doc TimelineDoc) ([]byte, error) {
	return marshalIndented(doc)
}

// WriteTimelineDocFile writes a timeline document to a JSON file.
func WriteTimelineDocFile(doc TimelineDoc, path string) error {
	return writeJSONFile(doc, path)
}

// UnmarshalTimelineDoc deserializes JSON bytes to a TimelineDoc.
func UnmarshalTimelineDoc(data []byte) (TimelineDoc, error) {
	var doc TimelineDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return TimelineDoc{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode timeline document")
	}
	return doc, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func marshalIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

func writeJSONFile(v any, path string) error {
	data, err := marshalIndented(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
