package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/notes/pkg/core"
	"gopkg.in/yaml.v3"
)

// DataKey is the single top-level key of an encoded store.
const DataKey = "data"

// Serializer defines how to read and write a specific file format.
type Serializer interface {
	// Decode parses a whole encoded store.
	Decode(data []byte) ([]core.Note, error)
	// Encode converts the full note sequence to bytes.
	// Encoding zero notes yields the canonical empty store.
	Encode(notes []core.Note) ([]byte, error)
}

// DefaultSerializers returns every export serializer keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
		".csv":  NewCSVSerializer(),
	}
}

// SerializerFor picks the store serializer for path by extension.
// Only JSON and YAML hold a live store; CSV is an export format, so it and
// any unknown or missing extension fall back to JSON.
func SerializerFor(path string) Serializer {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLSerializer()
	default:
		return NewJSONSerializer()
	}
}

// SerializerByName returns the serializer for a format name ("json", "yaml", "csv").
func SerializerByName(name string) (Serializer, error) {
	s, ok := DefaultSerializers()["."+strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return s, nil
}

// document is the on-disk shape shared by JSON and YAML.
type document struct {
	Data []core.Note `json:"data" yaml:"data"`
}

func newDocument(notes []core.Note) document {
	if notes == nil {
		notes = []core.Note{}
	}
	return document{Data: notes}
}

// --- JSON Serializer ---

// JSONSerializer handles the {"data": [...]} JSON store.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

// Decode accepts an object whose only key is "data". A bare {} is the
// bootstrap sentinel and decodes to zero notes.
func (s *JSONSerializer) Decode(data []byte) ([]core.Note, error) {
	var payload map[string]json.RawMessage
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("invalid json: unexpected data after document")
	}
	if payload == nil {
		return nil, errors.New("invalid json: document is null")
	}

	for key := range payload {
		if key != DataKey {
			return nil, fmt.Errorf("invalid json: unexpected key %q", key)
		}
	}

	raw, ok := payload[DataKey]
	if !ok {
		return nil, nil
	}

	var notes []core.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return notes, nil
}

func (s *JSONSerializer) Encode(notes []core.Note) ([]byte, error) {
	data, err := json.MarshalIndent(newDocument(notes), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Serializer ---

// YAMLSerializer stores the same shape as JSON in YAML.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Decode(data []byte) ([]core.Note, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return doc.Data, nil
}

func (s *YAMLSerializer) Encode(notes []core.Note) ([]byte, error) {
	return yaml.Marshal(newDocument(notes))
}

// --- CSV Serializer ---

// CSVSerializer writes one note per row under an id,description header.
type CSVSerializer struct{}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

var csvHeader = []string{"id", "description"}

func (s *CSVSerializer) Decode(data []byte) ([]core.Note, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = len(csvHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("invalid csv: missing header")
	}
	if records[0][0] != csvHeader[0] || records[0][1] != csvHeader[1] {
		return nil, fmt.Errorf("invalid csv: unexpected header %v", records[0])
	}

	notes := make([]core.Note, 0, len(records)-1)
	for i, record := range records[1:] {
		id, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid csv: row %d: %w", i+2, err)
		}
		notes = append(notes, core.Note{ID: id, Description: record[1]})
	}
	return notes, nil
}

func (s *CSVSerializer) Encode(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, n := range notes {
		if err := writer.Write([]string{strconv.FormatUint(n.ID, 10), n.Description}); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
