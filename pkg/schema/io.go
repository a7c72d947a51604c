package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal converts a schema to indented JSON bytes.
func Marshal(s *Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a schema.
func Unmarshal(data []byte) (*Schema, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes a schema as JSON to w.
func Write(s *Schema, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON schema from r. A nil Layouts map is initialized so
// callers can index it without nil checks.
func Read(r io.Reader) (*Schema, error) {
	var s Schema
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if s.Layouts == nil {
		s.Layouts = map[string]LayoutConfig{}
	}
	return &s, nil
}

// WriteFile writes a schema to a JSON file at path.
// The file is created with 0644 permissions.
func WriteFile(s *Schema, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(s, f)
}

// ReadFile reads a JSON schema file at path.
func ReadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
