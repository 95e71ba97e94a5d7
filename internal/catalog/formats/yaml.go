package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML letter file. Unknown keys are rejected so a
// misspelled field does not silently fall back to its default. An empty
// document parses to an empty File.
func ParseYAML(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f, nil
}

// EncodeYAML writes a letter file as YAML.
func EncodeYAML(w io.Writer, f File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// MarshalYAML is EncodeYAML into a byte slice.
func MarshalYAML(f File) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
