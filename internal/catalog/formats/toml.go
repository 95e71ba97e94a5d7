package formats

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a TOML letter file. Unknown keys are rejected so typos in
// hand-written catalogs surface at load time.
func ParseTOML(data []byte) (File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	return f, nil
}

// EncodeTOML writes a letter file as TOML.
func EncodeTOML(w io.Writer, f File) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("toml encode: %w", err)
	}
	return nil
}
