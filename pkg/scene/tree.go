package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/flex"
)

// Format identifies a tree description syntax.
type Format string

// Supported tree description formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatTOML, FormatHCL}

// FormatFromPath infers the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer tree format from %q (want .json, .toml or .hcl)", path)
}

// ReadFile reads a tree description, choosing the decoder by extension.
func ReadFile(path string) (flex.NodeSpec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return flex.NodeSpec{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return flex.NodeSpec{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "tree file %s not found", path)
		}
		return flex.NodeSpec{}, fmt.Errorf("read %s: %w", path, err)
	}
	return parse(data, format, filepath.Base(path))
}

// Read decodes a tree description in the given format from r. Read failures
// are INVALID_INPUT, as for a truncated or oversized request body.
func Read(r io.Reader, format Format) (flex.NodeSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return flex.NodeSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read tree: %v", err)
	}
	return Parse(data, format)
}

// Parse decodes a tree description in the given format.
func Parse(data []byte, format Format) (flex.NodeSpec, error) {
	return parse(data, format, "tree."+string(format))
}

func parse(data []byte, format Format, filename string) (flex.NodeSpec, error) {
	var spec flex.NodeSpec
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &spec); err != nil {
			return flex.NodeSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON tree")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&spec); err != nil {
			return flex.NodeSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode TOML tree")
		}
	case FormatHCL:
		var err error
		if spec, err = decodeHCL(data, filename); err != nil {
			return flex.NodeSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode HCL tree")
		}
	default:
		return flex.NodeSpec{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported tree format %q", format)
	}
	return spec, nil
}

// MarshalTree encodes spec as compact JSON. Equal specs encode identically,
// which makes the output suitable as a cache key input.
func MarshalTree(spec flex.NodeSpec) ([]byte, error) {
	data, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}
	return data, nil
}
