// Package output writes extracted documentation in the supported formats.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	JSON        Format = "json"
	YAML        Format = "yaml"
	MessagePack Format = "msgpack"
)

// ParseFormat accepts the names used in configuration and on the command
// line.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case JSON, YAML, MessagePack:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, yaml or msgpack)", name)
}

// Encode writes v to w. All formats use the json struct tags for key names.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case MessagePack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// WriteFile encodes v into path, creating parent directories as needed,
// and returns the number of bytes written.
func WriteFile(path string, format Format, v any) (int, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, v); err != nil {
		return 0, fmt.Errorf("encoding %s: %w", format, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
