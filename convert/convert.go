package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/FunnyShadow/pterodactyl-files/constants"
)

// Direction selects which way a conversion runs.
type Direction string

const (
	// YAMLToJSON converts .yml/.yaml sources into .json files.
	YAMLToJSON Direction = "y2j"

	// JSONToYAML converts .json sources into .yml files.
	JSONToYAML Direction = "j2y"
)

// jsonIndent matches the indentation used by the repository's JSON eggs.
const jsonIndent = "    "

// ParseDirection maps a CLI mode string onto a Direction.
func ParseDirection(mode string) (Direction, error) {
	switch d := Direction(strings.ToLower(mode)); d {
	case YAMLToJSON, JSONToYAML:
		return d, nil
	}
	return "", fmt.Errorf("unknown conversion mode %q, expected y2j or j2y", mode)
}

// Matches reports whether path carries one of the direction's source extensions.
func (d Direction) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if d == YAMLToJSON {
		return ext == ".yml" || ext == ".yaml"
	}
	return ext == ".json"
}

// OutputPath derives the destination file name by swapping the extension.
func (d Direction) OutputPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if d == YAMLToJSON {
		return base + ".json"
	}
	return base + ".yml"
}

// ParseError is returned when a source document is not well-formed in its
// declared format.
type ParseError struct {
	Path string
	Err  error
}

func (e ParseError) Error() string {
	return "parse " + e.Path + ": " + e.Err.Error()
}

func (e ParseError) Unwrap() error { return e.Err }

// WriteError is returned when the destination file cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e WriteError) Error() string {
	return "write " + e.Path + ": " + e.Err.Error()
}

func (e WriteError) Unwrap() error { return e.Err }

// ToJSON transcodes a YAML document into indented JSON. Key order and scalar
// types survive the trip.
func ToJSON(data []byte) ([]byte, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", jsonIndent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// ToYAML transcodes a JSON document into block-style YAML, preserving key
// order.
func ToYAML(data []byte) ([]byte, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("input is not valid JSON")
	}
	return yaml.JSONToYAML(data)
}

// Convert reads the document at inputPath and writes it to outputPath in the
// opposite format. The source format is detected from the input extension.
// Exactly one file is written per call, via a temp file renamed into place.
func Convert(inputPath, outputPath string) error {
	in, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	var out []byte
	switch ext := strings.ToLower(filepath.Ext(inputPath)); ext {
	case ".yml", ".yaml":
		out, err = ToJSON(in)
	case ".json":
		out, err = ToYAML(in)
	default:
		return fmt.Errorf("unsupported source extension %q on %s", ext, inputPath)
	}
	if err != nil {
		return ParseError{Path: inputPath, Err: err}
	}

	return writeFile(outputPath, out)
}

// writeFile writes data next to the destination and renames it into place so
// a failed conversion never leaves a truncated file behind.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DefaultFolderPerms); err != nil {
		return WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return WriteError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), constants.DefaultFilePerms); err != nil {
		return WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return WriteError{Path: path, Err: err}
	}
	return nil
}
