package batchfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadError reports a batch file that could not be opened or parsed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("problem reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Format identifies a batch file syntax.
type Format string

const (
	FormatINI  Format = "ini"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the format from the file extension. Unknown extensions
// (.cfg, .ini, none) are read as INI.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatINI
	}
}

// Load parses the batch file at path. Every failure is a *ReadError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	doc := &Document{Path: path}
	switch DetectFormat(path) {
	case FormatTOML:
		err = parseTOML(data, doc)
	case FormatYAML:
		err = parseYAML(data, doc)
	default:
		err = parseINI(data, doc)
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return doc, nil
}
