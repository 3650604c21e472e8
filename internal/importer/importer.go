// Package importer turns an uploaded roster file into a flat sequence of raw
// cell values.
//
// Delimited text (comma, tab, semicolon or pipe, guessed from the first
// line) yields strings. JSON and YAML documents are flattened and keep their
// scalar types, so numbers and booleans come through as non-text values for
// the roster to drop.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var (
	// ErrTooLarge is returned when the input exceeds the configured limit.
	ErrTooLarge = errors.New("import file too large")
	// ErrUnsupportedFormat is returned for an unknown explicit format.
	ErrUnsupportedFormat = errors.New("unsupported import format")
)

// DefaultMaxBytes bounds how much of an upload is read.
const DefaultMaxBytes = 1 << 20

// Format identifies how an import file is parsed.
type Format string

const (
	FormatDelimited Format = "delimited"
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
)

// DetectFormat picks a format from the file extension. Anything that is not
// JSON or YAML is treated as delimited text.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatDelimited
	}
}

// ParseFormat validates an explicit format name. Empty means auto-detect.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatDelimited, FormatJSON, FormatYAML:
		return f, nil
	case "csv", "tsv", "txt":
		return FormatDelimited, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Importer parses whole files; it never yields partial results.
type Importer struct {
	maxBytes int64
}

// New creates an Importer reading at most maxBytes per file.
// A non-positive maxBytes selects DefaultMaxBytes.
func New(maxBytes int64) *Importer {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Importer{maxBytes: maxBytes}
}

// Parse reads r completely and returns its cell values in document order.
// format may be empty, in which case it is detected from filename.
func (im *Importer) Parse(ctx context.Context, filename string, format Format, r io.Reader) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, im.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	if int64(len(data)) > im.maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, im.maxBytes)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	if format == "" {
		format = DetectFormat(filename)
	}
	switch format {
	case FormatDelimited:
		return parseDelimited(data)
	case FormatJSON, FormatYAML:
		return parseStructured(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Upload is one file awaiting import. It satisfies the session's token
// source contract: Tokens resolves once, with the whole file parsed.
type Upload struct {
	Importer *Importer
	Filename string
	Format   Format
	Body     io.Reader
}

// Tokens parses the upload.
func (u Upload) Tokens(ctx context.Context) ([]any, error) {
	return u.Importer.Parse(ctx, u.Filename, u.Format, u.Body)
}
