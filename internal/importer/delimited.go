package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var delimiters = []rune{',', '\t', ';', '|'}

// detectDelimiter counts candidate delimiters on the first non-blank line
// and returns the most frequent one, defaulting to a comma.
func detectDelimiter(data []byte) rune {
	var line []byte
	for _, l := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(l)) > 0 {
			line = l
			break
		}
	}

	best, bestCount := ',', 0
	for _, d := range delimiters {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func parseDelimited(data []byte) ([]any, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return readRecords(reader)
}

// readRecords flattens every record into cells. Malformed rows are skipped
// and the rest of the file is still read; only I/O failures abort.
func readRecords(reader *csv.Reader) ([]any, error) {
	var tokens []any
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			slog.Debug("Skipping malformed row", "line", parseErr.StartLine, "error", parseErr.Err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse delimited text: %w", err)
		}
		for _, cell := range record {
			tokens = append(tokens, cell)
		}
	}
	return tokens, nil
}
