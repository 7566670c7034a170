package ingestor

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

const maxLineBytes = 1024 * 1024

// ReadLines parses every line from r, silently skipping lines that do not
// match the grammar. The dropped count is returned for reporting.
func ReadLines(r io.Reader) ([]LogRecord, int, error) {
	var records []LogRecord
	dropped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, ok := ParseLine(scanner.Text())
		if !ok {
			dropped++
			log.Debug().Int("line", lineNo).Msg("Skipping unparseable log line")
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, dropped, fmt.Errorf("failed to read log lines: %w", err)
	}

	return records, dropped, nil
}

// LoadFile reads a UTF-8 log file, one entry per line. A missing file is
// reported through an error wrapping os.ErrNotExist.
func LoadFile(path string) ([]LogRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer f.Close()

	records, dropped, err := ReadLines(f)
	if err != nil {
		return nil, dropped, fmt.Errorf("%s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("records", len(records)).
		Int("dropped", dropped).
		Msg("Loaded log file")

	return records, dropped, nil
}
