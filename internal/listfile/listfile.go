// Package listfile encodes a list as plain text, one item per line.
//
// There is no escaping: an item must not contain a line break. Reading keeps
// every line verbatim, empty lines included, so whatever Write produced comes
// back unchanged.
package listfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
)

// LineSeparator terminates every written item.
var LineSeparator = defaultLineSeparator()

func defaultLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Read returns every line of r in order. Both "\n" and "\r\n" terminators are
// accepted, and a final line without a terminator is kept.
func Read(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	items := []string{}
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			items = append(items, line)
		}
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read list: %w", err)
		}
	}
}

// Write writes every item followed by LineSeparator.
func Write(w io.Writer, items []string) error {
	bw := bufio.NewWriter(w)
	for i, item := range items {
		if strings.ContainsAny(item, "\r\n") {
			return fmt.Errorf("item %d contains a line break", i+1)
		}
		if _, err := bw.WriteString(item); err != nil {
			return fmt.Errorf("failed to write list: %w", err)
		}
		if _, err := bw.WriteString(LineSeparator); err != nil {
			return fmt.Errorf("failed to write list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write list: %w", err)
	}
	return nil
}
