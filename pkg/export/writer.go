package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how a WriterSink prints a batch.
type Format string

// Output formats.
const (
	FormatCLI  Format = "cli"  // CLI scripts, one after another
	FormatJSON Format = "json" // API requests as one indented JSON array
	FormatYAML Format = "yaml" // API requests as a YAML document stream
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCLI, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want cli, json or yaml)", s)
	}
}

// WriterSink prints batches to an io.Writer.
type WriterSink struct {
	w      io.Writer
	format Format
}

// NewWriterSink creates a sink that prints to w.
func NewWriterSink(w io.Writer, format Format) *WriterSink {
	return &WriterSink{w: w, format: format}
}

// Write prints batch. In CLI format, get requests have no script and are
// skipped.
func (s *WriterSink) Write(ctx context.Context, batch []Rendered) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.format {
	case FormatCLI:
		for _, r := range batch {
			if r.CLI == "" {
				continue
			}
			if _, err := io.WriteString(s.w, r.CLI); err != nil {
				return fmt.Errorf("writing CLI for %s %v: %w", r.Kind, r.ID, err)
			}
		}
		return nil

	case FormatJSON:
		reqs := make([]interface{}, len(batch))
		for i, r := range batch {
			reqs[i] = r.API
		}
		enc := json.NewEncoder(s.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reqs); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(s.w)
		enc.SetIndent(2)
		for _, r := range batch {
			if err := enc.Encode(r.API); err != nil {
				return fmt.Errorf("encoding YAML for %s %v: %w", r.Kind, r.ID, err)
			}
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format %q", s.format)
	}
}

// Close implements Sink. The underlying writer is owned by the caller.
func (s *WriterSink) Close() error { return nil }
