package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatCSV  = "csv"
)

// writeOutput renders doc as JSON or YAML, rows as CSV, and falls back to
// text for the default format
func writeOutput(out io.Writer, format string, doc any, rows any, text func(io.Writer)) error {
	switch format {
	case "", formatText:
		text(out)
		return nil

	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case formatCSV:
		if err := gocsv.Marshal(rows, out); err != nil {
			return fmt.Errorf("failed to encode csv: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q (want text, json, yaml or csv)", format)
	}
}
