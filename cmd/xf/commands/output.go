package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-transducers/internal/stages"
	"github.com/hasbyte1/go-transducers/seq"
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeValue writes a single result.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stages.Plain(v))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(stages.Plain(v)); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

// streamValues writes each value of s as it is produced: one compact JSON
// line per value, or one YAML document per value.
func streamValues(w io.Writer, format string, s *seq.Seq) error {
	defer s.Stop()

	var encode func(any) error
	switch format {
	case formatJSON:
		encode = json.NewEncoder(w).Encode
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		encode = enc.Encode
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	for v := range s.All() {
		if err := encode(stages.Plain(v)); err != nil {
			return err
		}
	}
	return s.Err()
}
