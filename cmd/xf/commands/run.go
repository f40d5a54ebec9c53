package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-transducers/coll"
	"github.com/hasbyte1/go-transducers/internal/config"
	"github.com/hasbyte1/go-transducers/internal/stages"
	"github.com/hasbyte1/go-transducers/seq"
	"github.com/hasbyte1/go-transducers/transducers"
)

// Targets accepted by --into.
const (
	intoList   = "list"
	intoSource = "source"
	intoSet    = "set"
	intoString = "string"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	input     string
	rangeN    int
	useRange  bool
	stages    []string
	stream    bool
	output    string
	chunkSize int
	into      string
	spy       bool
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply a pipeline to input data",
	Long: `Apply a pipeline to input data.

The input is a YAML or JSON document read from --input (or stdin). A
sequence is processed element by element; a mapping yields {key, value}
pairs. --range N replaces the input with the integers 0..N-1.

Stage flags have the form kind[=arg]. The arg is a count for take, drop
and partition, a dot-notation path for pluck, a jq expression when
prefixed with "jq:", and a builtin name otherwise.

Examples:
  xf run -f numbers.yaml -s filter=even -s map=square
  xf run --range 20 -s filter=even -s map=inc -s take=5
  xf run -f users.json -s 'keep=jq:.email' -s distinct -o yaml
  xf run -f users.yaml -s pluck=address.city -s dedupe
  xf run --range 1000000000 -s 'map=jq:. * 2' -s take=3 --stream`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runOpts.useRange = cmd.Flags().Changed("range")
		return runPipeline(globalConfig, runOpts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runOpts.input, "input", "f", "", `input file, YAML or JSON ("-" or empty for stdin)`)
	f.IntVar(&runOpts.rangeN, "range", 0, "use the integers 0..N-1 as input")
	f.StringArrayVarP(&runOpts.stages, "stage", "s", nil, "append a stage, kind[=arg] (repeatable)")
	f.BoolVar(&runOpts.stream, "stream", false, "emit values lazily, one document per value")
	f.StringVarP(&runOpts.output, "output", "o", "", "output format: json or yaml (overrides config)")
	f.IntVar(&runOpts.chunkSize, "chunk-size", 0, "batch size for immutable targets (overrides config)")
	f.StringVar(&runOpts.into, "into", intoList, "eager target: list, source, set or string")
	f.BoolVar(&runOpts.spy, "spy", false, "log every value entering and leaving the pipeline at debug level")
}

func runPipeline(cfg *config.Config, opts runOptions, stdin io.Reader, w io.Writer) error {
	if cfg == nil {
		cfg = &config.Config{ChunkSize: transducers.DefaultChunkSize, Output: formatJSON}
	}
	format := cfg.Output
	if opts.output != "" {
		format = opts.output
	}
	engineOpts := cfg.Options()
	if opts.chunkSize != 0 {
		engineOpts.ChunkSize = opts.chunkSize
	}
	if err := engineOpts.Validate(); err != nil {
		return err
	}

	stageCfgs := append([]stages.Config(nil), cfg.Pipeline...)
	for _, s := range opts.stages {
		c, err := parseStage(s)
		if err != nil {
			return err
		}
		stageCfgs = append(stageCfgs, c)
	}
	xf, err := stages.Build(stageCfgs)
	if err != nil {
		return err
	}
	if opts.spy {
		xf = transducers.Comp(transducers.Spy("input", log), xf, transducers.Spy("output", log))
	}

	source, err := loadSource(opts, stdin)
	if err != nil {
		return err
	}

	log.Debug().
		Int("stages", len(stageCfgs)).
		Bool("stream", opts.stream).
		Str("format", format).
		Msg("running pipeline")

	if opts.stream {
		return streamValues(w, format, transducers.Generate(xf, source))
	}

	target, err := intoTarget(opts.into, source)
	if err != nil {
		return err
	}
	result, err := transducers.IntoWith(target, xf, source, engineOpts)
	if err != nil {
		return err
	}
	return writeValue(w, format, result)
}

// parseStage parses a --stage flag of the form kind[=arg].
func parseStage(s string) (stages.Config, error) {
	kind, arg, hasArg := strings.Cut(s, "=")
	c := stages.Config{Kind: strings.TrimSpace(kind)}
	if !hasArg {
		return c, nil
	}
	switch c.Kind {
	case stages.KindTake, stages.KindDrop, stages.KindPartition:
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return c, fmt.Errorf("stage %q: %s needs a count: %w", s, c.Kind, err)
		}
		c.N = n
	case stages.KindPluck:
		c.Path = strings.TrimSpace(arg)
	default:
		if expr, ok := strings.CutPrefix(arg, "jq:"); ok {
			c.Expr = expr
		} else {
			c.Fn = strings.TrimSpace(arg)
		}
	}
	return c, nil
}

func loadSource(opts runOptions, stdin io.Reader) (any, error) {
	if opts.useRange {
		return seq.Range(0, opts.rangeN), nil
	}

	var (
		data []byte
		err  error
	)
	if opts.input == "" || opts.input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.input)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if v == nil {
		return []any{}, nil
	}
	return v, nil
}

func intoTarget(into string, source any) (any, error) {
	switch into {
	case intoList, "":
		return []any{}, nil
	case intoSet:
		return coll.Set{}, nil
	case intoString:
		return "", nil
	case intoSource:
		return coll.Empty(source)
	}
	return nil, fmt.Errorf("unsupported --into target: %s", into)
}
