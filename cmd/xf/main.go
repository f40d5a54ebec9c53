// xf runs transducer pipelines over YAML or JSON data.
//
// Usage:
//
//	xf run -f data.yaml -s filter=even -s 'map=jq:. * 10'  # Eager, prints the collected result
//	xf run --range 1000000 -s take=3 --stream             # Lazy, one JSON line per value
//	xf run --config pipeline.yaml -f data.json -o yaml    # Pipeline from a config file
//	xf demo                                               # Walk through the combinators
//
// Settings can be overridden with XF_ environment variables or a .env file.
package main

import (
	"os"

	"github.com/hasbyte1/go-transducers/cmd/xf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
