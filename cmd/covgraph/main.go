// Covgraph - Fuzzing Coverage Chart Tool
//
// Covgraph parses libFuzzer-style status logs into coverage-over-time
// series and renders them as SVG line charts, either for a single run
// or as a comparison overlay across the runs in a results directory.
package main

import (
	"os"

	"github.com/aptos-labs/covgraph/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
