package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "osdump",
	Short:        "Inspect overlay scrollbar reconciliation",
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run scenario.yaml",
	Short: "Run reconciliation passes for a scenario and print the element tree",
	Long: `Build an in-memory element tree from a scenario, create an overlay
scrollbar instance for it and run reconciliation passes. The resulting tree
is printed with classes, attributes and inline styles.

Examples:
  osdump run testdata/overflow.yaml
  osdump run --passes 2 --trace debug testdata/overflow.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runScenarioFile,
}

var (
	passes     int
	traceLevel string
)

// traceKeys are the traces the engine writes to.
var traceKeys = []string{
	"overlayscroll.cache",
	"overlayscroll.dom",
	"overlayscroll.observers",
	"overlayscroll.lifecycle",
	"overlayscroll.scrollbars",
	"overlayscroll.options",
	"overlayscroll.plugins",
	"overlayscroll.instance",
}

func init() {
	runCmd.Flags().IntVarP(&passes, "passes", "p", 1, "number of reconciliation passes after the initial one")
	runCmd.Flags().StringVarP(&traceLevel, "trace", "t", "error", "trace level (error, info, debug)")
	rootCmd.AddCommand(runCmd)
}

func runScenarioFile(cmd *cobra.Command, args []string) error {
	level, err := parseTraceLevel(traceLevel)
	if err != nil {
		return err
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()
	sc, err := LoadScenario(f)
	if err != nil {
		return err
	}
	return run(sc, passes, cmd.OutOrStdout())
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

// run executes a scenario and writes the report to w.
func run(sc *Scenario, passes int, w io.Writer) error {
	b, err := sc.build()
	if err != nil {
		return err
	}
	defer b.inst.Destroy()
	for i := 0; i < passes; i++ {
		if err := b.doc.Flush(); err != nil {
			return err
		}
		b.inst.Update(hintsForPass(), false)
	}
	state := b.inst.State()
	fmt.Fprintf(w, "instance %s\n", b.inst.ID())
	fmt.Fprintf(w, "overflow amount %g x %g, edge %g x %g\n",
		state.OverflowAmount.X, state.OverflowAmount.Y, state.OverflowEdge.X, state.OverflowEdge.Y)
	fmt.Fprint(w, b.dump())
	return nil
}
