// Package report turns signal decisions into console output and run statistics.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ardalan-sia/signal-sync/pkg/signal"
)

// Console prints one block per decision. Decide is only ever called by the
// lock holder, so writes from different workers do not interleave.
type Console struct {
	out   io.Writer
	green *color.Color
	red   *color.Color

	// Summary, when set, is rendered as a table before the closing line.
	Summary *Stats
}

// NewConsole writes to out. Colors follow color.NoColor unless disabled.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:   out,
		green: color.New(color.FgGreen, color.Bold),
		red:   color.New(color.FgRed),
	}
}

// DisableColor turns off ANSI escapes.
func (c *Console) DisableColor() {
	c.green.DisableColor()
	c.red.DisableColor()
}

// Banner prints the run header.
func (c *Console) Banner() {
	fmt.Fprintln(c.out, "SMART CITY TRAFFIC SIGNAL SYNCHRONIZATION")
	fmt.Fprintln(c.out, "=======================================")
}

func (c *Console) Decide(d signal.Decision) {
	fmt.Fprintf(c.out, "Signal %d : congestion = %d (round %d)\n", d.Signal+1, d.Congestion, d.Round)
	if d.Green {
		c.green.Fprintf(c.out, "Signal %d : GREEN (Congestion = %d)\n", d.Signal+1, d.Congestion)
		fmt.Fprintf(c.out, "Green signal allocated to Signal %d\n", d.Signal+1)
		return
	}
	c.red.Fprintf(c.out, "Signal %d : RED   (Congestion = %d)\n", d.Signal+1, d.Congestion)
}

// Finish prints the summary table, if any, and the closing line.
func (c *Console) Finish() {
	if c.Summary != nil {
		fmt.Fprintln(c.out)
		c.Summary.Render(c.out)
	}
	fmt.Fprintln(c.out, "\nSimulation Finished Successfully.")
}
