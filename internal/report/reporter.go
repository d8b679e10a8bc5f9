// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ipsbench/internal/bench"
)

type (
	// Options configures a Reporter.
	Options struct {
		// Interactive selects in-place redraw. Use IsInteractive to derive it
		// from the output.
		Interactive bool
		// Redrawer overrides the strategy picked from Interactive.
		Redrawer Redrawer
	}

	// Reporter writes the comparison table after every completed task.
	// It implements bench.Reporter.
	Reporter struct {
		out      io.Writer
		redrawer Redrawer
		fastest  lipgloss.Style
		slower   lipgloss.Style
		rows     int
	}

	// Ranking holds the values derived once per redraw from the completed tasks.
	Ranking struct {
		// Fastest is the highest sample count.
		Fastest int
		// Slowest is the lowest sample count.
		Slowest int
		// NameWidth is the display width of the longest task name.
		NameWidth int
		// RatioWidth is the width of Fastest/Slowest printed with two decimals.
		RatioWidth int
	}
)

// New creates a Reporter writing to w. Colors are only emitted when w
// supports them.
func New(w io.Writer, opts Options) *Reporter {
	redrawer := opts.Redrawer
	if redrawer == nil {
		redrawer = RedrawerFor(opts.Interactive)
	}
	renderer := lipgloss.NewRenderer(w)
	return &Reporter{
		out:      w,
		redrawer: redrawer,
		fastest:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		slower:   renderer.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// Report implements bench.Reporter: it redraws rows for tasks[0..done].
func (r *Reporter) Report(tasks []bench.Task, done int) error {
	if done < 0 || len(tasks) == 0 {
		return nil
	}
	completed := tasks[:min(done+1, len(tasks))]

	if err := r.redrawer.Begin(r.out, r.rows); err != nil {
		return fmt.Errorf("redraw: %w", err)
	}

	rank := Rank(completed)
	var sb strings.Builder
	for i := range completed {
		sb.WriteString(r.row(&completed[i], rank))
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	r.rows = len(completed)
	return nil
}

// Rank computes the fastest/slowest sample counts and column widths.
func Rank(completed []bench.Task) Ranking {
	if len(completed) == 0 {
		return Ranking{}
	}
	rank := Ranking{Fastest: completed[0].Samples, Slowest: completed[0].Samples}
	for i := range completed {
		t := &completed[i]
		rank.Fastest = max(rank.Fastest, t.Samples)
		rank.Slowest = min(rank.Slowest, t.Samples)
		rank.NameWidth = max(rank.NameWidth, lipgloss.Width(t.Name()))
	}
	rank.RatioWidth = len(fmt.Sprintf("%.2f", ratio(rank.Fastest, rank.Slowest)))
	return rank
}

// Throughput returns operations per second for a task: one batch is Cycles
// calls and Mean is the mean batch time in seconds. The table shows this rate
// and its inverse per call rather than the raw mean batch time, so rows read
// as real ops/s whatever the calibrated batch size.
func Throughput(t *bench.Task) float64 {
	if t.Mean <= 0 {
		return 0
	}
	return float64(max(1, t.Cycles)) / t.Mean
}

// FormatRow renders one uncolored table row without the trailing newline.
func FormatRow(t *bench.Task, rank Ranking) string {
	return formatRow(t, rank, fmt.Sprint, fmt.Sprint)
}

func (r *Reporter) row(t *bench.Task, rank Ranking) string {
	return formatRow(t, rank,
		func(a ...any) string { return r.fastest.Render(fmt.Sprint(a...)) },
		func(a ...any) string { return r.slower.Render(fmt.Sprint(a...)) },
	)
}

func formatRow(t *bench.Task, rank Ranking, fastest, slower func(...any) string) string {
	var sb strings.Builder

	name := t.Name()
	if pad := rank.NameWidth - lipgloss.Width(name); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(name)

	rate := Throughput(t)
	m := magnitudeFor(rate)
	fmt.Fprintf(&sb, " %6.2f%s (%6.2f%s)", rate/m.divisor, m.suffix, m.perOp/rate, m.unit)
	fmt.Fprintf(&sb, " (±%5.2f%%)", t.RelStddev)

	// "× slower" is one column wider than the ratio plus " slower".
	if t.Samples == rank.Fastest {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat(" ", rank.RatioWidth+1))
		sb.WriteString(fastest("fastest"))
	} else {
		fmt.Fprintf(&sb, " %*.2f", rank.RatioWidth, ratio(rank.Fastest, t.Samples))
		sb.WriteString(slower("× slower"))
	}
	return sb.String()
}

func ratio(fastest, samples int) float64 {
	if samples <= 0 {
		return 0
	}
	return float64(fastest) / float64(samples)
}
