// Package report renders a judge.RunResult for the terminal: verdict
// abbreviation and long form, formatted resource usage, and the
// RESULT BEGIN/END block printed by the run verb.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"secjudge/judge"
)

// Abbr returns the short verdict code: AC, WA, PE, TLE, MLE, RE, or RNZ.
func Abbr(v judge.Verdict) string {
	switch v.Kind {
	case judge.Accepted:
		return "AC"
	case judge.WrongAnswer:
		return "WA"
	case judge.PresentationError:
		return "PE"
	case judge.TimeLimitExceeded:
		return "TLE"
	case judge.MemoryLimitExceeded:
		return "MLE"
	case judge.RuntimeError:
		return "RE"
	case judge.ReturnNonZero:
		return "RNZ"
	default:
		return "?"
	}
}

func runtimeErrorKindString(k judge.RuntimeErrorKind) string {
	switch k {
	case judge.FloatingPointError:
		return "FloatingPointError"
	case judge.SegmentationFault:
		return "SegmentationFault"
	default:
		return "UnknownSignal"
	}
}

// LongForm returns the full status line, e.g. "AC: Accepted" or
// "RE: Runtime Error (SegmentationFault)".
func LongForm(v judge.Verdict) string {
	abbr := Abbr(v)
	switch v.Kind {
	case judge.Accepted:
		return abbr + ": Accepted"
	case judge.WrongAnswer:
		return abbr + ": Wrong Answer"
	case judge.PresentationError:
		return abbr + ": Presentation Error"
	case judge.TimeLimitExceeded:
		return abbr + ": Time Limit Exceeded"
	case judge.MemoryLimitExceeded:
		return abbr + ": Memory Limit Exceeded"
	case judge.RuntimeError:
		return fmt.Sprintf("%s: Runtime Error (%s)", abbr, runtimeErrorKindString(v.RuntimeKind))
	case judge.ReturnNonZero:
		return fmt.Sprintf("%s: Return Value Not Zero (%d)", abbr, v.RawStatus)
	default:
		return abbr
	}
}

var memUnits = [...]string{"B", "KiB", "MiB", "GiB"}

// FormatMemory scales memoryBytes into the largest unit under which the
// displayed value stays at or below 1024, capped at GiB.
//
// Reproduces the off-by-one in the original implementation's display loop
// (while mem_display > 1024.0): the loop condition is checked against the
// already-divided value, so a byte count of exactly 1024 displays as
// "1024.00B" rather than "1.00KiB". That quirk is preserved here rather
// than fixed, since tooling that screen-scrapes this output depends on it.
func FormatMemory(memoryBytes uint64) string {
	memDisplay := float64(memoryBytes)
	level := 0
	for memDisplay > 1024.0 && level < len(memUnits)-1 {
		memDisplay /= 1024.0
		level++
	}
	return fmt.Sprintf("%.2f%s", memDisplay, memUnits[level])
}

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

const ruleWidth = 56
const wrapWidth = 80

// isTerminal reports whether w is a file descriptor connected to a
// terminal. Non-*os.File writers (e.g. a bytes.Buffer in tests) are never
// colored or wrapped to a detected terminal width.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// detailWidth returns the column width used to size the detail block's
// rule lines: the terminal's actual width when w is a terminal, else a
// fixed wrapWidth.
func detailWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return wrapWidth
}

// colorize wraps s in ANSI green when kind is Accepted and red otherwise,
// but only when w is a terminal; s is returned unchanged for piped or
// redirected output.
func colorize(w io.Writer, kind judge.VerdictKind, s string) string {
	if !isTerminal(w) {
		return s
	}
	color := ansiRed
	if kind == judge.Accepted {
		color = ansiGreen
	}
	return color + s + ansiReset
}

// rule renders the "RESULT BEGIN"/"RESULT END" markers followed by enough
// ">" characters to fill the detail width: wrapWidth columns on
// non-terminal output and the real terminal width otherwise, never
// narrower than ruleWidth columns.
func rule(w io.Writer, label string) string {
	width := detailWidth(w)
	if width < ruleWidth {
		width = ruleWidth
	}
	fill := width - len(label)
	if fill < 0 {
		fill = 0
	}
	return label + strings.Repeat(">", fill)
}

// Render writes the full RESULT BEGIN/END block for result to w, including
// the "Congratulations, accepted!" banner on an Accepted verdict. The
// verdict line is colored when w is a terminal; the detail block is always
// aligned with a tabwriter.
func Render(w io.Writer, result judge.RunResult) {
	if result.Verdict.Kind == judge.Accepted {
		fmt.Fprintln(w, colorize(w, result.Verdict.Kind, "Congratulations, accepted!"))
	}

	fmt.Fprintln(w, rule(w, "RESULT BEGIN"))
	printDetail(w, result)
	fmt.Fprintln(w, rule(w, "RESULT END"))
}

func printDetail(w io.Writer, result judge.RunResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "Status:\t%s\n", colorize(w, result.Verdict.Kind, LongForm(result.Verdict)))
	fmt.Fprintf(tw, "Used Real Time:\t%dms\n", result.WallTime.Milliseconds())
	fmt.Fprintf(tw, "Used CPU Time:\t%dms\n", result.CPUTimeMS)
	fmt.Fprintf(tw, "Used Memory:\t%s\n", FormatMemory(result.MemoryBytes))
	tw.Flush()
}
