package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"secjudge/judge"
)

func TestAbbr(t *testing.T) {
	cases := []struct {
		kind judge.VerdictKind
		want string
	}{
		{judge.Accepted, "AC"},
		{judge.WrongAnswer, "WA"},
		{judge.PresentationError, "PE"},
		{judge.TimeLimitExceeded, "TLE"},
		{judge.MemoryLimitExceeded, "MLE"},
		{judge.RuntimeError, "RE"},
		{judge.ReturnNonZero, "RNZ"},
	}
	for _, c := range cases {
		got := Abbr(judge.Verdict{Kind: c.kind})
		if got != c.want {
			t.Errorf("Abbr(%v) = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestLongForm(t *testing.T) {
	cases := []struct {
		v    judge.Verdict
		want string
	}{
		{judge.Verdict{Kind: judge.Accepted}, "AC: Accepted"},
		{judge.Verdict{Kind: judge.WrongAnswer}, "WA: Wrong Answer"},
		{judge.Verdict{Kind: judge.PresentationError}, "PE: Presentation Error"},
		{judge.Verdict{Kind: judge.TimeLimitExceeded}, "TLE: Time Limit Exceeded"},
		{judge.Verdict{Kind: judge.MemoryLimitExceeded}, "MLE: Memory Limit Exceeded"},
		{judge.Verdict{Kind: judge.RuntimeError, RuntimeKind: judge.SegmentationFault}, "RE: Runtime Error (SegmentationFault)"},
		{judge.Verdict{Kind: judge.RuntimeError, RuntimeKind: judge.FloatingPointError}, "RE: Runtime Error (FloatingPointError)"},
		{judge.Verdict{Kind: judge.ReturnNonZero, RawStatus: 256}, "RNZ: Return Value Not Zero (256)"},
	}
	for _, c := range cases {
		got := LongForm(c.v)
		if got != c.want {
			t.Errorf("LongForm(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormatMemory(t *testing.T) {
	cases := []struct {
		bytes uint64
		want  string
	}{
		{0, "0.00B"},
		{512, "512.00B"},
		{1024, "1024.00B"},
		{1025, "1.00KiB"},
		{1024 * 1024, "1024.00KiB"},
		{1024*1024 + 1, "1.00MiB"},
		{1024 * 1024 * 1024, "1024.00MiB"},
		{1024*1024*1024 + 1, "1.00GiB"},
	}
	for _, c := range cases {
		got := FormatMemory(c.bytes)
		if got != c.want {
			t.Errorf("FormatMemory(%d) = %q, want %q", c.bytes, got, c.want)
		}
	}
}

func TestRender_NonTerminalPlain(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, judge.RunResult{
		Verdict:    judge.Verdict{Kind: judge.Accepted},
		WallTime:   250 * time.Millisecond,
		CPUTimeMS:  200,
		MemoryBytes: 2048,
	})

	out := buf.String()
	if !strings.Contains(out, "Congratulations, accepted!") {
		t.Errorf("output missing accepted banner: %q", out)
	}
	if !strings.HasPrefix(strings.SplitN(out, "\n", 3)[1], "RESULT BEGIN>") {
		t.Errorf("output missing RESULT BEGIN marker: %q", out)
	}
	if !strings.Contains(out, "RESULT END>") {
		t.Errorf("output missing RESULT END marker: %q", out)
	}
	if !strings.Contains(out, "AC: Accepted") {
		t.Errorf("output missing status line: %q", out)
	}
	if !strings.Contains(out, "Used Real Time:") || !strings.Contains(out, "250ms") {
		t.Errorf("output missing real time line: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal output should not contain ANSI escapes: %q", out)
	}
}

func TestRender_WrongAnswerNoAcceptedBanner(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, judge.RunResult{Verdict: judge.Verdict{Kind: judge.WrongAnswer}})

	out := buf.String()
	if strings.Contains(out, "Congratulations") {
		t.Errorf("wrong-answer output should not contain accepted banner: %q", out)
	}
	if !strings.Contains(out, "WA: Wrong Answer") {
		t.Errorf("output missing status line: %q", out)
	}
}
