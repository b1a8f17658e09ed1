package judge

import (
	"os"
	"time"

	"golang.org/x/sys/unix"

	jerrors "secjudge/errors"
)

// Classify applies the precedence-ordered rule set from spec.md §4.3:
// memory, then time, then signal/exit, then output comparison. The
// captured output file is removed iff classification reached the
// comparison step.
func Classify(ws unix.WaitStatus, ru unix.Rusage, wallTime, timeLimit time.Duration, memoryLimitBytes uint64, referencePath, outputPath string) (RunResult, error) {
	memoryBytes := uint64(ru.Maxrss) * 1024
	cpuTimeMS := int64(ru.Utime.Usec / 1000)

	var verdict Verdict

	switch {
	case memoryBytes > memoryLimitBytes:
		verdict = Verdict{Kind: MemoryLimitExceeded}

	case timeLimit != NoLimit && wallTime > timeLimit:
		verdict = Verdict{Kind: TimeLimitExceeded}

	case int(ws) != 0:
		if ws.Signaled() {
			switch ws.Signal() {
			case unix.SIGFPE:
				verdict = Verdict{Kind: RuntimeError, RuntimeKind: FloatingPointError}
			case unix.SIGSEGV:
				verdict = Verdict{Kind: RuntimeError, RuntimeKind: SegmentationFault}
			default:
				verdict = Verdict{Kind: ReturnNonZero, RawStatus: int(ws)}
			}
		} else {
			verdict = Verdict{Kind: ReturnNonZero, RawStatus: int(ws)}
		}

	default:
		kind, err := CompareFiles(referencePath, outputPath)
		if err != nil {
			return RunResult{}, err
		}
		verdict = Verdict{Kind: kind}
		if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
			return RunResult{}, jerrors.Wrap(err, jerrors.ErrJudgeIO, "remove scratch output")
		}
	}

	return RunResult{
		Verdict:     verdict,
		WallTime:    wallTime,
		CPUTimeMS:   cpuTimeMS,
		MemoryBytes: memoryBytes,
	}, nil
}
