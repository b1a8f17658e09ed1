package judge

import (
	"time"

	"golang.org/x/sys/unix"

	jerrors "secjudge/errors"
)

// pollInterval is the fixed sleep between non-blocking wait polls, matching
// the 100µs cadence the original judger used.
const pollInterval = 100 * time.Microsecond

// ReapResult is what the supervisor hands to the classifier.
type ReapResult struct {
	RawStatus unix.WaitStatus
	Rusage    unix.Rusage
	// Stop is the wall-clock instant captured immediately after reap.
	Stop time.Time
}

// Supervise polls non-blockingly for pid's termination, enforcing timeLimit
// by sending SIGKILL once elapsed wall time exceeds it. It never blocks in
// wait; a missed deadline does not stop polling, since the child must still
// be reaped and its usage accounted.
func Supervise(pid int, start time.Time, timeLimit time.Duration) (ReapResult, error) {
	var ws unix.WaitStatus
	var ru unix.Rusage

	for {
		p, err := unix.Wait4(pid, &ws, unix.WNOHANG, &ru)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return ReapResult{}, jerrors.Wrap(err, jerrors.ErrSupervisor, "wait4")
		}

		if p == pid {
			stop := time.Now()
			return ReapResult{RawStatus: ws, Rusage: ru, Stop: stop}, nil
		}

		elapsed := time.Since(start)
		if timeLimit != NoLimit && elapsed > timeLimit {
			unix.Kill(pid, unix.SIGKILL)
		} else {
			time.Sleep(pollInterval)
		}
	}
}
