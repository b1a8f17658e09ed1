package judge

import (
	"os"
	"os/exec"
	"time"

	jerrors "secjudge/errors"
)

// LaunchResult is what the launcher hands to the supervisor.
type LaunchResult struct {
	// PID is the subject's process identifier (actually the identifier of
	// the sandbox-exec trampoline, which replaces its own image with the
	// subject via execve — same pid, new image).
	PID int
	// Start is the wall-clock instant captured immediately before the
	// trampoline process was forked.
	Start time.Time
}

// Launch forks the sandbox-exec trampoline and returns its pid and the
// fork-time instant. It does not wait for the subject to produce any
// output or to exit; that is the supervisor's job.
//
// The trampoline is the same secjudge binary, re-invoked as
// SandboxExecArg — the technique the teacher repo uses to run its
// container-init logic in a freshly forked process image rather than
// attempting raw fork/exec from the long-lived judge process, which would
// require async-signal-safe-only code in a multithreaded Go runtime.
func Launch(session Session, scratchOut string) (LaunchResult, error) {
	self, err := os.Executable()
	if err != nil {
		return LaunchResult{}, jerrors.Wrap(err, jerrors.ErrLaunch, "locate self")
	}

	args := make([]string, 0, 4+len(session.Argv))
	args = append(args, SandboxExecArg, session.InputFilePath, scratchOut, session.ExecutablePath)
	args = append(args, session.Argv...)

	cmd := exec.Command(self, args...)
	cmd.Stderr = os.Stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return LaunchResult{}, jerrors.Wrap(err, jerrors.ErrLaunch, "start subject process")
	}

	return LaunchResult{PID: cmd.Process.Pid, Start: start}, nil
}
