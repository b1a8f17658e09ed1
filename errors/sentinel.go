// Package errors provides predefined sentinel errors for common failure cases.
package errors

// Session validation errors.
var (
	// ErrMissingStdin indicates the stdin input file path was not given or
	// does not exist.
	ErrMissingStdin = &JudgeError{
		Kind:   ErrInvalidConfig,
		Detail: "stdin input file not found",
	}

	// ErrMissingReference indicates the reference output file was not given
	// or does not exist.
	ErrMissingReference = &JudgeError{
		Kind:   ErrInvalidConfig,
		Detail: "reference output file not found",
	}

	// ErrExecutableNotFound indicates the subject executable could not be
	// resolved, either as a direct path or via $PATH.
	ErrExecutableNotFound = &JudgeError{
		Kind:   ErrInvalidConfig,
		Detail: "executable not found",
	}

	// ErrInvalidTimeLimit indicates a non-positive time limit was given.
	ErrInvalidTimeLimit = &JudgeError{
		Kind:   ErrInvalidConfig,
		Detail: "time limit must be positive",
	}

	// ErrInvalidMemoryLimit indicates a non-positive memory limit was given.
	ErrInvalidMemoryLimit = &JudgeError{
		Kind:   ErrInvalidConfig,
		Detail: "memory limit must be positive",
	}
)

// Launch errors: anything between fork and the subject's first instruction.
var (
	// ErrForkFailed indicates the trampoline process could not be started.
	ErrForkFailed = &JudgeError{
		Kind:   ErrLaunch,
		Detail: "failed to start subject process",
	}

	// ErrSeccompFilter indicates the seccomp-BPF filter could not be built
	// or installed on the subject process.
	ErrSeccompFilter = &JudgeError{
		Kind:   ErrLaunch,
		Detail: "failed to install seccomp filter",
	}

	// ErrDescriptorRewire indicates stdin/stdout could not be rebound to the
	// session's scratch files before exec.
	ErrDescriptorRewire = &JudgeError{
		Kind:   ErrLaunch,
		Detail: "failed to rewire standard descriptors",
	}

	// ErrExecFailed indicates the final execve of the subject binary failed.
	ErrExecFailed = &JudgeError{
		Kind:   ErrLaunch,
		Detail: "failed to exec subject executable",
	}
)

// Supervisor errors: the wait/poll loop watching the subject run.
var (
	// ErrWaitFailed indicates wait4 returned an unexpected error.
	ErrWaitFailed = &JudgeError{
		Kind:   ErrSupervisor,
		Detail: "failed to wait for subject process",
	}

	// ErrKillFailed indicates the supervisor could not deliver SIGKILL after
	// a deadline was exceeded.
	ErrKillFailed = &JudgeError{
		Kind:   ErrSupervisor,
		Detail: "failed to kill subject process",
	}

	// ErrRusageUnavailable indicates the kernel did not report resource
	// usage for the reaped process.
	ErrRusageUnavailable = &JudgeError{
		Kind:   ErrSupervisor,
		Detail: "resource usage unavailable for reaped process",
	}
)

// Judge I/O errors: reading inputs, writing scratch files, comparing output.
var (
	// ErrScratchCreate indicates a scratch file for stdin/stdout capture
	// could not be created.
	ErrScratchCreate = &JudgeError{
		Kind:   ErrJudgeIO,
		Detail: "failed to create scratch file",
	}

	// ErrScratchCleanup indicates a scratch file could not be removed after
	// judging finished.
	ErrScratchCleanup = &JudgeError{
		Kind:   ErrJudgeIO,
		Detail: "failed to remove scratch file",
	}

	// ErrReferenceRead indicates the reference output file could not be read
	// for comparison.
	ErrReferenceRead = &JudgeError{
		Kind:   ErrJudgeIO,
		Detail: "failed to read reference output",
	}

	// ErrOutputRead indicates the subject's captured output could not be
	// read back for comparison.
	ErrOutputRead = &JudgeError{
		Kind:   ErrJudgeIO,
		Detail: "failed to read subject output",
	}
)
