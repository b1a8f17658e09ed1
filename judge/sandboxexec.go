package judge

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"secjudge/linux"
)

// SandboxExecArg names the hidden subcommand the judge process re-execs
// itself as between fork and the subject's exec. It is not a real CLI verb;
// it only exists as an argv[1] the main package routes to RunSandboxExec.
const SandboxExecArg = "__sandbox-exec__"

// RunSandboxExec implements the second hop of the launcher: it runs as its
// own process image (the re-exec'd secjudge binary), rewires descriptors 0
// and 1 to the given paths, installs the seccomp policy, and execs the
// subject. It never returns; on any failure it prints to its still-open
// descriptor 2 and exits non-zero, matching spec.md §4.1 step 4.
//
// args must be [stdinPath, stdoutPath, executablePath, argv0, argv1...].
func RunSandboxExec(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "secjudge: sandbox-exec: missing arguments")
		os.Exit(1)
	}

	stdinPath, stdoutPath, executablePath := args[0], args[1], args[2]
	argv := args[3:]
	if len(argv) == 0 {
		argv = []string{executablePath}
	}

	if err := rewireDescriptor(stdinPath, 0, unix.O_RDONLY); err != nil {
		fmt.Fprintln(os.Stderr, "secjudge: sandbox-exec: stdin:", err)
		os.Exit(1)
	}
	if err := rewireDescriptor(stdoutPath, 1, unix.O_WRONLY); err != nil {
		fmt.Fprintln(os.Stderr, "secjudge: sandbox-exec: stdout:", err)
		os.Exit(1)
	}

	if err := linux.ExecWithSeccomp(executablePath, argv); err != nil {
		fmt.Fprintln(os.Stderr, "secjudge: sandbox-exec: exec:", err)
		os.Exit(1)
	}
}

// rewireDescriptor opens path and duplicates it onto fd, closing both the
// original descriptor and the freshly opened one, per spec.md §4.1's
// "close descriptor; duplicate the opened descriptor onto it; close the
// original" ordering.
func rewireDescriptor(path string, fd int, flags int) error {
	newFd, err := unix.Open(path, flags, 0)
	if err != nil {
		return err
	}
	if err := unix.Close(fd); err != nil {
		unix.Close(newFd)
		return err
	}
	if err := unix.Dup2(newFd, fd); err != nil {
		unix.Close(newFd)
		return err
	}
	return unix.Close(newFd)
}
