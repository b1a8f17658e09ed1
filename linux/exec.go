package linux

import (
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ExecWithSeccomp installs the judge seccomp policy (see BuildJudgePolicy)
// parameterized by the exact pointer that will be passed to execve for
// path, then execs path with argv and the calling process's environment,
// replacing the calling process image. It only returns on failure.
//
// The policy's execve check compares the kernel-visible path pointer
// against the address ExecWithSeccomp computed for its own execve call, so
// the two must share one underlying byte buffer: BytePtrFromString is
// called once, and its result feeds both BuildJudgePolicy and the raw
// execve syscall below. Going through unix.Exec (which wraps syscall.Exec)
// here would recompute that buffer at a different address and break the
// comparison.
func ExecWithSeccomp(path string, argv []string) error {
	// The filter binds only the thread that installs it, so the install and
	// the execve must run on the same OS thread.
	runtime.LockOSThread()

	pathPtr, err := unix.BytePtrFromString(path)
	if err != nil {
		return err
	}

	argvPtr, err := unix.SlicePtrFromStrings(argv)
	if err != nil {
		return err
	}

	envPtr, err := unix.SlicePtrFromStrings(os.Environ())
	if err != nil {
		return err
	}

	filter := BuildJudgePolicy(uintptr(unsafe.Pointer(pathPtr)))
	if err := Install(filter); err != nil {
		return err
	}

	_, _, errno := unix.RawSyscall(unix.SYS_EXECVE,
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(unsafe.Pointer(&argvPtr[0])),
		uintptr(unsafe.Pointer(&envPtr[0])))

	if errno != 0 {
		return errno
	}
	return nil
}
