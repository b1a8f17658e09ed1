// Package linux provides the Linux-specific sandbox primitive the judge
// runner needs: the seccomp-BPF filter installed on a subject process
// between descriptor rewiring and exec.
package linux

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Seccomp constants not exported by golang.org/x/sys/unix.
const (
	seccompModeFilter = 2

	prSetNoNewPrivs = 38
	prSetSeccomp    = 22

	seccompRetKillProcess = 0x80000000
	seccompRetErrno       = 0x00050000
	seccompRetAllow       = 0x7fff0000
)

// Classic BPF opcodes used to assemble the filter program.
const (
	bpfLD   = 0x00
	bpfJMP  = 0x05
	bpfRet  = 0x06
	bpfW    = 0x00
	bpfABS  = 0x20
	bpfJEQ  = 0x10
	bpfJSET = 0x40
	bpfK    = 0x00
)

// Offsets into struct seccomp_data { u32 nr; u32 arch; u64 ip; u64 args[6]; }.
// Each args[n] is 8 bytes; classic BPF only loads 32 bits at a time, so an
// argument comparison uses the low word. x86_64 is little-endian, so the
// low word sits at the start of each 8-byte slot.
const (
	offsetNR   = 0
	offsetArch = 4

	offsetArg0Lo = 16 // execve's path argument
	offsetArg1Lo = 24 // open's flags argument
	offsetArg2Lo = 32 // openat's flags argument
)

const auditArchX86_64 = 0xc000003e

// sockFprog mirrors struct sock_fprog, as passed to PR_SET_SECCOMP.
type sockFprog struct {
	Len    uint16
	_      [6]byte // pad to the kernel's pointer alignment
	Filter *sockFilter
}

// sockFilter mirrors struct sock_filter, one classic BPF instruction.
type sockFilter struct {
	Code uint16
	Jt   uint8
	Jf   uint8
	K    uint32
}

func stmt(code uint16, k uint32) sockFilter {
	return sockFilter{Code: code, K: k}
}

func jump(code uint16, k uint32, jt, jf uint8) sockFilter {
	return sockFilter{Code: code, Jt: jt, Jf: jf, K: k}
}

// denySyscalls names syscalls the subject may never issue, matching
// spec.md §4.1: process creation, secondary exec, network sockets,
// ioctl and prctl (every request, not only terminal or process-control
// ones), filesystem tree mutation.
var denySyscalls = []uintptr{
	unix.SYS_FORK,
	unix.SYS_VFORK,
	unix.SYS_CLONE,
	unix.SYS_EXECVEAT,
	unix.SYS_SOCKET,
	unix.SYS_IOCTL,
	unix.SYS_PRCTL,
	unix.SYS_MKDIR,
	unix.SYS_RMDIR,
	unix.SYS_CREAT,
	unix.SYS_CHROOT,
}

// BuildJudgePolicy assembles the BPF program described in spec.md §4.1:
// allow by default; deny the fixed list above outright; deny write-mode
// open/openat by inspecting the flags argument; deny execve unless its
// path-pointer argument equals execPathPtr. execPathPtr must be the
// address of the exact buffer the caller is about to hand to the raw
// execve syscall — see ExecWithSeccomp for why pointer equality is sound
// when the process issues exactly one execve.
func BuildJudgePolicy(execPathPtr uintptr) []sockFilter {
	var f []sockFilter

	// Refuse to run under anything but the audited architecture.
	f = append(f, stmt(bpfLD|bpfW|bpfABS, offsetArch))
	f = append(f, jump(bpfJMP|bpfJEQ|bpfK, auditArchX86_64, 1, 0))
	f = append(f, stmt(bpfRet|bpfK, seccompRetKillProcess))

	f = append(f, stmt(bpfLD|bpfW|bpfABS, offsetNR))

	f = append(f, buildExecveCheck(execPathPtr)...)
	f = append(f, buildOpenCheck(unix.SYS_OPEN, offsetArg1Lo)...)
	f = append(f, buildOpenCheck(unix.SYS_OPENAT, offsetArg2Lo)...)

	for _, nr := range denySyscalls {
		f = append(f,
			jump(bpfJMP|bpfJEQ|bpfK, uint32(nr), 0, 1),
			stmt(bpfRet|bpfK, seccompRetErrno|unix.EPERM),
		)
	}

	f = append(f, stmt(bpfRet|bpfK, seccompRetAllow))
	return f
}

// buildExecveCheck denies execve unless its first argument equals
// execPathPtr, reloading the syscall number afterward since the argument
// load clobbers the accumulator.
func buildExecveCheck(execPathPtr uintptr) []sockFilter {
	return []sockFilter{
		jump(bpfJMP|bpfJEQ|bpfK, uint32(unix.SYS_EXECVE), 0, 4),
		stmt(bpfLD|bpfW|bpfABS, offsetArg0Lo),
		jump(bpfJMP|bpfJEQ|bpfK, uint32(execPathPtr), 1, 0),
		stmt(bpfRet|bpfK, seccompRetErrno|unix.EPERM),
		stmt(bpfLD|bpfW|bpfABS, offsetNR),
	}
}

// buildOpenCheck denies open/openat whenever O_WRONLY or O_RDWR is set in
// the flags argument, via a single JSET test against their union.
func buildOpenCheck(syscallNr uintptr, flagsOffset uint32) []sockFilter {
	const writeMask = unix.O_WRONLY | unix.O_RDWR
	return []sockFilter{
		jump(bpfJMP|bpfJEQ|bpfK, uint32(syscallNr), 0, 4),
		stmt(bpfLD|bpfW|bpfABS, flagsOffset),
		jump(bpfJMP|bpfJSET|bpfK, writeMask, 0, 1),
		stmt(bpfRet|bpfK, seccompRetErrno|unix.EPERM),
		stmt(bpfLD|bpfW|bpfABS, offsetNR),
	}
}

// Install applies the filter to the calling thread: no_new_privs, then
// PR_SET_SECCOMP. Must run after stdin/stdout are rewired and before the
// process's one and only execve.
func Install(filter []sockFilter) error {
	if len(filter) == 0 {
		return fmt.Errorf("empty seccomp filter")
	}

	if _, _, errno := unix.RawSyscall(unix.SYS_PRCTL, prSetNoNewPrivs, 1, 0); errno != 0 {
		return fmt.Errorf("prctl(PR_SET_NO_NEW_PRIVS): %v", errno)
	}

	prog := sockFprog{
		Len:    uint16(len(filter)),
		Filter: &filter[0],
	}

	if _, _, errno := unix.RawSyscall(unix.SYS_PRCTL, prSetSeccomp, seccompModeFilter, uintptr(unsafe.Pointer(&prog))); errno != 0 {
		return fmt.Errorf("prctl(PR_SET_SECCOMP): %v", errno)
	}

	return nil
}
