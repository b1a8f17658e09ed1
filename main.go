// secjudge is a sandboxed competitive-programming judge runner.
//
// Given a compiled executable, a standard input file, and a reference
// output file, it executes the program under a seccomp syscall sandbox,
// captures its resource usage and exit disposition, compares its output to
// the reference, and prints a classified verdict.
package main

import (
	"fmt"
	"os"

	"secjudge/cmd"
	"secjudge/judge"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == judge.SandboxExecArg {
		judge.RunSandboxExec(os.Args[2:])
		fmt.Fprintln(os.Stderr, "secjudge: sandbox-exec: unreachable")
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
