package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"secjudge/judge"
	"secjudge/report"
	"secjudge/utils"
)

var (
	runTimeLimit   time.Duration
	runMemoryLimit uint64
	runScratchDir  string
)

var runCmd = &cobra.Command{
	Use:   "run <stdin_path> <reference_path> <executable> [-- child_argv...]",
	Short: "Run a program under the sandbox and judge its output",
	Long: `run executes <executable> with <stdin_path> as standard input under a
seccomp syscall sandbox, captures its resource usage, compares its
standard output against <reference_path>, and prints a classified
verdict.`,
	// Fewer than three positional arguments is not a usage error: it
	// prints the usage line and exits 0, matching the original
	// implementation's "no args, no judgment" behavior.
	Args: cobra.ArbitraryArgs,
	RunE: runJudge,
}

func init() {
	runCmd.Flags().DurationVar(&runTimeLimit, "time-limit", time.Second, "wall-clock time limit (0 means no limit)")
	runCmd.Flags().Uint64Var(&runMemoryLimit, "memory-limit", 104857600, "memory limit in bytes")
	runCmd.Flags().StringVar(&runScratchDir, "scratch-dir", "/tmp", "directory for the captured-output scratch file")
	rootCmd.AddCommand(runCmd)
}

func runJudge(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		fmt.Fprintln(cmd.OutOrStdout(), cmd.UsageString())
		return nil
	}

	stdinPath := args[0]
	referencePath := args[1]
	executableArg := args[2]
	childArgv := args[2:]

	executablePath := utils.FindExecutable(executableArg)

	session := judge.Session{
		ExecutablePath:      executablePath,
		InputFilePath:       stdinPath,
		ReferenceAnswerPath: referencePath,
		TimeLimit:           runTimeLimit,
		MemoryLimitBytes:    runMemoryLimit,
		Argv:                childArgv,
		ScratchDir:          runScratchDir,
	}

	result, err := judge.Run(session)
	if err != nil {
		fmt.Println("Failed to run program")
		fmt.Printf("Error: %s\n", err)
		return nil
	}

	report.Render(os.Stdout, result)
	return nil
}
