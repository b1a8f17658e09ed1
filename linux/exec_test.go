package linux

import (
	"os"
	"os/exec"
	"testing"
)

// TestExecWithSeccomp_Subprocess re-execs the test binary itself in helper
// mode, where it calls ExecWithSeccomp to replace itself with /bin/echo.
// Seccomp filters and execve cannot be exercised against the live test
// process directly, so this follows the standard library's own pattern for
// testing exec-replacement code: spawn the test binary with an env flag that
// makes it behave as the thing under test.
func TestExecWithSeccomp_Subprocess(t *testing.T) {
	if os.Getenv("SECJUDGE_EXEC_HELPER") == "1" {
		err := ExecWithSeccomp("/bin/echo", []string{"echo", "hello-from-seccomp"})
		if err != nil {
			os.Stderr.WriteString("ExecWithSeccomp failed: " + err.Error() + "\n")
			os.Exit(1)
		}
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecWithSeccomp_Subprocess")
	cmd.Env = append(os.Environ(), "SECJUDGE_EXEC_HELPER=1")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("helper process failed: %v", err)
	}
	if string(out) != "hello-from-seccomp\n" {
		t.Errorf("output = %q, want %q", out, "hello-from-seccomp\n")
	}
}

func TestExecWithSeccomp_UnknownPath(t *testing.T) {
	if os.Getenv("SECJUDGE_EXEC_HELPER_BAD") == "1" {
		err := ExecWithSeccomp("/nonexistent/binary", []string{"binary"})
		if err == nil {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecWithSeccomp_UnknownPath")
	cmd.Env = append(os.Environ(), "SECJUDGE_EXEC_HELPER_BAD=1")
	if err := cmd.Run(); err == nil {
		t.Error("expected the helper process to report an exec failure")
	}
}
