package executil

import (
	"bytes"
	"os"
	"os/exec"
)

type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// Capture runs name with args and collects its output. Used for queries
// whose output is parsed, never for anything interactive.
func Capture(name string, args ...string) Result {
	cmd := exec.Command(name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	code := 0
	if err != nil {
		if e, ok := err.(*exec.ExitError); ok {
			code = e.ExitCode()
		} else {
			code = 1
		}
	}
	return Result{Stdout: out.String(), Stderr: errb.String(), Code: code}
}

// Run executes name with args attached to the caller's terminal, so the tool
// can prompt, draw progress bars, and ask for passwords itself. When
// requireRoot is set and the process is not already root, the command is run
// through sudo. dir sets the working directory when non-empty.
func Run(dir string, requireRoot bool, name string, args ...string) error {
	argv := append([]string{name}, args...)
	if requireRoot && os.Geteuid() != 0 {
		argv = append([]string{"sudo"}, argv...)
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
