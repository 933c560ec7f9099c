package shell

import (
	"errors"
	"fmt"
	"os/exec"
)

// launch starts an external program with the shell's stdio. Foreground
// launches block until the process exits; background launches are moved into
// the jobs table and the loop resumes immediately. Nothing here is fatal to
// the shell.
func (s *Shell) launch(name string, args []string, background bool) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(s.stdout, "Error running command: %v\n", err)
		return
	}

	if background {
		pid := cmd.Process.Pid
		fmt.Fprintf(s.stdout, "Started background job with PID %d\n", pid)
		s.jobs.Insert(pid, cmd.Process)
		s.log.Info("started background job", "pid", pid, "command", name)
		return
	}

	if err := cmd.Wait(); err != nil {
		// A nonzero exit status isn't a wait failure; the status is not
		// inspected.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(s.stdout, "Error waiting on process: %v\n", err)
		}
	}
}
