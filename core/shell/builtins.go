package shell

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/pborman/getopt/v2"
)

// builtin enumerates the commands the shell handles itself. The set is
// closed so runBuiltin can switch over it exhaustively.
type builtin int

const (
	builtinCalc builtin = iota
	builtinExit
	builtinCd
	builtinPwd
	builtinClear
	builtinJobs
	builtinKill
)

var builtinNames = map[string]builtin{
	"calc":  builtinCalc,
	"exit":  builtinExit,
	"cd":    builtinCd,
	"pwd":   builtinPwd,
	"clear": builtinClear,
	"jobs":  builtinJobs,
	"kill":  builtinKill,
}

// lookupBuiltin resolves a command name, case-sensitively.
func lookupBuiltin(name string) (builtin, bool) {
	b, ok := builtinNames[name]
	return b, ok
}

// runBuiltin executes b synchronously. args excludes the command name.
func (s *Shell) runBuiltin(b builtin, args []string) {
	switch b {
	case builtinCalc:
		s.calc(args)
	case builtinExit:
		s.exit(0)
	case builtinCd:
		s.cd(args)
	case builtinPwd:
		s.pwd()
	case builtinClear:
		s.clearScreen()
	case builtinJobs:
		s.listJobs(args)
	case builtinKill:
		s.killJob(args)
	}
}

func (s *Shell) calc(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.stdout, "Usage: calc <expression>")
		return
	}

	result, err := evalArithmetic(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(s.stdout, "Error evaluating expression: %v\n", err)
		return
	}
	fmt.Fprintln(s.stdout, result)
}

func (s *Shell) cd(args []string) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(s.stdout, "Error: %v\n", err)
	}
}

func (s *Shell) pwd() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.stdout, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.stdout, cwd)
}

// clearScreen shells out to the platform's clear facility and swallows its
// error, matching the original behavior.
func (s *Shell) clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = s.stdout
	_ = cmd.Run()
}

func (s *Shell) listJobs(args []string) {
	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(append([]string{"jobs"}, args...), nil); err != nil || *helpOpt {
		if err != nil {
			fmt.Fprintln(s.stdout, err)
		}
		fmt.Fprintln(s.stdout, "List tracked background jobs.")
		opts.PrintOptions(s.stdout)
		return
	}

	pids := s.jobs.PIDs()
	if len(pids) == 0 {
		fmt.Fprintln(s.stdout, "No background jobs")
		return
	}
	for _, pid := range pids {
		fmt.Fprintf(s.stdout, "PID %d - Running\n", pid)
	}
}

func (s *Shell) killJob(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.stdout, "Usage: kill <pid>")
		return
	}

	pid, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Fprintln(s.stdout, "Invalid PID")
		return
	}

	found, killErr := s.jobs.Kill(int(pid))
	switch {
	case !found:
		fmt.Fprintf(s.stdout, "No such background process: %d\n", pid)
	case killErr != nil:
		fmt.Fprintf(s.stdout, "Failed to kill %d: %v\n", pid, killErr)
	default:
		fmt.Fprintf(s.stdout, "Killed process %d\n", pid)
		s.log.Info("killed background job", "pid", pid)
	}
}
