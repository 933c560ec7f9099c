package shell

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval_emptyLine(t *testing.T) {
	sh, out := newTestShell(t)

	sh.Eval("")
	sh.Eval("   \t ")
	assert.Empty(t, out.String())
}

func TestEval_aliasMatchesWholeLine(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	sh, out := newTestShell(t)
	sh.cfg.Aliases = map[string]string{"ll": "pwd"}

	// The alias expands to its full replacement text.
	sh.Eval("ll")
	assert.Equal(t, cwd+"\n", out.String())

	// A line that merely starts with the trigger does not match; "ll" is
	// launched as an external program and fails to start.
	out.Reset()
	sh.Eval("ll -a")
	assert.True(t, strings.HasPrefix(out.String(), "Error running command: "), out.String())
}

func TestEval_aliasIgnoresSurroundingWhitespace(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	sh, out := newTestShell(t)
	sh.cfg.Aliases = map[string]string{"ll": "pwd"}

	// The line is trimmed before matching, so stray whitespace around the
	// trigger still hits the alias.
	for _, line := range []string{"ll ", " ll", "\tll\t"} {
		out.Reset()
		sh.Eval(line)
		assert.Equal(t, cwd+"\n", out.String(), "line %q", line)
	}
}

func TestEval_envExpansionBeforeAlias(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("OCTANE_TEST_CMD", "ll")

	sh, out := newTestShell(t)
	sh.cfg.Aliases = map[string]string{"ll": "pwd"}

	// $OCTANE_TEST_CMD expands to "ll", which then matches the alias.
	sh.Eval("$OCTANE_TEST_CMD")
	assert.Equal(t, cwd+"\n", out.String())
}

func TestEval_backgroundRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available:", err)
	}

	sh, out := newTestShell(t)

	sh.Eval("sleep 100 &")

	started := regexp.MustCompile(`^Started background job with PID (\d+)\n$`)
	match := started.FindStringSubmatch(out.String())
	if match == nil {
		t.Fatalf("unexpected output: %q", out.String())
	}
	pid, err := strconv.Atoi(match[1])
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		// Make sure the child doesn't outlive the test.
		_, _ = sh.jobs.Kill(pid)
	})

	out.Reset()
	sh.Eval("jobs")
	assert.Equal(t, fmt.Sprintf("PID %d - Running\n", pid), out.String())

	out.Reset()
	sh.Eval(fmt.Sprintf("kill %d", pid))
	assert.Equal(t, fmt.Sprintf("Killed process %d\n", pid), out.String())
	assert.Empty(t, sh.jobs.PIDs())

	out.Reset()
	sh.Eval(fmt.Sprintf("kill %d", pid))
	assert.Equal(t, fmt.Sprintf("No such background process: %d\n", pid), out.String())
}
