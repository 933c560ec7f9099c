// Package prompt renders the interactive prompt line: the configured label,
// the working directory and, inside a git repository, the current branch with
// a dirty marker.
package prompt

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/octanesh/octane/core/config"
)

type Renderer struct {
	label *color.Color
	text  string
}

func NewRenderer(cfg *config.Configuration) *Renderer {
	label := color.New(color.FgBlue, color.Bold)
	switch cfg.Color {
	case config.ColorAlways:
		label.EnableColor()
	case config.ColorNever:
		label.DisableColor()
	}

	return &Renderer{
		label: label,
		text:  cfg.PromptLabel + ":",
	}
}

// Render produces the prompt for the next read. It never fails; anything that
// can't be determined is simply left out.
func (r *Renderer) Render() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	if branch, dirty, ok := gitStatus(cwd); ok {
		mark := ""
		if dirty {
			mark = "*"
		}
		return fmt.Sprintf("%s%s (%s%s) $ ", r.label.Sprint(r.text), cwd, branch, mark)
	}

	return fmt.Sprintf("%s%s $ ", r.label.Sprint(r.text), cwd)
}

// gitStatus reports the checked-out branch of the repository containing dir
// and whether its worktree has uncommitted changes. ok is false outside a
// repository, on a detached HEAD, or when git isn't available.
func gitStatus(dir string) (branch string, dirty bool, ok bool) {
	branchCmd := exec.Command("git", "branch", "--show-current")
	branchCmd.Dir = dir
	out, err := branchCmd.Output()
	branch = strings.TrimSpace(string(out))
	if err != nil || branch == "" {
		return "", false, false
	}

	statusCmd := exec.Command("git", "status", "--porcelain")
	statusCmd.Dir = dir
	statusOut, err := statusCmd.Output()
	if err != nil {
		return branch, false, true
	}

	return branch, len(bytes.TrimSpace(statusOut)) > 0, true
}
