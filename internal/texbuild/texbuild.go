// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package texbuild runs the LaTeX compiler against the CV document.
package texbuild

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

// executor abstracts command execution for testing.
type executor interface {
	RunInDir(dir, name string, args ...string) (output []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) RunInDir(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Compiler invokes the configured LaTeX binary a fixed number of times
// so cross-references converge.
type Compiler struct {
	cfg  types.LatexConfig
	exec executor
}

// New creates a Compiler with defaults filled in for unset fields.
func New(cfg types.LatexConfig) *Compiler {
	if cfg.Bin == "" {
		cfg.Bin = "pdflatex"
	}
	if cfg.Passes <= 0 {
		cfg.Passes = 2
	}
	if cfg.TailLines <= 0 {
		cfg.TailLines = 20
	}
	return &Compiler{cfg: cfg, exec: osExecutor{}}
}

// Compile runs the compiler against file inside dir, once per configured
// pass. A pass exiting non-zero is expected with LaTeX (warnings, first
// pass with stale cross-references) and is reported to w with the tail
// of its output; only a failure to invoke the binary at all is an error.
func (c *Compiler) Compile(dir, file string, w io.Writer) error {
	for pass := 1; pass <= c.cfg.Passes; pass++ {
		out, err := c.exec.RunInDir(dir, c.cfg.Bin, "-interaction=nonstopmode", file)
		if err == nil {
			continue
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("running %s: %w", c.cfg.Bin, err)
		}

		fmt.Fprintf(w, "%s pass %d warnings/errors (may be non-fatal):\n", c.cfg.Bin, pass)
		for _, line := range tail(out, c.cfg.TailLines) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	return nil
}

// tail returns the last n lines of command output.
func tail(out []byte, n int) []string {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
