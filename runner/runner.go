// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner executes benchmark simulations and collects their
// output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// A Runner runs a benchmark command once per configuration.
type Runner struct {
	// Command is the benchmark program and its leading arguments.
	// The configuration arguments are appended to it.
	Command []string

	// Dir is the working directory of the command. If empty, the
	// command runs in the current directory.
	Dir string
}

// An ExitError reports a benchmark command that could not be run or
// that exited unsuccessfully.
type ExitError struct {
	Args   []string // full command line
	Stderr string   // standard error of the command, if any
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Run runs r.Command followed by args and returns its standard
// output. The command is killed if ctx is done before it finishes.
func (r *Runner) Run(ctx context.Context, args []string) (string, error) {
	if len(r.Command) == 0 {
		return "", errors.New("no benchmark command")
	}
	argv := append(append([]string(nil), r.Command...), args...)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return "", &ExitError{Args: argv, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}
