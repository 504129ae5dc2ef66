// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// helper returns a Runner that re-executes the test binary as a fake
// benchmark behaving as mode.
func helper(mode string) *Runner {
	return &Runner{Command: []string{os.Args[0], "-test.run=TestHelperProcess", "--", mode}}
}

// TestHelperProcess is not a real test. It is the fake benchmark
// started by helper.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("DRAMSTAT_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	mode, args := args[1], args[2:]
	switch mode {
	case "ok":
		fmt.Printf("args: %s\n", strings.Join(args, " "))
		fmt.Println("BIST-GENERATOR ticks: 100")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "simulation failed")
		os.Exit(3)
	case "hang":
		time.Sleep(time.Minute)
	}
	os.Exit(2)
}

func TestRun(t *testing.T) {
	t.Setenv("DRAMSTAT_WANT_HELPER_PROCESS", "1")
	out, err := helper("ok").Run(context.Background(), []string{"--sdram-module", "M1", "--bist-random"})
	if err != nil {
		t.Fatal(err)
	}
	want := "args: --sdram-module M1 --bist-random\nBIST-GENERATOR ticks: 100\n"
	if out != want {
		t.Errorf("got output %q, want %q", out, want)
	}
}

func TestRunFailure(t *testing.T) {
	t.Setenv("DRAMSTAT_WANT_HELPER_PROCESS", "1")
	_, err := helper("fail").Run(context.Background(), []string{"--bist-length", "1"})
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want *ExitError", err)
	}
	if !strings.Contains(ee.Stderr, "simulation failed") {
		t.Errorf("stderr %q does not contain the failure", ee.Stderr)
	}
	if got := ee.Args[len(ee.Args)-2:]; got[0] != "--bist-length" || got[1] != "1" {
		t.Errorf("args end with %q, want config arguments", got)
	}
	var xe *exec.ExitError
	if !errors.As(err, &xe) || xe.ExitCode() != 3 {
		t.Errorf("got %v, want exit status 3", err)
	}
	if !strings.Contains(err.Error(), "simulation failed") {
		t.Errorf("error %q does not include stderr", err)
	}
}

func TestRunCanceled(t *testing.T) {
	t.Setenv("DRAMSTAT_WANT_HELPER_PROCESS", "1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := helper("hang").Run(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRunNoCommand(t *testing.T) {
	if _, err := new(Runner).Run(context.Background(), nil); err == nil {
		t.Errorf("running an empty command succeeded")
	}
}
