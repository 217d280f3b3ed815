// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell runs external binaries behind an interface so callers can
// substitute a fake in tests.
package shell

import (
	"context"
	"io"
	"os/exec"
	"time"
)

// waitDelay bounds how long a killed command's pipes may stay open.
const waitDelay = time.Second

// Executor abstracts command execution.
type Executor interface {
	// LookPath resolves a binary on PATH.
	LookPath(file string) (string, error)

	// RunSilent runs a command and discards its output.
	RunSilent(ctx context.Context, name string, args ...string) error

	// Output runs a command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunPiped runs a command with the given stdin and stdout.
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// OS is the production executor backed by os/exec. Commands are killed
// when their context ends.
type OS struct{}

func (OS) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (OS) RunSilent(ctx context.Context, name string, args ...string) error {
	return command(ctx, name, args...).Run()
}

func (OS) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return command(ctx, name, args...).Output()
}

func (OS) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := command(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

func command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	return cmd
}

// Default is the executor used when none is injected.
var Default Executor = OS{}
