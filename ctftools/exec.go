//go:build unix

package ctftools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"github.com/creack/pty"
)

// Exec runs command with /bin/sh with stdout and stderr attached to a
// pseudo terminal, so output is interleaved the way it would be in a
// terminal. input, if any, is written to the command's stdin.
//
// It returns the combined output with surrounding whitespace removed and the
// exit code. A command that runs and fails is not an error.
func Exec(ctx context.Context, command string, input []byte) (string, int, error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return "", -1, fmt.Errorf("unable to open pty: %w", err)
	}
	defer ptmx.Close()

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = tty
	cmd.Stderr = tty

	err = cmd.Start()
	// The child has its own copy. Closing ours lets reads end once it exits.
	tty.Close()
	if err != nil {
		return "", -1, fmt.Errorf("unable to start %q: %w", command, err)
	}

	var output bytes.Buffer
	readErr := make(chan error, 1)
	go func() {
		_, err := io.Copy(&output, ptmx)
		readErr <- err
	}()

	waitErr := cmd.Wait()

	// Reading a pty whose other side is closed fails with EIO on Linux
	// instead of returning EOF.
	if err := <-readErr; err != nil && !errors.Is(err, syscall.EIO) {
		return "", -1, fmt.Errorf("unable to read output: %w", err)
	}

	code := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return "", -1, waitErr
		}
		code = exitErr.ExitCode()
	}

	return strings.TrimSpace(output.String()), code, nil
}
