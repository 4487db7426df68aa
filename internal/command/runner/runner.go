// Package runner executes registered commands: built-in handlers in-process,
// shell-backed commands via the shell with captured combined output.
package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"admin-command-console/internal/command/domain"
)

// maxCapturedOutput bounds how much combined output one run may retain.
// Output beyond it is truncated with a marker; the command keeps running.
const maxCapturedOutput = 256 * 1024

const truncationMarker = "\n... (output truncated)"

// Runner executes one command with a per-run timeout.
type Runner struct {
	timeout time.Duration
}

// New returns a Runner whose runs are cancelled after timeout.
func New(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Runner{timeout: timeout}
}

// Run executes d with the given args and stdin text and returns the captured
// result. The result's Err is non-nil for handler errors, non-zero exits, and
// timeouts; the captured output is returned either way.
func (r *Runner) Run(ctx context.Context, d domain.Descriptor, args []string, stdin string) *domain.Result {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	var buf limitedBuffer
	var err error
	if d.Handler != nil {
		err = d.Handler(ctx, args, strings.NewReader(stdin), &buf)
		if err == nil {
			err = ctx.Err()
		}
	} else {
		err = runShell(ctx, d.Shell, args, stdin, &buf)
	}

	return &domain.Result{
		Output:   buf.String(),
		Duration: time.Since(start),
		Err:      err,
	}
}

// runShell runs the shell line with args appended, feeding stdin text and
// capturing combined output.
func runShell(ctx context.Context, shell string, args []string, stdin string, out *limitedBuffer) error {
	argv := append([]string{"-c", shell, "sh"}, args...)
	cmd := exec.CommandContext(ctx, "sh", argv...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = out
	cmd.Stderr = out
	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// limitedBuffer keeps at most maxCapturedOutput bytes and swallows the rest.
type limitedBuffer struct {
	buf       bytes.Buffer
	truncated bool
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	remaining := maxCapturedOutput - b.buf.Len()
	if remaining <= 0 {
		b.truncated = true
		return len(p), nil
	}
	if len(p) > remaining {
		b.buf.Write(p[:remaining])
		b.truncated = true
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *limitedBuffer) String() string {
	if b.truncated {
		return b.buf.String() + truncationMarker
	}
	return b.buf.String()
}
