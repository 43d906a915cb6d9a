package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/process"
)

// waitDelay bounds how long Run waits for output pipes after the group is killed.
const waitDelay = 2 * time.Second

// maxStderrLen caps the stderr excerpt carried by ErrHookCommand.
const maxStderrLen = 512

func (c *Catalog) commandHook(ctx context.Context, name, command string) txt2html.Hook {
	return func(text string) (string, error) {
		runCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		cmd := exec.CommandContext(runCtx, c.shell, "-c", command) // #nosec G204 -- command comes from the user's config
		process.Configure(cmd)
		process.KillOnCancel(cmd)
		cmd.WaitDelay = waitDelay
		cmd.Stdin = strings.NewReader(text)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if ctxErr := runCtx.Err(); ctxErr != nil {
				if errors.Is(ctxErr, context.DeadlineExceeded) && ctx.Err() == nil {
					return "", fmt.Errorf("%w: %s: after %s", ErrHookTimeout, name, c.timeout)
				}
				return "", fmt.Errorf("%w: %s: %w", ErrHookCommand, name, ctxErr)
			}
			msg := strings.TrimSpace(stderr.String())
			if len(msg) > maxStderrLen {
				msg = msg[:maxStderrLen] + "..."
			}
			if msg == "" {
				return "", fmt.Errorf("%w: %s: %v", ErrHookCommand, name, err)
			}
			return "", fmt.Errorf("%w: %s: %v: %s", ErrHookCommand, name, err, msg)
		}
		return stdout.String(), nil
	}
}
