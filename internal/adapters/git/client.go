// Package git implements the VCS port by invoking the git command line.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Client implements ports.VCS using the git executable.
type Client struct {
	binary string
}

// NewClient creates a Client invoking binary, or "git" when binary is empty.
func NewClient(binary string) *Client {
	if binary == "" {
		binary = domain.DefaultGitBinary
	}
	return &Client{binary: binary}
}

// Clone performs a full clone of source into dir.
func (c *Client) Clone(ctx context.Context, source, dir string) error {
	if _, err := c.run(ctx, "", "clone", "--quiet", source, dir); err != nil {
		return zerr.With(errors.Join(domain.ErrSourceUnavailable, zerr.Wrap(err, "git clone failed")), "source", source)
	}
	return nil
}

// Checkout switches the working tree in dir to ref.
func (c *Client) Checkout(ctx context.Context, dir, ref string) error {
	if _, err := c.run(ctx, dir, "checkout", "--quiet", ref); err != nil {
		return zerr.With(errors.Join(domain.ErrSourceUnavailable, zerr.Wrap(err, "git checkout failed")), "ref", ref)
	}
	return nil
}

// Describe returns "git describe --always" for the checkout in dir.
func (c *Client) Describe(ctx context.Context, dir string) (string, error) {
	out, err := c.run(ctx, dir, "describe", "--always")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "git describe failed"), "dir", dir)
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...) //nolint:gosec // binary comes from settings
	cmd.Dir = dir
	// Never block on a credential prompt.
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(err, "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return "", err
	}

	return stdout.String(), nil
}
