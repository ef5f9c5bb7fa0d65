package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// Microphone yields raw 16 kHz mono s16le PCM.
type Microphone interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// CommandMicrophone records by running an external capture program such as
// arecord and reading its stdout.
type CommandMicrophone struct {
	argv []string
}

func NewCommandMicrophone(argv []string) *CommandMicrophone {
	return &CommandMicrophone{argv: argv}
}

func (m *CommandMicrophone) Open(ctx context.Context) (io.ReadCloser, error) {
	if len(m.argv) == 0 {
		return nil, errors.New("no capture command configured")
	}

	cmd := exec.CommandContext(ctx, m.argv[0], m.argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open capture pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", m.argv[0], err)
	}

	return &capture{cmd: cmd, stdout: stdout}, nil
}

// capture kills the recorder on Close and reaps it exactly once.
type capture struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	once   sync.Once
}

func (c *capture) Read(p []byte) (int, error) {
	return c.stdout.Read(p)
}

func (c *capture) Close() error {
	c.once.Do(func() {
		if c.cmd.Process != nil {
			_ = c.cmd.Process.Kill()
		}
		_ = c.cmd.Wait()
	})
	return nil
}
