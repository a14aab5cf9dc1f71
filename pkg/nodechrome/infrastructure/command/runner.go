package command

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"
)

type Command struct {
	WorkDir    string
	Executable string
	Args       []string
	// Stdin is fed to the process; secrets go here, never into Args.
	Stdin io.Reader
	// Verbose streams the process output to the terminal instead of capturing it.
	Verbose bool
}

func (command Command) String() string {
	return strings.Join(append([]string{command.Executable}, command.Args...), " ")
}

type Runner interface {
	Execute(ctx context.Context, command Command) (string, error)
}

func NewCommandRunner(logger applogger.Logger) Runner {
	return &runner{
		logger: logger,
	}
}

type runner struct {
	logger applogger.Logger
}

func (r runner) Execute(ctx context.Context, command Command) (string, error) {
	if command.Executable == "" {
		return "", errors.New("command executable can not be empty")
	}
	// nolint:gosec
	cmd := exec.CommandContext(ctx, command.Executable, command.Args...)
	cmd.Dir = command.WorkDir
	cmd.Stdin = command.Stdin
	r.logger.Debug(cmd.String())
	if command.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return "", cmd.Run()
	}
	result, err := cmd.Output()
	return string(result), err
}

// ExitCode reports the exit status of a failed process somewhere in err's chain.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
