package command

import (
	"context"
	"fmt"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"
)

// NewDryRunRunner returns a Runner that only logs what would be executed.
func NewDryRunRunner(logger applogger.Logger) Runner {
	return &dryRunRunner{
		logger: logger,
	}
}

type dryRunRunner struct {
	logger applogger.Logger
}

func (r dryRunRunner) Execute(_ context.Context, command Command) (string, error) {
	if command.WorkDir != "" {
		r.logger.Info(fmt.Sprintf("[dry run in %v] %v", command.WorkDir, command))
		return "", nil
	}
	r.logger.Info(fmt.Sprintf("[dry run] %v", command))
	return "", nil
}
