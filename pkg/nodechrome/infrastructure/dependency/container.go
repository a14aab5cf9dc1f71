package dependency

import (
	"context"
	"errors"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/application/model"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/application/service"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/command"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/config"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/docker"
)

type containerKey struct{}

type Container interface {
	Publisher() service.Publisher
	Credentials() model.Credentials
}

func NewDependencyContainer(
	logger applogger.Logger,
	cfg config.Config,
	dryRun bool,
) Container {
	runner := command.NewCommandRunner(logger)
	if dryRun {
		runner = command.NewDryRunRunner(logger)
	}
	dockerCLI := docker.NewCLI(cfg.Executable, runner)
	publisherService := service.NewPublisherService(model.NodeChrome, logger, dockerCLI)

	return &container{
		publisher:   publisherService,
		credentials: cfg.Credentials,
	}
}

type container struct {
	publisher   service.Publisher
	credentials model.Credentials
}

func (c *container) Publisher() service.Publisher {
	return c.publisher
}

func (c *container) Credentials() model.Credentials {
	return c.credentials
}

func ContainerFromContext(ctx context.Context) (Container, error) {
	v := ctx.Value(containerKey{})
	if c, ok := v.(Container); ok {
		return c, nil
	}
	return nil, errors.New("dependency container not found")
}

func ContainerToContext(ctx context.Context, c Container) context.Context {
	return context.WithValue(ctx, containerKey{}, c)
}
