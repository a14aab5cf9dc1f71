package main

import (
	stdcontext "context"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/dependency"
)

func buildMatrix(ctx stdcontext.Context, deploy bool) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	publisher := dependencyContainer.Publisher()
	err = publisher.BuildMatrix(ctx)
	if err != nil {
		return err
	}
	err = publisher.TagAliases(ctx)
	if err != nil || !deploy {
		return err
	}
	return publisher.DeployMatrix(ctx, dependencyContainer.Credentials())
}
