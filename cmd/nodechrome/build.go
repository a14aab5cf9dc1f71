package main

import (
	stdcontext "context"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/dependency"
)

func build(ctx stdcontext.Context, deploy bool) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	publisher := dependencyContainer.Publisher()
	err = publisher.BuildAdHoc(ctx)
	if err != nil || !deploy {
		return err
	}
	return publisher.Deploy(ctx, dependencyContainer.Credentials())
}
