package main

import (
	stdcontext "context"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/dependency"
)

func tagAliases(ctx stdcontext.Context) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	return dependencyContainer.Publisher().TagAliases(ctx)
}
