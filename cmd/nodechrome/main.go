package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"
	"github.com/tss-calculator/go-lib/pkg/infrastructure/logger"
	"github.com/urfave/cli/v2"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/command"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/config"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/dependency"
)

const deployFlag = "deploy"

func main() {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()
	ctx = listenOSKillSignalsContext(ctx)
	mainLogger := logger.NewTextLogger()

	err := newApp(mainLogger).RunContext(ctx, os.Args)
	if err != nil {
		message := "failed execute command " + strings.Join(os.Args, " ")
		if code, ok := command.ExitCode(err); ok {
			mainLogger.Error(err, message)
			os.Exit(code)
		}
		mainLogger.FatalError(err, message)
	}
}

func newApp(appLogger applogger.Logger) *cli.App {
	return &cli.App{
		Name:  "nodechrome",
		Usage: "build and publish the ngeor/node-chrome images",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
			},
			&cli.BoolFlag{
				Name: "dry-run",
			},
			&cli.BoolFlag{
				Name: deployFlag,
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("env-file"))
			if err != nil {
				return err
			}
			container := dependency.NewDependencyContainer(appLogger, cfg, c.Bool("dry-run"))
			c.Context = dependency.ContainerToContext(c.Context, container)
			return nil
		},
		Action: func(c *cli.Context) error {
			return build(c.Context, deployRequested(c))
		},
		Commands: cli.Commands{
			&cli.Command{
				Name:  "matrix",
				Usage: "build every version, tag the aliases and optionally push them",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name: deployFlag,
					},
				},
				Action: func(c *cli.Context) error {
					return buildMatrix(c.Context, deployRequested(c))
				},
			},
			&cli.Command{
				Name:  "tag",
				Usage: "tag the canonical images with their aliases",
				// deploy is accepted and ignored; tag never pushes.
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name: deployFlag,
					},
				},
				Action: func(c *cli.Context) error {
					return tagAliases(c.Context)
				},
			},
		},
	}
}

// deployRequested accepts the flag anywhere, including after positional arguments
// where flag parsing has already stopped.
func deployRequested(c *cli.Context) bool {
	if c.Bool(deployFlag) {
		return true
	}
	return containsDeployArg(c.Args().Slice())
}

func containsDeployArg(args []string) bool {
	for _, arg := range args {
		if arg == "--"+deployFlag {
			return true
		}
	}
	return false
}

func listenOSKillSignalsContext(ctx context.Context) context.Context {
	var cancelFunc context.CancelFunc
	ctx, cancelFunc = context.WithCancel(ctx)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		select {
		case <-ch:
			cancelFunc()
		case <-ctx.Done():
			return
		}
	}()
	return ctx
}
