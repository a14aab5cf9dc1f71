package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/application/model"
)

var (
	ErrMissingUsername = errors.New("registry username is not set")
	ErrMissingPassword = errors.New("registry password is not set")
)

type BuildRequest struct {
	Ref       string
	Dir       string
	BuildArgs map[string]string
}

// Docker is the boundary to the external container tool.
type Docker interface {
	Build(ctx context.Context, request BuildRequest) error
	Tag(ctx context.Context, source, target string) error
	Push(ctx context.Context, ref string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
}

type Publisher interface {
	BuildMatrix(ctx context.Context) error
	BuildAdHoc(ctx context.Context) error
	TagAliases(ctx context.Context) error
	Deploy(ctx context.Context, credentials model.Credentials) error
	DeployMatrix(ctx context.Context, credentials model.Credentials) error
}

func NewPublisherService(
	image model.Image,
	logger applogger.Logger,
	docker Docker,
) Publisher {
	return &publisher{
		image:    image,
		versions: model.Versions(),
		tags:     model.Tags(),
		adHoc:    model.AdHocBuilds(),
		logger:   logger,
		docker:   docker,
	}
}

type publisher struct {
	image    model.Image
	versions []model.VersionEntry
	tags     []model.TagEntry
	adHoc    []model.AdHocBuild

	logger applogger.Logger
	docker Docker
}

func (service publisher) BuildMatrix(ctx context.Context) error {
	service.logger.Info("building version matrix")
	for _, version := range service.versions {
		err := service.build(ctx, BuildRequest{
			Ref:       service.image.Ref(version.Tag()),
			Dir:       version.Folder,
			BuildArgs: map[string]string{"CHROME_VERSION": version.ChromeVersion},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (service publisher) BuildAdHoc(ctx context.Context) error {
	service.logger.Info("building ad-hoc images")
	for _, build := range service.adHoc {
		err := service.build(ctx, BuildRequest{
			Ref: service.image.Ref(build.Tag),
			Dir: build.Folder,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (service publisher) TagAliases(ctx context.Context) error {
	for _, entry := range service.tags {
		for _, alias := range entry.Aliases {
			service.logger.Info(fmt.Sprintf("tag \"%v\" as \"%v\"", entry.Canonical, alias))
			err := service.docker.Tag(ctx, service.image.Ref(entry.Canonical), service.image.Ref(alias))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (service publisher) Deploy(ctx context.Context, credentials model.Credentials) error {
	tags := make([]string, 0, len(service.adHoc))
	for _, build := range service.adHoc {
		tags = append(tags, build.Tag)
	}
	return service.deploy(ctx, credentials, tags)
}

func (service publisher) DeployMatrix(ctx context.Context, credentials model.Credentials) error {
	var tags []string
	for _, entry := range service.tags {
		tags = append(tags, entry.Canonical)
		tags = append(tags, entry.Aliases...)
	}
	return service.deploy(ctx, credentials, tags)
}

// deploy has no cleanup on failure: a failed push leaves the session logged in.
func (service publisher) deploy(ctx context.Context, credentials model.Credentials, tags []string) error {
	service.logger.Info("deploying")
	err := service.authenticate(ctx, credentials)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		service.logger.Info(fmt.Sprintf("push \"%v\"", tag))
		err = service.docker.Push(ctx, service.image.Ref(tag))
		if err != nil {
			return err
		}
	}
	return service.docker.Logout(ctx)
}

func (service publisher) authenticate(ctx context.Context, credentials model.Credentials) error {
	if credentials.Username == "" {
		return ErrMissingUsername
	}
	if credentials.Password == "" {
		return ErrMissingPassword
	}
	return service.docker.Login(ctx, credentials.Username, credentials.Password)
}

func (service publisher) build(ctx context.Context, request BuildRequest) error {
	service.logger.Info(fmt.Sprintf("build \"%v\" from folder \"%v\"...", request.Ref, request.Dir))
	start := time.Now()
	defer func() {
		service.logger.Info(fmt.Sprintf("done in %v", time.Since(start).String()))
	}()
	return service.docker.Build(ctx, request)
}
