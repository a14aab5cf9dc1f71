package docker

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/pkg/errors"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/application/service"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/command"
)

const DefaultExecutable = "docker"

func NewCLI(executable string, runner command.Runner) service.Docker {
	if executable == "" {
		executable = DefaultExecutable
	}
	return &cli{
		executable: executable,
		runner:     runner,
	}
}

type cli struct {
	executable string
	runner     command.Runner
}

func (c cli) Build(ctx context.Context, request service.BuildRequest) error {
	err := validateRefs(request.Ref)
	if err != nil {
		return err
	}
	args := []string{"build", "-t", request.Ref}
	keys := make([]string, 0, len(request.BuildArgs))
	for key := range request.BuildArgs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		args = append(args, "--build-arg", key+"="+request.BuildArgs[key])
	}
	args = append(args, ".")
	err = c.run(ctx, request.Dir, nil, args...)
	return errors.Wrapf(err, "failed to build image %v in %v", request.Ref, request.Dir)
}

func (c cli) Tag(ctx context.Context, source, target string) error {
	err := validateRefs(source, target)
	if err != nil {
		return err
	}
	err = c.run(ctx, "", nil, "tag", source, target)
	return errors.Wrapf(err, "failed to tag image %v as %v", source, target)
}

func (c cli) Push(ctx context.Context, ref string) error {
	err := validateRefs(ref)
	if err != nil {
		return err
	}
	err = c.run(ctx, "", nil, "push", ref)
	return errors.Wrapf(err, "failed to push image %v", ref)
}

func (c cli) Login(ctx context.Context, username, password string) error {
	err := c.run(ctx, "", strings.NewReader(password), "login", "-u", username, "--password-stdin")
	return errors.Wrapf(err, "failed to login as %v", username)
}

func (c cli) Logout(ctx context.Context) error {
	err := c.run(ctx, "", nil, "logout")
	return errors.Wrap(err, "failed to logout")
}

func (c cli) run(ctx context.Context, dir string, stdin io.Reader, args ...string) error {
	_, err := c.runner.Execute(ctx, command.Command{
		WorkDir:    dir,
		Executable: c.executable,
		Args:       args,
		Stdin:      stdin,
		Verbose:    true,
	})
	return err
}

func validateRefs(refs ...string) error {
	for _, ref := range refs {
		if _, err := name.NewTag(ref); err != nil {
			return errors.Wrapf(err, "invalid image reference %v", ref)
		}
	}
	return nil
}
