package docker_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/application/service"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/command"
	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/infrastructure/docker"
)

var errExit = errors.New("exit status 1")

type recordingRunner struct {
	commands []command.Command
	stdin    []string
	err      error
}

func (r *recordingRunner) Execute(_ context.Context, cmd command.Command) (string, error) {
	r.commands = append(r.commands, cmd)
	if cmd.Stdin != nil {
		input, err := io.ReadAll(cmd.Stdin)
		if err != nil {
			return "", err
		}
		r.stdin = append(r.stdin, string(input))
	}
	return "", r.err
}

func TestBuild(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	err := docker.NewCLI("", runner).Build(context.Background(), service.BuildRequest{
		Ref:       "ngeor/node-chrome:10-xenial-chrome-71.0.3578.98",
		Dir:       "10-xenial",
		BuildArgs: map[string]string{"CHROME_VERSION": "71.0.3578.98-0ubuntu0.16.04.1"},
	})

	require.NoError(t, err)
	require.Len(t, runner.commands, 1)
	cmd := runner.commands[0]
	assert.Equal(t, "10-xenial", cmd.WorkDir)
	assert.Equal(t, "docker", cmd.Executable)
	assert.Equal(t, []string{
		"build",
		"-t", "ngeor/node-chrome:10-xenial-chrome-71.0.3578.98",
		"--build-arg", "CHROME_VERSION=71.0.3578.98-0ubuntu0.16.04.1",
		".",
	}, cmd.Args)
	assert.True(t, cmd.Verbose)
}

func TestBuildWithoutArgs(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	err := docker.NewCLI("podman", runner).Build(context.Background(), service.BuildRequest{
		Ref: "ngeor/node-chrome:experimental",
		Dir: "experimental",
	})

	require.NoError(t, err)
	assert.Equal(t, "podman", runner.commands[0].Executable)
	assert.Equal(t, []string{"build", "-t", "ngeor/node-chrome:experimental", "."}, runner.commands[0].Args)
}

func TestTagAndPush(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	cli := docker.NewCLI("", runner)

	require.NoError(t, cli.Tag(context.Background(), "ngeor/node-chrome:8-stretch-chrome-70.0.3538.110", "ngeor/node-chrome:latest"))
	require.NoError(t, cli.Push(context.Background(), "ngeor/node-chrome:latest"))

	assert.Equal(t, []string{"tag", "ngeor/node-chrome:8-stretch-chrome-70.0.3538.110", "ngeor/node-chrome:latest"}, runner.commands[0].Args)
	assert.Equal(t, []string{"push", "ngeor/node-chrome:latest"}, runner.commands[1].Args)
	assert.Empty(t, runner.commands[1].WorkDir)
}

func TestLoginKeepsPasswordOutOfArgs(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	require.NoError(t, docker.NewCLI("", runner).Login(context.Background(), "ngeor", "s3cr3t"))

	assert.Equal(t, []string{"login", "-u", "ngeor", "--password-stdin"}, runner.commands[0].Args)
	assert.NotContains(t, runner.commands[0].Args, "s3cr3t")
	assert.Equal(t, []string{"s3cr3t"}, runner.stdin)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	require.NoError(t, docker.NewCLI("", runner).Logout(context.Background()))

	assert.Equal(t, []string{"logout"}, runner.commands[0].Args)
	assert.Nil(t, runner.commands[0].Stdin)
}

func TestRunnerFailureIsWrapped(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{err: errExit}
	err := docker.NewCLI("", runner).Push(context.Background(), "ngeor/node-chrome:8")

	require.ErrorIs(t, err, errExit)
	assert.Contains(t, err.Error(), "failed to push image ngeor/node-chrome:8")
}

func TestInvalidReferenceIsRejected(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	err := docker.NewCLI("", runner).Push(context.Background(), "ngeor/node-chrome:bad tag")

	require.Error(t, err)
	assert.Empty(t, runner.commands)
}
