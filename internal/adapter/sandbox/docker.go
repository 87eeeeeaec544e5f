package sandbox

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"gitlab.com/shodh-oj.net/internal/config"
	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/domain"
)

const (
	containerWorkdir = "/workspace"
	killTimeout      = 2 * time.Second
)

var _ secondary.Sandbox = (*DockerExecutor)(nil)

// DockerExecutor runs compile and run steps inside throwaway docker
// containers: no network, capped memory and CPU, non-root user, the
// working directory bind-mounted under /workspace. The docker binary is
// the isolation primitive; it must be on PATH and the judge image present.
type DockerExecutor struct {
	cfg    *config.JudgeConfig
	logger primary.Logger
}

// NewDockerExecutor creates a new docker-backed sandbox
func NewDockerExecutor(cfg *config.JudgeConfig, logger primary.Logger) *DockerExecutor {
	return &DockerExecutor{
		cfg:    cfg,
		logger: logger,
	}
}

// NewWorkspace acquires a scoped temp directory for one judging pass
func (e *DockerExecutor) NewWorkspace() (secondary.Workspace, error) {
	return newWorkspace(e.logger)
}

// Execute runs one command in a fresh container, feeding optional stdin
// and enforcing the wall-clock timeout. On timeout the process and the
// container are killed and the result carries only the timed-out flag.
// Launch failures come back in the result's error field, never as a fault.
func (e *DockerExecutor) Execute(ctx context.Context, req secondary.ExecRequest) domain.ExecutionResult {
	cmd := exec.Command("docker", e.runArgs(req)...)
	if req.Stdin != "" {
		cmd.Stdin = strings.NewReader(req.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	if err := cmd.Start(); err != nil {
		e.logger.Error("Sandbox launch failed", "instance", req.InstanceName, "error", err)
		e.killInstance(req.InstanceName)
		msg := fmt.Sprintf("Execution failed: %v", err)
		return domain.ExecutionResult{Err: &msg}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-time.After(time.Duration(req.TimeoutMs) * time.Millisecond):
		_ = cmd.Process.Kill()
		e.killInstance(req.InstanceName)
		<-done
		return domain.ExecutionResult{TimeMs: req.TimeoutMs, TimedOut: true}
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		e.killInstance(req.InstanceName)
		<-done
		msg := fmt.Sprintf("Execution failed: %v", ctx.Err())
		return domain.ExecutionResult{Err: &msg}
	case err := <-done:
		elapsed := time.Since(started).Milliseconds()
		out := strings.TrimSpace(stdout.String())
		errTxt := strings.TrimSpace(stderr.String())

		result := domain.ExecutionResult{Output: &out, TimeMs: elapsed}
		if errTxt != "" {
			result.Err = &errTxt
		} else if _, exited := err.(*exec.ExitError); err != nil && !exited {
			// docker itself failed without producing diagnostics
			msg := fmt.Sprintf("Execution failed: %v", err)
			result.Err = &msg
		}
		// a non-zero exit with empty stderr is deliberately not an error:
		// only stderr content counts as a runtime failure
		return result
	}
}

// runArgs builds the docker invocation for one step
func (e *DockerExecutor) runArgs(req secondary.ExecRequest) []string {
	return []string{
		"run",
		"-i",
		"--name", req.InstanceName,
		"--rm",
		"--network", "none",
		"--memory", fmt.Sprintf("%dm", req.MemoryLimitMB),
		"--cpus", e.cfg.CPULimit,
		"--user", e.cfg.SandboxUser,
		"-v", req.WorkDir + ":" + containerWorkdir,
		"-w", containerWorkdir,
		e.cfg.Image,
		"sh", "-c", req.Command,
	}
}

// killInstance force-removes a container so a timed-out or half-launched
// instance cannot keep consuming resources after the call returns
func (e *DockerExecutor) killInstance(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), killTimeout)
	defer cancel()

	if err := exec.CommandContext(ctx, "docker", "kill", name).Run(); err != nil {
		e.logger.Warn("Failed to kill sandbox instance", "instance", name, "error", err)
	}
}
