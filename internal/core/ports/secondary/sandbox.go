package secondary

import (
	"context"

	"gitlab.com/shodh-oj.net/internal/domain"
)

// ExecRequest describes one sandboxed compile-or-run step
type ExecRequest struct {
	// InstanceName uniquely names the isolated environment so concurrent
	// submissions on the same host cannot collide
	InstanceName string
	// WorkDir is the host directory bind-mounted into the sandbox,
	// already populated with the source file(s)
	WorkDir string
	// Command is the shell command run inside the sandbox
	Command string
	// Stdin is fed to the process when non-empty
	Stdin         string
	TimeoutMs     int64
	MemoryLimitMB int
}

// Workspace is a scoped temporary directory for one judging pass.
// Remove must be called on every exit path.
type Workspace interface {
	Dir() string
	WriteFile(name, content string) error
	Remove()
}

// Sandbox executes untrusted code inside an isolated, resource-bounded
// environment. Execute never fails past its own boundary: launch and I/O
// problems come back in the result's error field.
type Sandbox interface {
	NewWorkspace() (Workspace, error)
	Execute(ctx context.Context, req ExecRequest) domain.ExecutionResult
}
