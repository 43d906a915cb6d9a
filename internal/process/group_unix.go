//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// Configure places cmd in a new process group.
// Call before cmd.Start.
func Configure(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// KillOnCancel makes context cancellation kill the whole group of cmd
// instead of the shell alone. cmd must come from exec.CommandContext and
// be configured with Configure.
func KillOnCancel(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillGroup(cmd.Process.Pid)
		return nil
	}
}

// KillGroup sends SIGKILL to the process group led by pid.
func KillGroup(pid int) {
	// Best effort: the group may already be gone.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
