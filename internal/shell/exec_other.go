//go:build !unix

package shell

import (
	"os"
	"os/exec"
)

// replace runs path as a child with the terminal attached and waits for it,
// since this platform has no exec(2).
func replace(path string, env []string) error {
	cmd := exec.Command(path)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
