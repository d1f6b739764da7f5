//go:build unix

package shell

import "syscall"

// replace swaps the current process image for path.
func replace(path string, env []string) error {
	return syscall.Exec(path, []string{path}, env)
}
