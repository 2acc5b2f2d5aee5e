package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openCommand builds the command that hands url to the desktop for goos.
func openCommand(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "darwin":
		return exec.Command("open", url), nil
	}
	return nil, fmt.Errorf("%w: cannot open pages on %s", ErrNotImplemented, goos)
}

// OpenURL opens url with the desktop's default handler, usually a browser. It does not wait for it to exit.
func OpenURL(url string) error {
	cmd, err := openCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}
