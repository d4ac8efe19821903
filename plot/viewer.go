package plot

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Viewer displays a rendered chart file. Show blocks until the viewer
// returns.
type Viewer interface {
	Show(path string) error
}

// NoViewer leaves the chart on disk.
type NoViewer struct{}

func (NoViewer) Show(string) error { return nil }

// CommandViewer runs an external program with the chart path as its last
// argument and waits for it to exit. There is no way to cancel the wait.
type CommandViewer struct {
	Name string
	Args []string
}

func (v CommandViewer) Show(path string) error {
	args := append(append([]string{}, v.Args...), path)
	cmd := exec.Command(v.Name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", v.Name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// NewViewer maps a configured viewer name to a Viewer. "auto" picks the
// platform opener, "none" or "" disables display, anything else is run as a
// command line.
func NewViewer(spec string) Viewer {
	switch spec {
	case "", "none":
		return NoViewer{}
	case "auto":
		return platformViewer(runtime.GOOS)
	}
	fields := strings.Fields(spec)
	return CommandViewer{Name: fields[0], Args: fields[1:]}
}

// platformViewer returns the desktop opener for goos. open -W and start /wait
// block until the window closes; xdg-open usually returns once the file is
// handed to the desktop's viewer.
func platformViewer(goos string) Viewer {
	switch goos {
	case "darwin":
		return CommandViewer{Name: "open", Args: []string{"-W"}}
	case "windows":
		return CommandViewer{Name: "cmd", Args: []string{"/c", "start", "/wait", ""}}
	}
	return CommandViewer{Name: "xdg-open"}
}
