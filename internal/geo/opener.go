package geo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoMapApp is returned when no application can handle geo: URIs.
var ErrNoMapApp = errors.New("no map application available")

// Opener hands a geo: URI to an external map application.
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, uri string) error

// Open calls f(ctx, uri).
func (f OpenerFunc) Open(ctx context.Context, uri string) error {
	return f(ctx, uri)
}

// CommandOpener launches a desktop URI handler such as xdg-open.
type CommandOpener struct {
	command  string
	lookPath func(string) (string, error)
}

// NewCommandOpener returns an opener for the platform's URI handler.
func NewCommandOpener() *CommandOpener {
	command := "xdg-open"
	switch runtime.GOOS {
	case "darwin":
		command = "open"
	case "windows":
		command = "explorer"
	}
	return &CommandOpener{command: command, lookPath: exec.LookPath}
}

// Open runs the handler for uri.
func (o *CommandOpener) Open(ctx context.Context, uri string) error {
	if !strings.HasPrefix(uri, "geo:") {
		return fmt.Errorf("not a geo URI: %q", uri)
	}
	path, err := o.lookPath(o.command)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNoMapApp, o.command, err)
	}
	if err := exec.CommandContext(ctx, path, uri).Run(); err != nil {
		return fmt.Errorf("%w: %s exited: %v", ErrNoMapApp, o.command, err)
	}
	return nil
}
