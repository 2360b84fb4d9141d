// Package commands implements the CLI actions. Each action is a thin
// presentation layer over the screen controllers: it checks the route
// guard, drives the controller, and renders the resulting snapshot.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/zencareer/zenadmin/internal/module/notify"
	sessionapp "github.com/zencareer/zenadmin/internal/module/session/application"
	"github.com/zencareer/zenadmin/internal/platform/config"
	"github.com/zencareer/zenadmin/internal/platform/container"
	"github.com/zencareer/zenadmin/internal/platform/logger"
)

// AppContext holds the shared pieces every command needs.
type AppContext struct {
	Config    *config.Config
	Container *container.Container

	stopToasts func()
}

// NewAppContext loads configuration, initializes the logger, wires the
// container, and attaches the toast printer to the notification
// channel.
func NewAppContext(envFile, configFile string) (*AppContext, error) {
	cfg, err := config.Load(envFile, configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})

	cont, err := container.New(appLogger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	stop := cont.Notifier.Subscribe(printToast)

	return &AppContext{
		Config:     cfg,
		Container:  cont,
		stopToasts: stop,
	}, nil
}

// Close releases the resources held by the AppContext.
func (ac *AppContext) Close() {
	if ac.stopToasts != nil {
		ac.stopToasts()
	}
	if ac.Container != nil {
		ac.Container.Close()
	}
}

// Logger returns the AppContext's logger.
func (ac *AppContext) Logger() *slog.Logger {
	if ac.Container != nil {
		return ac.Container.Logger
	}
	return slog.Default()
}

// requireSession runs the route guard for a protected screen. When the
// guard redirects, the command stops before any API call is made.
func requireSession(ac *AppContext, path string) error {
	result := ac.Container.Guard.Check(path)
	switch result.Decision {
	case sessionapp.DecisionAllow:
		return nil
	case sessionapp.DecisionWait:
		return fmt.Errorf("session state is still loading, try again")
	default:
		return fmt.Errorf("not signed in: redirecting to %s (run 'zenadmin login' first)", result.RedirectTo)
	}
}

var (
	successToast = color.New(color.FgGreen, color.Bold)
	errorToast   = color.New(color.FgRed, color.Bold)
)

// printToast renders a notification to stderr the moment it is queued.
func printToast(n notify.Notification) {
	switch n.Kind {
	case notify.KindError:
		errorToast.Fprintf(os.Stderr, "✗ %s\n", n.Message)
	default:
		successToast.Fprintf(os.Stderr, "✓ %s\n", n.Message)
	}
}
