// Package notify sends fire-and-forget desktop notifications.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

// Notifier reports per-book progress to the user. Implementations must
// not fail the run: errors are returned for logging only.
type Notifier interface {
	Notify(summary, body string) error
}

// Nop discards notifications. Used on headless hosts.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }

// Desktop sends notifications over the session bus via
// org.freedesktop.Notifications, the same surface notify-send uses.
type Desktop struct {
	appName string
	log     *slog.Logger
}

var _ Notifier = (*Desktop)(nil)

// NewDesktop creates a desktop notifier.
func NewDesktop(appName string, log *slog.Logger) *Desktop {
	return &Desktop{
		appName: appName,
		log:     log.With("component", "notify"),
	}
}

// Notify shows a transient desktop notification. A run sends a handful
// of notifications at most, so the session bus connection is opened per
// call.
func (d *Desktop) Notify(summary, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		d.appName,
		uint32(0), // replaces id
		"",        // icon
		summary,
		body,
		[]string{},                // actions
		map[string]dbus.Variant{}, // hints
		int32(-1),                 // expire timeout, server default
	)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}

	d.log.Debug("notification sent", "summary", summary)
	return nil
}
