package platform

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	screenSaverDest      = "org.freedesktop.ScreenSaver"
	screenSaverPath      = dbus.ObjectPath("/org/freedesktop/ScreenSaver")
	screenSaverInhibit   = "org.freedesktop.ScreenSaver.Inhibit"
	screenSaverUnInhibit = "org.freedesktop.ScreenSaver.UnInhibit"
)

// busConn is the part of *dbus.Conn the wake lock uses.
type busConn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

// DBusWakeLock inhibits the freedesktop screensaver over the session bus.
// The bus connection is opened lazily on the first Acquire.
type DBusWakeLock struct {
	app    string
	reason string

	mu          sync.Mutex
	connect     func() (busConn, error)
	conn        busConn
	cookie      uint32
	held        bool
	unsupported bool
}

func NewDBusWakeLock(app, reason string) *DBusWakeLock {
	return &DBusWakeLock{
		app:    app,
		reason: reason,
		connect: func() (busConn, error) {
			return dbus.ConnectSessionBus()
		},
	}
}

func (w *DBusWakeLock) Supported() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.unsupported
}

func (w *DBusWakeLock) Acquire(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.held {
		return nil
	}
	if w.unsupported {
		return ErrUnsupported
	}
	if w.conn == nil {
		conn, err := w.connect()
		if err != nil {
			w.unsupported = true
			return fmt.Errorf("%w: session bus: %v", ErrUnsupported, err)
		}
		w.conn = conn
	}
	var cookie uint32
	call := w.conn.Object(screenSaverDest, screenSaverPath).CallWithContext(ctx, screenSaverInhibit, 0, w.app, w.reason)
	if err := call.Store(&cookie); err != nil {
		return fmt.Errorf("inhibit screensaver: %w", err)
	}
	w.cookie = cookie
	w.held = true
	return nil
}

func (w *DBusWakeLock) Release(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.held || w.conn == nil {
		return nil
	}
	call := w.conn.Object(screenSaverDest, screenSaverPath).CallWithContext(ctx, screenSaverUnInhibit, 0, w.cookie)
	w.held = false
	w.cookie = 0
	if call.Err != nil {
		return fmt.Errorf("uninhibit screensaver: %w", call.Err)
	}
	return nil
}

// Close releases the lock and drops the bus connection.
func (w *DBusWakeLock) Close(ctx context.Context) error {
	err := w.Release(ctx)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn != nil {
		if cerr := w.conn.Close(); err == nil {
			err = cerr
		}
		w.conn = nil
	}
	return err
}
