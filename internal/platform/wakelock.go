// Package platform holds the optional capabilities the timer uses but does
// not depend on for correctness: keeping the display awake and switching
// the terminal into a full-screen view.
package platform

import (
	"context"
	"errors"
)

var ErrUnsupported = errors.New("capability not supported")

// WakeLock keeps the display from sleeping while held. Implementations are
// safe for concurrent use; Acquire while held and Release while not held
// are no-ops.
//
//go:generate mockgen -source=wakelock.go -destination=../tui/mock_wakelock_test.go -package=tui
type WakeLock interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
	Supported() bool
}

// NoopWakeLock is used where no screensaver service is reachable.
type NoopWakeLock struct{}

func (NoopWakeLock) Acquire(context.Context) error { return ErrUnsupported }
func (NoopWakeLock) Release(context.Context) error { return nil }
func (NoopWakeLock) Supported() bool { return false }
