package tui

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/lexodoro/internal/platform"
	"github.com/akyairhashvil/lexodoro/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

func newLockModel(t *testing.T, opts Options) (Model, *MockWakeLock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	wl := NewMockWakeLock(ctrl)
	wl.EXPECT().Supported().Return(true).AnyTimes()
	opts.WakeLock = wl
	return newTestModel(t, opts), wl
}

func TestWakeLockAcquiredOnStartReleasedOnPause(t *testing.T) {
	m, wl := newLockModel(t, Options{})
	gomock.InOrder(
		wl.EXPECT().Acquire(gomock.Any()).Return(nil),
		wl.EXPECT().Release(gomock.Any()).Return(nil),
	)

	m, cmd := press(t, m, " ")
	m = settle(t, m, cmd)
	if !m.lockHeld {
		t.Fatalf("expected lock held while running")
	}
	m, cmd = press(t, m, " ")
	m = settle(t, m, cmd)
	if m.lockHeld {
		t.Fatalf("expected lock released after pause")
	}
}

func TestWakeLockReleasedByCommands(t *testing.T) {
	for _, k := range []string{"r", "s"} {
		m, wl := newLockModel(t, Options{})
		wl.EXPECT().Acquire(gomock.Any()).Return(nil)
		wl.EXPECT().Release(gomock.Any()).Return(nil)

		m, cmd := press(t, m, " ")
		m = settle(t, m, cmd)
		m, cmd = press(t, m, k)
		m = settle(t, m, cmd)
		if m.lockHeld {
			t.Fatalf("%s: expected lock released", k)
		}
	}
}

func TestWakeLockReleasedOnCompletion(t *testing.T) {
	m, wl := newLockModel(t, Options{Settings: timer.Settings{FocusMinutes: 1, BreakMinutes: 1}})
	wl.EXPECT().Acquire(gomock.Any()).Return(nil)
	wl.EXPECT().Release(gomock.Any()).Return(nil)

	m, cmd := press(t, m, " ")
	m = settle(t, m, cmd)
	m, done := tickToZero(t, m)
	if !m.lockHeld {
		t.Fatalf("lock must stay held at 00:00 until the transition")
	}
	m, cmd = update(t, m, done)
	m = settle(t, m, cmd)
	if m.lockHeld {
		t.Fatalf("expected lock released after completion")
	}
}

func TestWakeLockReacquiredOnFocus(t *testing.T) {
	m, wl := newLockModel(t, Options{})
	wl.EXPECT().Acquire(gomock.Any()).Return(nil).Times(2)

	m, cmd := press(t, m, " ")
	m = settle(t, m, cmd)
	m, cmd = update(t, m, tea.FocusMsg{})
	if cmd == nil {
		t.Fatalf("expected re-acquire on focus")
	}
	m = settle(t, m, cmd)
	if !m.lockHeld {
		t.Fatalf("expected lock held")
	}
}

func TestFocusWhilePausedDoesNothing(t *testing.T) {
	m, _ := newLockModel(t, Options{})
	_, cmd := update(t, m, tea.FocusMsg{})
	if cmd != nil {
		t.Fatalf("paused timer must not request the lock")
	}
}

func TestWakeLockFailureIsSwallowed(t *testing.T) {
	m, wl := newLockModel(t, Options{})
	wl.EXPECT().Acquire(gomock.Any()).Return(errors.New("no session bus"))

	m, cmd := press(t, m, " ")
	m = settle(t, m, cmd)
	if !m.engine.Running() {
		t.Fatalf("lock failure must not affect the timer")
	}
	if m.lockHeld {
		t.Fatalf("failed acquire must not count as held")
	}
	m, _ = tick(t, m)
	if m.engine.Remaining() != 2999 {
		t.Fatalf("expected countdown to continue, got %d", m.engine.Remaining())
	}
}

func TestWakeLockResyncsAfterRace(t *testing.T) {
	m, wl := newLockModel(t, Options{})
	wl.EXPECT().Release(gomock.Any()).Return(nil)

	// The acquire reply lands after the user already paused.
	m, _ = press(t, m, " ", " ")
	m, cmd := update(t, m, wakeLockMsg{held: true})
	if !m.lockHeld || cmd == nil {
		t.Fatalf("expected release to follow a stale acquire")
	}
	m = settle(t, m, cmd)
	if m.lockHeld {
		t.Fatalf("expected lock released")
	}
}

func TestUnsupportedWakeLockSkipped(t *testing.T) {
	m := newTestModel(t, Options{WakeLock: platform.NoopWakeLock{}})
	_, cmd := press(t, m, " ")
	if _, ok := findMsg[wakeLockMsg](collectMsgs(cmd)); ok {
		t.Fatalf("unsupported lock must not be called")
	}
}
