// Package report keeps the in-memory interval history of a session and
// renders it as a PDF summary.
package report

import (
	"sync"
	"time"

	"github.com/akyairhashvil/lexodoro/internal/timer"
	"github.com/google/uuid"
)

// Outcome is how an interval ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeSkipped   Outcome = "skipped"
)

// Record is one finished interval. Seconds is the configured length for a
// completed interval and the elapsed part for a skipped one.
type Record struct {
	ID      uuid.UUID
	Mode    timer.Mode
	Seconds int
	EndedAt time.Time
	Outcome Outcome
}

// Log is the interval history of one run of the program.
type Log struct {
	SessionID uuid.UUID
	StartedAt time.Time

	mu      sync.Mutex
	now     func() time.Time
	records []Record
}

func NewLog(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{SessionID: uuid.New(), StartedAt: now(), now: now}
}

func (l *Log) Add(mode timer.Mode, seconds int, outcome Outcome) Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	r := Record{ID: uuid.New(), Mode: mode, Seconds: seconds, EndedAt: l.now(), Outcome: outcome}
	l.records = append(l.records, r)
	return r
}

func (l *Log) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Record(nil), l.records...)
}

// Summary is everything the PDF report prints.
type Summary struct {
	SessionID       uuid.UUID
	StartedAt       time.Time
	GeneratedAt     time.Time
	CompletedCycles int
	FocusMinutes    int
	FocusDuration   int
	BreakDuration   int
	Records         []Record
}

// Summary combines the history with the engine statistics.
func (l *Log) Summary(s timer.State) Summary {
	return Summary{
		SessionID:       l.SessionID,
		StartedAt:       l.StartedAt,
		GeneratedAt:     l.now(),
		CompletedCycles: s.CompletedCycles,
		FocusMinutes:    s.FocusMinutes(),
		FocusDuration:   s.FocusDuration,
		BreakDuration:   s.BreakDuration,
		Records:         l.Records(),
	}
}
