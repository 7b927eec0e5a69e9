package risk

import (
	"sync"
	"time"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

// droughtContextYears is the lookback window for the drought-context boost.
const droughtContextYears = 2

// EventLog is an append-only record of historical drought events. Recording
// is an explicit operation performed by an ingestion step; scoring calls
// only read snapshots, so repeated scoring never changes the log.
type EventLog struct {
	mu       sync.RWMutex
	droughts []model.DroughtEvent
}

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// RecordDrought appends a drought event to the log.
func (l *EventLog) RecordDrought(ev model.DroughtEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.droughts = append(l.droughts, ev)
}

// Snapshot returns a copy of all recorded drought events.
func (l *EventLog) Snapshot() []model.DroughtEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.DroughtEvent, len(l.droughts))
	copy(out, l.droughts)
	return out
}

// droughtWithin reports whether any drought event falls inside the lookback
// window ending at now.
func (l *EventLog) droughtWithin(now time.Time, years int) bool {
	cutoff := now.AddDate(-years, 0, 0)
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, ev := range l.droughts {
		if !ev.Date.Before(cutoff) && !ev.Date.After(now) {
			return true
		}
	}
	return false
}

// historicalDroughtBoost is +10 when a drought was recorded within the last
// two years, else 0.
func (e *Engine) historicalDroughtBoost() float64 {
	if e.history == nil {
		return 0
	}
	if e.history.droughtWithin(e.now().UTC(), droughtContextYears) {
		return 10
	}
	return 0
}
