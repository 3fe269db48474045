package pipeline

import (
	"sync"

	"github.com/Vovarama1992/dub_pipeline/internal/domain"
)

type RunState string

const (
	RunIdle     RunState = "idle"
	RunRunning  RunState = "running"
	RunFinished RunState = "finished"
)

// Snapshot: то, что отдаёт /status
type Snapshot struct {
	State  RunState      `json:"state"`
	Report domain.Report `json:"report"`
}

// Tracker holds the live report; the status server reads it concurrently.
type Tracker struct {
	mu     sync.RWMutex
	state  RunState
	report domain.Report
}

func NewTracker() *Tracker {
	return &Tracker{state: RunIdle}
}

func (t *Tracker) start(rep domain.Report) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = RunRunning
	t.report = copyReport(rep)
}

func (t *Tracker) set(i int, res domain.FileResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i >= 0 && i < len(t.report.Files) {
		t.report.Files[i] = res
	}
}

func (t *Tracker) finish(rep domain.Report) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = RunFinished
	t.report = copyReport(rep)
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Snapshot{State: t.state, Report: copyReport(t.report)}
}

func copyReport(rep domain.Report) domain.Report {
	out := rep
	out.Files = append([]domain.FileResult(nil), rep.Files...)
	return out
}
