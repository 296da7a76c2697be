package events

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

const (
	TypeAnalysisStart  = "analysis-start"
	TypeAnalysisResult = "analysis-result"
	TypeTranscription  = "transcription"
	TypeArtifact       = "artifact-written"
	TypeBatchFinished  = "batch-finished"
	TypeReport         = "report"
)

// Event represents a single NDJSON record for worker-friendly logs.
type Event struct {
	Type       string                 `json:"type"`
	Timestamp  time.Time              `json:"timestamp"`
	AnalysisID string                 `json:"analysisId,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// Emitter writes NDJSON events to an io.Writer safely across goroutines.
// A nil writer discards every event.
type Emitter struct {
	writer io.Writer
	mu     sync.Mutex
	now    func() time.Time
}

// NewEmitter returns a new NDJSON emitter.
func NewEmitter(w io.Writer) *Emitter {
	if w == nil {
		w = io.Discard
	}
	return &Emitter{writer: w, now: func() time.Time { return time.Now().UTC() }}
}

// Emit serializes the event to JSON and appends a newline.
func (e *Emitter) Emit(evt Event) error {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.writer.Write(append(payload, '\n')); err != nil {
		return err
	}

	return nil
}
