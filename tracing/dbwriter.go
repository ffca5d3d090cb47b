package tracing

import (
	"github.com/tarmaclab/tarmac/datarecording"
)

const stepTableName = "trace_steps"

// DBTraceWriter stores step records through a datarecording backend, so
// traces land in the same database as the rest of the run's output.
type DBTraceWriter struct {
	backend datarecording.DataRecorder
}

// NewDBTraceWriter creates a writer on top of the given recorder. It
// creates the step table eagerly.
func NewDBTraceWriter(backend datarecording.DataRecorder) *DBTraceWriter {
	w := &DBTraceWriter{backend: backend}
	w.backend.CreateTable(stepTableName, StepRecord{})
	return w
}

// Write inserts one record.
func (w *DBTraceWriter) Write(rec StepRecord) {
	w.backend.InsertData(stepTableName, rec)
}

// Flush pushes buffered inserts to the database.
func (w *DBTraceWriter) Flush() {
	w.backend.Flush()
}
