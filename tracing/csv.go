package tracing

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVTraceWriter stores step records in a CSV file.
type CSVTraceWriter struct {
	path string
	file *os.File

	records    []StepRecord
	bufferSize int
}

// NewCSVTraceWriter creates a new CSVTraceWriter.
func NewCSVTraceWriter(path string) *CSVTraceWriter {
	return &CSVTraceWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the trace CSV file. The file must not already exist.
func (w *CSVTraceWriter) Init() {
	if w.path == "" {
		w.path = "tarmac_trace_" + xid.New().String()
	}

	filename := w.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "Step, Time, Kind, State\n")

	atexit.Register(func() {
		w.Flush()
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Write buffers one record, flushing when the buffer fills up.
func (w *CSVTraceWriter) Write(rec StepRecord) {
	w.records = append(w.records, rec)

	if len(w.records) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes the buffered records into the file.
func (w *CSVTraceWriter) Flush() {
	for _, rec := range w.records {
		fmt.Fprintf(w.file, "%d, %d, %s, %q\n",
			rec.Step, rec.Time, rec.Kind, rec.State)
	}

	w.records = nil
}
