package tracing

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"
)

// CSVTracerBackend is a tracer that stores operation records in a CSV file.
type CSVTracerBackend struct {
	path string
	file *os.File

	records    []OpRecord
	bufferSize int
}

// NewCSVTracerBackend creates a CSVTracerBackend. Init must be called
// before use.
func NewCSVTracerBackend(path string) *CSVTracerBackend {
	return &CSVTracerBackend{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the tracing CSV file. If the file already exists, it will be
// overwritten.
func (t *CSVTracerBackend) Init() {
	file, err := os.Create(t.path)
	if err != nil {
		panic(err)
	}
	t.file = file

	fmt.Fprintf(file, "ID, Sequence, Op, Value, Detail, Length, Duration\n")

	atexit.Register(func() {
		t.Flush()
		err := t.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Record buffers an operation record for writing.
func (t *CSVTracerBackend) Record(rec OpRecord) {
	t.records = append(t.records, rec)
	if len(t.records) >= t.bufferSize {
		t.Flush()
	}
}

// Flush writes the buffered records to the CSV file.
func (t *CSVTracerBackend) Flush() {
	for _, rec := range t.records {
		fmt.Fprintf(t.file, "%s, %s, %s, %v, %q, %d, %.10f\n",
			rec.ID,
			rec.Sequence,
			rec.Op,
			rec.Value,
			rec.Detail,
			rec.Length,
			rec.Duration,
		)
	}

	t.records = nil
}
