package tracing

import "github.com/sarchlab/numseq/recording"

// OpTraceTable is the name of the table that stores operation records.
const OpTraceTable = "op_trace"

// DBTracer stores operation records through a recording backend, so that
// the records can live in any database the backend supports.
type DBTracer struct {
	backend recording.DataRecorder
}

// NewDBTracer creates a DBTracer and creates the trace table on the
// backend.
func NewDBTracer(backend recording.DataRecorder) *DBTracer {
	t := &DBTracer{backend: backend}
	t.backend.CreateTable(OpTraceTable, OpRecord{})

	return t
}

// Record inserts an operation record into the trace table.
func (t *DBTracer) Record(rec OpRecord) {
	t.backend.InsertData(OpTraceTable, rec)
}

// Flush forces the backend to write all buffered records.
func (t *DBTracer) Flush() {
	t.backend.Flush()
}
