package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeRecorder struct {
	tables  []string
	entries map[string][]any
	flushed int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{entries: make(map[string][]any)}
}

func (r *fakeRecorder) CreateTable(tableName string, _ any) {
	r.tables = append(r.tables, tableName)
}

func (r *fakeRecorder) InsertData(tableName string, entry any) {
	r.entries[tableName] = append(r.entries[tableName], entry)
}

func (r *fakeRecorder) ListTables() []string {
	return r.tables
}

func (r *fakeRecorder) Flush() {
	r.flushed++
}

var _ = Describe("DBTracer", func() {
	var (
		backend *fakeRecorder
		tracer  *DBTracer
	)

	BeforeEach(func() {
		backend = newFakeRecorder()
		tracer = NewDBTracer(backend)
	})

	It("should create the trace table", func() {
		Expect(backend.tables).To(Equal([]string{OpTraceTable}))
	})

	It("should insert records into the trace table", func() {
		rec := OpRecord{ID: "1", Sequence: "Seq", Op: "push", Value: 3}

		tracer.Record(rec)

		Expect(backend.entries[OpTraceTable]).To(Equal([]any{rec}))
	})

	It("should flush through the backend", func() {
		tracer.Flush()

		Expect(backend.flushed).To(Equal(1))
	})
})
