package tracing

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CSVTracerBackend", func() {
	var (
		path    string
		backend *CSVTracerBackend
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "trace.csv")
		backend = NewCSVTracerBackend(path)
		backend.Init()
	})

	It("should write a header line", func() {
		content, err := os.ReadFile(path)
		Expect(err).To(BeNil())
		Expect(string(content)).To(HavePrefix(
			"ID, Sequence, Op, Value, Detail, Length, Duration\n"))
	})

	It("should write one line per record on flush", func() {
		backend.Record(OpRecord{
			ID: "1", Sequence: "Seq", Op: "push", Value: 3.5, Length: 1,
		})
		backend.Record(OpRecord{
			ID: "2", Sequence: "Seq", Op: "cut", Detail: "[1 3]", Length: 0,
		})
		backend.Flush()

		content, err := os.ReadFile(path)
		Expect(err).To(BeNil())

		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		Expect(lines).To(HaveLen(3))
		Expect(lines[1]).To(Equal(`1, Seq, push, 3.5, "", 1, 0.0000000000`))
		Expect(lines[2]).To(Equal(`2, Seq, cut, 0, "[1 3]", 0, 0.0000000000`))
	})

	It("should buffer records until flushed", func() {
		backend.Record(OpRecord{ID: "1", Sequence: "Seq", Op: "push"})

		content, err := os.ReadFile(path)
		Expect(err).To(BeNil())

		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		Expect(lines).To(HaveLen(1))
	})
})
