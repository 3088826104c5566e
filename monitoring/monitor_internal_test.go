package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/numseq/seq"
)

func muxSetVar(r *http.Request, key, value string) *http.Request {
	return mux.SetURLVars(r, map[string]string{key: value})
}

func mustNewSequence(name string, capacity int) *seq.Sequence {
	s, err := seq.New(name, capacity)
	if err != nil {
		panic(err)
	}

	return s
}

var _ = Describe("Monitor", func() {
	var (
		m *Monitor
	)

	BeforeEach(func() {
		m = NewMonitor()
	})

	It("should register sequences", func() {
		m.RegisterSequence(mustNewSequence("SeqA", 4))
		m.RegisterSequence(mustNewSequence("SeqB", 8))

		Expect(m.sequences).To(HaveLen(2))
	})

	It("should fall back to a random port for privileged ports", func() {
		m.WithPortNumber(80)

		Expect(m.portNumber).To(Equal(0))
	})

	It("should list registered sequence names", func() {
		m.RegisterSequence(mustNewSequence("SeqA", 4))
		m.RegisterSequence(mustNewSequence("SeqB", 8))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/list_sequences", nil)
		m.listSequences(w, r)

		Expect(w.Body.String()).To(Equal(`["SeqA","SeqB"]`))
	})

	It("should sort sequences by percent", func() {
		halfFull := mustNewSequence("Half", 4)
		halfFull.Fill(1)
		halfFull.Cut(0, 2)

		full := mustNewSequence("Full", 2)
		full.Fill(1)

		m.RegisterSequence(halfFull)
		m.RegisterSequence(full)

		sorted := m.sortAndSelectSequences("percent", 0, 0)

		Expect(sorted).To(HaveLen(2))
		Expect(sorted[0].Name()).To(Equal("Full"))
		Expect(sorted[1].Name()).To(Equal("Half"))
	})

	It("should sort sequences by level", func() {
		longer := mustNewSequence("Longer", 8)
		longer.Fill(1)
		longer.Cut(4, 8)

		shorter := mustNewSequence("Shorter", 2)
		shorter.Fill(1)

		m.RegisterSequence(shorter)
		m.RegisterSequence(longer)

		sorted := m.sortAndSelectSequences("level", 0, 0)

		Expect(sorted[0].Name()).To(Equal("Longer"))
		Expect(sorted[1].Name()).To(Equal("Shorter"))
	})

	It("should apply limit and offset", func() {
		for i := 0; i < 4; i++ {
			m.RegisterSequence(
				mustNewSequence(seq.BuildNameWithIndex("", "Seq", i), 4))
		}

		selected := m.sortAndSelectSequences("percent", 2, 1)
		Expect(selected).To(HaveLen(2))

		selected = m.sortAndSelectSequences("percent", 0, 3)
		Expect(selected).To(HaveLen(1))

		selected = m.sortAndSelectSequences("percent", 10, 10)
		Expect(selected).To(BeEmpty())
	})

	It("should report levels as JSON", func() {
		s := mustNewSequence("Seq", 4)
		s.Push(1)
		m.RegisterSequence(s)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/levels", nil)
		m.listLevels(w, r)

		entries := []levelEntry{}
		Expect(json.Unmarshal(w.Body.Bytes(), &entries)).To(Succeed())
		Expect(entries).To(Equal([]levelEntry{
			{Sequence: "Seq", Level: 1, Cap: 4},
		}))
	})

	It("should reject an unknown sort method", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/levels?sort=height", nil)
		m.listLevels(w, r)

		Expect(w.Code).To(Equal(400))
	})

	It("should describe a registered sequence", func() {
		s := mustNewSequence("Seq", 4)
		s.Push(1)
		m.RegisterSequence(s)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/sequence/Seq/describe", nil)
		r = muxSetVar(r, "name", "Seq")
		m.describeSequence(w, r)

		Expect(w.Body.String()).To(ContainSubstring("capacity: 4"))
	})

	It("should 404 on an unknown sequence", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/sequence/Missing/describe", nil)
		r = muxSetVar(r, "name", "Missing")
		m.describeSequence(w, r)

		Expect(w.Code).To(Equal(404))
	})
})
