package seq

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpLogger", func() {
	var (
		buf *bytes.Buffer
		s   *Sequence
	)

	BeforeEach(func() {
		buf = bytes.NewBuffer(nil)

		var err error
		s, err = New("Seq", 4)
		Expect(err).To(BeNil())

		s.AcceptHook(NewOpLogger(log.New(buf, "", 0)))
	})

	It("should log pushes with the pushed value", func() {
		Expect(s.Push(3)).To(Succeed())

		Expect(buf.String()).To(Equal("Seq, Sequence Push, 3\n"))
	})

	It("should log one line per operation", func() {
		Expect(s.Push(2)).To(Succeed())
		Expect(s.Push(1)).To(Succeed())
		s.Reverse()

		Expect(buf.String()).To(Equal(
			"Seq, Sequence Push, 2\n" +
				"Seq, Sequence Push, 1\n" +
				"Seq, Sequence Reverse\n"))
	})
})
