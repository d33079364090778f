package reader_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/skim/internal/reader"
)

var _ = Describe("Engine", func() {
	var e *reader.Engine

	BeforeEach(func() {
		e = reader.New(reader.DefaultPace)
	})

	Describe("Load", func() {
		It("starts paused at the first word", func() {
			Expect(e.Load([]string{"a", "b", "c"})).To(Succeed())
			snap := e.Snapshot()
			Expect(snap.Status()).To(Equal("Paused"))
			Expect(snap.Cursor).To(Equal(0))
			Expect(snap.Word).To(Equal("a"))
		})

		It("reports an empty sequence as ErrNoTokens", func() {
			Expect(e.Load(nil)).To(MatchError(reader.ErrNoTokens))
			Expect(e.Snapshot().Status()).To(Equal("Empty"))
		})

		It("keeps the previous sequence when an empty load fails", func() {
			Expect(e.Load([]string{"a", "b"})).To(Succeed())
			e.TogglePlay()
			Expect(e.Load([]string{})).To(MatchError(reader.ErrNoTokens))
			snap := e.Snapshot()
			Expect(snap.Total).To(Equal(2))
			Expect(snap.Running).To(BeFalse(), "a failed load must still stop playback")
		})

		It("rewinds and stops when replacing a running session", func() {
			Expect(e.Load([]string{"a", "b", "c"})).To(Succeed())
			e.TogglePlay()
			e.Advance()
			Expect(e.Load([]string{"x", "y"})).To(Succeed())
			snap := e.Snapshot()
			Expect(snap.Cursor).To(Equal(0))
			Expect(snap.Running).To(BeFalse())
			Expect(snap.Word).To(Equal("x"))
		})
	})

	Describe("TogglePlay and Advance", func() {
		BeforeEach(func() {
			Expect(e.Load([]string{"a", "b", "c"})).To(Succeed())
		})

		It("never enters Playing with nothing loaded", func() {
			empty := reader.New(reader.DefaultPace)
			Expect(empty.TogglePlay()).To(BeFalse())
			Expect(empty.Running()).To(BeFalse())
		})

		It("walks the cursor and stops at the last word", func() {
			Expect(e.TogglePlay()).To(BeTrue())
			e.Advance()
			e.Advance()
			snap := e.Snapshot()
			Expect(snap.Cursor).To(Equal(2))
			Expect(snap.Running).To(BeTrue())

			// End of text is terminal for the pass, not an error.
			e.Advance()
			snap = e.Snapshot()
			Expect(snap.Cursor).To(Equal(2))
			Expect(snap.Running).To(BeFalse())
		})

		It("restarts from the top when toggled at the end", func() {
			e.Seek(10)
			Expect(e.Snapshot().Cursor).To(Equal(2))
			Expect(e.TogglePlay()).To(BeTrue())
			Expect(e.Snapshot().Cursor).To(Equal(0))
		})

		It("pauses without moving the cursor", func() {
			e.TogglePlay()
			e.Advance()
			Expect(e.TogglePlay()).To(BeFalse())
			Expect(e.Snapshot().Cursor).To(Equal(1))
		})
	})

	Describe("Seek", func() {
		It("clamps into the loaded sequence", func() {
			tokens := make([]string, 12)
			for i := range tokens {
				tokens[i] = "w"
			}
			Expect(e.Load(tokens)).To(Succeed())
			e.Seek(3)
			Expect(e.Snapshot().Cursor).To(Equal(3))
			e.Seek(-10)
			Expect(e.Snapshot().Cursor).To(Equal(0), "never negative")
			e.Seek(100)
			Expect(e.Snapshot().Cursor).To(Equal(11))
		})

		It("does not start or stop playback", func() {
			Expect(e.Load([]string{"a", "b", "c"})).To(Succeed())
			e.TogglePlay()
			e.Seek(1)
			Expect(e.Running()).To(BeTrue())
		})
	})

	Describe("SetPace", func() {
		It("clamps to the supported interval", func() {
			e.SetPace(2000)
			Expect(e.Pace()).To(Equal(1000))
			e.SetPace(0)
			Expect(e.Pace()).To(Equal(50))
		})

		It("derives the timer period from the pace", func() {
			e.SetPace(300)
			Expect(e.Interval()).To(Equal(200 * time.Millisecond))
			e.SetPace(50)
			Expect(e.Interval()).To(Equal(1200 * time.Millisecond))
		})
	})

	Describe("Snapshot", func() {
		It("reports progress as a fraction of the last index", func() {
			Expect(e.Load([]string{"a", "b", "c"})).To(Succeed())
			e.Advance()
			Expect(e.Snapshot().Progress).To(BeNumerically("~", 0.5))
			Expect(e.Snapshot().ProgressLabel()).To(Equal("2/3 (50%)"))
		})

		It("reports zero progress with fewer than two tokens", func() {
			Expect(e.Load([]string{"only"})).To(Succeed())
			Expect(e.Snapshot().Progress).To(BeZero())
		})

		It("estimates remaining time from the pace", func() {
			tokens := make([]string, 101)
			for i := range tokens {
				tokens[i] = "w"
			}
			Expect(e.Load(tokens)).To(Succeed())
			e.SetPace(300)
			snap := e.Snapshot()
			Expect(snap.WordsLeft).To(Equal(100))
			Expect(snap.Remaining).To(Equal(20 * time.Second))
			Expect(reader.FormatRemaining(snap.Remaining)).To(Equal("0:20"))
		})
	})
})

var _ = DescribeTable("FormatRemaining",
	func(d time.Duration, want string) {
		Expect(reader.FormatRemaining(d)).To(Equal(want))
	},
	Entry("zero", time.Duration(0), "0:00"),
	Entry("seconds only", 20*time.Second, "0:20"),
	Entry("minute boundary", 60*time.Second, "1:00"),
	Entry("padded seconds", 65*time.Second, "1:05"),
	Entry("rounds sub-second", 19500*time.Millisecond, "0:20"),
	Entry("long text", 12*time.Minute+34*time.Second, "12:34"),
)
