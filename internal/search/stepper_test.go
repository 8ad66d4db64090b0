package search_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gbfsviz/internal/grid"
	"github.com/san-kum/gbfsviz/internal/search"
)

var _ = Describe("Stepper", func() {
	var g *grid.Grid

	BeforeEach(func() {
		g = grid.MustParse("S.\n#.\n.G")
	})

	It("starts with only the seed in the frontier", func() {
		s := search.NewStepper(g, c(0, 0), c(2, 1))
		snap := s.Snapshot()

		Expect(snap.Done).To(BeFalse())
		Expect(snap.StepIndex).To(Equal(0))
		Expect(snap.Frontier).To(Equal([]grid.Cell{c(0, 0)}))
		Expect(snap.Visited).To(BeEmpty())
		Expect(snap.Path).To(BeNil())
	})

	It("expands one cell per step", func() {
		s := search.NewStepper(g, c(0, 0), c(2, 1))

		snap := s.Step()
		Expect(snap.Current).To(Equal(c(0, 0)))
		Expect(snap.Visited).To(Equal([]grid.Cell{c(0, 0)}))
		Expect(snap.Frontier).To(Equal([]grid.Cell{c(0, 1)}))

		snap = s.Step()
		Expect(snap.Current).To(Equal(c(0, 1)))
		Expect(snap.Frontier).To(Equal([]grid.Cell{c(1, 1)}))

		snap = s.Step()
		Expect(snap.Current).To(Equal(c(1, 1)))
		Expect(snap.Done).To(BeFalse())

		snap = s.Step()
		Expect(snap.Current).To(Equal(c(2, 1)))
		Expect(snap.Done).To(BeTrue())
		Expect(snap.Found).To(BeTrue())
		Expect(snap.StepIndex).To(Equal(4))
		Expect(snap.Path).To(Equal([]grid.Cell{c(0, 0), c(0, 1), c(1, 1), c(2, 1)}))
	})

	It("keeps returning the final snapshot once done", func() {
		s := search.NewStepper(g, c(0, 0), c(0, 0))
		first := s.Step()
		Expect(first.Done).To(BeTrue())
		Expect(first.Path).To(Equal([]grid.Cell{c(0, 0)}))

		Expect(s.Step()).To(Equal(first))
		Expect(s.Done()).To(BeTrue())
	})

	It("lists the frontier in pop order", func() {
		open := grid.MustParse(".....\n.....\n..S..\n.....\n....G")
		s := search.NewStepper(open, c(2, 2), c(4, 4))
		snap := s.Step()

		Expect(snap.Frontier).To(Equal([]grid.Cell{c(2, 3), c(3, 2), c(1, 2), c(2, 1)}))
	})

	It("reports an empty path when the frontier is exhausted", func() {
		sealed := grid.MustParse("S.#.\n..#G")
		s := search.NewStepper(sealed, c(0, 0), c(1, 3))

		var snap search.Snapshot
		for !s.Done() {
			snap = s.Step()
		}
		Expect(snap.Found).To(BeFalse())
		Expect(snap.Path).To(BeEmpty())
		Expect(snap.Frontier).To(BeEmpty())
		Expect(snap.Visited).To(ConsistOf(c(0, 0), c(0, 1), c(1, 0), c(1, 1)))
	})

	DescribeTable("matches Search when run to completion",
		func(maze string, start, goal grid.Cell) {
			mg := grid.MustParse(maze)
			s := search.NewStepper(mg, start, goal)
			for !s.Done() {
				s.Step()
			}

			want := search.Run(mg, start, goal)
			Expect(s.Snapshot().Path).To(Equal(want.Path))
			Expect(s.Result()).To(Equal(want))
		},
		Entry("classic", classicMaze, c(0, 0), c(4, 6)),
		Entry("corridor", "S.\n#.\n.G", c(0, 0), c(2, 1)),
		Entry("sealed", "S.#.\n..#G", c(0, 0), c(1, 3)),
		Entry("start is goal", "S.\n..", c(0, 0), c(0, 0)),
	)
})
