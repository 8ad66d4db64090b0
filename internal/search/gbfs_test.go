package search_test

import (
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gbfsviz/internal/grid"
	"github.com/san-kum/gbfsviz/internal/search"
)

func c(row, col int) grid.Cell { return grid.Cell{Row: row, Col: col} }

const classicMaze = `
S..#...
##.#.#.
.....#.
.###...
...#.#G`

var _ = Describe("Manhattan", func() {
	It("sums the absolute row and column deltas", func() {
		Expect(search.Manhattan(c(0, 0), c(4, 6))).To(Equal(10))
		Expect(search.Manhattan(c(4, 6), c(0, 0))).To(Equal(10))
		Expect(search.Manhattan(c(2, 3), c(2, 3))).To(Equal(0))
		Expect(search.Manhattan(c(-1, 5), c(1, 2))).To(Equal(5))
	})
})

var _ = Describe("Search", func() {
	It("routes around the wall in the three-row corridor", func() {
		g := grid.MustParse("S.\n#.\n.G")
		Expect(search.Search(g, c(0, 0), c(2, 1))).To(Equal([]grid.Cell{
			c(0, 0), c(0, 1), c(1, 1), c(2, 1),
		}))
	})

	It("solves the classic maze", func() {
		g := grid.MustParse(classicMaze)
		Expect(search.Search(g, c(0, 0), c(4, 6))).To(Equal([]grid.Cell{
			c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2), c(2, 3),
			c(2, 4), c(3, 4), c(3, 5), c(3, 6), c(4, 6),
		}))
	})

	It("returns the single start cell when start equals goal", func() {
		g := grid.MustParse("S.\n..")
		Expect(search.Search(g, c(1, 1), c(1, 1))).To(Equal([]grid.Cell{c(1, 1)}))
	})

	It("returns an empty sequence when the goal is enclosed", func() {
		g := grid.MustParse(`
S....
...#.
..#G#
...#.
.....`)
		path := search.Search(g, c(0, 0), c(2, 3))
		Expect(path).NotTo(BeNil())
		Expect(path).To(BeEmpty())
	})

	It("returns an empty sequence when the goal is a wall", func() {
		g := grid.MustParse("S.\n.#")
		Expect(search.Search(g, c(0, 0), c(1, 1))).To(BeEmpty())
	})

	It("still expands from a start cell marked as a wall", func() {
		g := grid.MustParse("#.\n#.\n.G")
		Expect(search.Search(g, c(0, 0), c(2, 1))).To(Equal([]grid.Cell{
			c(0, 0), c(0, 1), c(1, 1), c(2, 1),
		}))
	})

	It("breaks priority ties by row then column", func() {
		g := grid.MustParse(`
S....
.....
.....
.....
....G`)
		Expect(search.Search(g, c(0, 0), c(4, 4))).To(Equal([]grid.Cell{
			c(0, 0), c(0, 1), c(0, 2), c(0, 3), c(0, 4),
			c(1, 4), c(2, 4), c(3, 4), c(4, 4),
		}))
	})

	It("keeps the first predecessor and so may return a longer route", func() {
		g := grid.MustParse(`
##.....
##...#.
S#..#.G
.......
.....#.`)
		path := search.Search(g, c(2, 0), c(2, 6))

		Expect(path).To(HaveLen(13))
		Expect(path[0]).To(Equal(c(2, 0)))
		Expect(path[len(path)-1]).To(Equal(c(2, 6)))
		Expect(shortestLen(g, c(2, 0), c(2, 6))).To(Equal(9))
	})

	It("is deterministic across repeated calls", func() {
		g := grid.MustParse(classicMaze)
		first := search.Search(g, c(0, 0), c(4, 6))
		for i := 0; i < 20; i++ {
			Expect(search.Search(g, c(0, 0), c(4, 6))).To(Equal(first))
		}
	})

	Context("on random grids", func() {
		var rng *rand.Rand

		BeforeEach(func() {
			rng = rand.New(rand.NewSource(42))
		})

		It("returns well-formed routes whenever the goal is reachable", func() {
			for i := 0; i < 300; i++ {
				g, start, goal := randomGrid(rng, 2+rng.Intn(7), 2+rng.Intn(7))
				path := search.Search(g, start, goal)

				if shortestLen(g, start, goal) == 0 {
					Expect(path).To(BeEmpty(), "grid:\n%s", g)
					continue
				}
				Expect(path).NotTo(BeEmpty(), "grid:\n%s", g)
				Expect(path[0]).To(Equal(start))
				Expect(path[len(path)-1]).To(Equal(goal))
				for j := 1; j < len(path); j++ {
					Expect(search.Manhattan(path[j-1], path[j])).To(Equal(1))
					Expect(g.IsWall(path[j])).To(BeFalse())
				}
				Expect(len(path)).To(BeNumerically(">=", shortestLen(g, start, goal)))
			}
		})

		It("finds a route on every wall-free grid", func() {
			for i := 0; i < 50; i++ {
				rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
				g := grid.MustParse(strings.Repeat(strings.Repeat(".", cols)+"\n", rows))
				start := c(rng.Intn(rows), rng.Intn(cols))
				goal := c(rng.Intn(rows), rng.Intn(cols))

				path := search.Search(g, start, goal)
				Expect(path).NotTo(BeEmpty())
				Expect(path[0]).To(Equal(start))
				Expect(path[len(path)-1]).To(Equal(goal))
			}
		})
	})
})

var _ = Describe("Run", func() {
	It("reports expansion statistics for the classic maze", func() {
		g := grid.MustParse(classicMaze)
		res := search.Run(g, c(0, 0), c(4, 6))

		Expect(res.Found).To(BeTrue())
		Expect(res.Path).To(Equal(search.Search(g, c(0, 0), c(4, 6))))
		Expect(res.Expanded).To(HaveLen(10))
		Expect(res.Expanded[0]).To(Equal(c(0, 0)))
		Expect(res.Expanded).NotTo(ContainElement(c(4, 6)))
		Expect(res.Discovered).To(Equal(15))
		Expect(res.MaxFrontier).To(Equal(5))
		Expect(res.Steps).To(Equal(11))
	})

	It("expands every reachable cell exactly once when the goal is enclosed", func() {
		g := grid.MustParse(`
S....
...#.
..#G#
...#.
.....`)
		res := search.Run(g, c(0, 0), c(2, 3))

		Expect(res.Found).To(BeFalse())
		Expect(res.Path).To(BeEmpty())
		Expect(res.Expanded).To(HaveLen(20))
		seen := map[grid.Cell]bool{}
		for _, cell := range res.Expanded {
			Expect(seen[cell]).To(BeFalse(), "cell %v expanded twice", cell)
			seen[cell] = true
		}
		Expect(res.Discovered).To(Equal(20))
		Expect(res.Steps).To(Equal(20))
	})
})

// shortestLen returns the number of cells on a shortest route, or 0 when
// goal is unreachable.
func shortestLen(g *grid.Grid, start, goal grid.Cell) int {
	dist := map[grid.Cell]int{start: 1}
	queue := []grid.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, n := range g.Neighbors(cur) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return 0
}

func randomGrid(rng *rand.Rand, rows, cols int) (*grid.Grid, grid.Cell, grid.Cell) {
	cells := make([][]grid.Marker, rows)
	for i := range cells {
		cells[i] = make([]grid.Marker, cols)
		for j := range cells[i] {
			cells[i][j] = grid.Free
			if rng.Float64() < 0.3 {
				cells[i][j] = grid.Wall
			}
		}
	}
	start := c(rng.Intn(rows), rng.Intn(cols))
	goal := c(rng.Intn(rows), rng.Intn(cols))
	cells[start.Row][start.Col] = grid.Start
	cells[goal.Row][goal.Col] = grid.Goal
	g, err := grid.New(cells)
	Expect(err).NotTo(HaveOccurred())
	return g, start, goal
}
