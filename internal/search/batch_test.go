package search_test

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gbfsviz/internal/grid"
	"github.com/san-kum/gbfsviz/internal/search"
)

var _ = Describe("RunBatch", func() {
	It("matches sequential runs in input order", func() {
		rng := rand.New(rand.NewSource(7))
		problems := make([]search.Problem, 32)
		for i := range problems {
			g, start, goal := randomGrid(rng, 6, 8)
			problems[i] = search.Problem{Grid: g, Start: start, Goal: goal}
		}

		results, err := search.RunBatch(context.Background(), problems)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(len(problems)))
		for i, p := range problems {
			Expect(results[i]).To(Equal(search.Run(p.Grid, p.Start, p.Goal)))
		}
	})

	It("returns no results for an empty batch", func() {
		results, err := search.RunBatch(context.Background(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(BeEmpty())
	})

	It("reports cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		g := grid.MustParse("S.\n.G")
		_, err := search.RunBatch(ctx, []search.Problem{{Grid: g, Start: c(0, 0), Goal: c(1, 1)}})
		Expect(err).To(MatchError(context.Canceled))
	})
})
