package generate

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/trace"
)

var _ = Describe("Generator", func() {
	var g *Generator

	BeforeEach(func() {
		g = New(42)
	})

	allDefault := func(arr trace.Array) {
		for i, e := range arr {
			Expect(e.State).To(Equal(trace.Default))
			Expect(e.ID).To(Equal(i))
		}
	}

	Describe("Uniform", func() {
		It("draws values inside the closed range", func() {
			arr := g.Uniform(200, 5, 100)
			Expect(arr).To(HaveLen(200))
			for _, v := range arr.Values() {
				Expect(v).To(BeNumerically(">=", 5))
				Expect(v).To(BeNumerically("<=", 100))
			}
			allDefault(arr)
		})

		It("is reproducible for a fixed seed", func() {
			Expect(New(7).Uniform(20, 1, 9)).To(Equal(New(7).Uniform(20, 1, 9)))
		})
	})

	Describe("NearlySorted", func() {
		It("keeps the i+5 multiset", func() {
			arr := g.NearlySorted(30, 5)
			Expect(arr.Values()).To(ConsistOf(func() []any {
				var want []any
				for i := range 30 {
					want = append(want, i+5)
				}
				return want
			}()...))
			allDefault(arr)
		})

		It("is sorted with no swaps", func() {
			Expect(g.NearlySorted(10, 0).IsSorted()).To(BeTrue())
		})

		It("handles empty input", func() {
			Expect(g.NearlySorted(0, 5)).To(BeEmpty())
		})
	})

	Describe("Reversed", func() {
		It("is strictly descending from n+5", func() {
			Expect(g.Reversed(4).Values()).To(Equal([]int{9, 8, 7, 6}))
		})

		It("is what the reversed kind generates", func() {
			arr, err := g.Generate(Reversed, 3, Params{})
			Expect(err).NotTo(HaveOccurred())
			Expect(arr.Values()).To(Equal([]int{8, 7, 6}))
		})
	})

	Describe("FewUnique", func() {
		It("draws from evenly spaced values", func() {
			arr := g.FewUnique(100, 5)
			for _, v := range arr.Values() {
				Expect(v).To(BeElementOf(20, 40, 60, 80, 100))
			}
		})
	})

	Describe("Generate", func() {
		It("dispatches every kind", func() {
			for _, k := range Kinds {
				arr, err := g.Generate(k, 12, Params{Values: []int{3, 1, 2}})
				Expect(err).NotTo(HaveOccurred())
				Expect(arr).NotTo(BeEmpty())
			}
		})

		It("uses custom values when present", func() {
			arr, err := g.Generate(Custom, 50, Params{Values: []int{3, 1, 2}})
			Expect(err).NotTo(HaveOccurred())
			Expect(arr.Values()).To(Equal([]int{3, 1, 2}))
		})

		It("falls back to random for an empty custom list", func() {
			arr, err := g.Generate(Custom, 8, Params{})
			Expect(err).NotTo(HaveOccurred())
			Expect(arr).To(HaveLen(8))
		})

		It("rejects unknown kinds", func() {
			_, err := g.Generate("sawtooth", 5, Params{})
			Expect(errors.Is(err, ErrUnknownKind)).To(BeTrue())
		})

		It("honors a custom range", func() {
			arr, err := g.Generate(Random, 40, Params{Min: 1, Max: 3})
			Expect(err).NotTo(HaveOccurred())
			for _, v := range arr.Values() {
				Expect(v).To(BeElementOf(1, 2, 3))
			}
		})
	})
})

var _ = DescribeTable("ParseLiteral",
	func(in string, want []int) {
		Expect(ParseLiteral(in)).To(Equal(want))
	},
	Entry("plain list", "5, 3, 8, 1", []int{5, 3, 8, 1}),
	Entry("drops junk", "5, x, 8", []int{5, 8}),
	Entry("leading integer", "12px, 3.7", []int{12, 3}),
	Entry("negative", "-4, 2", []int{-4, 2}),
	Entry("nothing numeric", "a, b", nil),
	Entry("empty", "", nil),
)

var _ = Describe("ParseKind", func() {
	It("accepts every listed kind", func() {
		for _, k := range Kinds {
			got, err := ParseKind(string(k))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(k))
		}
	})

	It("rejects others", func() {
		_, err := ParseKind("zigzag")
		Expect(err).To(MatchError(ErrUnknownKind))
	})
})
