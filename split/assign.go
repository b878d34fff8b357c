package split

import (
	"math/rand"
	"slices"
)

// Group is the subset a partition file ends up in.
type Group int

const (
	Train Group = iota
	Validation
	Test
)

func (g Group) String() string {
	switch g {
	case Train:
		return "train"
	case Validation:
		return "validation"
	case Test:
		return "test"
	default:
		return "unknown"
	}
}

// Assignment is the outcome of shuffling a set of partition indices and
// cutting it into test, validation and train groups.
type Assignment struct {
	// Indices holds every index, sorted ascending.
	Indices []int
	// Order is the shuffled permutation the groups were cut from.
	Order []int

	// TestSize and ValSize are the requested group sizes, floor(total*ratio).
	// They can exceed what was actually assigned when the ratios add up to
	// more than one.
	TestSize int
	ValSize  int

	Test       []int
	Validation []int
	Train      []int

	groups map[int]Group
}

// GroupOf returns the group index was assigned to
func (a *Assignment) GroupOf(index int) (Group, bool) {
	group, ok := a.groups[index]
	return group, ok
}

// Assign shuffles indices with a generator seeded by seed and assigns the
// first floor(total*testRatio) of them to the test group, the next
// floor(total*valRatio) to the validation group and the rest to training.
// The input is sorted before shuffling, so the result only depends on the
// set of indices, the ratios and the seed.
func Assign(indices []int, valRatio, testRatio float64, seed int64) *Assignment {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	total := len(sorted)

	a := &Assignment{
		Indices:  sorted,
		TestSize: int(float64(total) * testRatio),
		ValSize:  int(float64(total) * valRatio),
		groups:   make(map[int]Group, total),
	}

	randGen := rand.New(rand.NewSource(seed))
	a.Order = slices.Clone(sorted)
	randGen.Shuffle(len(a.Order), func(i, j int) {
		a.Order[i], a.Order[j] = a.Order[j], a.Order[i]
	})

	testEnd := clamp(a.TestSize, 0, total)
	valEnd := clamp(testEnd+a.ValSize, testEnd, total)

	a.Test = sortedCopy(a.Order[:testEnd])
	a.Validation = sortedCopy(a.Order[testEnd:valEnd])
	a.Train = sortedCopy(a.Order[valEnd:])

	for _, index := range a.Test {
		a.groups[index] = Test
	}
	for _, index := range a.Validation {
		a.groups[index] = Validation
	}
	for _, index := range a.Train {
		a.groups[index] = Train
	}
	return a
}

func sortedCopy(s []int) []int {
	c := slices.Clone(s)
	if c == nil {
		c = []int{}
	}
	slices.Sort(c)
	return c
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
