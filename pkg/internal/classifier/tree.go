package classifier

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
)

// TreeNode is one node of a CART decision tree. Leaf nodes carry a class
// probability distribution in Probs; internal nodes carry a feature split.
// Fields are exported for gob serialization.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
	Probs     []float64
}

// predict walks the tree to the leaf distribution for one standardized row.
func (n *TreeNode) predict(row []float64) []float64 {
	node := n
	for node.Probs == nil {
		if row[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Probs
}

// treeBuilder grows one randomized CART tree on a bootstrap sample,
// selecting √K candidate features per split and maximizing Gini gain.
type treeBuilder struct {
	cfg         ForestConfig
	rng         *rand.Rand
	features    [][]float64
	labels      []int
	numClasses  int
	numFeatures int
	mtry        int
	total       int
	importances []float64
}

func newTreeBuilder(cfg ForestConfig, rng *rand.Rand, features [][]float64, labels []int, numClasses int) *treeBuilder {
	numFeatures := len(features[0])
	mtry := int(math.Sqrt(float64(numFeatures)))
	if mtry < 1 {
		mtry = 1
	}
	return &treeBuilder{
		cfg:         cfg,
		rng:         rng,
		features:    features,
		labels:      labels,
		numClasses:  numClasses,
		numFeatures: numFeatures,
		mtry:        mtry,
		importances: make([]float64, numFeatures),
	}
}

func (b *treeBuilder) grow(indices []int) *TreeNode {
	b.total = len(indices)
	return b.build(indices, 0)
}

func (b *treeBuilder) build(indices []int, depth int) *TreeNode {
	counts := b.classCounts(indices)
	if depth >= b.cfg.MaxDepth || len(indices) < b.cfg.MinSamplesSplit || isPure(counts) {
		return leaf(counts, len(indices))
	}

	feature, threshold, gain, ok := b.bestSplit(indices, counts)
	if !ok {
		return leaf(counts, len(indices))
	}

	b.importances[feature] += gain * float64(len(indices)) / float64(b.total)

	var left, right []int
	for _, idx := range indices {
		if b.features[idx][feature] <= threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      b.build(left, depth+1),
		Right:     b.build(right, depth+1),
	}
}

// bestSplit sweeps sorted feature values over a random √K feature subset and
// returns the split with the highest Gini impurity decrease that leaves at
// least MinSamplesLeaf samples on each side.
func (b *treeBuilder) bestSplit(indices []int, counts []int) (feature int, threshold, gain float64, ok bool) {
	n := len(indices)
	parent := gini(counts, n)

	candidates := b.rng.Perm(b.numFeatures)[:b.mtry]
	sort.Ints(candidates)

	sorted := make([]int, n)
	leftCounts := make([]int, b.numClasses)
	rightCounts := make([]int, b.numClasses)

	bestGain := 0.0
	for _, f := range candidates {
		copy(sorted, indices)
		sort.Slice(sorted, func(i, j int) bool {
			return b.features[sorted[i]][f] < b.features[sorted[j]][f]
		})

		for c := range leftCounts {
			leftCounts[c] = 0
		}
		copy(rightCounts, counts)

		for i := 1; i < n; i++ {
			label := b.labels[sorted[i-1]]
			leftCounts[label]++
			rightCounts[label]--

			prev := b.features[sorted[i-1]][f]
			cur := b.features[sorted[i]][f]
			if cur <= prev {
				continue
			}
			if i < b.cfg.MinSamplesLeaf || n-i < b.cfg.MinSamplesLeaf {
				continue
			}

			weighted := (float64(i)*gini(leftCounts, i) + float64(n-i)*gini(rightCounts, n-i)) / float64(n)
			if g := parent - weighted; g > bestGain {
				bestGain = g
				feature = f
				threshold = (prev + cur) / 2
				ok = true
			}
		}
	}

	return feature, threshold, bestGain, ok
}

func (b *treeBuilder) classCounts(indices []int) []int {
	counts := make([]int, b.numClasses)
	for _, idx := range indices {
		counts[b.labels[idx]]++
	}
	return counts
}

func leaf(counts []int, n int) *TreeNode {
	probs := make([]float64, len(counts))
	if n > 0 {
		for c, count := range counts {
			probs[c] = float64(count) / float64(n)
		}
	}
	return &TreeNode{Probs: probs}
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		impurity -= p * p
	}
	return impurity
}
