package classifier

import (
	"golang.org/x/exp/rand"
)

// ForestConfig holds the ensemble hyperparameters.
type ForestConfig struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            uint64
}

// DefaultForestConfig mirrors the tuning the model was originally trained
// with: 100 trees, depth 15, split 5, leaf 2, seed 42.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:           100,
		MaxDepth:        15,
		MinSamplesSplit: 5,
		MinSamplesLeaf:  2,
		Seed:            42,
	}
}

// Forest is an ensemble of randomized CART trees. Fields are exported for
// gob serialization; a Forest is immutable once fitted.
type Forest struct {
	Config      ForestConfig
	Trees       []*TreeNode
	NumClasses  int
	Importances []float64
}

// Fit trains the ensemble: each tree gets its own deterministic seed and a
// bootstrap resample of the training set. Feature importances accumulate
// the per-split impurity decrease, averaged over trees and normalized.
func (f *Forest) Fit(features [][]float64, labels []int, numClasses int) {
	n := len(features)
	f.NumClasses = numClasses
	f.Trees = make([]*TreeNode, f.Config.Trees)
	f.Importances = make([]float64, len(features[0]))

	for t := 0; t < f.Config.Trees; t++ {
		rng := rand.New(rand.NewSource(f.Config.Seed + uint64(t)))

		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}

		builder := newTreeBuilder(f.Config, rng, features, labels, numClasses)
		f.Trees[t] = builder.grow(sample)

		for j, imp := range builder.importances {
			f.Importances[j] += imp
		}
	}

	var total float64
	for _, imp := range f.Importances {
		total += imp
	}
	if total > 0 {
		for j := range f.Importances {
			f.Importances[j] /= total
		}
	}
}

// PredictProba averages the leaf distributions of all trees for one
// standardized feature row.
func (f *Forest) PredictProba(row []float64) []float64 {
	probs := make([]float64, f.NumClasses)
	if len(f.Trees) == 0 {
		return probs
	}
	for _, tree := range f.Trees {
		for c, p := range tree.predict(row) {
			probs[c] += p
		}
	}
	for c := range probs {
		probs[c] /= float64(len(f.Trees))
	}
	return probs
}

// Predict returns the argmax class for one standardized feature row. Exact
// probability ties resolve to the lowest class index.
func (f *Forest) Predict(row []float64) int {
	return argmax(f.PredictProba(row))
}

// Accuracy scores the forest against a labeled standardized feature matrix.
func (f *Forest) Accuracy(features [][]float64, labels []int) float64 {
	if len(features) == 0 {
		return 0
	}
	correct := 0
	for i, row := range features {
		if f.Predict(row) == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(features))
}

// argmax picks the index of the maximum probability; the strict comparison
// keeps the lowest index on exact ties, making tie-breaks deterministic.
func argmax(probs []float64) int {
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return best
}
