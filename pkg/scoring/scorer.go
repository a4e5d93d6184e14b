/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer.go
Description: Probabilistic scorer for the Akaylee Language Identifier. Ranks
candidate languages by summed log-likelihoods of the test n-grams, backing off
to lower orders until a model hit. Layers in which some candidate gathered no
evidence at all are rejected so they cannot poison the final argmax.
*/

package scoring

import (
	"math"

	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/kleascm/akaylee-langid/pkg/model"
	"github.com/kleascm/akaylee-langid/pkg/ngram"
)

// LayerScores holds the per-candidate log-likelihood sums of one n-gram order
type LayerScores map[language.Language]float64

// Scorer evaluates candidate languages against test n-gram sets using the
// lazily loaded frequency models of one detector.
type Scorer struct {
	loader *model.Loader
}

// NewScorer creates a scorer reading models through loader
func NewScorer(loader *model.Loader) *Scorer {
	return &Scorer{loader: loader}
}

// ScoreLayer computes the order-n contribution for every candidate. For each
// candidate and test n-gram the back-off sequence is walked from order n down
// to 1; the first model hit contributes log(frequency) and ends the walk, and
// a full miss contributes nothing. The layer is accepted only when every
// candidate accumulated at least one hit: a candidate left at exactly 0.0 has
// no evidence at this order and discards the layer. Unseen n-grams otherwise
// contribute log(1) = 0, so partial misses never penalize a candidate.
func (s *Scorer) ScoreLayer(candidates language.Set, grams ngram.Set, order int) (LayerScores, bool, error) {
	scores := make(LayerScores, candidates.Len())

	for _, lang := range candidates.Languages() {
		sum, err := s.scoreLanguage(lang, grams)
		if err != nil {
			return nil, false, err
		}
		if sum == 0.0 {
			return nil, false, nil
		}
		scores[lang] = sum
	}
	return scores, true, nil
}

// scoreLanguage sums the log-likelihoods of grams under one language
func (s *Scorer) scoreLanguage(lang language.Language, grams ngram.Set) (float64, error) {
	sum := 0.0
	for g := range grams {
		for _, backoff := range g.Backoff() {
			m, err := s.loader.Load(lang, backoff.Len())
			if err != nil {
				return 0, err
			}
			if freq, ok := m.Frequency(backoff); ok {
				sum += math.Log(freq)
				break
			}
		}
	}
	return sum, nil
}
