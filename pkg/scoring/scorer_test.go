/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer_test.go
Description: Unit tests for the probabilistic scorer. Covers log-likelihood
summation, back-off to lower orders, and the candidate-scoped rejection of
layers without full evidence.
*/

package scoring_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/kleascm/akaylee-langid/pkg/model"
	"github.com/kleascm/akaylee-langid/pkg/ngram"
	"github.com/kleascm/akaylee-langid/pkg/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureStore builds a store holding all five orders for each language.
// Orders without an explicit table get an empty one.
func fixtureStore(t *testing.T, tables map[language.Language]map[int]map[string]float64) *model.MapStore {
	t.Helper()
	store := model.NewMapStore()
	for lang, orders := range tables {
		for order := 1; order <= ngram.MaxLength; order++ {
			ngrams := orders[order]
			if ngrams == nil {
				ngrams = map[string]float64{}
			}
			data, err := json.Marshal(map[string]interface{}{
				"language": lang.IsoCode(),
				"ngrams":   ngrams,
			})
			require.NoError(t, err)
			name, err := ngram.OrderName(order)
			require.NoError(t, err)
			store.Put(lang.IsoCode(), name, data)
		}
	}
	return store
}

// gramSet builds an n-gram set from texts
func gramSet(t *testing.T, texts ...string) ngram.Set {
	t.Helper()
	set := make(ngram.Set, len(texts))
	for _, text := range texts {
		g, err := ngram.New(text)
		require.NoError(t, err)
		set[g] = struct{}{}
	}
	return set
}

func TestScoreLayerSumsLogLikelihoods(t *testing.T) {
	store := fixtureStore(t, map[language.Language]map[int]map[string]float64{
		language.English: {
			2: {"ab": 0.2, "cd": 0.1},
		},
	})
	scorer := scoring.NewScorer(model.NewLoader(store))

	scores, accepted, err := scorer.ScoreLayer(
		language.NewSet(language.English), gramSet(t, "ab", "cd"), 2)
	require.NoError(t, err)
	require.True(t, accepted)

	assert.InDelta(t, math.Log(0.2)+math.Log(0.1), scores[language.English], 1e-12)
}

func TestScoreLayerBacksOffToLowerOrders(t *testing.T) {
	store := fixtureStore(t, map[language.Language]map[int]map[string]float64{
		language.English: {
			1: {"a": 0.5},
			2: {},
		},
	})
	scorer := scoring.NewScorer(model.NewLoader(store))

	// "ab" misses the bigram table; the back-off walks to "a"
	scores, accepted, err := scorer.ScoreLayer(
		language.NewSet(language.English), gramSet(t, "ab"), 2)
	require.NoError(t, err)
	require.True(t, accepted)

	assert.InDelta(t, math.Log(0.5), scores[language.English], 1e-12)
}

func TestScoreLayerFirstHitStopsBackoff(t *testing.T) {
	store := fixtureStore(t, map[language.Language]map[int]map[string]float64{
		language.English: {
			1: {"a": 0.5},
			2: {"ab": 0.2},
		},
	})
	scorer := scoring.NewScorer(model.NewLoader(store))

	// The bigram hit ends the walk; the unigram table is never consulted
	scores, accepted, err := scorer.ScoreLayer(
		language.NewSet(language.English), gramSet(t, "ab"), 2)
	require.NoError(t, err)
	require.True(t, accepted)

	assert.InDelta(t, math.Log(0.2), scores[language.English], 1e-12)
}

func TestScoreLayerUnseenNgramsContributeNothing(t *testing.T) {
	store := fixtureStore(t, map[language.Language]map[int]map[string]float64{
		language.English: {
			1: {"a": 0.5},
		},
	})
	scorer := scoring.NewScorer(model.NewLoader(store))

	// "a" hits, "z" misses every order; only the hit contributes
	scores, accepted, err := scorer.ScoreLayer(
		language.NewSet(language.English), gramSet(t, "a", "z"), 1)
	require.NoError(t, err)
	require.True(t, accepted)

	assert.InDelta(t, math.Log(0.5), scores[language.English], 1e-12)
}

func TestScoreLayerRejectsWhenCandidateHasNoEvidence(t *testing.T) {
	store := fixtureStore(t, map[language.Language]map[int]map[string]float64{
		language.English: {1: {"a": 0.5}},
		language.Spanish: {},
	})
	scorer := scoring.NewScorer(model.NewLoader(store))

	// Spanish gathers no hit at all, so the whole layer is discarded
	scores, accepted, err := scorer.ScoreLayer(
		language.NewSet(language.English, language.Spanish), gramSet(t, "a"), 1)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Nil(t, scores)
}

func TestScoreLayerRejectionIsCandidateScoped(t *testing.T) {
	store := fixtureStore(t, map[language.Language]map[int]map[string]float64{
		language.English: {1: {"a": 0.5}},
		language.Spanish: {},
	})
	scorer := scoring.NewScorer(model.NewLoader(store))

	// Spanish has no evidence but is not a candidate, so it cannot veto
	scores, accepted, err := scorer.ScoreLayer(
		language.NewSet(language.English), gramSet(t, "a"), 1)
	require.NoError(t, err)
	require.True(t, accepted)
	assert.Contains(t, scores, language.English)
	assert.NotContains(t, scores, language.Spanish)
}

func TestScoreLayerPropagatesLoadFailures(t *testing.T) {
	scorer := scoring.NewScorer(model.NewLoader(model.NewMapStore()))

	_, _, err := scorer.ScoreLayer(
		language.NewSet(language.English), gramSet(t, "a"), 1)
	assert.Error(t, err)
}
