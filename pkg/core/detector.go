/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detector.go
Description: Main detector engine implementation. Composes the rule filter and
the probabilistic scorer into the layered detection pipeline, owns the lazily
loaded model cache, and keeps all per-call candidate state on the call frame
so concurrent detections on one detector are safe.
*/

package core

import (
	"fmt"
	"math"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/kleascm/akaylee-langid/pkg/model"
	"github.com/kleascm/akaylee-langid/pkg/ngram"
	"github.com/kleascm/akaylee-langid/pkg/rules"
	"github.com/kleascm/akaylee-langid/pkg/scoring"
	"github.com/sirupsen/logrus"
)

// Detector identifies the natural language of input text. It is safe for
// concurrent use: the candidate set of each call lives on the call frame,
// models are published through once-initialization, and the enabled set is
// guarded writer-exclusively against running detections.
type Detector struct {
	mu      sync.RWMutex
	enabled language.Set

	loader *model.Loader
	scorer *scoring.Scorer
	logger *logrus.Logger

	minInputLength int
}

// Detect returns the most likely language of text, or Unknown when no
// decision can be made. A model load or decode failure needed by this call
// surfaces as the returned error.
func (d *Detector) Detect(text string) (language.Language, error) {
	start := time.Now()

	d.mu.RLock()
	candidates := d.enabled
	d.mu.RUnlock()

	result, err := d.detect(text, candidates)
	if err != nil {
		return language.Unknown, err
	}

	d.logger.WithFields(logrus.Fields{
		"detection_id": uuid.New().String(),
		"language":     result.String(),
		"duration":     time.Since(start),
		"text_length":  len(text),
	}).Debug("Detection completed")

	return result, nil
}

// DetectBatch maps Detect over texts. Detection calls are independent; the
// first failure aborts the batch.
func (d *Detector) DetectBatch(texts []string) ([]language.Language, error) {
	batchID := uuid.New().String()
	results := make([]language.Language, len(texts))

	for i, text := range texts {
		result, err := d.Detect(text)
		if err != nil {
			return nil, fmt.Errorf("batch %s item %d: %w", batchID, i, err)
		}
		results[i] = result
	}

	d.logger.WithFields(logrus.Fields{
		"batch_id": batchID,
		"count":    len(texts),
	}).Debug("Batch detection completed")

	return results, nil
}

// AddLanguage enables a language for subsequent detections. Its five model
// orders load lazily on the first detection that scores it.
func (d *Detector) AddLanguage(l language.Language) error {
	if l == language.Unknown || !l.Valid() {
		return fmt.Errorf("core: cannot enable %s", l)
	}

	d.mu.Lock()
	d.enabled = d.enabled.Add(l)
	d.mu.Unlock()

	d.logger.WithField("language", l.String()).Info("Language enabled")
	return nil
}

// RemoveLanguage disables a language for subsequent detections. Models
// already decoded for it stay cached.
func (d *Detector) RemoveLanguage(l language.Language) {
	d.mu.Lock()
	d.enabled = d.enabled.Remove(l)
	d.mu.Unlock()

	d.logger.WithField("language", l.String()).Info("Language disabled")
}

// Languages returns the currently enabled languages in ordinal order
func (d *Detector) Languages() []language.Language {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.enabled.Languages()
}

// detect runs the full pipeline against a call-local candidate set
func (d *Detector) detect(text string, candidates language.Set) (language.Language, error) {
	normalized := normalize(text)
	if normalized == "" || !containsLetter(normalized) {
		return language.Unknown, nil
	}

	words := splitWords(text, normalized)

	// Rule short-circuits are authoritative, but only for enabled languages:
	// the result must always be a member of the enabled set or Unknown.
	if byRules := rules.DetectByRules(words); byRules != language.Unknown && candidates.Has(byRules) {
		d.logger.WithField("language", byRules.String()).Debug("Rule short-circuit")
		return byRules, nil
	}

	candidates = rules.FilterByRules(words, candidates)
	if candidates.Empty() {
		return language.Unknown, nil
	}

	if d.minInputLength > 0 && countLetters(normalized) < d.minInputLength {
		return language.Unknown, nil
	}

	layers, err := d.scoreLayers(normalized, candidates)
	if err != nil {
		return language.Unknown, err
	}
	if len(layers) == 0 {
		return language.Unknown, nil
	}

	return mostLikelyLanguage(candidates, layers), nil
}

// scoreLayers evaluates every n-gram order the text is long enough for and
// collects the accepted per-layer score maps
func (d *Detector) scoreLayers(normalized string, candidates language.Set) ([]scoring.LayerScores, error) {
	runeCount := utf8.RuneCountInString(normalized)

	var layers []scoring.LayerScores
	for order := 1; order <= ngram.MaxLength; order++ {
		if runeCount < order {
			break
		}

		grams, err := ngram.Extract(normalized, order)
		if err != nil {
			return nil, err
		}
		if len(grams) == 0 {
			continue
		}

		scores, accepted, err := d.scorer.ScoreLayer(candidates, grams, order)
		if err != nil {
			return nil, err
		}
		if accepted {
			layers = append(layers, scores)
		}
	}
	return layers, nil
}

// mostLikelyLanguage sums each candidate's log-likelihoods across the
// accepted layers and returns the argmax. Iteration is in ordinal order and
// only a strictly greater total wins, so equal inputs always produce equal
// results. Candidates whose total stayed at 0.0 gathered no evidence and
// never win; if that holds for all of them the result is Unknown.
func mostLikelyLanguage(candidates language.Set, layers []scoring.LayerScores) language.Language {
	best := language.Unknown
	bestTotal := math.Inf(-1)

	for _, lang := range candidates.Languages() {
		total := 0.0
		for _, layer := range layers {
			total += layer[lang]
		}
		if total == 0.0 {
			continue
		}
		if total > bestTotal {
			best = lang
			bestTotal = total
		}
	}
	return best
}
