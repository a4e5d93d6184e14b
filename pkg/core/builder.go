/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builder.go
Description: Builder for the detector engine. Collects the enabled language
set, the model store, and the cache policy, then assembles a ready Detector
with optional eager model preloading.
*/

package core

import (
	"fmt"
	"io"

	"github.com/kleascm/akaylee-langid/pkg/interfaces"
	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/kleascm/akaylee-langid/pkg/model"
	"github.com/kleascm/akaylee-langid/pkg/scoring"
	"github.com/sirupsen/logrus"
)

// Builder assembles a Detector. Start from NewBuilder and chain the
// With/From methods.
type Builder struct {
	langs          []language.Language
	store          interfaces.ModelStore
	preload        bool
	minInputLength int
	logger         *logrus.Logger
	errs           []error
}

// NewBuilder creates an empty detector builder
func NewBuilder() *Builder {
	return &Builder{}
}

// FromAllLanguages enables every supported language
func (b *Builder) FromAllLanguages() *Builder {
	b.langs = language.All()
	return b
}

// FromLanguages enables exactly the given languages
func (b *Builder) FromLanguages(langs ...language.Language) *Builder {
	for _, l := range langs {
		if l == language.Unknown || !l.Valid() {
			b.errs = append(b.errs, fmt.Errorf("core: cannot enable %s", l))
			continue
		}
		b.langs = append(b.langs, l)
	}
	return b
}

// FromIsoCodes enables the languages identified by ISO 639-1 codes
func (b *Builder) FromIsoCodes(codes ...string) *Builder {
	for _, code := range codes {
		l := language.FromIsoCode(code)
		if l == language.Unknown {
			b.errs = append(b.errs, fmt.Errorf("core: unsupported ISO 639-1 code %q", code))
			continue
		}
		b.langs = append(b.langs, l)
	}
	return b
}

// WithStore sets the model store the detector loads from
func (b *Builder) WithStore(store interfaces.ModelStore) *Builder {
	b.store = store
	return b
}

// WithPreloadedModels decodes all models for the enabled set at build time
// instead of lazily on first use
func (b *Builder) WithPreloadedModels() *Builder {
	b.preload = true
	return b
}

// WithMinInputLength requires at least n letter runes before probabilistic
// scoring runs. Rule-based short-circuits still apply to shorter input.
func (b *Builder) WithMinInputLength(n int) *Builder {
	b.minInputLength = n
	return b
}

// WithLogger sets the structured logger used by the detector
func (b *Builder) WithLogger(logger *logrus.Logger) *Builder {
	b.logger = logger
	return b
}

// WithConfig applies a DetectorConfig: ISO codes (empty means all
// languages), a filesystem model store rooted at ModelsDir, and the cache
// policy flags.
func (b *Builder) WithConfig(config *interfaces.DetectorConfig) *Builder {
	if len(config.Languages) == 0 {
		b.FromAllLanguages()
	} else {
		b.FromIsoCodes(config.Languages...)
	}
	if config.ModelsDir != "" {
		b.WithStore(model.NewFSStore(config.ModelsDir))
	}
	if config.Preload {
		b.WithPreloadedModels()
	}
	if config.MinInputLength > 0 {
		b.WithMinInputLength(config.MinInputLength)
	}
	return b
}

// Build assembles the detector. At least one language and a model store are
// required; with preloading enabled every model of the enabled set is decoded
// here and the first failure aborts the build.
func (b *Builder) Build() (*Detector, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	if len(b.langs) == 0 {
		return nil, fmt.Errorf("core: at least one language must be enabled")
	}
	if b.store == nil {
		return nil, fmt.Errorf("core: model store not set - use WithStore() before Build()")
	}

	logger := b.logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	loader := model.NewLoader(b.store)
	detector := &Detector{
		enabled:        language.NewSet(b.langs...),
		loader:         loader,
		scorer:         scoring.NewScorer(loader),
		logger:         logger,
		minInputLength: b.minInputLength,
	}

	if b.preload {
		if err := loader.Preload(detector.enabled.Languages()); err != nil {
			return nil, fmt.Errorf("core: preloading models: %w", err)
		}
	}

	logger.WithFields(logrus.Fields{
		"languages": detector.enabled.Len(),
		"preload":   b.preload,
	}).Info("Detector engine initialized")

	return detector, nil
}
