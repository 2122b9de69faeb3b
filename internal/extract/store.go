package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"DiceMatch/internal/match"
	"DiceMatch/internal/storage"
	"DiceMatch/internal/transforms"
)

// Config is the persisted form of an extractor: everything except the
// transform pipeline, which is code and must be re-supplied at load.
type Config struct {
	DefaultThreshold float64                    `json:"default_threshold"`
	Language         string                     `json:"language"`
	StrictLanguage   bool                       `json:"strict_language"`
	StripStopwords   bool                       `json:"strip_stopwords"`
	Dictionary       map[string]json.RawMessage `json:"dictionary"`
}

// Save writes the extractor's dictionary and settings to path as JSON.
// The write is atomic: readers never observe a partial file.
func (e *Extractor) Save(path string) error {
	cfg := Config{
		DefaultThreshold: e.options.DefaultThreshold,
		Language:         e.options.Matcher.Language,
		StrictLanguage:   e.options.Matcher.StrictLanguage,
		StripStopwords:   e.options.Matcher.StripStopwords,
		Dictionary:       make(map[string]json.RawMessage, len(e.terms)),
	}
	for _, entry := range e.dict.Items() {
		cfg.Dictionary[entry.Term] = entry.Record
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal extractor config: %w", err)
	}
	if err := storage.AtomicWriteFile(path, data); err != nil {
		return fmt.Errorf("save extractor to %s: %w", path, err)
	}
	return nil
}

// Load reads a saved extractor from path and recompiles it. Transforms
// are not serializable, so the pipeline is passed in by the caller.
func Load(path string, pipeline ...transforms.Transform) (*Extractor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load extractor from %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse extractor config %s: %w", path, err)
	}

	opts := Options{
		DefaultThreshold: cfg.DefaultThreshold,
		Matcher: match.Options{
			Language:       cfg.Language,
			StrictLanguage: cfg.StrictLanguage,
			StripStopwords: cfg.StripStopwords,
			Transforms:     pipeline,
		},
	}
	return New(MapDictionary(cfg.Dictionary), opts)
}
