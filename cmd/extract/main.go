package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"DiceMatch/internal/extract"
	"DiceMatch/internal/match"
	"DiceMatch/internal/tokenize"
	"DiceMatch/internal/transforms"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// config mirrors the command-line flags so the same settings can come
// from a YAML file. Flags given on the command line win over the file.
type config struct {
	Language        string  `yaml:"language"`
	Strict          bool    `yaml:"strict"`
	StripStopwords  bool    `yaml:"strip_stopwords"`
	Threshold       float64 `yaml:"threshold"`
	LowercaseMin    int     `yaml:"lowercase_min"`
	ExceptCaps      bool    `yaml:"lowercase_except_caps"`
	NoLowercase     bool    `yaml:"no_lowercase"`
	StripDiacritics bool    `yaml:"strip_diacritics"`
	Stem            bool    `yaml:"stem"`
}

func defaultConfig() config {
	return config{
		Language:       tokenize.DefaultLanguage,
		Strict:         true,
		StripStopwords: true,
		Threshold:      1.0,
	}
}

func main() {
	cfg := defaultConfig()

	dictPath := pflag.String("dict", "", "path to dictionary JSON (term -> record)")
	configPath := pflag.String("config", "", "path to YAML config file")
	savePath := pflag.String("save", "", "write the compiled extractor to this path")
	logLevel := pflag.String("log-level", getEnv("DICEMATCH_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	pflag.StringVar(&cfg.Language, "language", cfg.Language, "text language for stop words and stemming")
	pflag.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail on unknown language instead of falling back")
	pflag.BoolVar(&cfg.StripStopwords, "strip-stopwords", cfg.StripStopwords, "skip spans that start or end on a stop word")
	pflag.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "default matching threshold in (0, 1]")
	pflag.IntVar(&cfg.LowercaseMin, "lowercase-min", cfg.LowercaseMin, "lowercase only tokens of at least this many runes (0 = all)")
	pflag.BoolVar(&cfg.ExceptCaps, "lowercase-except-caps", cfg.ExceptCaps, "keep short all-caps tokens (acronyms) unlowercased")
	pflag.BoolVar(&cfg.NoLowercase, "no-lowercase", cfg.NoLowercase, "disable the lowercase transform")
	pflag.BoolVar(&cfg.StripDiacritics, "strip-diacritics", cfg.StripDiacritics, "strip combining marks before matching")
	pflag.BoolVar(&cfg.Stem, "stem", cfg.Stem, "apply snowball stemming")
	pflag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))
	slog.SetDefault(logger)

	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	if *dictPath == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: --dict")
		os.Exit(1)
	}

	logger.Info("starting DiceMatch extract",
		"version", Version,
		"dict", *dictPath,
		"language", cfg.Language,
		"threshold", cfg.Threshold,
	)

	extractor, err := buildExtractor(*dictPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build extractor: %v\n", err)
		os.Exit(1)
	}
	logger.Info("dictionary compiled", "terms", extractor.TermCount())

	if *savePath != "" {
		if err := extractor.Save(*savePath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save extractor: %v\n", err)
			os.Exit(1)
		}
		logger.Info("extractor saved", "path", *savePath)
	}

	// Remaining arguments are text files; with none, read stdin.
	inputs := pflag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	enc := json.NewEncoder(os.Stdout)
	for _, input := range inputs {
		text, err := readInput(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", input, err)
			os.Exit(1)
		}

		matches, err := extractor.Extract(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "extraction failed for %s: %v\n", input, err)
			os.Exit(1)
		}
		logger.Info("extracted", "source", input, "matches", len(matches))

		for _, m := range matches {
			if err := enc.Encode(m); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write match: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

// loadConfigFile fills cfg from YAML, keeping values for flags that
// were set explicitly on the command line.
func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fileCfg := defaultConfig()
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	flags := pflag.CommandLine
	if !flags.Changed("language") {
		cfg.Language = fileCfg.Language
	}
	if !flags.Changed("strict") {
		cfg.Strict = fileCfg.Strict
	}
	if !flags.Changed("strip-stopwords") {
		cfg.StripStopwords = fileCfg.StripStopwords
	}
	if !flags.Changed("threshold") {
		cfg.Threshold = fileCfg.Threshold
	}
	if !flags.Changed("lowercase-min") {
		cfg.LowercaseMin = fileCfg.LowercaseMin
	}
	if !flags.Changed("lowercase-except-caps") {
		cfg.ExceptCaps = fileCfg.ExceptCaps
	}
	if !flags.Changed("no-lowercase") {
		cfg.NoLowercase = fileCfg.NoLowercase
	}
	if !flags.Changed("strip-diacritics") {
		cfg.StripDiacritics = fileCfg.StripDiacritics
	}
	if !flags.Changed("stem") {
		cfg.Stem = fileCfg.Stem
	}
	return nil
}

func buildExtractor(dictPath string, cfg config) (*extract.Extractor, error) {
	data, err := os.ReadFile(dictPath)
	if err != nil {
		return nil, err
	}
	var dict map[string]json.RawMessage
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", dictPath, err)
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return nil, err
	}

	return extract.New(extract.MapDictionary(dict), extract.Options{
		DefaultThreshold: cfg.Threshold,
		Matcher: match.Options{
			Language:       cfg.Language,
			StrictLanguage: cfg.Strict,
			StripStopwords: cfg.StripStopwords,
			Transforms:     pipeline,
		},
	})
}

func buildPipeline(cfg config) ([]transforms.Transform, error) {
	var pipeline []transforms.Transform
	if cfg.StripDiacritics {
		pipeline = append(pipeline, transforms.NewStripDiacritics())
	}
	if !cfg.NoLowercase {
		lower, err := transforms.NewLowercase(cfg.LowercaseMin, cfg.ExceptCaps)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, lower)
	}
	if cfg.Stem {
		stem, err := transforms.NewStemmer(cfg.Language)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, stem)
	}
	return pipeline, nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
