package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/scamcheck/internal/detector"
	"github.com/example/scamcheck/internal/similarity"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "scamcheck.config.yml"
	DefaultEnvPath    = ".env"

	envPhrases           = "SCAMCHECK_PHRASES"
	envPhrasesFile       = "SCAMCHECK_PHRASES_FILE"
	envRulesFile         = "SCAMCHECK_RULES_FILE"
	envChecks            = "SCAMCHECK_CHECKS"
	envThreshold         = "SCAMCHECK_THRESHOLD"
	envOutput            = "SCAMCHECK_OUTPUT"
	envOutputDir         = "SCAMCHECK_OUTPUT_DIR"
	envFormats           = "SCAMCHECK_FORMATS"
	envSummaryFile       = "SCAMCHECK_SUMMARY_FILE"
	envLogLevel          = "SCAMCHECK_LOG_LEVEL"
	envTranscriber       = "SCAMCHECK_TRANSCRIBER"
	envLanguage          = "SCAMCHECK_LANGUAGE"
	envGoogleAPIKey      = "SCAMCHECK_GOOGLE_API_KEY"
	envGoogleCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
	envOpenAIAPIKey      = "OPENAI_API_KEY"
	envOpenAIBaseURL     = "SCAMCHECK_OPENAI_BASE_URL"
	envTranscribeTimeout = "SCAMCHECK_TRANSCRIBE_TIMEOUT"
	envMaxAudioBytes     = "SCAMCHECK_MAX_AUDIO_BYTES"
)

var (
	outputFormats   = []string{"text", "json"}
	artifactFormats = []string{"json", "csv"}
	transcribers    = []string{"none", "google", "openai"}
)

// Loader merges configuration coming from files, .env, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
	EnvPath    string
}

// RuntimeConfig contains the fully merged settings required by sub-commands.
type RuntimeConfig struct {
	ReferencePhrases    []string
	RulesFile           string
	Checks              []string
	SimilarityThreshold float64
	Output              string
	OutputDir           string
	Formats             []string
	SummaryFile         string
	LogLevel            string

	Transcriber           string
	Language              string
	GoogleAPIKey          string
	GoogleCredentialsFile string
	OpenAIAPIKey          string
	OpenAIBaseURL         string
	TranscribeTimeout     time.Duration
	MaxAudioBytes         int64
}

// Overrides captures values coming from env vars or CLI flags.
type Overrides struct {
	ReferencePhrases      []string
	PhrasesFile           string
	RulesFile             string
	Checks                []string
	ChecksSet             bool
	SimilarityThreshold   float64
	ThresholdSet          bool
	Output                string
	OutputDir             string
	Formats               []string
	SummaryFile           string
	LogLevel              string
	Transcriber           string
	Language              string
	GoogleAPIKey          string
	GoogleCredentialsFile string
	OpenAIAPIKey          string
	OpenAIBaseURL         string
	TranscribeTimeout     time.Duration
	MaxAudioBytes         int64
}

// DefaultRuntimeConfig returns the baseline configuration when no overrides are provided.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ReferencePhrases:    append([]string(nil), similarity.DefaultPhrases...),
		Checks:              append([]string(nil), detector.Order...),
		SimilarityThreshold: similarity.DefaultThreshold,
		Output:              "text",
		Formats:             []string{"json"},
		LogLevel:            "info",
		Transcriber:         "none",
		Language:            "en-US",
		TranscribeTimeout:   30 * time.Second,
		MaxAudioBytes:       25 << 20,
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			return cfg, err
		}
		if err := cfg.apply(fileOv); err != nil {
			return cfg, err
		}
	}

	envPath := l.EnvPath
	if envPath == "" {
		envPath = DefaultEnvPath
	}
	if fileExists(envPath) {
		// godotenv.Load never overrides variables that are already set.
		if err := godotenv.Load(envPath); err != nil {
			return cfg, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	envOv, err := overridesFromEnv()
	if err != nil {
		return cfg, err
	}
	if err := cfg.apply(envOv); err != nil {
		return cfg, err
	}

	if err := cfg.apply(override); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate ensures the config contains consistent settings.
func (c RuntimeConfig) Validate() error {
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarity threshold must be between 0 and 1 exclusive (got %g)", c.SimilarityThreshold)
	}

	if !oneOf(c.Output, outputFormats) {
		return fmt.Errorf("unsupported output %q (want %s)", c.Output, strings.Join(outputFormats, " or "))
	}

	if len(c.Formats) == 0 {
		return errors.New("at least one artifact format must be specified")
	}
	for _, f := range c.Formats {
		if !oneOf(f, artifactFormats) {
			return fmt.Errorf("unsupported format %s", f)
		}
	}

	if !oneOf(c.Transcriber, transcribers) {
		return fmt.Errorf("unknown transcriber %q (want %s)", c.Transcriber, strings.Join(transcribers, ", "))
	}

	if c.TranscribeTimeout <= 0 {
		return fmt.Errorf("transcribe timeout must be positive (got %s)", c.TranscribeTimeout)
	}

	if c.MaxAudioBytes <= 0 {
		return fmt.Errorf("max audio bytes must be positive (got %d)", c.MaxAudioBytes)
	}

	return nil
}

func (c *RuntimeConfig) apply(src Overrides) error {
	if len(src.ReferencePhrases) > 0 {
		c.ReferencePhrases = cleanList(src.ReferencePhrases)
	}

	if src.PhrasesFile != "" {
		values, err := readLinesFile(src.PhrasesFile)
		if err != nil {
			return err
		}
		// An empty file is an empty corpus, not a request for the defaults.
		if values == nil {
			values = []string{}
		}
		c.ReferencePhrases = values
	}

	if src.RulesFile != "" {
		c.RulesFile = src.RulesFile
	}

	if src.ChecksSet {
		c.Checks = cleanList(src.Checks)
	}

	if src.ThresholdSet {
		c.SimilarityThreshold = src.SimilarityThreshold
	}

	if src.Output != "" {
		c.Output = strings.ToLower(src.Output)
	}

	if src.OutputDir != "" {
		c.OutputDir = src.OutputDir
	}

	if len(src.Formats) > 0 {
		c.Formats = lowerList(cleanList(src.Formats))
	}

	if src.SummaryFile != "" {
		c.SummaryFile = src.SummaryFile
	}

	if src.LogLevel != "" {
		c.LogLevel = src.LogLevel
	}

	if src.Transcriber != "" {
		c.Transcriber = strings.ToLower(src.Transcriber)
	}

	if src.Language != "" {
		c.Language = src.Language
	}

	if src.GoogleAPIKey != "" {
		c.GoogleAPIKey = src.GoogleAPIKey
	}

	if src.GoogleCredentialsFile != "" {
		c.GoogleCredentialsFile = src.GoogleCredentialsFile
	}

	if src.OpenAIAPIKey != "" {
		c.OpenAIAPIKey = src.OpenAIAPIKey
	}

	if src.OpenAIBaseURL != "" {
		c.OpenAIBaseURL = src.OpenAIBaseURL
	}

	if src.TranscribeTimeout != 0 {
		c.TranscribeTimeout = src.TranscribeTimeout
	}

	if src.MaxAudioBytes != 0 {
		c.MaxAudioBytes = src.MaxAudioBytes
	}

	return nil
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawTranscription struct {
		Provider        string `yaml:"provider"`
		Language        string `yaml:"language"`
		Timeout         string `yaml:"timeout"`
		MaxAudioBytes   int64  `yaml:"maxAudioBytes"`
		GoogleAPIKey    string `yaml:"googleApiKey"`
		CredentialsFile string `yaml:"googleCredentialsFile"`
		OpenAIAPIKey    string `yaml:"openaiApiKey"`
		OpenAIBaseURL   string `yaml:"openaiBaseUrl"`
	}

	type rawConfig struct {
		ReferencePhrases    phraseList       `yaml:"referencePhrases"`
		PhrasesFile         string           `yaml:"referencePhrasesFile"`
		RulesFile           string           `yaml:"rulesFile"`
		Checks              *[]string        `yaml:"checks"`
		SimilarityThreshold *float64         `yaml:"similarityThreshold"`
		Output              string           `yaml:"output"`
		OutputDir           string           `yaml:"outputDir"`
		Formats             []string         `yaml:"formats"`
		SummaryFile         string           `yaml:"summaryFile"`
		LogLevel            string           `yaml:"logLevel"`
		Transcription       rawTranscription `yaml:"transcription"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, fmt.Errorf("parse %s: %w", path, err)
	}

	over := Overrides{
		ReferencePhrases:      raw.ReferencePhrases,
		PhrasesFile:           raw.PhrasesFile,
		RulesFile:             raw.RulesFile,
		Output:                raw.Output,
		OutputDir:             raw.OutputDir,
		Formats:               raw.Formats,
		SummaryFile:           raw.SummaryFile,
		LogLevel:              raw.LogLevel,
		Transcriber:           raw.Transcription.Provider,
		Language:              raw.Transcription.Language,
		GoogleAPIKey:          raw.Transcription.GoogleAPIKey,
		GoogleCredentialsFile: raw.Transcription.CredentialsFile,
		OpenAIAPIKey:          raw.Transcription.OpenAIAPIKey,
		OpenAIBaseURL:         raw.Transcription.OpenAIBaseURL,
		MaxAudioBytes:         raw.Transcription.MaxAudioBytes,
	}

	if raw.Checks != nil {
		over.Checks = *raw.Checks
		over.ChecksSet = true
	}

	if raw.SimilarityThreshold != nil {
		over.SimilarityThreshold = *raw.SimilarityThreshold
		over.ThresholdSet = true
	}

	if raw.Transcription.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Transcription.Timeout)
		if err != nil {
			return Overrides{}, fmt.Errorf("transcription.timeout: %w", err)
		}
		over.TranscribeTimeout = timeout
	}

	return over, nil
}

func overridesFromEnv() (Overrides, error) {
	ov := Overrides{
		PhrasesFile:           os.Getenv(envPhrasesFile),
		RulesFile:             os.Getenv(envRulesFile),
		Output:                os.Getenv(envOutput),
		OutputDir:             os.Getenv(envOutputDir),
		SummaryFile:           os.Getenv(envSummaryFile),
		LogLevel:              os.Getenv(envLogLevel),
		Transcriber:           os.Getenv(envTranscriber),
		Language:              os.Getenv(envLanguage),
		GoogleAPIKey:          os.Getenv(envGoogleAPIKey),
		GoogleCredentialsFile: os.Getenv(envGoogleCredentials),
		OpenAIAPIKey:          os.Getenv(envOpenAIAPIKey),
		OpenAIBaseURL:         os.Getenv(envOpenAIBaseURL),
	}

	if value := os.Getenv(envPhrases); value != "" {
		ov.ReferencePhrases = ParsePhrases(value)
	}

	if value, ok := os.LookupEnv(envChecks); ok {
		ov.Checks = ParseList(value)
		ov.ChecksSet = true
	}

	if value := os.Getenv(envThreshold); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return ov, fmt.Errorf("%s: %w", envThreshold, err)
		}
		ov.SimilarityThreshold = parsed
		ov.ThresholdSet = true
	}

	if value := os.Getenv(envFormats); value != "" {
		ov.Formats = ParseList(value)
	}

	if value := os.Getenv(envTranscribeTimeout); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return ov, fmt.Errorf("%s: %w", envTranscribeTimeout, err)
		}
		ov.TranscribeTimeout = parsed
	}

	if value := os.Getenv(envMaxAudioBytes); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return ov, fmt.Errorf("%s: %w", envMaxAudioBytes, err)
		}
		ov.MaxAudioBytes = parsed
	}

	return ov, nil
}

// ParsePhrases splits pipe or newline separated phrases. Commas are kept because
// reference phrases routinely contain them.
func ParsePhrases(input string) []string {
	return splitOnDelimiters(input, []rune{'|', '\n', '\r'})
}

// ParseList splits comma separated values such as formats or check names.
func ParseList(input string) []string {
	return splitOnDelimiters(input, []rune{',', '\n', '\r', ' '})
}

func splitOnDelimiters(input string, delims []rune) []string {
	if input == "" {
		return nil
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	separator := func(r rune) bool {
		for _, d := range delims {
			if r == d {
				return true
			}
		}
		return false
	}

	parts := strings.FieldsFunc(trimmed, separator)
	return cleanList(parts)
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		candidate := strings.TrimSpace(v)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

func lowerList(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// ReadLines reads one entry per line, skipping blanks and # comments.
func ReadLines(path string) ([]string, error) {
	return readLinesFile(path)
}

func readLinesFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// phraseList enables YAML fields that can be specified as a scalar or sequence.
type phraseList []string

func (p *phraseList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, node := range value.Content {
			out = append(out, strings.TrimSpace(node.Value))
		}
		*p = cleanList(out)
	case yaml.ScalarNode:
		*p = ParsePhrases(value.Value)
	default:
		return fmt.Errorf("unsupported YAML type for referencePhrases")
	}
	return nil
}
