// Command isoglot performs token-aligned isomorphic translation of text
// files, backed by a persistent glossary.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ZaguanLabs/isoglot"
	"github.com/ZaguanLabs/isoglot/extract"
	"github.com/ZaguanLabs/isoglot/oracle"
	"github.com/ZaguanLabs/isoglot/store"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = isoglot.Version
	commit    = isoglot.GitCommit
	buildDate = isoglot.BuildDate
)

// envConfig is the environment layer of configuration. Flags override it.
type envConfig struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	Model      string `env:"ISOGLOT_MODEL" env-default:"gpt-4o-mini"`
	RedisURL   string `env:"ISOGLOT_REDIS_URL"`
	MemoryPath string `env:"ISOGLOT_MEMORY"`
}

// stringList collects repeatable flag values.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("isoglot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetLang := fs.String("lang", "es_ES", "Target language code (e.g., es_ES)")
	sourceLang := fs.String("source", "ar_SA", "Source language code")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	mode := fs.String("mode", "final", "Render mode: draft or final")
	htmlInput := fs.Bool("html", false, "Treat input as HTML and extract its text first")
	glossaryIn := fs.String("glossary", "", "Glossary file to import before translating")
	glossaryFormat := fs.String("format", "json", "Glossary file format: json or csv")
	exportPath := fs.String("export", "", "Export the glossary to this file afterwards")
	memoryPath := fs.String("memory", "", "SQLite translation memory file (default: ISOGLOT_MEMORY env)")
	redisURL := fs.String("redis", "", "Redis URL for session persistence (default: ISOGLOT_REDIS_URL env)")
	session := fs.String("session", "default", "Session id for Redis persistence")
	suggest := fs.Bool("suggest", false, "Ask the OpenAI oracle to resolve unresolved core tokens")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "", "OpenAI model to use")
	contextStr := fs.String("context", "", "Translation context hint for the oracle")
	var rules, fuses, nullifies stringList
	fs.Var(&rules, "rule", "User directive for the oracle (repeatable)")
	fs.Var(&fuses, "fuse", "Fuse a span: start:end:translation (repeatable)")
	fs.Var(&nullifies, "nullify", "Nullify the slot at this index (repeatable)")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", isoglot.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	var renderMode isoglot.RenderMode
	switch *mode {
	case "draft":
		renderMode = isoglot.RenderDraft
	case "final":
		renderMode = isoglot.RenderFinal
	default:
		return fmt.Errorf("unknown render mode %q (want draft or final)", *mode)
	}

	env := envConfig{}
	if err := cleanenv.ReadEnv(&env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if *memoryPath == "" {
		*memoryPath = env.MemoryPath
	}
	if *redisURL == "" {
		*redisURL = env.RedisURL
	}

	// Get input
	input, inputName, err := readInput(fs)
	if err != nil {
		return err
	}

	if *htmlInput {
		input, err = extract.HTMLText(input)
		if err != nil {
			return fmt.Errorf("extracting HTML text: %w", err)
		}
	} else {
		input = extract.Plain(input)
	}

	glossary := isoglot.NewGlossary()

	// Durable translation memory, loaded before any per-run import so
	// explicit files win on conflicts.
	var memory *store.SQLiteStore
	if *memoryPath != "" {
		memory, err = store.OpenSQLiteStore(*memoryPath)
		if err != nil {
			return err
		}
		defer memory.Close()
		if _, err := memory.Load(glossary); err != nil {
			return fmt.Errorf("loading translation memory: %w", err)
		}
	}

	var sessions *store.RedisStore
	if *redisURL != "" {
		sessions, err = store.NewRedisStore(store.RedisConfig{URL: *redisURL})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer sessions.Close()
		if _, err := sessions.Load(context.Background(), *session, glossary); err != nil {
			return fmt.Errorf("loading session glossary: %w", err)
		}
	}

	if *glossaryIn != "" {
		if _, err := store.ImportFromFile(*glossaryIn, *glossaryFormat, glossary); err != nil {
			return fmt.Errorf("importing glossary: %w", err)
		}
	}

	// Build engine options
	opts := []isoglot.EngineOption{
		isoglot.WithSourceLang(*sourceLang),
		isoglot.WithTargetLang(*targetLang),
	}
	if *contextStr != "" {
		opts = append(opts, isoglot.WithContext(*contextStr))
	}
	if len(rules) > 0 {
		opts = append(opts, isoglot.WithRules(rules...))
	}

	if *suggest {
		key := *apiKey
		if key == "" {
			key = env.APIKey
		}
		if key == "" {
			return fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
		}
		m := *model
		if m == "" {
			m = env.Model
		}

		o := oracle.NewOpenAIOracle(oracle.OpenAIConfig{APIKey: key, Model: m})
		limited := isoglot.NewRateLimitedOracle(o, isoglot.RateLimitConfig{RequestsPerMinute: 30})
		retryable := isoglot.NewRetryableOracle(limited, isoglot.DefaultRetryConfig())
		opts = append(opts, isoglot.WithOracle(retryable))
	}

	engine := isoglot.NewEngine(glossary, opts...)

	if !*quiet {
		fmt.Fprintf(stderr, "Translating %s to %s...\n", inputName, *targetLang)
	}

	start := time.Now()
	tokens := engine.Tokenize(input)

	for _, spec := range fuses {
		if err := applyFuse(engine, spec); err != nil {
			return err
		}
	}
	for _, spec := range nullifies {
		index, err := strconv.Atoi(spec)
		if err != nil {
			return fmt.Errorf("invalid nullify index %q", spec)
		}
		if err := engine.ToggleNullified(index); err != nil {
			return err
		}
	}

	var suggested *isoglot.SuggestResult
	if *suggest {
		suggested, err = engine.Suggest(context.Background())
		if err != nil {
			return fmt.Errorf("suggestion failed: %w", err)
		}
	}

	engine.Synchronize()
	result := engine.Render(renderMode)
	elapsed := time.Since(start)

	// Output
	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	coverage := isoglot.Coverage(tokens, glossary)
	if *jsonOutput {
		if err := outputJSON(out, result, tokens, coverage, suggested, elapsed); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, result)
	}

	if *exportPath != "" {
		format := formatForPath(*exportPath, *glossaryFormat)
		meta := map[string]string{"source_lang": *sourceLang, "target_lang": *targetLang}
		if err := store.ExportToFile(*exportPath, format, glossary, meta); err != nil {
			return fmt.Errorf("exporting glossary: %w", err)
		}
	}

	if memory != nil {
		if err := memory.Save(glossary); err != nil {
			return fmt.Errorf("saving translation memory: %w", err)
		}
	}
	if sessions != nil {
		if err := sessions.Save(context.Background(), *session, glossary); err != nil {
			return fmt.Errorf("saving session glossary: %w", err)
		}
	}

	// Stats
	if !*quiet {
		stats := coverage.Stats()
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Tokens:      %d\n", len(tokens))
		fmt.Fprintf(stderr, "  Resolved:    %d\n", stats.Resolved)
		fmt.Fprintf(stderr, "  Unresolved:  %d\n", stats.Unresolved)
		if suggested != nil {
			fmt.Fprintf(stderr, "  Suggested:   %d of %d\n", suggested.Resolved, suggested.Requested)
		}
		if isoglot.IsRTL(*sourceLang) {
			fmt.Fprintf(stderr, "  Direction:   %s source\n", isoglot.GetDirection(*sourceLang))
		}
	}

	return nil
}

// readInput reads the positional file argument or stdin.
func readInput(fs *flag.FlagSet) (input, name string, err error) {
	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	inputPath := fs.Arg(0)
	data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return "", "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), filepath.Base(inputPath), nil
}

// applyFuse parses a "start:end:translation" spec and applies it.
func applyFuse(engine *isoglot.Engine, spec string) error {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return fmt.Errorf("invalid fuse spec %q (want start:end:translation)", spec)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid fuse start %q", parts[0])
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid fuse end %q", parts[1])
	}
	return engine.Fuse(start, end, parts[2])
}

// formatForPath picks the export format from the file extension, falling
// back to the configured format.
func formatForPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	default:
		return fallback
	}
}

// JSONOutput represents the JSON output format.
type JSONOutput struct {
	Content    string   `json:"content"`
	TokenCount int      `json:"token_count"`
	Resolved   int      `json:"resolved"`
	Unresolved int      `json:"unresolved"`
	Suggested  int      `json:"suggested,omitempty"`
	Pending    []string `json:"pending,omitempty"`
	ElapsedMs  int64    `json:"elapsed_ms"`
}

// outputJSON writes the result as JSON.
func outputJSON(w io.Writer, content string, tokens []isoglot.Token, coverage *isoglot.CoverageReport, suggested *isoglot.SuggestResult, elapsed time.Duration) error {
	stats := coverage.Stats()
	out := JSONOutput{
		Content:    content,
		TokenCount: len(tokens),
		Resolved:   stats.Resolved,
		Unresolved: stats.Unresolved,
		Pending:    coverage.NeedsResolution(),
		ElapsedMs:  elapsed.Milliseconds(),
	}
	if suggested != nil {
		out.Suggested = suggested.Resolved
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
