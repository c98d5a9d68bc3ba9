// Command schedgen rewrites a scheduler's source with an LLM and rebuilds it.
//
// Usage:
//
//	OPENAI_API_KEY=sk-... schedgen [flags] "REQUIREMENT"
//	GEMINI_API_KEY=gk-... schedgen [flags] "REQUIREMENT"
//
// Flags:
//
//	-config string    Path to TOML config file (default: schedgen.toml)
//	-source string    Canonical source file (default: src/main.rs)
//	-provider string  Provider: openai, gemini (auto-detected from env vars if omitted)
//	-model string     Model ID (default: provider default)
//	-api-key string   API key (overrides provider's env var)
//	-language string  Fence language tag (default: rust)
//	-skip-build       Commit the rewritten source without building or running it
//	-dry-run          Print the composed prompt and exit without calling the model
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/schedforge/schedgen"
	"github.com/schedforge/schedgen/cargo"
	"github.com/schedforge/schedgen/config"
	"github.com/schedforge/schedgen/sink"
	"github.com/schedforge/schedgen/source"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "schedgen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load a .env file when present, so API keys can live alongside the
	// project instead of the shell profile. Absence is not an error.
	_ = godotenv.Load()

	// Parse flags.
	var (
		configPath   = flag.String("config", config.DefaultPath, "Path to TOML config file")
		sourcePath   = flag.String("source", "", "Canonical source file (overrides config)")
		providerFlag = flag.String("provider", "", "Provider: openai, gemini (auto-detected from env vars if omitted)")
		model        = flag.String("model", "", "Model ID (provider-specific)")
		apiKey       = flag.String("api-key", "", "API key (overrides provider's env var)")
		language     = flag.String("language", "", "Fence language tag (overrides config)")
		skipBuild    = flag.Bool("skip-build", false, "Commit the rewritten source without building or running it")
		dryRun       = flag.Bool("dry-run", false, "Print the composed prompt and exit without calling the model")
	)
	flag.Parse()

	// The requirement is the single positional argument; its absence is a
	// fatal pre-flight condition.
	if flag.NArg() < 1 || flag.Arg(0) == "" {
		return fmt.Errorf("usage: schedgen [flags] \"REQUIREMENT\": %w", schedgen.ErrConfiguration)
	}
	requirement := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, *sourcePath, *providerFlag, *model, *language)

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := source.NewFile(cfg.Source)

	if *dryRun {
		original, err := src.Read()
		if err != nil {
			return err
		}
		fmt.Println(schedgen.ComposePrompt(requirement, original))
		return nil
	}

	// Resolve provider. Env vars are read here and passed as values; a
	// missing credential aborts before any network or file activity.
	provider, err := resolveProvider(ctx, cfg.Provider, *apiKey,
		os.Getenv("OPENAI_API_KEY"), os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}

	opts := []schedgen.Option{
		schedgen.WithProgress(sink.NewWriter(os.Stdout)),
		schedgen.WithModel(cfg.Model),
		schedgen.WithLanguage(cfg.Language),
	}
	if !*skipBuild {
		opts = append(opts, schedgen.WithBuilder(cargo.New(
			cargo.WithBuildCommand(cfg.Build.Command...),
			cargo.WithRunCommand(cfg.Build.Run...),
		)))
	}

	pipeline := schedgen.New(provider, src, opts...)
	res, err := pipeline.Run(ctx, requirement)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\ncommitted %d bytes to %s\n", len(res.Code), src.Path())
	if res.BuildStatus != schedgen.StatusSkipped {
		fmt.Fprintf(os.Stderr, "build exited with status %d\n", res.BuildStatus)
	}
	if res.RunStatus != schedgen.StatusSkipped {
		fmt.Fprintf(os.Stderr, "scheduler exited with status %d\n", res.RunStatus)
	}
	return nil
}

// applyFlags overlays non-empty flag values onto the file config.
func applyFlags(cfg *config.Config, sourcePath, provider, model, language string) {
	if sourcePath != "" {
		cfg.Source = sourcePath
	}
	if provider != "" {
		cfg.Provider = provider
	}
	if model != "" {
		cfg.Model = model
	}
	if language != "" {
		cfg.Language = language
	}
}
