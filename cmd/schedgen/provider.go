package main

import (
	"context"
	"fmt"

	"github.com/schedforge/schedgen"
	"github.com/schedforge/schedgen/gemini"
	"github.com/schedforge/schedgen/openai"
)

// resolveProvider selects and constructs the provider. All env var values
// are passed in as parameters; env is only read in run(). A missing
// credential is a fatal configuration error raised before any network call.
func resolveProvider(ctx context.Context, providerName, apiKeyFlag, openaiEnvKey, geminiEnvKey string) (schedgen.Provider, error) {
	provider := providerName

	// Auto-detect from env vars if not configured.
	if provider == "" {
		hasOpenAI := openaiEnvKey != ""
		hasGemini := geminiEnvKey != ""
		switch {
		case hasOpenAI && hasGemini:
			return nil, fmt.Errorf("multiple API keys found (OPENAI_API_KEY, GEMINI_API_KEY): use -provider to select: %w", schedgen.ErrConfiguration)
		case hasOpenAI:
			provider = "openai"
		case hasGemini:
			provider = "gemini"
		default:
			return nil, fmt.Errorf("no API key found: set OPENAI_API_KEY or GEMINI_API_KEY (or use -provider and -api-key): %w", schedgen.ErrConfiguration)
		}
	}

	// Resolve API key: explicit flag overrides env var.
	key := apiKeyFlag
	switch provider {
	case "openai":
		if key == "" {
			key = openaiEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set (use -api-key or environment variable): %w", schedgen.ErrConfiguration)
		}
		return openai.New(key), nil
	case "gemini":
		if key == "" {
			key = geminiEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set (use -api-key or environment variable): %w", schedgen.ErrConfiguration)
		}
		client, err := gemini.New(ctx, key)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown provider %q: must be \"openai\" or \"gemini\": %w", provider, schedgen.ErrConfiguration)
	}
}
