package main

import (
	"context"
	"testing"

	"github.com/schedforge/schedgen"
	"github.com/schedforge/schedgen/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		providerName string
		apiKeyFlag   string
		openaiKey    string
		geminiKey    string
		wantErr      string
	}{
		{
			name:    "no keys",
			wantErr: "no API key found",
		},
		{
			name:      "both keys is ambiguous",
			openaiKey: "sk-1",
			geminiKey: "gk-1",
			wantErr:   "multiple API keys found",
		},
		{
			name:      "openai auto-detected",
			openaiKey: "sk-1",
		},
		{
			name:      "gemini auto-detected",
			geminiKey: "gk-1",
		},
		{
			name:         "explicit provider with flag key",
			providerName: "openai",
			apiKeyFlag:   "sk-flag",
		},
		{
			name:         "explicit openai without key",
			providerName: "openai",
			wantErr:      "OPENAI_API_KEY not set",
		},
		{
			name:         "explicit gemini without key",
			providerName: "gemini",
			wantErr:      "GEMINI_API_KEY not set",
		},
		{
			name:         "unknown provider",
			providerName: "claude",
			apiKeyFlag:   "k",
			wantErr:      "unknown provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			provider, err := resolveProvider(context.Background(),
				tt.providerName, tt.apiKeyFlag, tt.openaiKey, tt.geminiKey)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.ErrorIs(t, err, schedgen.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, provider)
		})
	}
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Source:   "src/main.rs",
		Language: "rust",
		Provider: "openai",
		Model:    "gpt-4o",
	}

	applyFlags(cfg, "other.rs", "", "gpt-4o-mini", "")

	assert.Equal(t, "other.rs", cfg.Source)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	// Empty flags keep the config values.
	assert.Equal(t, "rust", cfg.Language)
	assert.Equal(t, "openai", cfg.Provider)
}
