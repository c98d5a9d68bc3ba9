package schedgen_test

import (
	"strings"
	"testing"

	"github.com/schedforge/schedgen"
	"github.com/stretchr/testify/assert"
)

func TestComposePrompt(t *testing.T) {
	t.Parallel()

	got := schedgen.ComposePrompt("make it preemptive", "fn main() {}")

	assert.Contains(t, got, "make it preemptive")
	assert.Contains(t, got, "fn main() {}")
	assert.Contains(t, got, "Keep all the original inclusions and dependencies.")
	assert.Contains(t, got, "Keep all the original comments in the code.")
	assert.Contains(t, got, "Output the source code directly")
}

func TestComposePrompt_Deterministic(t *testing.T) {
	t.Parallel()

	a := schedgen.ComposePrompt("req", "src")
	b := schedgen.ComposePrompt("req", "src")
	assert.Equal(t, a, b)
}

func TestComposePrompt_RequirementPrecedesSource(t *testing.T) {
	t.Parallel()

	got := schedgen.ComposePrompt("REQUIREMENT", "SOURCE")
	assert.Less(t, strings.Index(got, "REQUIREMENT"), strings.Index(got, "SOURCE"))
}
