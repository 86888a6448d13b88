package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is a placeholder client for local runs without an API key.
// It never makes a network call.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt string, _ float64) (string, error) {
	switch {
	case strings.Contains(prompt, "using this outline"):
		return "This is a locally generated placeholder article.\n\nIt stands in for model output during development.", nil
	case strings.Contains(prompt, "outline"):
		return "## 1. Introduction\n- Background\n- Scope\n\n## 2. Main Body\n- Key point A\n- Key point B\n\n## 3. Conclusion\n- Summary", nil
	case strings.Contains(prompt, "resources"):
		var sb strings.Builder
		for i := 1; i <= 5; i++ {
			fmt.Fprintf(&sb, "%d. Example Resource %d — a placeholder reference.\n", i, i)
		}
		return sb.String(), nil
	default:
		return "Placeholder completion.", nil
	}
}
