package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInScope(t *testing.T) {
	tests := []struct {
		query    string
		expected bool
	}{
		{"What are the program executive officers related to the Golden Dome effort?", true},
		{"What is the market size of the Golden Dome effort by mission system?", true},
		{"Explain the latest developments in missile defense technologies", true},
		{"What does Palantir do for the government?", true},
		{"Where is the best ice cream in Boston?", false},
		{"Who won the NBA finals?", false},
		{"How to get a security clearance?", true},
		{"What is the role of DARPA in defense innovation?", true},
		{"Best pizza in New York?", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInScope(tt.query))
		})
	}
}

func TestIsInScopeEmpty(t *testing.T) {
	assert.False(t, IsInScope(""))
}

func TestIsInScopeCaseInsensitive(t *testing.T) {
	assert.True(t, IsInScope("NATO summit outcomes"))
	assert.True(t, IsInScope("nato summit outcomes"))
}

func TestIsInScopeSubstringMatch(t *testing.T) {
	// Substring matching has no word boundaries; embedded keywords match too.
	assert.True(t, IsInScope("the usafe command"))
}
