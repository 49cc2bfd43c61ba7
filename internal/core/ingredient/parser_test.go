package ingredient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantAmount *float64
		wantUnit   *string
		wantName   string
	}{
		{
			name:       "mixed fraction with unit",
			line:       "2 1/2 cups flour",
			wantAmount: f(2.5),
			wantUnit:   s("cups"),
			wantName:   "flour",
		},
		{
			name:       "integer with unit",
			line:       "500 g chicken breast",
			wantAmount: f(500),
			wantUnit:   s("g"),
			wantName:   "chicken breast",
		},
		{
			name:       "decimal amount",
			line:       "1.5 kg potatoes",
			wantAmount: f(1.5),
			wantUnit:   s("kg"),
			wantName:   "potatoes",
		},
		{
			name:       "plain fraction",
			line:       "1/2 cup sugar",
			wantAmount: f(0.5),
			wantUnit:   s("cup"),
			wantName:   "sugar",
		},
		{
			name:       "range keeps high end",
			line:       "3-4 tomatoes",
			wantAmount: f(4),
			wantUnit:   nil,
			wantName:   "tomatoes",
		},
		{
			name:       "count without unit",
			line:       "2 eggs",
			wantAmount: f(2),
			wantUnit:   nil,
			wantName:   "eggs",
		},
		{
			name:       "no amount at all",
			line:       "salt to taste",
			wantAmount: nil,
			wantUnit:   nil,
			wantName:   "salt to taste",
		},
		{
			name:       "negative amount degrades to name",
			line:       "-5 whatever",
			wantAmount: nil,
			wantUnit:   nil,
			wantName:   "-5 whatever",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)

			assert.Equal(t, tt.line, got.Original)
			assert.Equal(t, tt.wantName, got.Name)
			if tt.wantAmount == nil {
				assert.Nil(t, got.Amount)
			} else {
				require.NotNil(t, got.Amount)
				assert.InDelta(t, *tt.wantAmount, *got.Amount, 1e-9)
			}
			if tt.wantUnit == nil {
				assert.Nil(t, got.Unit)
			} else {
				require.NotNil(t, got.Unit)
				assert.Equal(t, *tt.wantUnit, *got.Unit)
			}
		})
	}
}

func TestParseNeverFails(t *testing.T) {
	lines := []string{
		"", "   ", "2", "1/0 nonsense", "0-0 zeros", "///", "🍅🍅",
		"a very long line with no quantity whatsoever in it",
	}
	for _, line := range lines {
		got := Parse(line)
		assert.Equal(t, line, got.Original)
		if len(got.Name) == 0 {
			// Only blank input may yield a blank name.
			assert.Empty(t, strings.TrimSpace(line))
		}
	}
}

func TestParseNonEmptyCanonical(t *testing.T) {
	for _, line := range []string{"2 eggs", "rosii proaspete", "fresh", "x"} {
		got := Parse(line)
		assert.NotEmpty(t, got.CanonicalName, "line %q", line)
	}
}

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }
