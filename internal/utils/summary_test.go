package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		maxLength int
		want      string
	}{
		{"shorter than limit", "hello", 40, "hello"},
		{"exactly at limit", strings.Repeat("a", 40), 40, strings.Repeat("a", 40)},
		{"one over limit", strings.Repeat("a", 41), 40, strings.Repeat("a", 40) + "..."},
		{"empty", "", 40, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSummary(tt.content, tt.maxLength))
		})
	}
}

func TestExtractSummaryMultibyte(t *testing.T) {
	// the limit counts runes, not bytes
	content := strings.Repeat("语", 50)
	got := ExtractSummary(content, 40)
	assert.Equal(t, strings.Repeat("语", 40)+"...", got)
}
