package utils

// ExtractSummary returns content unchanged when it fits within maxLength
// runes, otherwise the maxLength-rune prefix with an ellipsis appended.
func ExtractSummary(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}
	return string(runes[:maxLength]) + "..."
}
