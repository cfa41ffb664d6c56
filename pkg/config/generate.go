package config

import "strings"

// GenerateConfigContent returns the default configuration rendered as a
// starter config file, with every value line commented out.
func GenerateConfigContent() string {
	return commentOutValues(GetDefaultsContent())
}

// commentOutValues comments every line that assigns a value, keeping blank
// lines, existing comments and section headers as they are.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
