package research

import (
	"strings"
)

// ExtractFindings pulls key findings out of an analysis text. Lines that
// look like bullet or numbered list items contribute their content with the
// two-character prefix stripped. If the text has no such lines, the first
// three sentence fragments stand in as findings.
func ExtractFindings(analysis string) []string {
	findings := []string{}
	for _, line := range strings.Split(analysis, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") ||
			strings.HasPrefix(line, "* ") ||
			(len(line) > 2 && line[0] >= '0' && line[0] <= '9' && line[1] == '.' && line[2] == ' ') {
			findings = append(findings, strings.TrimSpace(line[2:]))
		}
	}

	if len(findings) == 0 && analysis != "" {
		for _, s := range strings.Split(analysis, ".") {
			if s = strings.TrimSpace(s); s != "" {
				findings = append(findings, s)
			}
			if len(findings) == 3 {
				break
			}
		}
	}

	return findings
}
