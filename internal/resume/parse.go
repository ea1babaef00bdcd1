package resume

import (
	"regexp"
	"strings"
)

// ContactInfo is the basic contact data pulled from resume text.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	collapseSpace = regexp.MustCompile(`\s+`)
	stripSpecial  = regexp.MustCompile(`[^\w\s\-.,@()]+`)
	runPunct      = regexp.MustCompile(`[.\-]{3,}`)
)

// ExtractContactInfo pulls the first email address and phone number found in
// the text.
func ExtractContactInfo(text string) ContactInfo {
	var info ContactInfo
	if email := emailPattern.FindString(text); email != "" {
		info.Email = email
	}
	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			info.Phone = phone
			break
		}
	}
	return info
}

// Section header keywords, matched case-insensitively against short lines.
// Order matters: a line matching two keywords resolves to the first entry.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"education", regexp.MustCompile(`(?i)(education|academic|qualification)`)},
	{"experience", regexp.MustCompile(`(?i)(experience|employment|work history|professional)`)},
	{"skills", regexp.MustCompile(`(?i)(skills|competencies|technical|abilities)`)},
	{"projects", regexp.MustCompile(`(?i)(projects|portfolio)`)},
	{"certifications", regexp.MustCompile(`(?i)(certification|certificate|license)`)},
}

// sectionHeaderMaxLen guards against paragraph text matching a header keyword.
const sectionHeaderMaxLen = 50

// ExtractSections splits resume text into common named sections keyed by
// section name. Lines before the first recognized header are dropped.
func ExtractSections(text string) map[string]string {
	sections := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matched := false
		if len(line) < sectionHeaderMaxLen {
			for _, sp := range sectionPatterns {
				if sp.pattern.MatchString(line) {
					current = sp.name
					if _, ok := sections[current]; !ok {
						sections[current] = nil
					}
					matched = true
					break
				}
			}
		}
		if !matched && current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	out := make(map[string]string, len(sections))
	for name, lines := range sections {
		out[name] = strings.Join(lines, "\n")
	}
	return out
}

// CleanText collapses whitespace and strips noise characters so resume text
// embeds cleanly into prompts.
func CleanText(text string) string {
	text = collapseSpace.ReplaceAllString(text, " ")
	text = stripSpecial.ReplaceAllString(text, "")
	text = runPunct.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
