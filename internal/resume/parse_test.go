package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Alex Johnson
alex.johnson@example.com | (555) 123-4567

EDUCATION
M.S. Computer Science, State University, 2021

EXPERIENCE
Data Engineer at Retail Analytics Inc
Built ETL pipelines in Python and SQL

SKILLS
Python, SQL, Airflow, Communication
`

func TestExtractContactInfo(t *testing.T) {
	info := ExtractContactInfo(sampleResume)

	assert.Equal(t, "alex.johnson@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
}

func TestExtractContactInfoVariants(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantEmail string
		wantPhone string
	}{
		{"dashed phone", "Reach me at 555-123-4567", "", "555-123-4567"},
		{"international phone", "Call +1 555 123 4567 anytime", "", "+1 555 123 4567"},
		{"email only", "contact: dev@example.org", "dev@example.org", ""},
		{"nothing", "no contact details here", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ExtractContactInfo(tt.text)
			assert.Equal(t, tt.wantEmail, info.Email)
			assert.Equal(t, tt.wantPhone, info.Phone)
		})
	}
}

func TestExtractSections(t *testing.T) {
	sections := ExtractSections(sampleResume)

	require.Contains(t, sections, "education")
	assert.Contains(t, sections["education"], "M.S. Computer Science")

	require.Contains(t, sections, "experience")
	assert.Contains(t, sections["experience"], "ETL pipelines")

	require.Contains(t, sections, "skills")
	assert.Contains(t, sections["skills"], "Airflow")
}

func TestExtractSectionsIgnoresLongLines(t *testing.T) {
	text := "This long paragraph happens to mention extensive professional experience gathered over many years of employment\nSKILLS\nGo"
	sections := ExtractSections(text)

	assert.NotContains(t, sections, "experience", "paragraph text is not a section header")
	assert.Contains(t, sections, "skills")
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses whitespace", "a   b\n\nc", "a b c"},
		{"strips noise characters", "skills: Go*, SQL#", "skills Go, SQL"},
		{"removes punctuation runs", "section.....next", "sectionnext"},
		{"keeps contact punctuation", "a@b.com (555)", "a@b.com (555)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
