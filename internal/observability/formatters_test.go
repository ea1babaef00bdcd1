package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-counselor/internal/types"
)

func TestPrintInterestProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintInterestProfile(&types.InterestProfile{
		PrimaryInterests: []string{"Technology & Engineering"},
		InterestScores: map[string]float64{
			"Technology & Engineering": 95,
			"Arts & Creative":          40,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "INTEREST PROFILE")
	assert.Contains(t, out, "Technology & Engineering")
	// Sorted keys keep the output stable.
	assert.Less(t, strings.Index(out, "Arts & Creative"), strings.LastIndex(out, "Technology & Engineering"))
}

func TestPrintNilProfilesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintInterestProfile(nil)
	printer.PrintSkillProfile(nil)
	printer.PrintPersonalityProfile(nil)
	printer.PrintMarketTrends(nil)
	printer.PrintRecommendations(nil)
	printer.PrintStageStatuses(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkillProfileTruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSkillProfile(&types.SkillProfile{
		TechnicalSkills: []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "Terraform", "Airflow"},
	})

	out := buf.String()
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "Airflow")
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRecommendations(&types.CareerRecommendations{
		TopRecommendations: []types.CareerRecommendation{
			{Title: "Machine Learning Engineer", MatchScore: 95, SalaryRange: "100,000 - 150,000 USD", RequiredSkills: []string{"Python"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "CAREER RECOMMENDATIONS")
	assert.Contains(t, out, "#1  Machine Learning Engineer")
	assert.Contains(t, out, "Match: 95%")
}

func TestPrintStageStatuses(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintStageStatuses([]types.StageStatus{
		{Stage: types.StageInterestProfiler, Status: types.StatusOK, Attempts: 1},
		{Stage: types.StagePersonalityMapper, Status: types.StatusFallback, Reason: types.ReasonPrerequisiteMissing},
	})

	out := buf.String()
	assert.Contains(t, out, "STAGE SUMMARY")
	assert.Contains(t, out, "Interest Profiler")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "FALLBACK")
	assert.Contains(t, out, "prerequisite_missing")
}

func TestPrintStageStart(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintStageStart(3, 6, types.StagePersonalityMapper)

	assert.Equal(t, "[3/6] Personality Mapper...\n", buf.String())
}

func TestStageLabel(t *testing.T) {
	assert.Equal(t, "Market Trend Analyzer", stageLabel(types.StageMarketTrendAnalyzer))
	assert.Equal(t, "Custom", stageLabel("custom"))
}
