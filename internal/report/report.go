// Package report renders a completed counseling run into the plain-text and
// JSON report files. Rendering is deterministic: the same bundle always
// produces byte-identical output.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/career-counselor/internal/types"
)

// Report file names.
const (
	TextFileName = "career_counseling_report.txt"
	JSONFileName = "career_analysis_data.json"
)

// Bundle is the complete set of run outputs a report is rendered from.
type Bundle struct {
	Input           *types.UserInput             `json:"user_input"`
	Interests       *types.InterestProfile       `json:"interest_profile"`
	Skills          *types.SkillProfile          `json:"skill_profile"`
	Personality     *types.PersonalityProfile    `json:"personality_profile"`
	Market          *types.MarketTrends          `json:"market_trends"`
	Recommendations *types.CareerRecommendations `json:"career_recommendations"`
	Output          *types.FormattedOutput       `json:"formatted_output"`
	Statuses        []types.StageStatus          `json:"stage_statuses"`
}

// RenderError is returned when a bundle is missing the pieces a report needs.
type RenderError struct {
	Missing string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render report: missing %s", e.Missing)
}

// RenderText renders the plain-text counseling report.
func RenderText(b *Bundle) (string, error) {
	if b.Output == nil {
		return "", &RenderError{Missing: "formatted output"}
	}
	if b.Recommendations == nil {
		return "", &RenderError{Missing: "career recommendations"}
	}

	var sb strings.Builder
	sb.WriteString("# Career Counseling Report\n")

	sb.WriteString("\n## Executive Summary\n")
	sb.WriteString(b.Output.Summary)
	sb.WriteString("\n")

	sb.WriteString("\n## Top Career Recommendations\n")
	for i, rec := range b.Recommendations.TopRecommendations {
		fmt.Fprintf(&sb, "\n### %d. %s (Match: %s%%)\n", i+1, rec.Title, formatScore(rec.MatchScore))
		fmt.Fprintf(&sb, "- Salary Range: %s\n", rec.SalaryRange)
		fmt.Fprintf(&sb, "- Job Outlook: %s\n", rec.JobOutlook)
		fmt.Fprintf(&sb, "- Education Requirements: %s\n", rec.EducationRequirements)
		fmt.Fprintf(&sb, "- Required Skills: %s\n", strings.Join(rec.RequiredSkills, ", "))
		fmt.Fprintf(&sb, "- Why Recommended: %s\n", rec.WhyRecommended)
	}

	sb.WriteString("\n## Action Plan\n")
	for i, step := range b.Output.ActionPlan {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}

	sb.WriteString("\n## Resources\n")
	for _, resource := range b.Output.Resources {
		fmt.Fprintf(&sb, "- %s\n", resource)
	}

	return sb.String(), nil
}

// RenderJSON renders the structured analysis record with stable indentation.
func RenderJSON(b *Bundle) (string, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report bundle: %w", err)
	}
	return string(data) + "\n", nil
}

// Write renders both report files into dir, creating it if needed, and
// returns the paths written.
func Write(dir string, b *Bundle) (textPath, jsonPath string, err error) {
	text, err := RenderText(b)
	if err != nil {
		return "", "", err
	}
	jsonContent, err := RenderJSON(b)
	if err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating report directory: %w", err)
	}

	textPath = filepath.Join(dir, TextFileName)
	if err := os.WriteFile(textPath, []byte(text), 0o644); err != nil {
		return "", "", fmt.Errorf("writing text report: %w", err)
	}

	jsonPath = filepath.Join(dir, JSONFileName)
	if err := os.WriteFile(jsonPath, []byte(jsonContent), 0o644); err != nil {
		return "", "", fmt.Errorf("writing JSON report: %w", err)
	}

	return textPath, jsonPath, nil
}

// formatScore renders a match score without trailing zeros, so 95.0 prints
// as "95" and 87.5 as "87.5".
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
