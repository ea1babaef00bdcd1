// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-counselor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStageStart announces a stage before its collaborator call runs.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStageStart(index, total int, stage string) {
	fmt.Fprintf(p.out, "[%d/%d] %s...\n", index, total, stageLabel(stage))
}

// PrintInterestProfile outputs a human-readable summary of the interest profile.
func (p *Printer) PrintInterestProfile(profile *types.InterestProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if len(profile.PrimaryInterests) > 0 {
		sb.WriteString("Primary Interests:\n")
		for _, interest := range profile.PrimaryInterests {
			sb.WriteString(fmt.Sprintf("  • %s\n", interest))
		}
	}

	if len(profile.InterestScores) > 0 {
		sb.WriteString("\nScores:\n")
		for _, category := range sortedKeys(profile.InterestScores) {
			sb.WriteString(fmt.Sprintf("  %-32s %5.1f\n", category, profile.InterestScores[category]))
		}
	}

	p.printBox("INTEREST PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillProfile outputs a human-readable summary of the skill profile.
func (p *Printer) PrintSkillProfile(profile *types.SkillProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience: %.1f years\n\n", *profile.ExperienceYears))
	}

	if len(profile.TechnicalSkills) > 0 {
		sb.WriteString("Technical Skills:\n")
		count := min(len(profile.TechnicalSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.TechnicalSkills[i]))
		}
		if len(profile.TechnicalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.TechnicalSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.SoftSkills) > 0 {
		sb.WriteString("Soft Skills:\n")
		count := min(len(profile.SoftSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.SoftSkills[i]))
		}
		if len(profile.SoftSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.SoftSkills)-maxItemsToShow))
		}
	}

	p.printBox("SKILL PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPersonalityProfile outputs the mapped trait scores and work styles.
func (p *Printer) PrintPersonalityProfile(profile *types.PersonalityProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if len(profile.TraitScores) > 0 {
		sb.WriteString("Trait Scores (1-5):\n")
		for _, trait := range types.BigFiveTraits {
			if score, ok := profile.TraitScores[trait]; ok {
				sb.WriteString(fmt.Sprintf("  %-28s %3.1f\n", trait, score))
			}
		}
	}

	if len(profile.WorkStylePreferences) > 0 {
		sb.WriteString("\nWork Style:\n")
		count := min(len(profile.WorkStylePreferences), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.WorkStylePreferences[i]))
		}
	}

	p.printBox("PERSONALITY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMarketTrends outputs the trending careers and growth sectors.
func (p *Printer) PrintMarketTrends(trends *types.MarketTrends) {
	if trends == nil {
		return
	}

	var sb strings.Builder

	if len(trends.TrendingCareers) > 0 {
		sb.WriteString("Trending Careers:\n")
		count := min(len(trends.TrendingCareers), maxItemsToShow)
		for i := 0; i < count; i++ {
			career := trends.TrendingCareers[i]
			sb.WriteString(fmt.Sprintf("  • %s", career))
			if outlook, ok := trends.JobOutlook[career]; ok {
				sb.WriteString(fmt.Sprintf(" (%s)", outlook))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(trends.GrowthSectors) > 0 {
		sb.WriteString("Growth Sectors:\n")
		count := min(len(trends.GrowthSectors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", trends.GrowthSectors[i]))
		}
	}

	p.printBox("MARKET TRENDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the ranked career recommendations.
func (p *Printer) PrintRecommendations(recs *types.CareerRecommendations) {
	if recs == nil || len(recs.TopRecommendations) == 0 {
		return
	}

	var sb strings.Builder

	for i, rec := range recs.TopRecommendations {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Title))
		sb.WriteString(fmt.Sprintf("    Match: %.0f%%  Salary: %s\n", rec.MatchScore, rec.SalaryRange))
		if len(rec.RequiredSkills) > 0 {
			skills := strings.Join(rec.RequiredSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < len(recs.TopRecommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAREER RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStageStatuses outputs the per-stage completion table for a run.
func (p *Printer) PrintStageStatuses(statuses []types.StageStatus) {
	if len(statuses) == 0 {
		return
	}

	var sb strings.Builder
	for _, st := range statuses {
		label := strings.ToUpper(string(st.Status))
		sb.WriteString(fmt.Sprintf("%-22s %-8s", stageLabel(st.Stage), label))
		if st.Reason != types.ReasonNone {
			sb.WriteString(fmt.Sprintf(" (%s)", st.Reason))
		}
		sb.WriteString("\n")
	}

	p.printBox("STAGE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// stageLabel turns a stage name into a display label.
func stageLabel(stage string) string {
	words := strings.Split(stage, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
