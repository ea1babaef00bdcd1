package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-counselor/internal/config"
	"github.com/jonathan/career-counselor/internal/format"
	"github.com/jonathan/career-counselor/internal/interests"
	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/market"
	"github.com/jonathan/career-counselor/internal/observability"
	"github.com/jonathan/career-counselor/internal/personality"
	"github.com/jonathan/career-counselor/internal/pipeline"
	"github.com/jonathan/career-counselor/internal/recommend"
	"github.com/jonathan/career-counselor/internal/report"
	"github.com/jonathan/career-counselor/internal/resume"
	"github.com/jonathan/career-counselor/internal/skills"
	"github.com/jonathan/career-counselor/internal/stage"
	"github.com/jonathan/career-counselor/internal/types"
)

var counselCmd = &cobra.Command{
	Use:   "counsel",
	Short: "Run the full counseling pipeline and write the career report",
	Long:  "Run all six counseling stages over a user profile JSON file and write career_counseling_report.txt and career_analysis_data.json to the output directory.",
	RunE:  runCounsel,
}

var (
	counselInputFile  string
	counselResumeFile string
	counselConfigFile string
	counselOutputDir  string
	counselAPIKey     string
	counselVerbose    bool
)

func init() {
	counselCmd.Flags().StringVarP(&counselInputFile, "in", "i", "", "Path to user profile JSON file (required)")
	counselCmd.Flags().StringVar(&counselResumeFile, "resume", "", "Path to resume file (pdf, docx or txt) merged into the profile")
	counselCmd.Flags().StringVarP(&counselConfigFile, "config", "c", "", "Path to JSON config file")
	counselCmd.Flags().StringVarP(&counselOutputDir, "out", "o", ".", "Directory to write report files into")
	counselCmd.Flags().StringVar(&counselAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	counselCmd.Flags().BoolVarP(&counselVerbose, "verbose", "v", false, "Print per-stage progress and profile summaries")

	rootCmd.AddCommand(counselCmd)
}

func runCounsel(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if counselConfigFile != "" {
		loaded, err := config.LoadConfig(counselConfigFile)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	inputFile := counselInputFile
	if inputFile == "" {
		inputFile = cfg.Input
	}
	if inputFile == "" {
		return fmt.Errorf("user profile file is required (use --in or the config file)")
	}

	outputDir := counselOutputDir
	if outputDir == "." && cfg.Output != "" {
		outputDir = cfg.Output
	}

	apiKey := counselAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	verbose := counselVerbose || cfg.Verbose

	input, err := loadUserInput(inputFile)
	if err != nil {
		return err
	}

	resumeFile := counselResumeFile
	if resumeFile == "" {
		resumeFile = cfg.Resume
	}
	if resumeFile != "" {
		text, err := resume.ExtractFile(resumeFile)
		if err != nil {
			return err
		}
		input.ResumeText = resume.CleanText(text)
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create collaborator client: %w", err)
	}
	defer client.Close()

	printer := observability.NewPrinter(os.Stdout)

	opts := pipeline.RunOptions{Client: client}
	applyStageConfigs(&opts, cfg.Stages)
	if verbose {
		opts.OnProgress = func(ev pipeline.ProgressEvent) {
			if ev.Status == nil {
				printer.PrintStageStart(ev.Index, ev.Total, ev.Stage)
			}
		}
	}

	result, err := pipeline.RunPipeline(ctx, input, opts)
	if err != nil {
		return err
	}

	pc := result.Context
	if verbose {
		printer.PrintInterestProfile(pc.Interests)
		printer.PrintSkillProfile(pc.Skills)
		printer.PrintPersonalityProfile(pc.Personality)
		printer.PrintMarketTrends(pc.Market)
		printer.PrintRecommendations(pc.Recommendations)
		printer.PrintStageStatuses(pc.Statuses)
	}

	textPath, jsonPath, err := report.Write(outputDir, &report.Bundle{
		Input:           pc.Input,
		Interests:       pc.Interests,
		Skills:          pc.Skills,
		Personality:     pc.Personality,
		Market:          pc.Market,
		Recommendations: pc.Recommendations,
		Output:          pc.Output,
		Statuses:        pc.Statuses,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Counseling run %s completed in %s", result.RunID, result.Elapsed.Round(time.Millisecond))
	if n := pc.FallbackCount(); n > 0 {
		fmt.Fprintf(os.Stdout, " (%d stage(s) used fallback data)", n)
	}
	fmt.Fprintln(os.Stdout)
	fmt.Fprintf(os.Stdout, "Report: %s\n", textPath)
	fmt.Fprintf(os.Stdout, "Data:   %s\n", jsonPath)

	return nil
}

func loadUserInput(path string) (*types.UserInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user profile: %w", err)
	}
	var input types.UserInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse user profile JSON: %w", err)
	}
	return &input, nil
}

// applyStageConfigs turns config-file stage records into pipeline overrides,
// keeping each stage's default fallback profile.
func applyStageConfigs(opts *pipeline.RunOptions, stages map[string]config.StageConfig) {
	for name, sc := range stages {
		call := stageCall(sc)
		switch name {
		case types.StageInterestProfiler:
			c := interests.DefaultConfig()
			c.Call = call
			opts.Interests = &c
		case types.StageSkillEvaluator:
			c := skills.DefaultConfig()
			c.Call = call
			opts.Skills = &c
		case types.StagePersonalityMapper:
			c := personality.DefaultConfig()
			c.Call = call
			opts.Personality = &c
		case types.StageMarketTrendAnalyzer:
			c := market.DefaultConfig()
			c.Call = call
			opts.Market = &c
		case types.StageCareerRecommender:
			c := recommend.DefaultConfig()
			c.Call = call
			opts.Recommend = &c
		case types.StageOutputFormatter:
			c := format.DefaultConfig()
			c.Call = call
			opts.Format = &c
		}
	}
}

func stageCall(sc config.StageConfig) stage.Call {
	call := stage.DefaultCall()
	if sc.RetryLimit > 0 {
		call.RetryLimit = sc.RetryLimit
	}
	if sc.TimeoutSeconds > 0 {
		call.Timeout = sc.Timeout()
	}
	return call
}
