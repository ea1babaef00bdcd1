package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-counselor/internal/resume"
)

var extractResumeCmd = &cobra.Command{
	Use:   "extract-resume",
	Short: "Extract plain text and structure from a resume file",
	Long:  "Extract plain text from a resume file (pdf, docx or txt) along with detected contact info and named sections, printed as JSON.",
	RunE:  runExtractResume,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractTextOnly   bool
)

func init() {
	extractResumeCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume file (required)")
	extractResumeCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output file (default: stdout)")
	extractResumeCmd.Flags().BoolVar(&extractTextOnly, "text", false, "Print only the extracted plain text")

	rootCmd.AddCommand(extractResumeCmd)
}

type extractedResume struct {
	Text     string             `json:"text"`
	Contact  resume.ContactInfo `json:"contact"`
	Sections map[string]string  `json:"sections,omitempty"`
}

func runExtractResume(_ *cobra.Command, _ []string) error {
	if extractInputFile == "" {
		return fmt.Errorf("resume file is required (use --in)")
	}

	text, err := resume.ExtractFile(extractInputFile)
	if err != nil {
		return err
	}

	var output []byte
	if extractTextOnly {
		output = []byte(text + "\n")
	} else {
		result := extractedResume{
			Text:     text,
			Contact:  resume.ExtractContactInfo(text),
			Sections: resume.ExtractSections(text),
		}
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = append(output, '\n')
	}

	if extractOutputFile == "" {
		_, err = os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(extractOutputFile, output, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
	return nil
}
