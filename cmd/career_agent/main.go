// Package main provides the entry point for the career counseling CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "AI career counseling pipeline",
	Long:  "Career agent runs a six-stage counseling pipeline (interests, skills, personality, market trends, recommendations, formatting) over a user profile and writes a personalized career report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
