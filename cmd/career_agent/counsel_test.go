package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-counselor/internal/config"
	"github.com/jonathan/career-counselor/internal/pipeline"
	"github.com/jonathan/career-counselor/internal/types"
)

func TestLoadUserInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "Alex Johnson",
		"education_level": "Master's Degree",
		"interests": ["machine learning"]
	}`), 0o644))

	input, err := loadUserInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", input.Name)
	assert.Equal(t, []string{"machine learning"}, input.Interests)
}

func TestLoadUserInputErrors(t *testing.T) {
	_, err := loadUserInput(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = loadUserInput(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestStageCall(t *testing.T) {
	call := stageCall(config.StageConfig{})
	assert.Equal(t, 1, call.RetryLimit, "defaults preserved when unset")
	assert.Equal(t, 30*time.Second, call.Timeout)

	call = stageCall(config.StageConfig{RetryLimit: 3, TimeoutSeconds: 10})
	assert.Equal(t, 3, call.RetryLimit)
	assert.Equal(t, 10*time.Second, call.Timeout)
}

func TestApplyStageConfigs(t *testing.T) {
	var opts pipeline.RunOptions
	applyStageConfigs(&opts, map[string]config.StageConfig{
		types.StageCareerRecommender: {RetryLimit: 2},
		"unknown_stage":              {RetryLimit: 9},
	})

	require.NotNil(t, opts.Recommend)
	assert.Equal(t, 2, opts.Recommend.Call.RetryLimit)
	assert.NotNil(t, opts.Recommend.Fallback, "default fallback kept")
	assert.Nil(t, opts.Interests, "unconfigured stages stay nil")
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["counsel"])
	assert.True(t, names["extract-resume"])
	assert.True(t, names["version"])
}
