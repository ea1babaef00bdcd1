package market

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/types"
)

type fakeClient struct {
	payload string
	err     error
	prompts []string
}

func (c *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.payload, c.err
}

func (c *fakeClient) GetModel(tier llm.ModelTier) string { return string(tier) }

func (c *fakeClient) Close() error { return nil }

const validTrendsJSON = `{
	"trending_careers": ["Machine Learning Engineer", "Data Engineer"],
	"growth_sectors": ["Artificial Intelligence", "Cloud Computing"],
	"salary_insights": {"Machine Learning Engineer": "100,000 - 150,000 USD"},
	"job_outlook": {"Machine Learning Engineer": "Rapid growth"},
	"reasoning": "AI roles dominate demand for this profile"
}`

func testInput() *types.UserInput {
	return &types.UserInput{
		Name:           "Alex Johnson",
		EducationLevel: "Master's Degree",
		Interests:      []string{"machine learning"},
	}
}

func TestExecuteSuccess(t *testing.T) {
	client := &fakeClient{payload: validTrendsJSON}
	analyzer := NewAnalyzer(client, DefaultConfig())

	trends, status := analyzer.Execute(context.Background(), testInput(), nil, nil)

	require.True(t, status.OK())
	assert.Equal(t, types.StageMarketTrendAnalyzer, status.Stage)
	assert.Equal(t, []string{"Machine Learning Engineer", "Data Engineer"}, trends.TrendingCareers)
	assert.Equal(t, "100,000 - 150,000 USD", trends.SalaryInsights["Machine Learning Engineer"])
}

func TestExecuteFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("unavailable")}
	analyzer := NewAnalyzer(client, DefaultConfig())

	trends, status := analyzer.Execute(context.Background(), testInput(), nil, nil)

	assert.False(t, status.OK())
	assert.Equal(t, types.ReasonCallFailed, status.Reason)
	assert.Equal(t, FallbackTrends(), trends)
}

func TestPromptUsesProfiledData(t *testing.T) {
	client := &fakeClient{payload: validTrendsJSON}
	analyzer := NewAnalyzer(client, DefaultConfig())

	interestProfile := &types.InterestProfile{PrimaryInterests: []string{"Technology & Engineering"}}
	skillProfile := &types.SkillProfile{TechnicalSkills: []string{"Python"}, SoftSkills: []string{"Communication"}}

	analyzer.Execute(context.Background(), testInput(), interestProfile, skillProfile)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Technology & Engineering")
	assert.Contains(t, prompt, "Python, Communication")
	assert.Contains(t, prompt, "Master's Degree")
}

func TestPromptWithMissingProfiles(t *testing.T) {
	client := &fakeClient{payload: validTrendsJSON}
	analyzer := NewAnalyzer(client, DefaultConfig())

	analyzer.Execute(context.Background(), testInput(), nil, nil)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "None provided")
}

func TestFallbackTrendsConsistency(t *testing.T) {
	trends := FallbackTrends()

	for _, career := range trends.TrendingCareers {
		assert.Contains(t, trends.SalaryInsights, career)
		assert.Contains(t, trends.JobOutlook, career)
	}
}
