package recommend

import (
	"context"
	"errors"
	"fmt"
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
	tiers   []llm.ModelTier
}

func (c *fakeClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	c.tiers = append(c.tiers, tier)
	return c.payload, c.err
}

func (c *fakeClient) GetModel(tier llm.ModelTier) string { return string(tier) }

func (c *fakeClient) Close() error { return nil }

func testInput() *types.UserInput {
	return &types.UserInput{
		Name:           "Alex Johnson",
		EducationLevel: "Master's Degree",
		Interests:      []string{"machine learning"},
	}
}

func testProfiles() (*types.InterestProfile, *types.SkillProfile, *types.PersonalityProfile, *types.MarketTrends) {
	interestProfile := &types.InterestProfile{
		PrimaryInterests: []string{"Technology & Engineering"},
		InterestScores:   map[string]float64{"Technology & Engineering": 95},
		Reasoning:        "technical interests dominate",
	}
	skillProfile := &types.SkillProfile{
		TechnicalSkills: []string{"Python", "TensorFlow"},
		SoftSkills:      []string{"Communication"},
		Reasoning:       "ML stack experience",
	}
	personalityProfile := &types.PersonalityProfile{
		TraitScores:  map[string]float64{types.TraitOpenness: 4.5},
		TeamDynamics: "independent",
		Reasoning:    "open and analytical",
	}
	trends := &types.MarketTrends{
		TrendingCareers: []string{"Machine Learning Engineer"},
		GrowthSectors:   []string{"Artificial Intelligence"},
		Reasoning:       "AI demand",
	}
	return interestProfile, skillProfile, personalityProfile, trends
}

func recJSON(title string, score float64, why string) string {
	return fmt.Sprintf(`{
		"title": %q,
		"match_score": %v,
		"required_skills": ["Python", "TensorFlow"],
		"education_requirements": "Master's Degree",
		"salary_range": "100,000 - 150,000 USD",
		"job_outlook": "Rapid growth",
		"why_recommended": %q
	}`, title, score, why)
}

func validRecsJSON(scores ...float64) string {
	why := "Strong engineering interests and Python skills align with this role"
	return fmt.Sprintf(`{
		"top_recommendations": [%s, %s, %s],
		"alternative_paths": ["Data Scientist"],
		"next_steps": ["Build a portfolio project"],
		"reasoning": "technology focus with machine learning skills"
	}`,
		recJSON("Machine Learning Engineer", scores[0], why),
		recJSON("Data Engineer", scores[1], why),
		recJSON("Software Engineer", scores[2], why))
}

func TestExecuteSuccess(t *testing.T) {
	client := &fakeClient{payload: validRecsJSON(95, 88, 82)}
	recommender := NewRecommender(client, DefaultConfig())

	ip, sp, pp, mt := testProfiles()
	recs, status := recommender.Execute(context.Background(), testInput(), ip, sp, pp, mt)

	require.True(t, status.OK())
	assert.Equal(t, types.StageCareerRecommender, status.Stage)
	require.Len(t, recs.TopRecommendations, 3)
	assert.Equal(t, "Machine Learning Engineer", recs.TopRecommendations[0].Title)
	assert.Equal(t, 95.0, recs.TopRecommendations[0].MatchScore)
	assert.Equal(t, "100,000 - 150,000 USD", recs.TopRecommendations[0].SalaryRange)
	require.Len(t, client.tiers, 1)
	assert.Equal(t, llm.TierAdvanced, client.tiers[0], "synthesis uses the advanced tier")
}

func TestExecuteClampsAndSorts(t *testing.T) {
	client := &fakeClient{payload: validRecsJSON(82, 140, -10)}
	recommender := NewRecommender(client, DefaultConfig())

	ip, sp, pp, mt := testProfiles()
	recs, status := recommender.Execute(context.Background(), testInput(), ip, sp, pp, mt)

	require.True(t, status.OK())
	scores := []float64{
		recs.TopRecommendations[0].MatchScore,
		recs.TopRecommendations[1].MatchScore,
		recs.TopRecommendations[2].MatchScore,
	}
	assert.Equal(t, []float64{100, 82, 0}, scores)
	assert.Equal(t, "Data Engineer", recs.TopRecommendations[0].Title)
}

func TestExecuteRejectsUngroundedRationale(t *testing.T) {
	why := "This is a popular job with good pay"
	payload := fmt.Sprintf(`{
		"top_recommendations": [%s, %s, %s],
		"alternative_paths": [],
		"next_steps": [],
		"reasoning": "generic advice"
	}`,
		ungroundedRec("Influencer", why),
		ungroundedRec("Streamer", why),
		ungroundedRec("Blogger", why))
	client := &fakeClient{payload: payload}
	recommender := NewRecommender(client, DefaultConfig())

	ip, sp, pp, mt := testProfiles()
	recs, status := recommender.Execute(context.Background(), testInput(), ip, sp, pp, mt)

	assert.False(t, status.OK())
	assert.Equal(t, types.ReasonParseFailed, status.Reason)
	assert.Equal(t, FallbackRecommendations(), recs)
}

func ungroundedRec(title, why string) string {
	return fmt.Sprintf(`{
		"title": %q,
		"match_score": 90,
		"required_skills": ["Charisma"],
		"education_requirements": "None",
		"salary_range": "varies",
		"job_outlook": "varies",
		"why_recommended": %q
	}`, title, why)
}

func TestExecuteCallFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("model overloaded")}
	recommender := NewRecommender(client, DefaultConfig())

	ip, sp, pp, mt := testProfiles()
	recs, status := recommender.Execute(context.Background(), testInput(), ip, sp, pp, mt)

	assert.False(t, status.OK())
	assert.Equal(t, types.ReasonCallFailed, status.Reason)
	require.Len(t, recs.TopRecommendations, 3)
	assert.Equal(t, "Business Analyst", recs.TopRecommendations[0].Title)
}

func TestPromptContainsAllProfiles(t *testing.T) {
	client := &fakeClient{payload: validRecsJSON(95, 88, 82)}
	recommender := NewRecommender(client, DefaultConfig())

	ip, sp, pp, mt := testProfiles()
	recommender.Execute(context.Background(), testInput(), ip, sp, pp, mt)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Technology & Engineering")
	assert.Contains(t, prompt, "TensorFlow")
	assert.Contains(t, prompt, "Openness to Experience")
	assert.Contains(t, prompt, "Machine Learning Engineer")
}

func TestValidateRationaleMatchesCategoryHalves(t *testing.T) {
	recs := &types.CareerRecommendations{
		TopRecommendations: []types.CareerRecommendation{
			{WhyRecommended: "Strong engineering background with Python experience"},
		},
	}
	ip := &types.InterestProfile{PrimaryInterests: []string{"Technology & Engineering"}}
	sp := &types.SkillProfile{TechnicalSkills: []string{"Python"}}

	assert.NoError(t, validateRationale(recs, ip, sp), "matching the second half of a category name is enough")
}
