package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezdiharweb/agency-api/social/domain"
)

func TestBuildWeeklyPrompt(t *testing.T) {
	profile := &domain.MarketingProfile{
		Industry:       "Hospitality",
		Niche:          "Specialty coffee",
		BrandTone:      "Warm and playful",
		TargetAudience: "Young professionals in Riyadh",
		Platforms:      []string{"instagram", "tiktok"},
		Goals:          "Grow brand awareness",
		Competitors:    "Half Million, Barns",
	}

	prompt := NewPrompter().BuildWeeklyPrompt(profile, "Qahwa House", 2, 5)

	assert.Contains(t, prompt, "Brand: Qahwa House")
	assert.Contains(t, prompt, "Industry: Hospitality")
	assert.Contains(t, prompt, "Platforms: instagram, tiktok")
	assert.Contains(t, prompt, "Competitors: Half Million, Barns")
	assert.Contains(t, prompt, "Generate Week 2 of 5 content plan")
	assert.Contains(t, prompt, `"posts"`)
	assert.False(t, strings.HasPrefix(prompt, "\n"), "prompt should be trimmed")
}

func TestBuildWeeklyPrompt_EmptyCompetitors(t *testing.T) {
	profile := &domain.MarketingProfile{Industry: "Retail"}

	prompt := NewPrompter().BuildWeeklyPrompt(profile, "Store", 1, 4)
	assert.Contains(t, prompt, "Competitors: Not specified")
}

func TestBuildWeeklyPrompt_Deterministic(t *testing.T) {
	profile := &domain.MarketingProfile{Industry: "Fitness", Platforms: []string{"instagram"}}

	a := NewPrompter().BuildWeeklyPrompt(profile, "Gym", 3, 5)
	b := NewPrompter().BuildWeeklyPrompt(profile, "Gym", 3, 5)
	assert.Equal(t, a, b)
}
