package application

import (
	"fmt"
	"strings"

	"github.com/ezdiharweb/agency-api/social/domain"
)

// Prompter assembles the weekly content-generation instructions sent to
// the model gateway.
type Prompter struct{}

func NewPrompter() *Prompter {
	return &Prompter{}
}

// BuildWeeklyPrompt renders the instruction block for one week of a plan.
// clientName is the client's display name (company name when present).
// Pure and deterministic: the same inputs always produce the same text.
func (p *Prompter) BuildWeeklyPrompt(profile *domain.MarketingProfile, clientName string, week, totalWeeks int) string {
	platformList := strings.Join(profile.Platforms, ", ")

	competitors := profile.Competitors
	if competitors == "" {
		competitors = "Not specified"
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are a social media strategist for a %s brand in Saudi Arabia / Middle East.

Brand: %s
Industry: %s
Niche: %s
Tone: %s
Target Audience: %s
Platforms: %s
Goals: %s
Competitors: %s

Generate Week %d of %d content plan. This week should contain EXACTLY 3 posting days.

For each posting day, generate:
1. One FEED post with full caption in Arabic + English
2. One STORY idea with a short description
3. If this is week 1 or week 3, also include one REEL/video concept with hook and script outline

For week 2 and week 4, include one AD copy with headline, body text, and CTA.

Return as JSON with this exact structure:
{
  "posts": [
    {
      "dayIndex": 0,
      "postType": "FEED",
      "platform": "instagram",
      "captionAr": "Arabic caption here",
      "captionEn": "English caption here",
      "hashtags": "#hashtag1 #hashtag2 #hashtag3",
      "cta": "Call to action text"
    },
    {
      "dayIndex": 0,
      "postType": "STORY",
      "platform": "instagram",
      "captionAr": "Story idea in Arabic",
      "captionEn": "Story idea in English",
      "hashtags": "",
      "cta": ""
    },
    {
      "dayIndex": 1,
      "postType": "FEED",
      "platform": "instagram",
      "captionAr": "...",
      "captionEn": "...",
      "hashtags": "...",
      "cta": "..."
    }
  ]
}

dayIndex should be 0, 1, or 2 representing the three posting days of this week.
postType must be one of: FEED, STORY, REEL, AD
Make the content creative, engaging, and culturally relevant to the Saudi/Gulf audience.
Captions should be substantial (2-4 sentences minimum).
`,
		profile.Industry,
		clientName,
		profile.Industry,
		profile.Niche,
		profile.BrandTone,
		profile.TargetAudience,
		platformList,
		profile.Goals,
		competitors,
		week,
		totalWeeks,
	))
}
