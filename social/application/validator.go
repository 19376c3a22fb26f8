package application

import (
	"encoding/json"
	"time"

	"github.com/ezdiharweb/agency-api/social/domain"
)

// rawPost mirrors the loosely-typed post object the model is asked to
// return. Nothing outside this file sees the raw shape.
type rawPost struct {
	DayIndex   int    `json:"dayIndex"`
	PostType   string `json:"postType"`
	Platform   string `json:"platform"`
	CaptionAr  string `json:"captionAr"`
	CaptionEn  string `json:"captionEn"`
	Hashtags   string `json:"hashtags"`
	CTA        string `json:"cta"`
	AdHeadline string `json:"adHeadline"`
	AdBody     string `json:"adBody"`
	HookScript string `json:"hookScript"`
}

type weekResponse struct {
	Posts []rawPost `json:"posts"`
}

// Validator decodes and normalizes a provider response for one week into
// strongly-typed posts ready for persistence.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndMap parses raw as JSON and resolves each item against the
// week's posting dates. Malformed input never fails the week hard: a
// parse failure or a missing posts array yields zero posts plus a
// warning, and individual items are repaired rather than dropped
// (dayIndex clamped into range, unknown postType coerced to FEED).
func (v *Validator) ValidateAndMap(raw string, weekDates []time.Time, profile *domain.MarketingProfile, provider string) ([]*domain.ContentPost, []string) {
	var warnings []string

	var parsed weekResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, append(warnings, "JSON parse error")
	}

	if len(parsed.Posts) == 0 {
		return nil, append(warnings, "AI returned empty posts array")
	}

	posts := make([]*domain.ContentPost, 0, len(parsed.Posts))
	for _, rp := range parsed.Posts {
		dayIndex := rp.DayIndex
		if dayIndex < 0 {
			dayIndex = 0
		}
		if dayIndex > len(weekDates)-1 {
			dayIndex = len(weekDates) - 1
		}
		date := weekDates[dayIndex]

		postType := domain.PostType(rp.PostType)
		if !postType.Valid() {
			postType = domain.PostTypeFeed
		}

		platform := rp.Platform
		if platform == "" {
			platform = profile.PrimaryPlatform()
		}

		posts = append(posts, &domain.ContentPost{
			Date:       date,
			PostType:   postType,
			Platform:   platform,
			CaptionAr:  rp.CaptionAr,
			CaptionEn:  rp.CaptionEn,
			Hashtags:   rp.Hashtags,
			CTA:        rp.CTA,
			AdHeadline: rp.AdHeadline,
			AdBody:     rp.AdBody,
			HookScript: rp.HookScript,
			Provider:   provider,
			Status:     "draft",
		})
	}

	return posts, warnings
}
