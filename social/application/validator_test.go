package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezdiharweb/agency-api/social/domain"
)

func testWeek() []time.Time {
	return []time.Time{
		time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC),
	}
}

func testProfile() *domain.MarketingProfile {
	return &domain.MarketingProfile{
		ID:        "profile-1",
		Platforms: []string{"tiktok", "instagram"},
	}
}

func TestValidateAndMap_HappyPath(t *testing.T) {
	raw := `{"posts":[
		{"dayIndex":0,"postType":"FEED","platform":"instagram","captionAr":"مرحبا","captionEn":"Hello","hashtags":"#hi","cta":"Visit us"},
		{"dayIndex":1,"postType":"REEL","platform":"tiktok","captionEn":"Watch","hookScript":"3 mistakes you make"},
		{"dayIndex":2,"postType":"AD","platform":"instagram","adHeadline":"Big sale","adBody":"50% off"}
	]}`

	v := NewValidator()
	posts, warnings := v.ValidateAndMap(raw, testWeek(), testProfile(), "openai")
	require.Len(t, posts, 3)
	assert.Empty(t, warnings)

	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), posts[0].Date)
	assert.Equal(t, domain.PostTypeFeed, posts[0].PostType)
	assert.Equal(t, "مرحبا", posts[0].CaptionAr)

	assert.Equal(t, domain.PostTypeReel, posts[1].PostType)
	assert.Equal(t, "3 mistakes you make", posts[1].HookScript)

	assert.Equal(t, domain.PostTypeAd, posts[2].PostType)
	assert.Equal(t, "Big sale", posts[2].AdHeadline)

	for _, p := range posts {
		assert.Equal(t, "openai", p.Provider)
	}
}

func TestValidateAndMap_ClampsDayIndex(t *testing.T) {
	raw := `{"posts":[
		{"dayIndex":5,"postType":"FEED","platform":"instagram"},
		{"dayIndex":-2,"postType":"FEED","platform":"instagram"}
	]}`

	v := NewValidator()
	posts, warnings := v.ValidateAndMap(raw, testWeek(), testProfile(), "gemini")
	require.Len(t, posts, 2)
	assert.Empty(t, warnings)

	assert.Equal(t, testWeek()[2], posts[0].Date)
	assert.Equal(t, testWeek()[0], posts[1].Date)
}

func TestValidateAndMap_CoercesUnknownPostType(t *testing.T) {
	raw := `{"posts":[{"dayIndex":0,"postType":"CAROUSEL","platform":"instagram"}]}`

	v := NewValidator()
	posts, _ := v.ValidateAndMap(raw, testWeek(), testProfile(), "openai")
	require.Len(t, posts, 1)
	assert.Equal(t, domain.PostTypeFeed, posts[0].PostType)
}

func TestValidateAndMap_DefaultsPlatformFromProfile(t *testing.T) {
	raw := `{"posts":[{"dayIndex":0,"postType":"FEED"}]}`

	v := NewValidator()
	posts, _ := v.ValidateAndMap(raw, testWeek(), testProfile(), "openai")
	require.Len(t, posts, 1)
	assert.Equal(t, "tiktok", posts[0].Platform)

	posts, _ = v.ValidateAndMap(raw, testWeek(), &domain.MarketingProfile{}, "openai")
	require.Len(t, posts, 1)
	assert.Equal(t, "instagram", posts[0].Platform)
}

func TestValidateAndMap_ParseFailure(t *testing.T) {
	v := NewValidator()
	posts, warnings := v.ValidateAndMap("Sorry, I cannot help with that.", testWeek(), testProfile(), "openai")
	assert.Nil(t, posts)
	require.Len(t, warnings, 1)
	assert.Equal(t, "JSON parse error", warnings[0])
}

func TestValidateAndMap_EmptyPostsArray(t *testing.T) {
	v := NewValidator()

	posts, warnings := v.ValidateAndMap(`{"posts":[]}`, testWeek(), testProfile(), "openai")
	assert.Nil(t, posts)
	require.Len(t, warnings, 1)
	assert.Equal(t, "AI returned empty posts array", warnings[0])

	posts, warnings = v.ValidateAndMap(`{}`, testWeek(), testProfile(), "openai")
	assert.Nil(t, posts)
	require.Len(t, warnings, 1)
}
