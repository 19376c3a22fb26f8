package domain

import "time"

// ScheduleType is the fixed weekly posting cadence of a plan.
type ScheduleType string

const (
	// ScheduleMWF posts on Monday, Wednesday and Friday.
	ScheduleMWF ScheduleType = "MWF"
	// ScheduleTuThSa posts on Tuesday, Thursday and Saturday.
	ScheduleTuThSa ScheduleType = "TU_TH_SA"
)

// Valid reports whether the schedule type is one of the supported cadences.
func (s ScheduleType) Valid() bool {
	return s == ScheduleMWF || s == ScheduleTuThSa
}

// Weekdays returns the posting weekdays for this cadence.
func (s ScheduleType) Weekdays() []time.Weekday {
	switch s {
	case ScheduleTuThSa:
		return []time.Weekday{time.Tuesday, time.Thursday, time.Saturday}
	default:
		return []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	}
}

// PlanStatus is the lifecycle state of a content plan.
type PlanStatus string

const (
	PlanStatusDraft      PlanStatus = "draft"
	PlanStatusGenerating PlanStatus = "generating"
	PlanStatusGenerated  PlanStatus = "generated"
	PlanStatusError      PlanStatus = "error"
)

// PostType is the kind of content a post holds.
type PostType string

const (
	PostTypeFeed  PostType = "FEED"
	PostTypeStory PostType = "STORY"
	PostTypeReel  PostType = "REEL"
	PostTypeAd    PostType = "AD"
)

// Valid reports whether the post type is one of the supported kinds.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeFeed, PostTypeStory, PostTypeReel, PostTypeAd:
		return true
	}
	return false
}

// ProviderManual marks posts created by a user rather than by generation.
const ProviderManual = "manual"

// MarketingProfile is a client's marketing brief, consumed read-only by
// the generation pipeline. One profile per client.
type MarketingProfile struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client_id"`
	Industry       string    `json:"industry"`
	Niche          string    `json:"niche"`
	TargetAudience string    `json:"target_audience"`
	BrandTone      string    `json:"brand_tone"`
	Platforms      []string  `json:"platforms"`
	Goals          string    `json:"goals"`
	Competitors    string    `json:"competitors"`
	BrandColors    string    `json:"brand_colors"`
	SampleContent  string    `json:"sample_content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PrimaryPlatform returns the first configured platform, falling back to
// instagram when the profile lists none.
func (p *MarketingProfile) PrimaryPlatform() string {
	if len(p.Platforms) > 0 && p.Platforms[0] != "" {
		return p.Platforms[0]
	}
	return "instagram"
}

// ContentPlan is one calendar month of content for one profile.
// Status transitions are driven exclusively by the generator.
type ContentPlan struct {
	ID           string       `json:"id"`
	ProfileID    string       `json:"profile_id"`
	Year         int          `json:"year"`
	Month        int          `json:"month"` // 1-12
	ScheduleType ScheduleType `json:"schedule_type"`
	Status       PlanStatus   `json:"status"`
	PostsCount   int          `json:"posts_count"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ContentPost is one scheduled content item owned by a plan.
type ContentPost struct {
	ID         string    `json:"id"`
	PlanID     string    `json:"plan_id"`
	Date       time.Time `json:"date"`
	PostType   PostType  `json:"post_type"`
	Platform   string    `json:"platform"`
	CaptionAr  string    `json:"caption_ar"`
	CaptionEn  string    `json:"caption_en"`
	Hashtags   string    `json:"hashtags"`
	CTA        string    `json:"cta"`
	AdHeadline string    `json:"ad_headline"`
	AdBody     string    `json:"ad_body"`
	HookScript string    `json:"hook_script"`
	Provider   string    `json:"provider"` // "openai", "gemini" or "manual"
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
