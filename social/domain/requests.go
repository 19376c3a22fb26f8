package domain

// ProfileRequest is the payload for creating or updating a client's
// marketing profile. Profiles are upserted by client.
type ProfileRequest struct {
	ClientID       string   `json:"client_id"`
	Industry       string   `json:"industry"`
	Niche          string   `json:"niche"`
	TargetAudience string   `json:"target_audience"`
	BrandTone      string   `json:"brand_tone"`
	Platforms      []string `json:"platforms"`
	Goals          string   `json:"goals"`
	Competitors    string   `json:"competitors"`
	BrandColors    string   `json:"brand_colors"`
	SampleContent  string   `json:"sample_content"`
}

// CreatePlanRequest is the payload for creating a content plan.
type CreatePlanRequest struct {
	ProfileID    string `json:"profile_id"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	ScheduleType string `json:"schedule_type"`
}

// CreatePostRequest is the payload for creating a post manually.
type CreatePostRequest struct {
	PlanID     string `json:"plan_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	PostType   string `json:"post_type"`
	Platform   string `json:"platform"`
	CaptionAr  string `json:"caption_ar"`
	CaptionEn  string `json:"caption_en"`
	Hashtags   string `json:"hashtags"`
	CTA        string `json:"cta"`
	AdHeadline string `json:"ad_headline"`
	AdBody     string `json:"ad_body"`
	HookScript string `json:"hook_script"`
}
