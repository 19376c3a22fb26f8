package rest

// UpdatePlanRequest represents a partial plan update
type UpdatePlanRequest struct {
	Year         *int    `json:"year"`
	Month        *int    `json:"month"`
	ScheduleType *string `json:"schedule_type"`
}

// UpdatePostRequest represents a partial post update
type UpdatePostRequest struct {
	Date       *string `json:"date"`
	PostType   *string `json:"post_type"`
	Platform   *string `json:"platform"`
	CaptionAr  *string `json:"caption_ar"`
	CaptionEn  *string `json:"caption_en"`
	Hashtags   *string `json:"hashtags"`
	CTA        *string `json:"cta"`
	AdHeadline *string `json:"ad_headline"`
	AdBody     *string `json:"ad_body"`
	HookScript *string `json:"hook_script"`
	Status     *string `json:"status"`
}
