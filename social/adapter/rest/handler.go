package rest

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	pkgError "github.com/ezdiharweb/agency-api/pkg/error"
	"github.com/ezdiharweb/agency-api/social/application"
	"github.com/ezdiharweb/agency-api/social/domain"
	"github.com/ezdiharweb/agency-api/validations"
)

// SocialHandler handles REST requests for profiles, plans and posts
type SocialHandler struct {
	socialService *application.SocialService
	generator     *application.ContentGenerator
}

// NewSocialHandler creates a new handler instance
func NewSocialHandler(socialService *application.SocialService, generator *application.ContentGenerator) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
		generator:     generator,
	}
}

// RegisterRoutes registers social routes on the Fiber router
func (h *SocialHandler) RegisterRoutes(router fiber.Router) {
	social := router.Group("/social")

	profiles := social.Group("/profiles")
	profiles.Get("/", h.ListProfiles)
	profiles.Post("/", h.UpsertProfile)
	profiles.Get("/:id", h.GetProfile)
	profiles.Delete("/:id", h.DeleteProfile)

	plans := social.Group("/plans")
	plans.Get("/", h.ListPlans)
	plans.Post("/", h.CreatePlan)
	plans.Get("/:id", h.GetPlan)
	plans.Put("/:id", h.UpdatePlan)
	plans.Delete("/:id", h.DeletePlan)
	plans.Post("/:id/generate", h.GeneratePlan)

	posts := social.Group("/posts")
	posts.Post("/", h.CreatePost)
	posts.Get("/:id", h.GetPost)
	posts.Put("/:id", h.UpdatePost)
	posts.Delete("/:id", h.DeletePost)
}

// Profiles

// ListProfiles lists every marketing profile, or resolves a single one
// by its owning client via ?client_id.
func (h *SocialHandler) ListProfiles(c *fiber.Ctx) error {
	if clientID := c.Query("client_id"); clientID != "" {
		profile, err := h.socialService.GetProfileByClient(c.Context(), clientID)
		if err != nil {
			if err == domain.ErrProfileNotFound {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(profile)
	}

	profiles, err := h.socialService.ListProfiles(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": profiles, "count": len(profiles)})
}

// UpsertProfile creates or replaces the client's marketing profile
func (h *SocialHandler) UpsertProfile(c *fiber.Ctx) error {
	var req domain.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validations.ValidateProfile(c.Context(), req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	profile := &domain.MarketingProfile{
		ClientID:       req.ClientID,
		Industry:       req.Industry,
		Niche:          req.Niche,
		TargetAudience: req.TargetAudience,
		BrandTone:      req.BrandTone,
		Platforms:      req.Platforms,
		Goals:          req.Goals,
		Competitors:    req.Competitors,
		BrandColors:    req.BrandColors,
		SampleContent:  req.SampleContent,
	}

	saved, err := h.socialService.UpsertProfile(c.Context(), profile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// GetProfile returns a profile by ID
func (h *SocialHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.socialService.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(profile)
}

// DeleteProfile removes a profile
func (h *SocialHandler) DeleteProfile(c *fiber.Ctx) error {
	if err := h.socialService.DeleteProfile(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrProfileNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Plans

// ListPlans lists plans, optionally filtered by profile, newest month first
func (h *SocialHandler) ListPlans(c *fiber.Ctx) error {
	filter := domain.PlanFilter{ProfileID: c.Query("profile_id")}

	plans, err := h.socialService.ListPlans(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": plans, "count": len(plans)})
}

// CreatePlan creates a new plan in draft status
func (h *SocialHandler) CreatePlan(c *fiber.Ctx) error {
	var req domain.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validations.ValidateCreatePlan(c.Context(), req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	plan := &domain.ContentPlan{
		ProfileID:    req.ProfileID,
		Year:         req.Year,
		Month:        req.Month,
		ScheduleType: domain.ScheduleType(req.ScheduleType),
	}

	if err := h.socialService.CreatePlan(c.Context(), plan); err != nil {
		if err == domain.ErrProfileNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// GetPlan returns a plan with its posts ordered by date
func (h *SocialHandler) GetPlan(c *fiber.Ctx) error {
	plan, posts, err := h.socialService.GetPlan(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrPlanNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"plan": plan, "posts": posts})
}

// UpdatePlan updates plan fields
func (h *SocialHandler) UpdatePlan(c *fiber.Ctx) error {
	plan, _, err := h.socialService.GetPlan(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrPlanNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Year != nil {
		plan.Year = *req.Year
	}
	if req.Month != nil {
		if *req.Month < 1 || *req.Month > 12 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be between 1 and 12"})
		}
		plan.Month = *req.Month
	}
	if req.ScheduleType != nil {
		st := domain.ScheduleType(*req.ScheduleType)
		if !st.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.ErrInvalidSchedule.Error()})
		}
		plan.ScheduleType = st
	}

	if err := h.socialService.UpdatePlan(c.Context(), plan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// DeletePlan removes a plan together with its posts
func (h *SocialHandler) DeletePlan(c *fiber.Ctx) error {
	if err := h.socialService.DeletePlan(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrPlanNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GeneratePlan runs the AI generation pipeline for the plan
func (h *SocialHandler) GeneratePlan(c *fiber.Ctx) error {
	result, err := h.generator.Generate(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case err == domain.ErrPlanNotFound, err == domain.ErrProfileNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case err == domain.ErrInvalidSchedule, err == domain.ErrNoPostingDays:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		var genErr pkgError.GenericError
		if errors.As(err, &genErr) {
			return c.Status(genErr.StatusCode()).JSON(fiber.Map{"error": genErr.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// Posts

// CreatePost creates a user-authored post on a plan
func (h *SocialHandler) CreatePost(c *fiber.Ctx) error {
	var req domain.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validations.ValidateCreatePost(c.Context(), req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	post := &domain.ContentPost{
		PlanID:     req.PlanID,
		Date:       date,
		PostType:   domain.PostType(req.PostType),
		Platform:   req.Platform,
		CaptionAr:  req.CaptionAr,
		CaptionEn:  req.CaptionEn,
		Hashtags:   req.Hashtags,
		CTA:        req.CTA,
		AdHeadline: req.AdHeadline,
		AdBody:     req.AdBody,
		HookScript: req.HookScript,
	}

	if err := h.socialService.CreatePost(c.Context(), post); err != nil {
		if err == domain.ErrPlanNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost returns a post by ID
func (h *SocialHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.socialService.GetPost(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrPostNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(post)
}

// UpdatePost applies a partial update to a post
func (h *SocialHandler) UpdatePost(c *fiber.Ctx) error {
	post, err := h.socialService.GetPost(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrPostNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", strings.TrimSpace(*req.Date))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
		}
		post.Date = date
	}
	if req.PostType != nil {
		pt := domain.PostType(*req.PostType)
		if !pt.Valid() {
			pt = domain.PostTypeFeed
		}
		post.PostType = pt
	}
	if req.Platform != nil {
		post.Platform = *req.Platform
	}
	if req.CaptionAr != nil {
		post.CaptionAr = *req.CaptionAr
	}
	if req.CaptionEn != nil {
		post.CaptionEn = *req.CaptionEn
	}
	if req.Hashtags != nil {
		post.Hashtags = *req.Hashtags
	}
	if req.CTA != nil {
		post.CTA = *req.CTA
	}
	if req.AdHeadline != nil {
		post.AdHeadline = *req.AdHeadline
	}
	if req.AdBody != nil {
		post.AdBody = *req.AdBody
	}
	if req.HookScript != nil {
		post.HookScript = *req.HookScript
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	if err := h.socialService.UpdatePost(c.Context(), post); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(post)
}

// DeletePost removes a post
func (h *SocialHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.socialService.DeletePost(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrPostNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
