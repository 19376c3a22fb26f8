package application

import (
	"context"

	"github.com/ezdiharweb/agency-api/social/domain"
)

// SocialService contains the business logic for marketing profiles,
// content plans and content posts.
type SocialService struct {
	profiles domain.ProfileRepository
	plans    domain.PlanRepository
	posts    domain.PostRepository
}

// NewSocialService creates a new SocialService instance
func NewSocialService(profiles domain.ProfileRepository, plans domain.PlanRepository, posts domain.PostRepository) *SocialService {
	return &SocialService{
		profiles: profiles,
		plans:    plans,
		posts:    posts,
	}
}

// Profiles

// UpsertProfile creates the client's profile or updates it in place.
// A client has at most one profile, so the save is keyed by client, not
// by profile ID.
func (s *SocialService) UpsertProfile(ctx context.Context, profile *domain.MarketingProfile) (*domain.MarketingProfile, error) {
	existing, err := s.profiles.GetByClientID(ctx, profile.ClientID)
	if err != nil {
		if err != domain.ErrProfileNotFound {
			return nil, err
		}
		if err := s.profiles.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns a profile by its ID
func (s *SocialService) GetProfile(ctx context.Context, id string) (*domain.MarketingProfile, error) {
	return s.profiles.GetByID(ctx, id)
}

// GetProfileByClient returns the profile attached to a client
func (s *SocialService) GetProfileByClient(ctx context.Context, clientID string) (*domain.MarketingProfile, error) {
	return s.profiles.GetByClientID(ctx, clientID)
}

// DeleteProfile removes a profile
func (s *SocialService) DeleteProfile(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}

// ListProfiles returns every marketing profile
func (s *SocialService) ListProfiles(ctx context.Context) ([]*domain.MarketingProfile, error) {
	return s.profiles.List(ctx)
}

// Plans

// CreatePlan creates a new plan in draft status after checking the
// profile exists.
func (s *SocialService) CreatePlan(ctx context.Context, plan *domain.ContentPlan) error {
	if _, err := s.profiles.GetByID(ctx, plan.ProfileID); err != nil {
		return err
	}
	plan.Status = domain.PlanStatusDraft
	return s.plans.Create(ctx, plan)
}

// GetPlan returns a plan with its posts loaded
func (s *SocialService) GetPlan(ctx context.Context, id string) (*domain.ContentPlan, []*domain.ContentPost, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.posts.ListByPlan(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return plan, posts, nil
}

// UpdatePlan updates an existing plan
func (s *SocialService) UpdatePlan(ctx context.Context, plan *domain.ContentPlan) error {
	return s.plans.Update(ctx, plan)
}

// DeletePlan removes a plan and its posts
func (s *SocialService) DeletePlan(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

// ListPlans returns plans matching the filter, newest month first
func (s *SocialService) ListPlans(ctx context.Context, filter domain.PlanFilter) ([]*domain.ContentPlan, error) {
	return s.plans.List(ctx, filter)
}

// Posts

// CreatePost creates a user-authored post on an existing plan. The
// provider is always recorded as manual.
func (s *SocialService) CreatePost(ctx context.Context, post *domain.ContentPost) error {
	if _, err := s.plans.GetByID(ctx, post.PlanID); err != nil {
		return err
	}
	post.Provider = domain.ProviderManual
	if post.PostType == "" || !post.PostType.Valid() {
		post.PostType = domain.PostTypeFeed
	}
	if post.Platform == "" {
		post.Platform = "instagram"
	}
	return s.posts.Create(ctx, post)
}

// GetPost returns a post by its ID
func (s *SocialService) GetPost(ctx context.Context, id string) (*domain.ContentPost, error) {
	return s.posts.GetByID(ctx, id)
}

// UpdatePost updates an existing post
func (s *SocialService) UpdatePost(ctx context.Context, post *domain.ContentPost) error {
	return s.posts.Update(ctx, post)
}

// DeletePost removes a post
func (s *SocialService) DeletePost(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}
