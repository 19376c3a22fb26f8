package domain

import "context"

// ProfileRepository defines persistence operations for marketing profiles
type ProfileRepository interface {
	Create(ctx context.Context, profile *MarketingProfile) error
	GetByID(ctx context.Context, id string) (*MarketingProfile, error)
	GetByClientID(ctx context.Context, clientID string) (*MarketingProfile, error)
	Update(ctx context.Context, profile *MarketingProfile) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*MarketingProfile, error)
}

// PlanFilter defines filtering criteria for listing plans
type PlanFilter struct {
	ProfileID string
}

// PlanRepository defines persistence operations for content plans
type PlanRepository interface {
	Create(ctx context.Context, plan *ContentPlan) error
	GetByID(ctx context.Context, id string) (*ContentPlan, error)
	Update(ctx context.Context, plan *ContentPlan) error
	UpdateStatus(ctx context.Context, id string, status PlanStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PlanFilter) ([]*ContentPlan, error)
}

// PostRepository defines persistence operations for content posts
type PostRepository interface {
	Create(ctx context.Context, post *ContentPost) error
	CreateBatch(ctx context.Context, posts []*ContentPost) error
	GetByID(ctx context.Context, id string) (*ContentPost, error)
	Update(ctx context.Context, post *ContentPost) error
	Delete(ctx context.Context, id string) error
	ListByPlan(ctx context.Context, planID string) ([]*ContentPost, error)
	DeleteByPlan(ctx context.Context, planID string) error
	CountByPlan(ctx context.Context, planID string) (int, error)
}
