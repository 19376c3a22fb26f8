package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ezdiharweb/agency-api/social/domain"
)

// --- Persistence Model ---

type planModel struct {
	ID           string `gorm:"primaryKey"`
	ProfileID    string `gorm:"index:idx_plans_profile;not null"`
	Year         int    `gorm:"not null"`
	Month        int    `gorm:"not null"`
	ScheduleType string `gorm:"not null"`
	Status       string `gorm:"not null;default:draft"`
	// Populated by a subquery on read, never written.
	PostsCount int       `gorm:"->;-:migration"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (planModel) TableName() string {
	return "content_plans"
}

const postsCountSelect = "content_plans.*, " +
	"(SELECT count(*) FROM content_posts WHERE content_posts.plan_id = content_plans.id) AS posts_count"

// --- Repository Implementation ---

type PlanGormRepository struct {
	db *gorm.DB
}

func NewPlanGormRepository(db *gorm.DB) *PlanGormRepository {
	return &PlanGormRepository{db: db}
}

func (r *PlanGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&planModel{})
}

func (r *PlanGormRepository) Create(ctx context.Context, plan *domain.ContentPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.Status == "" {
		plan.Status = domain.PlanStatusDraft
	}
	now := time.Now()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now

	model := toPlanModel(plan)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *PlanGormRepository) GetByID(ctx context.Context, id string) (*domain.ContentPlan, error) {
	var m planModel
	err := r.db.WithContext(ctx).
		Select(postsCountSelect).
		First(&m, "content_plans.id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}
	return fromPlanModel(m), nil
}

func (r *PlanGormRepository) Update(ctx context.Context, plan *domain.ContentPlan) error {
	plan.UpdatedAt = time.Now()
	model := toPlanModel(plan)

	result := r.db.WithContext(ctx).Model(&planModel{ID: plan.ID}).
		Select("profile_id", "year", "month", "schedule_type", "status", "updated_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

func (r *PlanGormRepository) UpdateStatus(ctx context.Context, id string, status domain.PlanStatus) error {
	result := r.db.WithContext(ctx).Model(&planModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

// Delete removes the plan and all of its posts. SQLite schemas created
// by AutoMigrate carry no ON DELETE CASCADE, so the cascade is manual.
func (r *PlanGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&postModel{}, "plan_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&planModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrPlanNotFound
		}
		return nil
	})
}

func (r *PlanGormRepository) List(ctx context.Context, filter domain.PlanFilter) ([]*domain.ContentPlan, error) {
	var models []planModel
	query := r.db.WithContext(ctx).Model(&planModel{}).Select(postsCountSelect)

	if filter.ProfileID != "" {
		query = query.Where("profile_id = ?", filter.ProfileID)
	}

	if err := query.Order("year DESC, month DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	plans := make([]*domain.ContentPlan, len(models))
	for i, m := range models {
		plans[i] = fromPlanModel(m)
	}
	return plans, nil
}

// --- Mappers ---

func toPlanModel(p *domain.ContentPlan) planModel {
	return planModel{
		ID:           p.ID,
		ProfileID:    p.ProfileID,
		Year:         p.Year,
		Month:        p.Month,
		ScheduleType: string(p.ScheduleType),
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func fromPlanModel(m planModel) *domain.ContentPlan {
	return &domain.ContentPlan{
		ID:           m.ID,
		ProfileID:    m.ProfileID,
		Year:         m.Year,
		Month:        m.Month,
		ScheduleType: domain.ScheduleType(m.ScheduleType),
		Status:       domain.PlanStatus(m.Status),
		PostsCount:   m.PostsCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
