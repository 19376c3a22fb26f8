package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ezdiharweb/agency-api/social/domain"
)

// --- Persistence Model ---

type postModel struct {
	ID         string    `gorm:"primaryKey"`
	PlanID     string    `gorm:"index:idx_posts_plan;not null"`
	Date       time.Time `gorm:"index:idx_posts_date;not null"`
	PostType   string    `gorm:"not null;default:FEED"`
	Platform   string
	CaptionAr  string
	CaptionEn  string
	Hashtags   string
	CTA        string `gorm:"column:cta"`
	AdHeadline string
	AdBody     string
	HookScript string
	Provider   string `gorm:"not null"`
	Status     string `gorm:"not null;default:draft"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (postModel) TableName() string {
	return "content_posts"
}

// --- Repository Implementation ---

type PostGormRepository struct {
	db *gorm.DB
}

func NewPostGormRepository(db *gorm.DB) *PostGormRepository {
	return &PostGormRepository{db: db}
}

func (r *PostGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&postModel{})
}

func (r *PostGormRepository) Create(ctx context.Context, post *domain.ContentPost) error {
	preparePost(post)
	model := toPostModel(post)
	return r.db.WithContext(ctx).Create(&model).Error
}

// CreateBatch inserts every post of a generation run in one statement.
func (r *PostGormRepository) CreateBatch(ctx context.Context, posts []*domain.ContentPost) error {
	if len(posts) == 0 {
		return nil
	}
	models := make([]postModel, len(posts))
	for i, p := range posts {
		preparePost(p)
		models[i] = toPostModel(p)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *PostGormRepository) GetByID(ctx context.Context, id string) (*domain.ContentPost, error) {
	var m postModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return fromPostModel(m), nil
}

func (r *PostGormRepository) Update(ctx context.Context, post *domain.ContentPost) error {
	post.UpdatedAt = time.Now()
	model := toPostModel(post)

	result := r.db.WithContext(ctx).Model(&postModel{ID: post.ID}).Select("*").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&postModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostGormRepository) ListByPlan(ctx context.Context, planID string) ([]*domain.ContentPost, error) {
	var models []postModel
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.ContentPost, len(models))
	for i, m := range models {
		posts[i] = fromPostModel(m)
	}
	return posts, nil
}

func (r *PostGormRepository) DeleteByPlan(ctx context.Context, planID string) error {
	return r.db.WithContext(ctx).Delete(&postModel{}, "plan_id = ?", planID).Error
}

func (r *PostGormRepository) CountByPlan(ctx context.Context, planID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&postModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error
	return int(count), err
}

// --- Mappers ---

func preparePost(p *domain.ContentPost) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = "draft"
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

func toPostModel(p *domain.ContentPost) postModel {
	return postModel{
		ID:         p.ID,
		PlanID:     p.PlanID,
		Date:       p.Date,
		PostType:   string(p.PostType),
		Platform:   p.Platform,
		CaptionAr:  p.CaptionAr,
		CaptionEn:  p.CaptionEn,
		Hashtags:   p.Hashtags,
		CTA:        p.CTA,
		AdHeadline: p.AdHeadline,
		AdBody:     p.AdBody,
		HookScript: p.HookScript,
		Provider:   p.Provider,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func fromPostModel(m postModel) *domain.ContentPost {
	return &domain.ContentPost{
		ID:         m.ID,
		PlanID:     m.PlanID,
		Date:       m.Date,
		PostType:   domain.PostType(m.PostType),
		Platform:   m.Platform,
		CaptionAr:  m.CaptionAr,
		CaptionEn:  m.CaptionEn,
		Hashtags:   m.Hashtags,
		CTA:        m.CTA,
		AdHeadline: m.AdHeadline,
		AdBody:     m.AdBody,
		HookScript: m.HookScript,
		Provider:   m.Provider,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
