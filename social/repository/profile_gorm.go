package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ezdiharweb/agency-api/social/domain"
)

// --- Persistence Model ---

type profileModel struct {
	ID             string `gorm:"primaryKey"`
	ClientID       string `gorm:"uniqueIndex:idx_profiles_client;not null"`
	Industry       string
	Niche          string
	TargetAudience string
	BrandTone      string
	Platforms      string // JSON-encoded string array
	Goals          string
	Competitors    string
	BrandColors    string
	SampleContent  string
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (profileModel) TableName() string {
	return "marketing_profiles"
}

// --- Repository Implementation ---

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&profileModel{})
}

func (r *ProfileGormRepository) Create(ctx context.Context, profile *domain.MarketingProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	model := toProfileModel(profile)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *ProfileGormRepository) GetByID(ctx context.Context, id string) (*domain.MarketingProfile, error) {
	var m profileModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return fromProfileModel(m), nil
}

func (r *ProfileGormRepository) GetByClientID(ctx context.Context, clientID string) (*domain.MarketingProfile, error) {
	var m profileModel
	if err := r.db.WithContext(ctx).First(&m, "client_id = ?", clientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return fromProfileModel(m), nil
}

func (r *ProfileGormRepository) Update(ctx context.Context, profile *domain.MarketingProfile) error {
	profile.UpdatedAt = time.Now()
	model := toProfileModel(profile)

	result := r.db.WithContext(ctx).Model(&profileModel{ID: profile.ID}).Select("*").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&profileModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileGormRepository) List(ctx context.Context) ([]*domain.MarketingProfile, error) {
	var models []profileModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	profiles := make([]*domain.MarketingProfile, len(models))
	for i, m := range models {
		profiles[i] = fromProfileModel(m)
	}
	return profiles, nil
}

// --- Mappers ---

func toProfileModel(p *domain.MarketingProfile) profileModel {
	platforms, _ := json.Marshal(p.Platforms)
	return profileModel{
		ID:             p.ID,
		ClientID:       p.ClientID,
		Industry:       p.Industry,
		Niche:          p.Niche,
		TargetAudience: p.TargetAudience,
		BrandTone:      p.BrandTone,
		Platforms:      string(platforms),
		Goals:          p.Goals,
		Competitors:    p.Competitors,
		BrandColors:    p.BrandColors,
		SampleContent:  p.SampleContent,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func fromProfileModel(m profileModel) *domain.MarketingProfile {
	var platforms []string
	if m.Platforms != "" {
		_ = json.Unmarshal([]byte(m.Platforms), &platforms)
	}
	return &domain.MarketingProfile{
		ID:             m.ID,
		ClientID:       m.ClientID,
		Industry:       m.Industry,
		Niche:          m.Niche,
		TargetAudience: m.TargetAudience,
		BrandTone:      m.BrandTone,
		Platforms:      platforms,
		Goals:          m.Goals,
		Competitors:    m.Competitors,
		BrandColors:    m.BrandColors,
		SampleContent:  m.SampleContent,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
