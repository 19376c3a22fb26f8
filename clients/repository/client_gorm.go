package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ezdiharweb/agency-api/clients/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- Persistence Model ---

type clientModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"index:idx_clients_name;not null"`
	Company   string `gorm:"index:idx_clients_company"`
	Email     string `gorm:"index:idx_clients_email"`
	Phone     string `gorm:"index:idx_clients_phone"`
	Notes     string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (clientModel) TableName() string {
	return "clients"
}

// --- Repository Implementation ---

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) InitSchema(ctx context.Context) error {
	// GORM AutoMigrate handles creation and schema updates
	return r.db.WithContext(ctx).AutoMigrate(&clientModel{})
}

// CRUD

func (r *ClientGormRepository) Create(ctx context.Context, client *domain.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now

	model := toClientModel(client)
	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "UNIQUE constraint failed") || strings.Contains(result.Error.Error(), "duplicate key value") {
			return domain.ErrDuplicateClient
		}
		return result.Error
	}
	return nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var m clientModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return fromClientModel(m), nil
}

func (r *ClientGormRepository) Update(ctx context.Context, client *domain.Client) error {
	client.UpdatedAt = time.Now()
	model := toClientModel(client)

	result := r.db.WithContext(ctx).Model(&clientModel{ID: client.ID}).Select("*").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&clientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// List & Search

func (r *ClientGormRepository) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	var models []clientModel
	query := r.db.WithContext(ctx).Model(&clientModel{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR company LIKE ? OR email LIKE ? OR phone LIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	orderBy := "created_at"
	if filter.OrderBy != "" {
		orderBy = filter.OrderBy
	}
	orderDir := "ASC"
	if filter.OrderDesc {
		orderDir = "DESC"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	clients := make([]*domain.Client, len(models))
	for i, m := range models {
		clients[i] = fromClientModel(m)
	}
	return clients, nil
}

func (r *ClientGormRepository) Search(ctx context.Context, query string) ([]*domain.Client, error) {
	return r.List(ctx, domain.ClientFilter{Search: query, Limit: 50})
}

// --- Mappers ---

func toClientModel(c *domain.Client) clientModel {
	return clientModel{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromClientModel(m clientModel) *domain.Client {
	return &domain.Client{
		ID:        m.ID,
		Name:      m.Name,
		Company:   m.Company,
		Email:     m.Email,
		Phone:     m.Phone,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
