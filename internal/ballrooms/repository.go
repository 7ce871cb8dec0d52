package ballrooms

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, ballroom *Ballroom) error
	GetByID(ctx context.Context, id uint) (*Ballroom, error)
	GetAll(ctx context.Context) ([]Ballroom, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ballroom *Ballroom) error {
	if err := r.db.WithContext(ctx).Create(ballroom).Error; err != nil {
		return fmt.Errorf("failed to create ballroom: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Ballroom, error) {
	var ballroom Ballroom
	err := r.db.WithContext(ctx).First(&ballroom, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ballroom %d: %w", id, err)
	}
	return &ballroom, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Ballroom, error) {
	var list []Ballroom
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list ballrooms: %w", err)
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Ballroom{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update ballroom %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&Ballroom{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete ballroom %d: %w", id, err)
	}
	return nil
}
