package profile

import (
	"context"
	"errors"

	types "github.com/yungbote/profile-backend/internal/domain"
	"github.com/yungbote/profile-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// ThemeRepo lookups return (nil, nil) when no row matches.
type ThemeRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Theme, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Theme, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Theme, error)
	ExistsByName(ctx context.Context, tx *gorm.DB, name string) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, themes []*types.Theme) ([]*types.Theme, error)
}

type themeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewThemeRepo(db *gorm.DB, baseLog *logger.Logger) ThemeRepo {
	return &themeRepo{db: db, log: baseLog.With("repo", "ThemeRepo")}
}

func (r *themeRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *themeRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Theme, error) {
	results := []*types.Theme{}
	if err := r.conn(tx).WithContext(ctx).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *themeRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Theme, error) {
	var theme types.Theme
	err := r.conn(tx).WithContext(ctx).Where("id = ?", id).Take(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *themeRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Theme, error) {
	var theme types.Theme
	err := r.conn(tx).WithContext(ctx).Where("theme_name = ?", name).Take(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *themeRepo) ExistsByName(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.Theme{}).
		Where("theme_name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *themeRepo) Create(ctx context.Context, tx *gorm.DB, themes []*types.Theme) ([]*types.Theme, error) {
	if len(themes) == 0 {
		return []*types.Theme{}, nil
	}
	if err := r.conn(tx).WithContext(ctx).Create(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}
