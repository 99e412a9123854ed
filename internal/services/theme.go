package services

import (
	"context"
	"fmt"

	"github.com/yungbote/profile-backend/internal/data/repos"
	types "github.com/yungbote/profile-backend/internal/domain"
	"github.com/yungbote/profile-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ThemeService interface {
	GetAll(ctx context.Context) ([]*types.Theme, error)
	GetByID(ctx context.Context, id int64) (*types.Theme, error)
	GetByName(ctx context.Context, name string) (*types.Theme, error)
	// EnsureDefault inserts the "Default" theme when none by that name exists
	// and reports whether it did.
	EnsureDefault(ctx context.Context) (bool, error)
}

type themeService struct {
	db        *gorm.DB
	log       *logger.Logger
	themeRepo repos.ThemeRepo
}

func NewThemeService(db *gorm.DB, log *logger.Logger, themeRepo repos.ThemeRepo) ThemeService {
	return &themeService{
		db:        db,
		log:       log.With("service", "ThemeService"),
		themeRepo: themeRepo,
	}
}

func (s *themeService) GetAll(ctx context.Context) ([]*types.Theme, error) {
	themes, err := s.themeRepo.GetAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return themes, nil
}

func (s *themeService) GetByID(ctx context.Context, id int64) (*types.Theme, error) {
	theme, err := s.themeRepo.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("get theme %d: %w", id, err)
	}
	if theme == nil {
		return nil, fmt.Errorf("theme %d: %w", id, ErrThemeNotFound)
	}
	return theme, nil
}

func (s *themeService) EnsureDefault(ctx context.Context) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.themeRepo.ExistsByName(ctx, tx, types.DefaultThemeName)
		if err != nil {
			return fmt.Errorf("check default theme: %w", err)
		}
		if exists {
			return nil
		}
		themes, err := s.themeRepo.Create(ctx, tx, []*types.Theme{{
			Name:                     types.DefaultThemeName,
			Description:              "Built-in theme assigned to new profiles.",
			DefaultButtonStyleConfig: "default",
			DefaultTextColor:         "#1f2933",
			DefaultBackgroundColor:   "#ffffff",
		}})
		if err != nil {
			return fmt.Errorf("seed default theme: %w", err)
		}
		created = true
		s.log.Info("Seeded default theme", "theme_id", themes[0].ID)
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *themeService) GetByName(ctx context.Context, name string) (*types.Theme, error) {
	theme, err := s.themeRepo.GetByName(ctx, s.db, name)
	if err != nil {
		return nil, fmt.Errorf("get theme %q: %w", name, err)
	}
	if theme == nil {
		return nil, fmt.Errorf("theme %q: %w", name, ErrThemeNotFound)
	}
	return theme, nil
}
