package services

import (
	"context"
	"fmt"
	"io"

	"github.com/yungbote/profile-backend/internal/assets"
	"github.com/yungbote/profile-backend/internal/data/repos"
	types "github.com/yungbote/profile-backend/internal/domain"
	"github.com/yungbote/profile-backend/internal/observability"
	"github.com/yungbote/profile-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// ProfileService applies profile updates for an already authenticated user id.
// Each operation runs its reads and its write in one transaction. Concurrent
// updates to the same profile are last-write-wins.
type ProfileService interface {
	// CreateDefault writes a fresh profile for userID, replacing any existing one,
	// with the "Default" theme attached when it exists.
	CreateDefault(ctx context.Context, userID int64) (*types.Profile, error)
	UpdateBackgroundImage(ctx context.Context, userID int64, r io.Reader, originalName string) (string, error)
	UpdateAvatar(ctx context.Context, userID int64, r io.Reader, originalName string) (string, error)
	UpdateButtonStyleConfig(ctx context.Context, userID int64, config string) (*types.Profile, error)
	UpdateCurrentTheme(ctx context.Context, userID int64, themeID int64) (*types.Profile, error)
	GetProfile(ctx context.Context, userID int64) (*types.Profile, error)
	GetProfileView(ctx context.Context, userID int64) (*types.ProfileView, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	themeRepo   repos.ThemeRepo
	assets      assets.Store
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo, themeRepo repos.ThemeRepo, store assets.Store) ProfileService {
	return &profileService{
		db:          db,
		log:         log.With("service", "ProfileService"),
		profileRepo: profileRepo,
		themeRepo:   themeRepo,
		assets:      store,
	}
}

func (s *profileService) CreateDefault(ctx context.Context, userID int64) (*types.Profile, error) {
	var (
		created  *types.Profile
		previous *types.Profile
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prev, err := s.profileRepo.GetByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		previous = prev

		p := &types.Profile{UserID: userID}
		if prev != nil {
			p.CreatedAt = prev.CreatedAt
		}
		theme, err := s.themeRepo.GetByName(ctx, tx, types.DefaultThemeName)
		if err != nil {
			return fmt.Errorf("load default theme: %w", err)
		}
		if theme != nil {
			id := theme.ID
			p.CurrentThemeID = &id
		}

		saved, err := s.profileRepo.Save(ctx, tx, p)
		if err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		created = saved
		return nil
	})
	if err != nil {
		s.log.Warn("CreateDefault failed", "user_id", userID, "error", err)
		return nil, err
	}

	if previous != nil {
		s.log.Info("Profile reinitialized", "user_id", userID)
		s.discardAsset(ctx, previous.BackgroundImageURL)
		s.discardAsset(ctx, previous.AvatarURL)
	}
	return created, nil
}

func (s *profileService) UpdateBackgroundImage(ctx context.Context, userID int64, r io.Reader, originalName string) (string, error) {
	return s.replaceImage(ctx, userID, r, originalName, func(p *types.Profile) *string { return &p.BackgroundImageURL })
}

func (s *profileService) UpdateAvatar(ctx context.Context, userID int64, r io.Reader, originalName string) (string, error) {
	return s.replaceImage(ctx, userID, r, originalName, func(p *types.Profile) *string { return &p.AvatarURL })
}

// replaceImage checks the profile before writing any bytes, so a missing
// profile never leaves an orphaned asset. The new asset is removed again when
// the row cannot be saved. The old one is removed only after commit.
func (s *profileService) replaceImage(ctx context.Context, userID int64, r io.Reader, originalName string, field func(*types.Profile) *string) (string, error) {
	var newPath, oldPath string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.profileRepo.GetByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			return fmt.Errorf("user %d: %w", userID, ErrProfileNotFound)
		}

		stored, err := s.assets.Store(ctx, r, originalName)
		if err != nil {
			observability.Current().ObserveAsset("store", "error")
			return fmt.Errorf("store asset: %w", err)
		}
		observability.Current().ObserveAsset("store", "ok")
		newPath = stored

		ref := field(p)
		oldPath = *ref
		*ref = stored
		if _, err := s.profileRepo.Save(ctx, tx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		return nil
	})
	if err != nil {
		if newPath != "" {
			s.discardAsset(ctx, newPath)
		}
		s.log.Warn("Image update failed", "user_id", userID, "error", err)
		return "", err
	}

	if oldPath != "" && oldPath != newPath {
		s.discardAsset(ctx, oldPath)
	}
	return newPath, nil
}

func (s *profileService) UpdateButtonStyleConfig(ctx context.Context, userID int64, config string) (*types.Profile, error) {
	var updated *types.Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.profileRepo.GetByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			return fmt.Errorf("user %d: %w", userID, ErrProfileNotFound)
		}
		p.ButtonStyleConfig = config
		if updated, err = s.profileRepo.Save(ctx, tx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *profileService) UpdateCurrentTheme(ctx context.Context, userID int64, themeID int64) (*types.Profile, error) {
	var updated *types.Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		theme, err := s.themeRepo.GetByID(ctx, tx, themeID)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
		if theme == nil {
			return fmt.Errorf("theme %d: %w", themeID, ErrThemeNotFound)
		}
		p, err := s.profileRepo.GetByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			return fmt.Errorf("user %d: %w", userID, ErrProfileNotFound)
		}
		id := theme.ID
		p.CurrentThemeID = &id
		if updated, err = s.profileRepo.Save(ctx, tx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *profileService) GetProfile(ctx context.Context, userID int64) (*types.Profile, error) {
	p, err := s.profileRepo.GetByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrProfileNotFound)
	}
	return p, nil
}

func (s *profileService) GetProfileView(ctx context.Context, userID int64) (*types.ProfileView, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &types.ProfileView{Profile: p}
	if p.CurrentThemeID == nil {
		return view, nil
	}
	theme, err := s.themeRepo.GetByID(ctx, s.db, *p.CurrentThemeID)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	if theme == nil {
		s.log.Debug("Profile references a missing theme", "user_id", userID, "theme_id", *p.CurrentThemeID)
	}
	view.Theme = theme
	return view, nil
}

// discardAsset deletes path best-effort. The outcome is only logged.
func (s *profileService) discardAsset(ctx context.Context, path string) {
	if path == "" {
		return
	}
	res := s.assets.Delete(context.WithoutCancel(ctx), path)
	observability.Current().ObserveAsset("delete", res.String())
	if !res.Removed() {
		s.log.Warn("Asset not removed", "path", path, "result", res.String())
	}
}
