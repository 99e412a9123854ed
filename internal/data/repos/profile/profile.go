package profile

import (
	"context"
	"errors"
	"fmt"

	types "github.com/yungbote/profile-backend/internal/domain"
	"github.com/yungbote/profile-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProfileRepo interface {
	// GetByUserID returns (nil, nil) when the user has no profile.
	GetByUserID(ctx context.Context, tx *gorm.DB, userID int64) (*types.Profile, error)
	// Save inserts or fully replaces the row keyed by UserID.
	Save(ctx context.Context, tx *gorm.DB, p *types.Profile) (*types.Profile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (r *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID int64) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var p types.Profile
	err := transaction.WithContext(ctx).Where("user_id = ?", userID).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Save(ctx context.Context, tx *gorm.DB, p *types.Profile) (*types.Profile, error) {
	if p == nil {
		return nil, fmt.Errorf("profile required")
	}
	if p.UserID <= 0 {
		return nil, fmt.Errorf("invalid user id %d", p.UserID)
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
