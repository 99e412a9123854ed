package testutil

import (
	"context"
	"testing"

	types "github.com/yungbote/profile-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedTheme(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Theme {
	tb.Helper()
	th := &types.Theme{
		Name:                     name,
		Description:              name + " theme",
		DefaultButtonStyleConfig: "btn-" + name,
		DefaultTextColor:         "#222222",
		DefaultBackgroundColor:   "#ffffff",
	}
	if err := tx.WithContext(ctx).Create(th).Error; err != nil {
		tb.Fatalf("seed theme: %v", err)
	}
	return th
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, p *types.Profile) *types.Profile {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}
