package profile

import (
	"context"
	"testing"

	"github.com/yungbote/profile-backend/internal/data/repos/testutil"
	types "github.com/yungbote/profile-backend/internal/domain"
)

func TestProfileRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewProfileRepo(db, testutil.Logger(t))
	theme := testutil.SeedTheme(t, ctx, tx, "Default")

	got, err := repo.GetByUserID(ctx, tx, 42)
	if err != nil {
		t.Fatalf("GetByUserID (missing): %v", err)
	}
	if got != nil {
		t.Fatalf("GetByUserID (missing): expected nil, got %+v", got)
	}

	themeID := theme.ID
	saved, err := repo.Save(ctx, tx, &types.Profile{
		UserID:         42,
		AvatarURL:      "/uploads/a_avatar.png",
		CurrentThemeID: &themeID,
	})
	if err != nil {
		t.Fatalf("Save (insert): %v", err)
	}
	if saved.UserID != 42 {
		t.Fatalf("Save (insert): unexpected user id %d", saved.UserID)
	}

	got, err = repo.GetByUserID(ctx, tx, 42)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got == nil || got.AvatarURL != "/uploads/a_avatar.png" || got.CurrentThemeID == nil || *got.CurrentThemeID != themeID {
		t.Fatalf("GetByUserID: unexpected result: %+v", got)
	}

	// Full replace: fields left empty on the passed record are cleared.
	if _, err := repo.Save(ctx, tx, &types.Profile{UserID: 42, ButtonStyleConfig: "rounded-blue"}); err != nil {
		t.Fatalf("Save (replace): %v", err)
	}
	got, err = repo.GetByUserID(ctx, tx, 42)
	if err != nil {
		t.Fatalf("GetByUserID (after replace): %v", err)
	}
	if got.ButtonStyleConfig != "rounded-blue" || got.AvatarURL != "" || got.CurrentThemeID != nil {
		t.Fatalf("Save (replace): expected full replace, got %+v", got)
	}

	var count int64
	if err := tx.Model(&types.Profile{}).Where("user_id = ?", 42).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one profile row, got %d", count)
	}

	if _, err := repo.Save(ctx, tx, &types.Profile{UserID: 0}); err == nil {
		t.Fatalf("Save: expected error for zero user id")
	}
}

func TestProfileThemeReferenceClearedOnThemeDelete(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewProfileRepo(db, testutil.Logger(t))

	theme := testutil.SeedTheme(t, ctx, db, "Dark")
	themeID := theme.ID
	if _, err := repo.Save(ctx, nil, &types.Profile{UserID: 9, CurrentThemeID: &themeID}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := db.WithContext(ctx).Delete(&types.Theme{}, themeID).Error; err != nil {
		t.Fatalf("delete theme: %v", err)
	}
	got, err := repo.GetByUserID(ctx, nil, 9)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got == nil || got.CurrentThemeID != nil {
		t.Fatalf("expected theme reference cleared, got %+v", got)
	}

	missing := int64(4040)
	if _, err := repo.Save(ctx, nil, &types.Profile{UserID: 10, CurrentThemeID: &missing}); err == nil {
		t.Fatalf("Save: expected foreign key violation for unknown theme")
	}
}
