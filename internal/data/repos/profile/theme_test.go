package profile

import (
	"context"
	"testing"

	"github.com/yungbote/profile-backend/internal/data/repos/testutil"
	types "github.com/yungbote/profile-backend/internal/domain"
)

func TestThemeRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewThemeRepo(db, testutil.Logger(t))

	created, err := repo.Create(ctx, tx, []*types.Theme{
		{Name: "Default", DefaultTextColor: "#000000"},
		{Name: "Dark", DefaultBackgroundColor: "#101010"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 || created[0].ID == 0 || created[1].ID == 0 {
		t.Fatalf("Create: expected 2 themes with ids, got %+v", created)
	}

	all, err := repo.GetAll(ctx, tx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 || all[0].ID > all[1].ID {
		t.Fatalf("GetAll: expected 2 themes ordered by id, got %+v", all)
	}

	byID, err := repo.GetByID(ctx, tx, created[1].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID == nil || byID.Name != "Dark" {
		t.Fatalf("GetByID: unexpected result: %+v", byID)
	}

	missing, err := repo.GetByID(ctx, tx, 999)
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", missing)
	}

	byName, err := repo.GetByName(ctx, tx, "Default")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if byName == nil || byName.ID != created[0].ID {
		t.Fatalf("GetByName: unexpected result: %+v", byName)
	}

	noName, err := repo.GetByName(ctx, tx, "default")
	if err != nil {
		t.Fatalf("GetByName (case): %v", err)
	}
	if noName != nil {
		t.Fatalf("GetByName (case): expected exact match only, got %+v", noName)
	}

	exists, err := repo.ExistsByName(ctx, tx, "Dark")
	if err != nil || !exists {
		t.Fatalf("ExistsByName: exists=%v err=%v", exists, err)
	}
	exists, err = repo.ExistsByName(ctx, tx, "Solarized")
	if err != nil || exists {
		t.Fatalf("ExistsByName (missing): exists=%v err=%v", exists, err)
	}

	if _, err := repo.Create(ctx, tx, []*types.Theme{{Name: "Dark"}}); err == nil {
		t.Fatalf("Create: expected unique violation for duplicate theme name")
	}
}
