package teachercoursestore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	teachercoursestore "github.com/dalemusser/coursehub/internal/app/store/teachercourses"
	"github.com/dalemusser/coursehub/internal/app/system/oid"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
)

func TestCreate_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)

	created, err := store.Create(ctx, models.TeacherCourse{
		Title: "Go Basics",
		Modules: []models.Module{
			{Title: "Setup"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Status != "draft" {
		t.Errorf("status: got %q, want draft", created.Status)
	}
	if created.StudentCount != 0 {
		t.Errorf("student_count: got %d, want 0", created.StudentCount)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected created_at and updated_at to be set")
	}
	if len(created.Modules) != 1 {
		t.Fatalf("modules: got %d", len(created.Modules))
	}
	if !oid.IsValid(created.Modules[0].ID) {
		t.Errorf("module id not a valid ObjectID hex: %q", created.Modules[0].ID)
	}
	if created.Modules[0].Lessons == nil {
		t.Error("lessons should be initialized to an empty slice")
	}
}

func TestCreate_PreservesValidModuleIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)

	keep := primitive.NewObjectID().Hex()
	created, err := store.Create(ctx, models.TeacherCourse{
		Title: "Stable IDs",
		Modules: []models.Module{
			{ID: keep, Title: "Kept"},
			{ID: "not-a-valid-id", Title: "Reissued"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Modules[0].ID != keep {
		t.Errorf("valid module id was replaced: %q", created.Modules[0].ID)
	}
	if created.Modules[1].ID == "not-a-valid-id" || !oid.IsValid(created.Modules[1].ID) {
		t.Errorf("invalid module id should be reissued, got %q", created.Modules[1].ID)
	}
}

func TestUpdateByID_PreservesModuleIDsByDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	course := fx.CreateTeacherCourse(ctx, "Module Identity")
	originalID := course.Modules[0].ID

	updated, err := store.UpdateByID(ctx, course.ID, teachercoursestore.Update{
		Title:      "Module Identity v2",
		Status:     "draft",
		Modules:    course.Modules,
		SetModules: true,
	})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if updated.Modules[0].ID != originalID {
		t.Errorf("module id changed across update: %q -> %q", originalID, updated.Modules[0].ID)
	}
}

func TestUpdateByID_RegenerateModuleIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	course := fx.CreateTeacherCourse(ctx, "Reissued")
	originalID := course.Modules[0].ID

	updated, err := store.UpdateByID(ctx, course.ID, teachercoursestore.Update{
		Title:               "Reissued v2",
		Modules:             course.Modules,
		SetModules:          true,
		RegenerateModuleIDs: true,
	})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if updated.Modules[0].ID == originalID {
		t.Error("module id should be reissued when regeneration is requested")
	}
	if !oid.IsValid(updated.Modules[0].ID) {
		t.Errorf("reissued module id not valid: %q", updated.Modules[0].ID)
	}
}

func TestUpdateByID_KeepsModulesWhenNotSet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	course := fx.CreateTeacherCourse(ctx, "Modules Stay")

	updated, err := store.UpdateByID(ctx, course.ID, teachercoursestore.Update{
		Title: "Renamed",
	})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if len(updated.Modules) != len(course.Modules) {
		t.Errorf("modules replaced without SetModules: got %d", len(updated.Modules))
	}
	if updated.Status != "draft" {
		t.Errorf("empty status should default to draft, got %q", updated.Status)
	}
}

func TestUpdateByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)

	_, err := store.UpdateByID(ctx, primitive.NewObjectID(), teachercoursestore.Update{Title: "Nope"})
	if !errors.Is(err, teachercoursestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetModules(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	course := fx.CreateTeacherCourse(ctx, "With Modules")

	modules, err := store.GetModules(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetModules failed: %v", err)
	}
	if len(modules) != 1 {
		t.Fatalf("modules: got %d, want 1", len(modules))
	}
	if modules[0].Title != "Module One" {
		t.Errorf("module title: got %q", modules[0].Title)
	}
}

func TestGetModules_EmptyAndMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)

	created, err := store.Create(ctx, models.TeacherCourse{Title: "No Modules"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	modules, err := store.GetModules(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetModules failed: %v", err)
	}
	if modules == nil || len(modules) != 0 {
		t.Errorf("expected empty module slice, got %#v", modules)
	}

	if _, err := store.GetModules(ctx, primitive.NewObjectID()); !errors.Is(err, teachercoursestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing course, got %v", err)
	}
}

func TestDeleteByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teachercoursestore.New(db)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	course := fx.CreateTeacherCourse(ctx, "Doomed")

	if err := store.DeleteByID(ctx, course.ID); err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	if err := store.DeleteByID(ctx, course.ID); !errors.Is(err, teachercoursestore.ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestNormalizeModules_DistinctIDs(t *testing.T) {
	modules := []models.Module{
		{Title: "A"}, {Title: "B"}, {Title: "C"},
	}

	out := teachercoursestore.NormalizeModules(modules, false)

	seen := map[string]bool{}
	for _, m := range out {
		if !oid.IsValid(m.ID) {
			t.Errorf("module %q has invalid id %q", m.Title, m.ID)
		}
		if seen[m.ID] {
			t.Errorf("duplicate module id %q", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestNormalizeModules_PreservesOrder(t *testing.T) {
	modules := []models.Module{
		{Title: "first"}, {Title: "second"}, {Title: "third"},
	}

	out := teachercoursestore.NormalizeModules(modules, true)

	for i, want := range []string{"first", "second", "third"} {
		if out[i].Title != want {
			t.Errorf("position %d: got %q, want %q", i, out[i].Title, want)
		}
	}
}
