package teachercourses_test

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/coursehub/internal/app/features/teachercourses"
	teachercoursestore "github.com/dalemusser/coursehub/internal/app/store/teachercourses"
	"github.com/dalemusser/coursehub/internal/app/uploads"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
)

func newTestHandler(t *testing.T) (*teachercourses.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ingestor := uploads.NewIngestor(t.TempDir(), "/uploads")
	handler := teachercourses.NewHandler(teachercoursestore.New(db), ingestor, zap.NewNop())
	return handler, testutil.NewFixtures(t, db)
}

// pngDataURI returns a valid data URI containing a tiny PNG.
func pngDataURI(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestServeCreate(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{
		"title": "Go Basics",
		"description": "Start here",
		"modules": [
			{"title": "Setup", "lessons": [{"title": "Install", "duration": "5:30"}]}
		]
	}`
	req := testutil.NewJSONRequest("POST", "/teacher_courses/", body)
	rec := testutil.NewRecorder()

	handler.ServeCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var created models.TeacherCourse
	rec.DecodeJSON(t, &created)
	if created.Status != "draft" {
		t.Errorf("status: got %q, want draft", created.Status)
	}
	if created.Category != "General" || created.Level != "Beginner" {
		t.Errorf("defaults not applied: category=%q level=%q", created.Category, created.Level)
	}
	if len(created.Modules) != 1 || created.Modules[0].ID == "" {
		t.Errorf("module id not assigned: %#v", created.Modules)
	}
}

func TestServeCreate_WithThumbnail(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := fmt.Sprintf(`{"title":"Pictured","thumbnail_image":%q}`, pngDataURI(t))
	req := testutil.NewJSONRequest("POST", "/teacher_courses/", body)
	rec := testutil.NewRecorder()

	handler.ServeCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var created models.TeacherCourse
	rec.DecodeJSON(t, &created)
	if !strings.HasPrefix(created.ThumbnailPath, "/uploads/") {
		t.Errorf("thumbnail path: got %q", created.ThumbnailPath)
	}
	if !strings.HasSuffix(created.ThumbnailPath, ".png") {
		t.Errorf("thumbnail extension: got %q", created.ThumbnailPath)
	}
}

func TestServeCreate_BadImageFormat(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"title":"Broken","thumbnail_image":"http://example.com/not-a-data-uri.png"}`
	req := testutil.NewJSONRequest("POST", "/teacher_courses/", body)
	rec := testutil.NewRecorder()

	handler.ServeCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertDetail(t, "Invalid image format")
}

func TestServeCreate_BadImageData(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"title":"Broken","thumbnail_image":"data:image/png;base64,!!!not-base64!!!"}`
	req := testutil.NewJSONRequest("POST", "/teacher_courses/", body)
	rec := testutil.NewRecorder()

	handler.ServeCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertDetail(t, "Invalid base64 image")
}

func TestServeCreate_BadDuration(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{
		"title": "Strict",
		"modules": [
			{"title": "M", "lessons": [{"title": "L", "duration": "ninety"}]}
		]
	}`
	req := testutil.NewJSONRequest("POST", "/teacher_courses/", body)
	rec := testutil.NewRecorder()

	handler.ServeCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
}

func TestServeCreate_QuizOptionCount(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{
		"title": "Quizzed",
		"modules": [
			{"title": "M", "quiz": {"title": "Q", "questions": [
				{"question": "2+2?", "options": ["3", "4"], "correct_answer": 1}
			]}}
		]
	}`
	req := testutil.NewJSONRequest("POST", "/teacher_courses/", body)
	rec := testutil.NewRecorder()

	handler.ServeCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
}

func TestServeGet_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	missing := "64b2f0c8e4b0a1a2b3c4d5e6"
	req := testutil.NewJSONRequest("GET", "/teacher_courses/"+missing, "")
	req = testutil.WithChiURLParam(req, "id", missing)
	rec := testutil.NewRecorder()

	handler.ServeGet(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertDetail(t, "Teacher Course not found")
}

func TestServeUpdate_PreservesModuleIDs(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	course := fx.CreateTeacherCourse(ctx, "Stable")
	moduleID := course.Modules[0].ID

	body := fmt.Sprintf(`{
		"title": "Stable v2",
		"modules": [{"id": %q, "title": "Module One"}]
	}`, moduleID)
	req := testutil.NewJSONRequest("PUT", "/teacher_courses/"+course.ID.Hex(), body)
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec := testutil.NewRecorder()

	handler.ServeUpdate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var updated models.TeacherCourse
	rec.DecodeJSON(t, &updated)
	if updated.Modules[0].ID != moduleID {
		t.Errorf("module id changed: %q -> %q", moduleID, updated.Modules[0].ID)
	}
}

func TestServeUpdate_RegenerateQueryParam(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	course := fx.CreateTeacherCourse(ctx, "Reissue")
	moduleID := course.Modules[0].ID

	body := fmt.Sprintf(`{
		"title": "Reissue v2",
		"modules": [{"id": %q, "title": "Module One"}]
	}`, moduleID)
	target := "/teacher_courses/" + course.ID.Hex() + "?regenerate_module_ids=true"
	req := testutil.NewJSONRequest("PUT", target, body)
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec := testutil.NewRecorder()

	handler.ServeUpdate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var updated models.TeacherCourse
	rec.DecodeJSON(t, &updated)
	if updated.Modules[0].ID == moduleID {
		t.Error("module id should be reissued with regenerate_module_ids=true")
	}
}

func TestServeModules(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	course := fx.CreateTeacherCourse(ctx, "Modular")

	req := testutil.NewJSONRequest("GET", "/teacher_courses/"+course.ID.Hex()+"/modules", "")
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec := testutil.NewRecorder()

	handler.ServeModules(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var modules []models.Module
	rec.DecodeJSON(t, &modules)
	if len(modules) != 1 {
		t.Errorf("modules: got %d, want 1", len(modules))
	}
}

func TestServeDelete(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	course := fx.CreateTeacherCourse(ctx, "Doomed")

	req := testutil.NewJSONRequest("DELETE", "/teacher_courses/"+course.ID.Hex(), "")
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec := testutil.NewRecorder()

	handler.ServeDelete(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Message string `json:"message"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Message != "Teacher Course deleted successfully" {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestRoutes(t *testing.T) {
	handler, _ := newTestHandler(t)
	if teachercourses.Routes(handler) == nil {
		t.Fatal("Routes() returned nil")
	}
}
