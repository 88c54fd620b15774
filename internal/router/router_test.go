package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lumengallery/internal/config"
	"github.com/lumengallery/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig(uploadDir string) config.AppConfig {
	return config.AppConfig{
		SessionSecret:   "test-secret",
		Env:             "test",
		UploadDir:       uploadDir,
		UploadURLPath:   "/uploads",
		APIRateLimit:    1000,
		APIRateWindow:   time.Minute,
		LoginRateLimit:  1000,
		LoginRateWindow: time.Minute,
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.User{}, &db.GalleryItem{}, &db.Session{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := Setup(testConfig(t.TempDir()), openTestDB(t))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %q", body["status"])
	}
}

func TestUnknownAPIPathReturnsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := Setup(testConfig(t.TempDir()), openTestDB(t))

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON envelope, got %q", w.Body.String())
	}
	if body["path"] != "/api/nope" {
		t.Fatalf("expected envelope path, got %v", body["path"])
	}
}

func TestAdminRoutesGuarded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := Setup(testConfig(t.TempDir()), openTestDB(t))

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/admin/gallery"},
		{http.MethodPut, "/api/admin/gallery/1"},
		{http.MethodDelete, "/api/admin/gallery/1"},
		{http.MethodPost, "/api/admin/upload"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", route.method, route.path, w.Code)
		}
	}
}

func TestSetupServesUploadDir(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uploadDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(uploadDir, "example.txt"), []byte("hello uploads"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	r := Setup(testConfig(uploadDir), openTestDB(t))

	req := httptest.NewRequest(http.MethodGet, "/uploads/example.txt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "hello uploads" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
