package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/lumengallery/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupHandlerTest 构建带会话中间件与 API 路由的测试引擎
func setupHandlerTest(t *testing.T) (*gin.Engine, *API, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	api := NewAPI(gdb, t.TempDir(), "/uploads", false)

	r := gin.New()
	r.Use(Recovery(false))
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("gallery_session", store))

	apiGroup := r.Group("/api")
	apiGroup.GET("/gallery", api.ListGalleryItems)
	apiGroup.GET("/gallery/categories", api.GalleryCategories)
	apiGroup.GET("/gallery/:id", api.GetGalleryItem)
	apiGroup.POST("/auth/login", api.Login)
	apiGroup.POST("/auth/logout", api.Logout)
	apiGroup.GET("/auth/me", api.Me)

	admin := apiGroup.Group("/admin")
	admin.Use(api.RequireAuth())
	admin.POST("/gallery", api.CreateGalleryItem)
	admin.PUT("/gallery/:id", api.UpdateGalleryItem)
	admin.DELETE("/gallery/:id", api.DeleteGalleryItem)
	admin.POST("/upload", api.UploadImage)

	r.NoRoute(NoRoute())

	return r, api, gdb
}

func createHandlerTestUser(t *testing.T, gdb *gorm.DB, username, password string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginAs 登录并返回带回的会话 Cookie
func loginAs(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var envelope ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode error envelope: %v (%s)", err, w.Body.String())
	}
	return envelope
}

func assertEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, path string) ErrorResponse {
	t.Helper()

	envelope := decodeEnvelope(t, w)
	if envelope.Status != status {
		t.Fatalf("expected envelope status %d, got %d", status, envelope.Status)
	}
	if envelope.Path != path {
		t.Fatalf("expected envelope path %q, got %q", path, envelope.Path)
	}
	if _, err := time.Parse(time.RFC3339, envelope.Timestamp); err != nil {
		t.Fatalf("expected RFC3339 timestamp, got %q", envelope.Timestamp)
	}
	if envelope.Message == "" {
		t.Fatalf("expected a message in the envelope")
	}
	return envelope
}
