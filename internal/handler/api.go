package handler

import (
	"github.com/lumengallery/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	galleries  *service.GalleryService
	sessions   *service.SessionService
	auth       *service.AuthService
	uploadDir  string
	uploadURL  string
	production bool
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string, production bool) *API {
	sessionService := service.NewSessionService(gdb)

	return &API{
		db:         gdb,
		galleries:  service.NewGalleryService(gdb),
		sessions:   sessionService,
		auth:       service.NewAuthService(gdb, sessionService),
		uploadDir:  uploadDir,
		uploadURL:  uploadURL,
		production: production,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Sessions exposes the session service, used by the router to wire the
// cookie lifetime to the store TTL.
func (a *API) Sessions() *service.SessionService {
	return a.sessions
}
