package service

import (
	"errors"
	"strings"

	"github.com/lumengallery/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

var ErrGalleryItemNotFound = errors.New("gallery item not found")

const (
	GalleryTypeImage = "image"
	GalleryTypeVideo = "video"

	defaultGalleryHeight = "h-64"
)

// textSanitizer strips any markup from client-supplied text fields
// before they reach the store.
var textSanitizer = bluemonday.StrictPolicy()

// ValidationError carries every violated field constraint of a create
// or update request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Fields, ", ")
}

// GalleryService handles gallery item reads and authenticated CRUD.
type GalleryService struct {
	db *gorm.DB
}

// GalleryItemInput represents fields accepted when creating a gallery item.
type GalleryItemInput struct {
	Title       string
	Category    string
	Type        string
	Image       string
	VideoURL    string
	Description string
	Height      string
	Featured    bool
	Tags        []string
}

// GalleryItemPatch represents a partial update; nil fields are left
// untouched.
type GalleryItemPatch struct {
	Title       *string
	Category    *string
	Type        *string
	Image       *string
	VideoURL    *string
	Description *string
	Height      *string
	Featured    *bool
	Tags        *[]string
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// ListAll returns every gallery item.
func (s *GalleryService) ListAll() ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCategory returns items matching the category exactly.
func (s *GalleryService) ListByCategory(category string) ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Where("category = ?", category).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByType returns items matching the media type exactly.
func (s *GalleryService) ListByType(mediaType string) ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Where("type = ?", mediaType).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListFeatured returns items flagged for promoted display.
func (s *GalleryService) ListFeatured() ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Where("featured = ?", true).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Search returns items whose title, description or category contains
// the query, case-insensitively.
func (s *GalleryService) Search(query string) ([]db.GalleryItem, error) {
	like := "%" + strings.ToLower(query) + "%"
	var items []db.GalleryItem
	if err := s.db.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", like, like, like).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Categories returns the distinct category labels currently in use.
func (s *GalleryService) Categories() ([]string, error) {
	var categories []string
	if err := s.db.Model(&db.GalleryItem{}).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get fetches a gallery item by id.
func (s *GalleryService) Get(id uint) (*db.GalleryItem, error) {
	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new gallery item, returning the stored
// record including its assigned id.
func (s *GalleryService) Create(input GalleryItemInput) (*db.GalleryItem, error) {
	var violations []string
	if strings.TrimSpace(input.Title) == "" {
		violations = append(violations, "title is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		violations = append(violations, "category is required")
	}
	if strings.TrimSpace(input.Image) == "" {
		violations = append(violations, "image is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		violations = append(violations, "description is required")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Fields: violations}
	}

	mediaType := strings.TrimSpace(input.Type)
	if mediaType == "" {
		mediaType = GalleryTypeImage
	}
	height := strings.TrimSpace(input.Height)
	if height == "" {
		height = defaultGalleryHeight
	}

	item := db.GalleryItem{
		Title:       sanitizeText(input.Title),
		Category:    sanitizeText(input.Category),
		Type:        mediaType,
		Image:       strings.TrimSpace(input.Image),
		VideoURL:    strings.TrimSpace(input.VideoURL),
		Description: sanitizeText(input.Description),
		Height:      height,
		Featured:    input.Featured,
		Tags:        sanitizeTags(input.Tags),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial update to an existing gallery item. Only
// supplied fields are changed.
func (s *GalleryService) Update(id uint, patch GalleryItemPatch) (*db.GalleryItem, error) {
	if err := validateGalleryPatch(patch); err != nil {
		return nil, err
	}

	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		item.Title = sanitizeText(*patch.Title)
	}
	if patch.Category != nil {
		item.Category = sanitizeText(*patch.Category)
	}
	if patch.Type != nil {
		item.Type = strings.TrimSpace(*patch.Type)
	}
	if patch.Image != nil {
		item.Image = strings.TrimSpace(*patch.Image)
	}
	if patch.VideoURL != nil {
		item.VideoURL = strings.TrimSpace(*patch.VideoURL)
	}
	if patch.Description != nil {
		item.Description = sanitizeText(*patch.Description)
	}
	if patch.Height != nil {
		item.Height = strings.TrimSpace(*patch.Height)
	}
	if patch.Featured != nil {
		item.Featured = *patch.Featured
	}
	if patch.Tags != nil {
		item.Tags = sanitizeTags(*patch.Tags)
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a gallery item. Returns false when no record with the
// given id exists.
func (s *GalleryService) Delete(id uint) (bool, error) {
	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

func validateGalleryPatch(patch GalleryItemPatch) error {
	var violations []string
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		violations = append(violations, "title must not be empty")
	}
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		violations = append(violations, "category must not be empty")
	}
	if patch.Image != nil && strings.TrimSpace(*patch.Image) == "" {
		violations = append(violations, "image must not be empty")
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		violations = append(violations, "description must not be empty")
	}
	if len(violations) > 0 {
		return &ValidationError{Fields: violations}
	}
	return nil
}

func sanitizeText(value string) string {
	return strings.TrimSpace(textSanitizer.Sanitize(value))
}

func sanitizeTags(tags []string) db.StringList {
	if tags == nil {
		return nil
	}
	cleaned := make(db.StringList, 0, len(tags))
	for _, tag := range tags {
		trimmed := sanitizeText(tag)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
