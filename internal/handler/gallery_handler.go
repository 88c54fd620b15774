package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lumengallery/internal/db"
	"github.com/lumengallery/internal/service"
)

type galleryItemPayload struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Image       string   `json:"image"`
	VideoURL    string   `json:"videoUrl"`
	Description string   `json:"description"`
	Height      string   `json:"height"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
}

func (p galleryItemPayload) toInput() service.GalleryItemInput {
	return service.GalleryItemInput{
		Title:       p.Title,
		Category:    p.Category,
		Type:        p.Type,
		Image:       p.Image,
		VideoURL:    p.VideoURL,
		Description: p.Description,
		Height:      p.Height,
		Featured:    p.Featured,
		Tags:        p.Tags,
	}
}

type galleryItemPatchPayload struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Type        *string   `json:"type"`
	Image       *string   `json:"image"`
	VideoURL    *string   `json:"videoUrl"`
	Description *string   `json:"description"`
	Height      *string   `json:"height"`
	Featured    *bool     `json:"featured"`
	Tags        *[]string `json:"tags"`
}

func (p galleryItemPatchPayload) toPatch() service.GalleryItemPatch {
	return service.GalleryItemPatch{
		Title:       p.Title,
		Category:    p.Category,
		Type:        p.Type,
		Image:       p.Image,
		VideoURL:    p.VideoURL,
		Description: p.Description,
		Height:      p.Height,
		Featured:    p.Featured,
		Tags:        p.Tags,
	}
}

// ListGalleryItems handles the public listing endpoint. Filters are
// mutually exclusive: search wins over featured, then type, then
// category; the literal value "all" means no filter.
func (a *API) ListGalleryItems(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	featured := strings.TrimSpace(c.Query("featured"))
	mediaType := strings.TrimSpace(c.Query("type"))
	category := strings.TrimSpace(c.Query("category"))

	if featured != "" && featured != "true" && featured != "false" {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	var (
		items []db.GalleryItem
		err   error
	)
	switch {
	case search != "":
		items, err = a.galleries.Search(search)
	case featured == "true":
		items, err = a.galleries.ListFeatured()
	case mediaType != "" && mediaType != "all":
		items, err = a.galleries.ListByType(mediaType)
	case category != "" && category != "all":
		items, err = a.galleries.ListByCategory(category)
	default:
		items, err = a.galleries.ListAll()
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load gallery items")
		return
	}

	if items == nil {
		items = []db.GalleryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GalleryCategories returns the distinct category labels in use.
func (a *API) GalleryCategories(c *gin.Context) {
	categories, err := a.galleries.Categories()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load categories")
		return
	}

	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, categories)
}

// GetGalleryItem returns a single gallery item by id.
func (a *API) GetGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	item, err := a.galleries.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrGalleryItemNotFound) {
			respondError(c, http.StatusNotFound, "Gallery item not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load gallery item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateGalleryItem creates a new gallery item.
func (a *API) CreateGalleryItem(c *gin.Context) {
	var payload galleryItemPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	item, err := a.galleries.Create(payload.toInput())
	if err != nil {
		var validation *service.ValidationError
		if errors.As(err, &validation) {
			respondError(c, http.StatusBadRequest, "Validation error: "+strings.Join(validation.Fields, ", "))
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create gallery item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateGalleryItem applies a partial update to an existing item.
func (a *API) UpdateGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var payload galleryItemPatchPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	item, err := a.galleries.Update(id, payload.toPatch())
	if err != nil {
		var validation *service.ValidationError
		switch {
		case errors.Is(err, service.ErrGalleryItemNotFound):
			respondError(c, http.StatusNotFound, "Gallery item not found")
		case errors.As(err, &validation):
			respondError(c, http.StatusBadRequest, "Validation error: "+strings.Join(validation.Fields, ", "))
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update gallery item")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem removes a gallery item.
func (a *API) DeleteGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	deleted, err := a.galleries.Delete(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete gallery item")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Gallery item not found")
		return
	}

	c.Status(http.StatusNoContent)
}
