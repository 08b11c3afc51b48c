package store

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Public: storefront branding
// --------------------------------------------------
func (h *Handler) GetStore(c *gin.Context) {
	store, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, store)
}

// --------------------------------------------------
// Admin: update branding
// --------------------------------------------------
func (h *Handler) UpdateStore(c *gin.Context) {
	var update Store
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	store, err := h.service.Update(c.Request.Context(), &update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, store)
}

// --------------------------------------------------
// Admin: upload logo
// --------------------------------------------------
func (h *Handler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo is required"})
		return
	}
	defer file.Close()

	store, err := h.service.SetLogo(
		c.Request.Context(),
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, catalog.ErrStorageNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, store)
}
