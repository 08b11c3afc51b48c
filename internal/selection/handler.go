package selection

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
)

type Handler struct {
	catalog catalog.Repository
}

func NewHandler(repo catalog.Repository) *Handler {
	return &Handler{catalog: repo}
}

// Validate checks an in-progress configuration for a product. The client
// calls it as selections change; checkout stays disabled while the state
// is INCOMPLETE.
func (h *Handler) Validate(c *gin.Context) {
	p, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Selections map[string][]string `json:"selections"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sel := Initialize(p)
	for group, names := range req.Selections {
		if err := Apply(p, sel, group, names); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	missing := Unsatisfied(p, sel)
	c.JSON(http.StatusOK, gin.H{
		"state":       Evaluate(p, sel).String(),
		"valid":       len(missing) == 0,
		"unsatisfied": missing,
	})
}
