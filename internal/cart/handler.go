package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
	"github.com/thinknumbers/order-scanner-delight/internal/selection"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SessionID resolves the table session from the request: the X-Session-ID
// header, falling back to the table query parameter from the QR code URL.
func SessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return sid
	}
	if table := c.Query("table"); table != "" {
		return "table:" + table
	}
	return ""
}

// --------------------------------------------------
// View models
// --------------------------------------------------

type lineView struct {
	ProductID  string              `json:"product_id"`
	Name       string              `json:"name"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  decimal.Decimal     `json:"unit_price"`
	LineTotal  decimal.Decimal     `json:"line_total"`
	Selections map[string][]string `json:"selections,omitempty"`
	Notes      string              `json:"notes,omitempty"`
}

type cartView struct {
	Items     []lineView      `json:"items"`
	ItemCount int             `json:"item_count"`
	CartTotal decimal.Decimal `json:"cart_total"`
}

func viewOf(c *Cart) cartView {
	records := Records(c)
	lines := c.Lines()

	items := make([]lineView, len(lines))
	for i, line := range lines {
		items[i] = lineView{
			ProductID:  line.Product.ID,
			Name:       line.Product.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice(),
			LineTotal:  line.Total(),
			Selections: records[i].Selections,
			Notes:      line.Notes,
		}
	}
	return cartView{
		Items:     items,
		ItemCount: c.ItemCount(),
		CartTotal: c.Subtotal(),
	}
}

// --------------------------------------------------
// Routes
// --------------------------------------------------

func (h *Handler) GetCart(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	cart, err := h.service.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewOf(cart))
}

func (h *Handler) AddItem(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	var req struct {
		ProductID  string              `json:"product_id"`
		Quantity   int                 `json:"quantity"`
		Selections map[string][]string `json:"selections"`
		Notes      string              `json:"notes"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cart, err := h.service.AddItem(
		c.Request.Context(),
		sid,
		req.ProductID,
		req.Quantity,
		req.Selections,
		req.Notes,
	)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(cart))
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cart, err := h.service.UpdateQuantity(c.Request.Context(), sid, index, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(cart))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	cart, err := h.service.RemoveItem(c.Request.Context(), sid, index)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(cart))
}

func (h *Handler) ClearCart(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	if err := h.service.Clear(c.Request.Context(), sid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// --------------------------------------------------
// Error mapping
// --------------------------------------------------

func (h *Handler) writeError(c *gin.Context, err error) {
	var incomplete *IncompleteSelectionError

	switch {
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       "please select options for the required groups",
			"unsatisfied": incomplete.Missing,
		})
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, ErrInvalidIndex):
		// A caller/UI bug, not a user condition.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, selection.ErrUnknownGroup),
		errors.Is(err, selection.ErrUnknownOption),
		errors.Is(err, selection.ErrSingleChoice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
