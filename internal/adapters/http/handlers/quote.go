package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotegen/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotegen/internal/app"
	"github.com/jsamuelsen/quotegen/internal/domain"
)

// ExportFilename is the attachment name of GET /quotes/export.
const ExportFilename = "quotes.json"

// QuoteHandler serves the quote and category endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /api/v1/quotes.
// Without a category query the persisted selection is used.
//
// @Summary List quotes in a category
// @Tags quotes
// @Produce json
// @Param category query string false "Category, or All Categories"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} dto.QuoteListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var req dto.ListQuotesRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	category := req.Category

	var quotes domain.QuoteList
	if category == "" {
		category, quotes = h.service.FilteredQuotes(ctx)
	} else {
		quotes = h.service.ListByCategory(ctx, category)
	}

	c.JSON(http.StatusOK, dto.QuoteListResponse{
		Category: category,
		Page:     dto.Paginate(dto.ToQuoteResponses(quotes), req.PageRequest),
	})
}

// GetRandomQuote handles GET /api/v1/quotes/random.
//
// @Summary Show a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.ShowRandom(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// GetLastViewed handles GET /api/v1/quotes/last-viewed.
func (h *QuoteHandler) GetLastViewed(c *gin.Context) {
	quote, err := h.service.LastViewed(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// AddQuote handles POST /api/v1/quotes.
//
// @Summary Add a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.AddQuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	var req dto.AddQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	quote, err := h.service.AddQuote(c.Request.Context(), req.Text, req.Category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// ListCategories handles GET /api/v1/categories.
func (h *QuoteHandler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: h.service.Categories(ctx),
		Selected:   h.service.SelectedCategory(ctx),
	})
}

// SelectCategory handles PUT /api/v1/categories/selected.
//
// @Summary Persist the selected category
// @Tags categories
// @Accept json
// @Produce json
// @Param selection body dto.SelectCategoryRequest true "Category"
// @Success 200 {object} dto.CategoriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/categories/selected [put]
func (h *QuoteHandler) SelectCategory(c *gin.Context) {
	var req dto.SelectCategoryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	if err := h.service.SelectCategory(ctx, req.Category); err != nil {
		dto.HandleError(c, err)
		return
	}

	h.ListCategories(c)
}

// Export handles GET /api/v1/quotes/export.
// The document is buffered so a failure can still produce an error response.
func (h *QuoteHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.Export(c.Request.Context(), &buf); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

// Import handles POST /api/v1/quotes/import. The body is the raw JSON
// document produced by Export. Any invalid record rejects the whole import.
//
// @Summary Import quotes
// @Tags quotes
// @Accept json
// @Produce json
// @Success 200 {object} dto.ImportResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/quotes/import [post]
func (h *QuoteHandler) Import(c *gin.Context) {
	n, err := h.service.Import(c.Request.Context(), c.Request.Body)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{Imported: n})
}

// RegisterQuoteRoutes registers quote and category routes on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.AddQuote)
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/last-viewed", h.GetLastViewed)
	quotes.GET("/export", h.Export)
	quotes.POST("/import", h.Import)

	categories := rg.Group("/categories")
	categories.GET("", h.ListCategories)
	categories.PUT("/selected", h.SelectCategory)
}
