package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"apify-workers/internal/common/errors"
	"apify-workers/internal/export"
	"apify-workers/internal/scrapers"
)

type scraperInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *Router) listScrapers(c *gin.Context) {
	infos := make([]scraperInfo, 0)
	for _, name := range r.registry.Names() {
		adapter, _ := r.registry.Get(name)
		infos = append(infos, scraperInfo{
			Name:        name,
			Description: adapter.Descriptor().Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"scrapers": infos})
}

// scrape runs one adapter directly. The request body is the friendly
// parameter object; an Authorization bearer overrides the configured
// platform token. ?format=csv|raw selects an export rendering.
func (r *Router) scrape(c *gin.Context) {
	name := c.Param("name")
	adapter, ok := r.registry.Get(name)
	if !ok {
		serr := errors.NewUnknownScraperError(name)
		c.JSON(http.StatusNotFound, gin.H{"error": serr.Message})
		return
	}

	params := scrapers.Params{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parameters: " + err.Error()})
			return
		}
	}

	result := adapter.Run(c.Request.Context(), params, bearerToken(c))
	r.writeResult(c, result, adapter.Descriptor())
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// chat resolves free text into an intent and, when it names a known
// scraper, dispatches it. The intent is always echoed back so the client
// can display the explanation.
func (r *Router) chat(c *gin.Context) {
	if r.resolver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Gemini API key is not configured. The chat assistant is unavailable.",
		})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	it := r.resolver.Resolve(c.Request.Context(), req.Message)
	if it.Scraper == "none" {
		c.JSON(http.StatusOK, gin.H{"intent": it, "result": nil})
		return
	}

	result := r.dispatcher.Dispatch(c.Request.Context(), it, bearerToken(c))
	c.JSON(resultStatus(result), gin.H{"intent": it, "result": result})
}

func (r *Router) writeResult(c *gin.Context, result *scrapers.Result, desc scrapers.Descriptor) {
	if result.IsError() {
		c.JSON(resultStatus(result), result)
		return
	}

	switch c.Query("format") {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", desc.Name))
		if err := export.CSV(c.Writer, result, desc.Columns); err != nil {
			r.log.Error("csv export failed", map[string]interface{}{
				"scraper": desc.Name,
				"error":   err.Error(),
			})
		}
	case "raw":
		data, err := export.RawJSON(result)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_raw.json", desc.Name))
		c.Data(http.StatusOK, "application/json", data)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// resultStatus maps failure kinds onto HTTP statuses. Empty results are
// "nothing matched", not a server fault.
func resultStatus(result *scrapers.Result) int {
	if !result.IsError() {
		return http.StatusOK
	}
	switch result.Err.Code {
	case errors.ErrCodeMissingToken:
		return http.StatusServiceUnavailable
	case errors.ErrCodeRunStartFailed:
		return http.StatusBadGateway
	case errors.ErrCodeNoResults:
		return http.StatusNotFound
	case errors.ErrCodeUnknownScraper:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
