package handler

import (
	"net/http"
	"strconv"
	"time"

	"strivex/internal/middleware"
	"strivex/internal/service"
	"strivex/internal/wallet"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	svc *service.WalletService
}

func NewWalletHandler(svc *service.WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// parseFilter reads status/from/to query params. Bounds accept RFC 3339 or
// plain dates; a date-only "to" extends to the end of that day so the window
// stays inclusive.
func parseFilter(c *gin.Context) (wallet.Filter, error) {
	f := wallet.Filter{Status: c.Query("status")}
	if v := c.Query("from"); v != "" {
		t, err := parseBound(v, false)
		if err != nil {
			return wallet.Filter{}, err
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseBound(v, true)
		if err != nil {
			return wallet.Filter{}, err
		}
		f.To = &t
	}
	return f, nil
}

func parseBound(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Millisecond)
		}
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

// History handles GET /wallet/history.
func (h *WalletHandler) History(c *gin.Context) {
	trainerID := middleware.GetUserID(c)
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}
	page, limit := parsePagination(c)
	result, err := h.svc.History(c.Request.Context(), trainerID, f, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch wallet history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records":    result.Records,
		"page":       result.Page.CurrentPage,
		"limit":      result.Page.PageSize,
		"total":      result.Page.TotalItems,
		"totalPages": result.Page.TotalPages,
	})
}

// Statistics handles GET /wallet/statistics.
func (h *WalletHandler) Statistics(c *gin.Context) {
	trainerID := middleware.GetUserID(c)
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}
	stats, err := h.svc.Statistics(c.Request.Context(), trainerID, f, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExportCSV handles GET /wallet/export/csv.
func (h *WalletHandler) ExportCSV(c *gin.Context) {
	trainerID := middleware.GetUserID(c)
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}
	csv, err := h.svc.ExportCSV(c.Request.Context(), trainerID, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export wallet history"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+wallet.CSVFilename+`"`)
	c.Data(http.StatusOK, wallet.CSVContentType, []byte(csv))
}

// ExportReport handles GET /wallet/export/report. The document auto-invokes
// the print dialog once the browser has laid it out.
func (h *WalletHandler) ExportReport(c *gin.Context) {
	trainerID := middleware.GetUserID(c)
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}
	doc, err := h.svc.ExportReport(c.Request.Context(), trainerID, f, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render wallet report"})
		return
	}
	c.Data(http.StatusOK, wallet.ReportContentType, []byte(doc))
}
