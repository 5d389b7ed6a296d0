package handler

import (
	"net/http"

	"strivex/internal/repository"
	"strivex/internal/wallet"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	ledgerRepo *repository.LedgerRepository
}

func NewAdminHandler(ledgerRepo *repository.LedgerRepository) *AdminHandler {
	return &AdminHandler{ledgerRepo: ledgerRepo}
}

// ListTransactions handles GET /admin/transactions: the platform-wide ledger
// with the commission total for the same filter.
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}
	page, limit := parsePagination(c)
	raws, total, err := h.ledgerRepo.ListPlatformHistory(f, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	adminTotal, err := h.ledgerRepo.AdminShareTotal(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to total commission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":        wallet.MapHistoryItems(raws),
		"total":       total,
		"page":        page,
		"limit":       limit,
		"admin_share": adminTotal,
	})
}
