package handler

import (
	"net/http"

	"strivex/internal/service"
	"strivex/internal/wallet"
	"strivex/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SettlementEvent is the payment-gateway callback payload for a settled
// membership purchase.
type SettlementEvent struct {
	ID               string  `json:"id"`
	ClientID         uint    `json:"client_id"`
	TrainerID        uint    `json:"trainer_id"`
	MembershipPlanID uint    `json:"membership_plan_id"`
	Amount           float64 `json:"amount"`
	TrainerAmount    float64 `json:"trainer_amount"`
	AdminShare       float64 `json:"admin_share"`
	StripePaymentID  string  `json:"stripe_payment_id"`
	StripeSessionID  string  `json:"stripe_session_id"`
	Status           string  `json:"status"`
	CompletedAt      string  `json:"completed_at"`
}

type SettlementWebhookHandler struct {
	walletSvc *service.WalletService
	hub       *ws.WalletHub
}

func NewSettlementWebhookHandler(walletSvc *service.WalletService, hub *ws.WalletHub) *SettlementWebhookHandler {
	return &SettlementWebhookHandler{walletSvc: walletSvc, hub: hub}
}

// Handle processes POST /webhooks/settlement: validates, appends to the
// ledger, and pushes refreshed statistics to the trainer's open dashboards.
func (h *SettlementWebhookHandler) Handle(c *gin.Context) {
	var event SettlementEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	raw := wallet.RawHistoryItem{
		ID:               event.ID,
		ClientID:         event.ClientID,
		TrainerID:        event.TrainerID,
		MembershipPlanID: event.MembershipPlanID,
		Amount:           event.Amount,
		TrainerAmount:    event.TrainerAmount,
		AdminShare:       event.AdminShare,
		StripePaymentID:  event.StripePaymentID,
		StripeSessionID:  event.StripeSessionID,
		Status:           event.Status,
		CompletedAt:      event.CompletedAt,
	}
	tx, err := h.walletSvc.RecordSettlement(c.Request.Context(), raw)
	if err != nil {
		logrus.WithError(err).Warn("settlement rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if stats, err := h.walletSvc.Snapshot(c.Request.Context(), tx.TrainerID); err == nil {
		h.hub.PushStatistics(tx.TrainerID, stats)
	} else {
		logrus.WithError(err).WithField("trainer_id", tx.TrainerID).Warn("statistics push skipped")
	}
	c.JSON(http.StatusOK, gin.H{"transaction_id": tx.ID})
}
