package ws

import (
	"strivex/internal/wallet"
)

// WalletHub streams refreshed earnings statistics to a trainer's open
// dashboard connections whenever a settlement lands.
type WalletHub struct {
	*Hub
}

func NewWalletHub() *WalletHub {
	return &WalletHub{Hub: NewHub()}
}

// StatsMessage is the wire envelope for statistics pushes.
type StatsMessage struct {
	Type       string                  `json:"type"`
	Statistics wallet.WalletStatistics `json:"statistics"`
}

// PushStatistics broadcasts a statistics snapshot to the trainer.
func (h *WalletHub) PushStatistics(trainerID uint, stats wallet.WalletStatistics) {
	h.BroadcastToUser(trainerID, StatsMessage{Type: "wallet_statistics", Statistics: stats})
}
