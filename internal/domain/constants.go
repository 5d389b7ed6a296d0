package domain

const (
	RoleClient  = "CLIENT"
	RoleTrainer = "TRAINER"
	RoleAdmin   = "ADMIN"
)

const (
	TxStatusPending   = "PENDING"
	TxStatusCompleted = "COMPLETED"
	TxStatusRefunded  = "REFUNDED"
	// TxStatusAll is the sentinel that disables status filtering.
	TxStatusAll = "ALL"
)
