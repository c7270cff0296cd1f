package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/ecopoints/internal/domain"
)

type DisposalCreate struct {
	ID        string
	UserID    string
	WasteType domain.WasteType
	Weight    decimal.Decimal
	Location  string
	Timestamp string
}

type StatusUpdate struct {
	ID        string
	NewStatus domain.DisposalStatus
	Operator  string
	Remarks   string
}

type TransferCreate struct {
	FromUserID string
	ToUserID   string
	Points     int64
	Remarks    string
}
