package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// docType discriminator values stored alongside every record. The scan-and-filter
// query strategy relies on them to tell record kinds apart in one flat keyspace.
const (
	DocTypeDisposal    = "wasteDisposal"
	DocTypeUser        = "user"
	DocTypeTransaction = "pointsTransaction"
)

// StatusTransition is one append-only entry of a disposal's status history.
type StatusTransition struct {
	From      DisposalStatus `json:"from"`
	To        DisposalStatus `json:"to"`
	Operator  string         `json:"operator"`
	Timestamp time.Time      `json:"timestamp"`
	Remarks   string         `json:"remarks,omitempty"`
}

// DisposalRecord is one logged waste-disposal event. Points are computed once at
// creation and never recomputed; only Status and StatusHistory mutate afterwards.
type DisposalRecord struct {
	DocType       string             `json:"docType"`
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	WasteType     WasteType          `json:"wasteType"`
	Weight        decimal.Decimal    `json:"weight"`
	Location      string             `json:"location"`
	Timestamp     string             `json:"timestamp"`
	Status        DisposalStatus     `json:"status"`
	Points        decimal.Decimal    `json:"points"`
	StatusHistory []StatusTransition `json:"statusHistory,omitempty"`
}

// UserAccount holds a user's loyalty point balance. Created lazily on the first
// credit or transfer target, never deleted.
type UserAccount struct {
	DocType     string          `json:"docType"`
	UserID      string          `json:"userId"`
	TotalPoints decimal.Decimal `json:"totalPoints"`
}

// PointsTransaction is the immutable audit record of one point transfer.
type PointsTransaction struct {
	DocType       string    `json:"docType"`
	TransactionID string    `json:"transactionId"`
	FromUserID    string    `json:"fromUserId"`
	ToUserID      string    `json:"toUserId"`
	Points        int64     `json:"points"`
	Remarks       string    `json:"remarks,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// HistoryEntry is one normalized version of a disposal record as replayed from the
// store's history primitive. Record is nil when the stored payload did not decode;
// Raw then carries the payload untouched so the audit trail stays complete.
type HistoryEntry struct {
	TxID      string          `json:"txId"`
	Timestamp time.Time       `json:"timestamp"`
	Record    *DisposalRecord `json:"record,omitempty"`
	Raw       json.RawMessage `json:"raw,omitempty"`
}
