package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Notification rows are append-only; only is_seen is ever updated, and only
// in bulk per business by the acknowledgment path.
type Notification struct {
	ID         int64          `db:"id" json:"id"`
	BusinessID int64          `db:"business_id" json:"business_id"`
	Data       types.JSONText `db:"data" json:"data"`
	IsSeen     bool           `db:"is_seen" json:"is_seen"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// NotificationPayload is the opaque blob stored in the data column. The
// store never interprets it; Data carries a snapshot of the source record.
type NotificationPayload struct {
	Title string      `json:"title"`
	Code  string      `json:"code"`
	Data  interface{} `json:"data"`
}
