package amqp

import (
	"encoding/json"
	"time"
)

// SnapshotMessage announces one persisted acquisition snapshot. It carries
// only aggregates; consumers fetch the row data from storage by snapshot ID.
type SnapshotMessage struct {
	SnapshotID     int64     `json:"snapshot_id"`
	Source         string    `json:"source"`
	FallbackReason string    `json:"fallback_reason,omitempty"`
	Rows           int       `json:"rows"`
	TotalSales     float64   `json:"total_sales"`
	TakenAt        time.Time `json:"taken_at"`
}

func NewSnapshotMessage(snapshotID int64, source, fallbackReason string, rows int, totalSales float64, takenAt time.Time) *SnapshotMessage {
	return &SnapshotMessage{
		SnapshotID:     snapshotID,
		Source:         source,
		FallbackReason: fallbackReason,
		Rows:           rows,
		TotalSales:     totalSales,
		TakenAt:        takenAt,
	}
}

func (m *SnapshotMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SnapshotMessageFromJSON(data []byte) (*SnapshotMessage, error) {
	var m SnapshotMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
