package amqp

import (
	"strings"
	"testing"
	"time"
)

func TestSnapshotMessageWireFormat(t *testing.T) {
	msg := NewSnapshotMessage(7, "demo", "auth failed", 366, 21900000,
		time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"snapshot_id":7`, `"source":"demo"`, `"fallback_reason":"auth failed"`, `"rows":366`} {
		if !strings.Contains(string(body), field) {
			t.Fatalf("wire body missing %s: %s", field, body)
		}
	}

	got, err := SnapshotMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.SnapshotID != 7 || got.Rows != 366 || !got.TakenAt.Equal(msg.TakenAt) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSnapshotMessageOmitsEmptyFallback(t *testing.T) {
	msg := NewSnapshotMessage(1, "sheets", "", 10, 500, time.Now())
	body, _ := msg.ToJSON()
	if strings.Contains(string(body), "fallback_reason") {
		t.Fatalf("empty fallback reason should be omitted: %s", body)
	}
}
