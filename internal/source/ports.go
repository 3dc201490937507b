package source

import (
	"context"

	"salesboard/internal/core"
)

// RecordSource is the outbound port for pulling sales records.
type RecordSource interface {
	// ReadAll returns every record available in the source. There is no
	// partial-success mode: an error means no usable rows.
	ReadAll(ctx context.Context) ([]core.Record, error)
}
