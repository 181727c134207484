package deals

import (
	"context"
	"log/slog"

	"flyerplan/internal/domain"
	"flyerplan/internal/domain/entity"
	"flyerplan/internal/metrics"
	"flyerplan/pkg/contextx"
	"flyerplan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Source is one retrieval strategy against the flyer service. Both the
// keyword search and the flyer enumeration clients implement it, the rest of
// the system never knows which upstream shape is in use.
type Source interface {
	Fetch(ctx context.Context) ([]entity.DealRecord, error)
}

type Aggregator struct {
	source Source
}

func NewAggregator(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// Collect fetches, filters and deduplicates the current deals. A source
// error (including the "no grocery flyers" conditions) is not fatal: the
// run proceeds with whatever was collected, which may be nothing.
func (a *Aggregator) Collect(ctx context.Context) ([]entity.DealRecord, error) {
	records, err := a.source.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if code, ok := domain.GetCode(err); ok {
			logger(ctx).Warn("flyer source returned no usable deals",
				slog.String("code", string(code)), logx.Error(err))
		} else {
			logger(ctx).Error("flyer source failed", logx.Error(err))
		}
	}

	deduped := Dedup(records)

	metrics.DealsCollected.Add(float64(len(deduped)))
	logger(ctx).Info("deals collected",
		slog.Int("raw", len(records)), slog.Int(logx.FieldDealCount, len(deduped)))

	return deduped, nil
}

// Dedup keys records on store+item and keeps the last-seen record per key,
// emitting values in first-seen key order. Deliberately coarse: two SKUs
// sharing a display name at the same store collapse into one.
func Dedup(records []entity.DealRecord) []entity.DealRecord {
	index := make(map[string]int, len(records))
	result := make([]entity.DealRecord, 0, len(records))

	for _, record := range records {
		if !record.Valid() {
			continue
		}

		if i, ok := index[record.Key()]; ok {
			result[i] = record
			continue
		}

		index[record.Key()] = len(result)
		result = append(result, record)
	}

	return result
}
