package flipp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"flyerplan/internal/config"
	"flyerplan/internal/domain"
	"flyerplan/internal/domain/entity"
	"flyerplan/internal/metrics"
	"flyerplan/pkg/errcodes"
	"flyerplan/pkg/logx"
)

// SearchSource retrieves deals through the keyword search endpoint: for each
// category keyword it pages through results until an empty page or the
// per-category item ceiling.
type SearchSource struct {
	client              *Client
	categories          []string
	pageSize            int
	maxItemsPerCategory int

	politenessDelay time.Duration
	lastRequest     time.Time
}

func NewSearchSource(client *Client, cfg config.Flipp) *SearchSource {
	return &SearchSource{
		client:              client,
		categories:          cfg.Categories,
		pageSize:            cfg.PageSize,
		maxItemsPerCategory: cfg.MaxItemsPerCategory,
		politenessDelay:     cfg.PolitenessDelay,
	}
}

// Fetch collects deal records across all configured categories. A failing
// category is logged and skipped; the remaining categories still contribute.
func (s *SearchSource) Fetch(ctx context.Context) ([]entity.DealRecord, error) {
	var all []entity.DealRecord

	for _, category := range s.categories {
		records, err := s.fetchCategory(ctx, category)
		all = append(all, records...)

		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}

			logger(ctx).Error("category fetch failed",
				logx.FieldCategory, category, logx.Error(err))
			metrics.FetchFailures.WithLabelValues(category).Inc()
		}
	}

	return all, nil
}

func (s *SearchSource) fetchCategory(ctx context.Context, category string) ([]entity.DealRecord, error) {
	var collected []entity.DealRecord

	// Offset ceiling guards against an upstream that never returns an empty
	// page; pagination normally stops on the first zero-item page.
	for offset := 0; offset < s.maxItemsPerCategory; offset += s.pageSize {
		if err := s.waitForNextSlot(ctx); err != nil {
			return collected, err
		}

		body, err := s.client.get(ctx, s.searchURL(category, offset))
		if err != nil {
			return collected, fmt.Errorf("page at offset %d: %w", offset, err)
		}

		items := gjson.GetBytes(body, "items")
		if !items.Exists() || !items.IsArray() {
			return collected, domain.NewError(errcodes.UpstreamMalformed,
				"search response has no items array")
		}

		metrics.PagesFetched.Inc()

		page := items.Array()
		if len(page) == 0 {
			break
		}

		collected = append(collected, decodeSearchItems(page, category)...)
	}

	return collected, nil
}

func (s *SearchSource) searchURL(category string, offset int) string {
	query := url.Values{
		"postal_code": {s.client.postalCode},
		"q":           {category},
		"locale":      {s.client.locale},
		"offset":      {strconv.Itoa(offset)},
		"limit":       {strconv.Itoa(s.pageSize)},
	}

	return fmt.Sprintf("%s/items/search?%s", s.client.baseURL, query.Encode())
}

// waitForNextSlot enforces the politeness delay between consecutive upstream
// calls without blocking cancellation.
func (s *SearchSource) waitForNextSlot(ctx context.Context) error {
	if s.politenessDelay <= 0 || s.lastRequest.IsZero() {
		s.lastRequest = time.Now()
		return nil
	}

	elapsed := time.Since(s.lastRequest)
	if elapsed >= s.politenessDelay {
		s.lastRequest = time.Now()
		return nil
	}

	select {
	case <-time.After(s.politenessDelay - elapsed):
		s.lastRequest = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// decodeSearchItems builds deal records from one search page, dropping items
// without a name, merchant or parseable non-negative price. Optional fields
// default to empty strings rather than failing the page.
func decodeSearchItems(page []gjson.Result, category string) []entity.DealRecord {
	records := make([]entity.DealRecord, 0, len(page))

	for _, item := range page {
		price, ok := parsePrice(item.Get("current_price"))
		if !ok {
			continue
		}

		record := entity.DealRecord{
			Store:    item.Get("merchant_name").String(),
			Item:     item.Get("name").String(),
			Price:    price,
			Category: category,
			Unit:     item.Get("unit_standard_name").String(),
			ValidTo:  item.Get("valid_to").String(),
		}

		if !record.Valid() {
			continue
		}

		records = append(records, record)
	}

	return records
}
