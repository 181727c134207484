package flipp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"flyerplan/internal/config"
	"flyerplan/internal/domain"
	"flyerplan/internal/domain/entity"
	"flyerplan/internal/metrics"
	"flyerplan/pkg/errcodes"
	"flyerplan/pkg/logx"
)

// FlyerSource retrieves deals by enumerating the postal code's flyers,
// keeping only grocery-tagged ones and flattening each flyer's item list.
type FlyerSource struct {
	client *Client

	politenessDelay time.Duration
	lastRequest     time.Time
}

func NewFlyerSource(client *Client, cfg config.Flipp) *FlyerSource {
	return &FlyerSource{
		client:          client,
		politenessDelay: cfg.PolitenessDelay,
	}
}

// Fetch lists flyers, filters to grocery ones and flattens their items.
// "no flyers at all" and "flyers found, none grocery-tagged" surface as
// distinct error codes; a single flyer's failure only costs that flyer.
func (s *FlyerSource) Fetch(ctx context.Context) ([]entity.DealRecord, error) {
	flyers, err := s.client.listFlyers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flyers: %w", err)
	}

	if len(flyers) == 0 {
		return nil, domain.NewError(errcodes.NoFlyersFound,
			fmt.Sprintf("no flyers for postal code %s", s.client.postalCode))
	}

	grocery := lo.Filter(flyers, func(f entity.FlyerHandle, _ int) bool {
		return f.IsGrocery()
	})

	if len(grocery) == 0 {
		return nil, domain.NewError(errcodes.NoGroceryFlyers,
			fmt.Sprintf("%d flyers found, none grocery-tagged", len(flyers)))
	}

	var all []entity.DealRecord

	for _, flyer := range grocery {
		if err := s.waitForNextSlot(ctx); err != nil {
			return all, err
		}

		records, err := s.client.flyerItems(ctx, flyer)
		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}

			logger(ctx).Error("flyer fetch failed",
				logx.FieldFlyerID, flyer.ID,
				logx.FieldMerchant, flyer.Merchant,
				logx.Error(err))
			metrics.FetchFailures.WithLabelValues(strconv.FormatInt(flyer.ID, 10)).Inc()
			continue
		}

		all = append(all, records...)
	}

	return all, nil
}

func (s *FlyerSource) waitForNextSlot(ctx context.Context) error {
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

// listFlyers fetches the flyer listing for the configured postal code.
// Each call carries its own session token.
func (c *Client) listFlyers(ctx context.Context) ([]entity.FlyerHandle, error) {
	query := url.Values{
		"postal_code": {c.postalCode},
		"locale":      {c.locale},
		"sid":         {c.tokens.Next()},
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/flyers?%s", c.baseURL, query.Encode()))
	if err != nil {
		return nil, err
	}

	flyersJSON := gjson.GetBytes(body, "flyers")
	if !flyersJSON.Exists() || !flyersJSON.IsArray() {
		return nil, domain.NewError(errcodes.UpstreamMalformed,
			"flyer listing has no flyers array")
	}

	metrics.PagesFetched.Inc()

	raw := flyersJSON.Array()
	flyers := make([]entity.FlyerHandle, 0, len(raw))

	for _, f := range raw {
		flyers = append(flyers, entity.FlyerHandle{
			ID:         f.Get("id").Int(),
			Merchant:   f.Get("merchant").String(),
			Categories: normalizeTags(f.Get("categories")),
		})
	}

	return flyers, nil
}

// flyerItems fetches one flyer's item list and tags every record with the
// source merchant and flyer id. Missing optional fields become empty strings.
func (c *Client) flyerItems(ctx context.Context, flyer entity.FlyerHandle) ([]entity.DealRecord, error) {
	query := url.Values{
		"locale": {c.locale},
		"sid":    {c.tokens.Next()},
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/flyers/%d/items?%s", c.baseURL, flyer.ID, query.Encode()))
	if err != nil {
		return nil, err
	}

	itemsJSON := gjson.ParseBytes(body)
	if !itemsJSON.IsArray() {
		return nil, domain.NewError(errcodes.UpstreamMalformed,
			"flyer items response is not an array")
	}

	metrics.PagesFetched.Inc()

	flyerID := strconv.FormatInt(flyer.ID, 10)

	items := itemsJSON.Array()
	records := make([]entity.DealRecord, 0, len(items))

	for _, item := range items {
		price, ok := parsePrice(item.Get("price"))
		if !ok {
			continue
		}

		record := entity.DealRecord{
			Store:     flyer.Merchant,
			Item:      item.Get("name").String(),
			Price:     price,
			FlyerID:   flyerID,
			ValidFrom: item.Get("valid_from").String(),
			ValidTo:   item.Get("valid_to").String(),
		}

		if !record.Valid() {
			continue
		}

		records = append(records, record)
	}

	return records, nil
}
