package flipp_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"flyerplan/internal/domain"
	"flyerplan/internal/infrastructure/flipp"
	"flyerplan/pkg/errcodes"
)

type staticTokens struct{}

func (staticTokens) Next() string { return "4242424242" }

func newFlyerSource(baseURL string) *flipp.FlyerSource {
	cfg := flippConfig(baseURL, nil, 10, 100)

	return flipp.NewFlyerSource(
		flipp.NewClient(cfg, flipp.WithTokenGenerator(staticTokens{})),
		cfg,
	)
}

func TestFlyerSourceCategoryTagNormalization(t *testing.T) {
	rq := require.New(t)

	// One flyer with a comma-separated tag string, one with a tag list; both
	// must pass the grocery filter.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/flyers":
			rq.Equal("4242424242", r.URL.Query().Get("sid"))
			fmt.Fprint(w, `{"flyers":[
				{"id":1,"merchant":"Acme","categories":"Groceries, Pharmacy"},
				{"id":2,"merchant":"SaveMart","categories":["Groceries","Pharmacy"]},
				{"id":3,"merchant":"ToolTown","categories":["Hardware"]}
			]}`)
		case "/flyers/1/items":
			fmt.Fprint(w, `[{"name":"Eggs","price":"3.49","valid_from":"2026-08-28","valid_to":"2026-09-03"}]`)
		case "/flyers/2/items":
			fmt.Fprint(w, `[{"name":"Butter","price":5.99}]`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	records, err := newFlyerSource(server.URL).Fetch(context.Background())
	rq.NoError(err)

	rq.Len(records, 2)

	rq.Equal("Acme", records[0].Store)
	rq.Equal("Eggs", records[0].Item)
	rq.InDelta(3.49, records[0].Price, 0.0001)
	rq.Equal("1", records[0].FlyerID)
	rq.Equal("2026-08-28", records[0].ValidFrom)
	rq.Equal("2026-09-03", records[0].ValidTo)

	rq.Equal("SaveMart", records[1].Store)
	rq.Equal("Butter", records[1].Item)
	rq.Equal("2", records[1].FlyerID)
	rq.Empty(records[1].ValidFrom)
}

func TestFlyerSourceNoFlyersFound(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"flyers":[]}`)
	}))
	defer server.Close()

	_, err := newFlyerSource(server.URL).Fetch(context.Background())
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.NoFlyersFound, code)
}

func TestFlyerSourceNoGroceryFlyers(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"flyers":[{"id":3,"merchant":"ToolTown","categories":"Hardware, Garden"}]}`)
	}))
	defer server.Close()

	_, err := newFlyerSource(server.URL).Fetch(context.Background())
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.NoGroceryFlyers, code)
}

func TestFlyerSourceFailedFlyerIsIsolated(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/flyers":
			fmt.Fprint(w, `{"flyers":[
				{"id":1,"merchant":"Acme","categories":["Groceries"]},
				{"id":2,"merchant":"SaveMart","categories":["Groceries"]}
			]}`)
		case "/flyers/1/items":
			w.WriteHeader(http.StatusBadGateway)
		case "/flyers/2/items":
			fmt.Fprint(w, `[{"name":"Butter","price":"5.99"}]`)
		}
	}))
	defer server.Close()

	records, err := newFlyerSource(server.URL).Fetch(context.Background())
	rq.NoError(err)

	rq.Len(records, 1)
	rq.Equal("SaveMart", records[0].Store)
}

func TestFlyerSourceFreshTokenPerCall(t *testing.T) {
	rq := require.New(t)

	var tokens []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.URL.Query().Get("sid"))

		if r.URL.Path == "/flyers" {
			fmt.Fprint(w, `{"flyers":[{"id":1,"merchant":"Acme","categories":["Groceries"]}]}`)
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	cfg := flippConfig(server.URL, nil, 10, 100)

	_, err := flipp.NewFlyerSource(flipp.NewClient(cfg), cfg).Fetch(context.Background())
	rq.NoError(err)

	rq.Len(tokens, 2)
	rq.Len(tokens[0], 10)
	rq.Len(tokens[1], 10)
	rq.NotEmpty(tokens[0])
}
