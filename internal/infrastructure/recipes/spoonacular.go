package recipes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"

	"flyerplan/internal/config"
	"flyerplan/internal/domain"
	"flyerplan/internal/domain/entity"
	"flyerplan/pkg/errcodes"
	"flyerplan/pkg/httpx"
	"flyerplan/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const cacheTTL = time.Hour

// Client verifies dish names against the recipe search service: one request
// per dish, exactly one top match, no retries. Lookups are cached for the
// process lifetime so the same dish is never queried twice in a run.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	verified   *cache.Cache
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(cfg config.Recipe, opts ...Option) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
		},
		verified: cache.New(cacheTTL, 10*time.Minute),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type searchResponse struct {
	Results []struct {
		Title               string `json:"title"`
		SourceURL           string `json:"sourceUrl"`
		ExtendedIngredients []struct {
			Original string `json:"original"`
			Aisle    string `json:"aisle"`
		} `json:"extendedIngredients"`
	} `json:"results"`
}

// Verify looks up the top recipe match for a free-text dish name. Zero
// results and all failure modes collapse to RecipeNotFound so one bad dish
// never aborts the caller's loop.
func (c *Client) Verify(ctx context.Context, dish string) (*entity.RecipeMatch, error) {
	key := strings.ToLower(strings.TrimSpace(dish))

	if cached, ok := c.verified.Get(key); ok {
		return cached.(*entity.RecipeMatch), nil //nolint:forcetypeassert // cache only holds matches
	}

	query := url.Values{
		"apiKey":               {c.apiKey},
		"query":                {dish},
		"number":               {"1"},
		"addRecipeInformation": {"true"},
		"fillIngredients":      {"true"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/recipes/complexSearch?%s", c.baseURL, query.Encode()), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.RecipeNotFound, "recipe search failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(errcodes.RecipeNotFound,
			fmt.Sprintf("recipe search responded with status %d", resp.StatusCode))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, domain.WrapError(err, errcodes.RecipeNotFound, "decode recipe search response")
	}

	if len(decoded.Results) == 0 {
		return nil, domain.NewError(errcodes.RecipeNotFound,
			fmt.Sprintf("no recipe found for %q", dish))
	}

	top := decoded.Results[0]

	match := &entity.RecipeMatch{
		Title:       top.Title,
		SourceURL:   top.SourceURL,
		Ingredients: make([]entity.Ingredient, 0, len(top.ExtendedIngredients)),
	}

	for _, ingredient := range top.ExtendedIngredients {
		match.Ingredients = append(match.Ingredients, entity.Ingredient{
			Original: ingredient.Original,
			Aisle:    ingredient.Aisle,
		})
	}

	c.verified.Set(key, match, cache.DefaultExpiration)

	return match, nil
}
