package planner

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"flyerplan/internal/config"
	"flyerplan/internal/domain"
	"flyerplan/internal/domain/entity"
	"flyerplan/internal/metrics"
	"flyerplan/pkg/errcodes"
)

// Gemini produces the meal plan from the collected deals. The GoogleSearch
// built-in tool is enabled so the model can return working recipe links
// instead of hallucinated ones.
type Gemini struct {
	client   *genai.Client
	model    string
	budget   float64
	days     int
	maxDeals int
}

func NewGemini(ctx context.Context, cfg config.Planner) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &Gemini{
		client:   client,
		model:    cfg.Model,
		budget:   cfg.Budget,
		days:     cfg.Days,
		maxDeals: cfg.MaxDeals,
	}, nil
}

func (g *Gemini) GeneratePlan(ctx context.Context, deals []entity.DealRecord) (*entity.MealPlan, error) {
	prompt := BuildPrompt(deals, g.budget, g.days, g.maxDeals)

	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		},
	)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.PlanGenerationFailed, "generate content")
	}

	text := result.Text()
	if text == "" {
		return nil, domain.NewError(errcodes.PlanGenerationFailed, "model returned an empty plan")
	}

	metrics.PlansGenerated.Inc()

	return &entity.MealPlan{
		Text:        text,
		Model:       g.model,
		GeneratedAt: time.Now(),
		DealCount:   len(deals),
	}, nil
}
