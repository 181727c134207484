package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flyerplan/internal/domain/entity"
	"flyerplan/internal/infrastructure/planner"
	"flyerplan/internal/metrics"
	"flyerplan/pkg/contextx"
	"flyerplan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type DealCollector interface {
	Collect(ctx context.Context) ([]entity.DealRecord, error)
}

type Exporter interface {
	Write(records []entity.DealRecord) error
}

type PlanGenerator interface {
	GeneratePlan(ctx context.Context, deals []entity.DealRecord) (*entity.MealPlan, error)
}

type RecipeVerifier interface {
	Verify(ctx context.Context, dish string) (*entity.RecipeMatch, error)
}

type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// PlanRunner drives one pipeline pass: collect deals, export them, generate
// the plan, optionally verify each dish against the recipe service, email the
// result. With an interval set it keeps repeating until the context ends.
type PlanRunner struct {
	collector DealCollector
	exporter  Exporter
	planner   PlanGenerator
	sender    Sender

	verifier RecipeVerifier
	interval time.Duration
}

func NewPlanRunner(
	collector DealCollector,
	exporter Exporter,
	generator PlanGenerator,
	sender Sender,
) *PlanRunner {
	return &PlanRunner{
		collector: collector,
		exporter:  exporter,
		planner:   generator,
		sender:    sender,
	}
}

// WithVerifier enables per-dish recipe verification.
func (r *PlanRunner) WithVerifier(verifier RecipeVerifier) *PlanRunner {
	r.verifier = verifier
	return r
}

// WithInterval switches the runner from single-shot to periodic mode.
func (r *PlanRunner) WithInterval(interval time.Duration) *PlanRunner {
	r.interval = interval
	return r
}

func (r *PlanRunner) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return r.RunOnce(ctx)
	}

	for {
		if err := r.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			logger(ctx).Error("plan run failed", logx.Error(err))
		}

		select {
		case <-time.After(r.interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunOnce executes a single pass. Export, plan generation and delivery are
// fail-hard: an empty export or an unsent plan is a correctness problem, not
// something to paper over.
func (r *PlanRunner) RunOnce(ctx context.Context) error {
	deals, err := r.collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect deals: %w", err)
	}

	if err := r.exporter.Write(deals); err != nil {
		return fmt.Errorf("export deals: %w", err)
	}

	logger(ctx).Info("deals exported", slog.Int(logx.FieldDealCount, len(deals)))

	plan, err := r.planner.GeneratePlan(ctx, deals)
	if err != nil {
		return fmt.Errorf("generate plan: %w", err)
	}

	body := plan.Text
	if r.verifier != nil {
		body += r.verifiedRecipesSection(ctx, plan.Text)
	}

	subject := fmt.Sprintf("Your meal plan for %s", plan.GeneratedAt.Format("Jan 2, 2006"))

	if err := r.sender.Send(ctx, subject, body); err != nil {
		return fmt.Errorf("send plan: %w", err)
	}

	metrics.EmailsSent.Inc()
	logger(ctx).Info("meal plan delivered", slog.String("model", plan.Model))

	return nil
}

// verifiedRecipesSection checks every dish the plan names. A dish without a
// match is skipped, it never aborts the remaining lookups.
func (r *PlanRunner) verifiedRecipesSection(ctx context.Context, planText string) string {
	dishes := planner.DishNames(planText)
	if len(dishes) == 0 {
		return ""
	}

	section := "\n\n## VERIFIED RECIPES\n"
	verified := 0

	for _, dish := range dishes {
		match, err := r.verifier.Verify(ctx, dish)
		if err != nil {
			logger(ctx).Warn("recipe verification failed",
				slog.String("dish", dish), logx.Error(err))
			continue
		}

		section += fmt.Sprintf("- %s: %s (%s, %d ingredients)\n",
			dish, match.Title, match.SourceURL, len(match.Ingredients))
		verified++
	}

	if verified == 0 {
		return ""
	}

	return section
}
