package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	clientsDomain "github.com/ezdiharweb/agency-api/clients/domain"
	"github.com/ezdiharweb/agency-api/social/domain"
	"github.com/ezdiharweb/agency-api/social/providers"
	"github.com/ezdiharweb/agency-api/social/schedule"
)

// GenerateResult is the outcome of one full plan generation run.
type GenerateResult struct {
	Success      bool   `json:"success"`
	PostsCreated int    `json:"posts_created"`
	Message      string `json:"message"`
}

// ContentGenerator runs the month-long generation pipeline for a plan:
// it computes the posting calendar, calls the AI gateway once per week
// batch, normalizes the responses and replaces the plan's posts in one
// pass. Week failures are collected, never fatal on their own; the run
// fails only when every week comes back empty.
type ContentGenerator struct {
	plans    domain.PlanRepository
	posts    domain.PostRepository
	profiles domain.ProfileRepository
	clients  clientsDomain.ClientRepository

	gateway     providers.Gateway
	prompter    *Prompter
	validator   *Validator
	weekTimeout time.Duration

	// One mutex per plan so concurrent generate calls for the same plan
	// serialize around the delete-and-insert window.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewContentGenerator(
	plans domain.PlanRepository,
	posts domain.PostRepository,
	profiles domain.ProfileRepository,
	clients clientsDomain.ClientRepository,
	gateway providers.Gateway,
	weekTimeout time.Duration,
) *ContentGenerator {
	return &ContentGenerator{
		plans:       plans,
		posts:       posts,
		profiles:    profiles,
		clients:     clients,
		gateway:     gateway,
		prompter:    NewPrompter(),
		validator:   NewValidator(),
		weekTimeout: weekTimeout,
		locks:       make(map[string]*sync.Mutex),
	}
}

func (g *ContentGenerator) planLock(planID string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	lock, ok := g.locks[planID]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[planID] = lock
	}
	return lock
}

// Generate runs the full pipeline for the given plan. The returned
// error is non-nil when the run produced no posts at all; partial runs
// succeed with only the completed weeks persisted.
func (g *ContentGenerator) Generate(ctx context.Context, planID string) (GenerateResult, error) {
	plan, err := g.plans.GetByID(ctx, planID)
	if err != nil {
		return GenerateResult{}, err
	}

	profile, err := g.profiles.GetByID(ctx, plan.ProfileID)
	if err != nil {
		return GenerateResult{}, err
	}

	client, err := g.clients.GetByID(ctx, profile.ClientID)
	if err != nil {
		return GenerateResult{}, err
	}

	dates, err := schedule.PostingDates(plan.Year, plan.Month, plan.ScheduleType)
	if err != nil {
		_ = g.plans.UpdateStatus(ctx, plan.ID, domain.PlanStatusError)
		return GenerateResult{}, err
	}
	weeks := schedule.GroupWeeks(dates)
	totalWeeks := len(weeks)

	if err := g.plans.UpdateStatus(ctx, plan.ID, domain.PlanStatusGenerating); err != nil {
		return GenerateResult{}, err
	}

	lock := g.planLock(plan.ID)
	lock.Lock()
	defer lock.Unlock()

	// Writes survive a caller disconnect: a cancelled request stops the
	// week loop but never leaves the plan half-persisted.
	persistCtx := context.WithoutCancel(ctx)

	// Regeneration replaces the previous run wholesale.
	if err := g.posts.DeleteByPlan(persistCtx, plan.ID); err != nil {
		_ = g.plans.UpdateStatus(persistCtx, plan.ID, domain.PlanStatusError)
		return GenerateResult{}, err
	}

	var allPosts []*domain.ContentPost
	var weekErrors []string
	cancelled := false

	for weekIdx, weekDates := range weeks {
		if ctx.Err() != nil {
			weekErrors = append(weekErrors, fmt.Sprintf("Week %d: %s", weekIdx+1, ctx.Err().Error()))
			cancelled = true
			break
		}

		posts, failure := g.generateWeek(ctx, profile, client.DisplayName(), weekIdx+1, totalWeeks, weekDates)
		if failure != "" {
			weekErrors = append(weekErrors, fmt.Sprintf("Week %d: %s", weekIdx+1, failure))
			continue
		}
		for _, p := range posts {
			p.PlanID = plan.ID
		}
		allPosts = append(allPosts, posts...)
	}

	if len(allPosts) > 0 {
		if err := g.posts.CreateBatch(persistCtx, allPosts); err != nil {
			_ = g.plans.UpdateStatus(persistCtx, plan.ID, domain.PlanStatusError)
			return GenerateResult{}, err
		}

		// An interrupted run keeps what it produced but is not a success:
		// the plan stays in error so a retry is obviously needed.
		if cancelled {
			message := strings.Join(weekErrors, "; ")
			_ = g.plans.UpdateStatus(persistCtx, plan.ID, domain.PlanStatusError)
			logrus.WithFields(logrus.Fields{
				"plan_id": plan.ID,
				"posts":   len(allPosts),
			}).Warnf("[CONTENT_GEN] Generation cancelled: %s", message)
			return GenerateResult{PostsCreated: len(allPosts), Message: message},
				domain.GenerationFailedError(message)
		}

		if err := g.plans.UpdateStatus(persistCtx, plan.ID, domain.PlanStatusGenerated); err != nil {
			return GenerateResult{}, err
		}

		logrus.WithFields(logrus.Fields{
			"plan_id":  plan.ID,
			"posts":    len(allPosts),
			"weeks":    totalWeeks,
			"failures": len(weekErrors),
		}).Info("[CONTENT_GEN] Plan generated")

		return GenerateResult{
			Success:      true,
			PostsCreated: len(allPosts),
			Message:      fmt.Sprintf("Generated %d posts successfully", len(allPosts)),
		}, nil
	}

	_ = g.plans.UpdateStatus(persistCtx, plan.ID, domain.PlanStatusError)

	message := "No content generated"
	if len(weekErrors) > 0 {
		message = strings.Join(weekErrors, "; ")
	}
	logrus.WithField("plan_id", plan.ID).Warnf("[CONTENT_GEN] Generation failed: %s", message)

	return GenerateResult{}, domain.GenerationFailedError(message)
}

// generateWeek produces the posts for one week batch. A non-empty
// failure string means the week contributed nothing; the caller records
// it and moves on.
func (g *ContentGenerator) generateWeek(ctx context.Context, profile *domain.MarketingProfile, clientName string, week, totalWeeks int, weekDates []time.Time) ([]*domain.ContentPost, string) {
	prompt := g.prompter.BuildWeeklyPrompt(profile, clientName, week, totalWeeks)

	weekCtx := ctx
	if g.weekTimeout > 0 {
		var cancel context.CancelFunc
		weekCtx, cancel = context.WithTimeout(ctx, g.weekTimeout)
		defer cancel()
	}

	logrus.WithFields(logrus.Fields{
		"week":     week,
		"of":       totalWeeks,
		"provider": g.gateway.Name(),
	}).Info("[CONTENT_GEN] Generating week")

	raw, err := g.gateway.Generate(weekCtx, prompt)
	if err != nil {
		return nil, err.Error()
	}

	posts, warnings := g.validator.ValidateAndMap(raw, weekDates, profile, g.gateway.Name())
	if len(posts) == 0 {
		if len(warnings) > 0 {
			return nil, warnings[0]
		}
		return nil, "AI returned empty posts array"
	}
	return posts, ""
}
