package application

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientsDomain "github.com/ezdiharweb/agency-api/clients/domain"
	clientsRepo "github.com/ezdiharweb/agency-api/clients/repository"
	"github.com/ezdiharweb/agency-api/core/config"
	"github.com/ezdiharweb/agency-api/core/database"
	"github.com/ezdiharweb/agency-api/social/domain"
	socialRepo "github.com/ezdiharweb/agency-api/social/repository"
)

// scriptedGateway returns one canned response per call, in order.
// A script entry with a non-nil err fails that week.
type scriptedGateway struct {
	script []scriptEntry
	calls  int
	onCall func()
}

type scriptEntry struct {
	response string
	err      error
}

func (g *scriptedGateway) Generate(_ context.Context, _ string) (string, error) {
	if g.onCall != nil {
		g.onCall()
	}
	if g.calls >= len(g.script) {
		return "{}", nil
	}
	entry := g.script[g.calls]
	g.calls++
	if entry.err != nil {
		return "", entry.err
	}
	return entry.response, nil
}

func (g *scriptedGateway) Name() string {
	return "openai"
}

type generatorFixture struct {
	clients  *clientsRepo.ClientGormRepository
	profiles *socialRepo.ProfileGormRepository
	plans    *socialRepo.PlanGormRepository
	posts    *socialRepo.PostGormRepository

	plan *domain.ContentPlan
}

// newGeneratorFixture builds a sqlite-backed repo set with one client,
// one profile and one plan for March 2026 on the MWF cadence
// (13 posting dates, 5 week batches).
func newGeneratorFixture(t *testing.T) *generatorFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"

	db, err := database.NewDatabaseWithCustomPath(cfg, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	f := &generatorFixture{
		clients:  clientsRepo.NewClientGormRepository(db),
		profiles: socialRepo.NewProfileGormRepository(db),
		plans:    socialRepo.NewPlanGormRepository(db),
		posts:    socialRepo.NewPostGormRepository(db),
	}

	ctx := context.Background()
	require.NoError(t, f.clients.InitSchema(ctx))
	require.NoError(t, f.profiles.InitSchema(ctx))
	require.NoError(t, f.plans.InitSchema(ctx))
	require.NoError(t, f.posts.InitSchema(ctx))

	client := &clientsDomain.Client{Name: "Ahmed", Company: "Dates & Co"}
	require.NoError(t, f.clients.Create(ctx, client))

	profile := &domain.MarketingProfile{
		ClientID:  client.ID,
		Industry:  "Food",
		Platforms: []string{"instagram"},
	}
	require.NoError(t, f.profiles.Create(ctx, profile))

	f.plan = &domain.ContentPlan{
		ProfileID:    profile.ID,
		Year:         2026,
		Month:        3,
		ScheduleType: domain.ScheduleMWF,
		Status:       domain.PlanStatusDraft,
	}
	require.NoError(t, f.plans.Create(ctx, f.plan))

	return f
}

func (f *generatorFixture) generator(gateway *scriptedGateway) *ContentGenerator {
	return NewContentGenerator(f.plans, f.posts, f.profiles, f.clients, gateway, time.Minute)
}

func weekJSON(n int) string {
	return fmt.Sprintf(`{"posts":[
		{"dayIndex":0,"postType":"FEED","platform":"instagram","captionEn":"post %d.1"},
		{"dayIndex":1,"postType":"STORY","platform":"instagram","captionEn":"post %d.2"},
		{"dayIndex":2,"postType":"REEL","platform":"instagram","captionEn":"post %d.3"}
	]}`, n, n, n)
}

func TestGenerate_AllWeeksSucceed(t *testing.T) {
	f := newGeneratorFixture(t)
	gateway := &scriptedGateway{script: []scriptEntry{
		{response: weekJSON(1)},
		{response: weekJSON(2)},
		{response: weekJSON(3)},
		{response: weekJSON(4)},
		{response: `{"posts":[{"dayIndex":0,"postType":"FEED","platform":"instagram","captionEn":"post 5.1"}]}`},
	}}

	result, err := f.generator(gateway).Generate(context.Background(), f.plan.ID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 13, result.PostsCreated)
	assert.Equal(t, "Generated 13 posts successfully", result.Message)
	assert.Equal(t, 5, gateway.calls)

	plan, err := f.plans.GetByID(context.Background(), f.plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanStatusGenerated, plan.Status)
	assert.Equal(t, 13, plan.PostsCount)

	posts, err := f.posts.ListByPlan(context.Background(), f.plan.ID)
	require.NoError(t, err)
	require.Len(t, posts, 13)
	// First MWF date of March 2026 is Monday the 2nd.
	assert.Equal(t, 2, posts[0].Date.Day())
	for _, p := range posts {
		assert.Equal(t, "openai", p.Provider)
	}
}

func TestGenerate_PartialFailureKeepsSuccessfulWeeks(t *testing.T) {
	f := newGeneratorFixture(t)
	gateway := &scriptedGateway{script: []scriptEntry{
		{response: weekJSON(1)},
		{err: fmt.Errorf("OpenAI API error 429: rate limited")},
		{response: weekJSON(3)},
		{response: "not json at all"},
		{response: `{"posts":[]}`},
	}}

	result, err := f.generator(gateway).Generate(context.Background(), f.plan.ID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 6, result.PostsCreated)

	plan, err := f.plans.GetByID(context.Background(), f.plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanStatusGenerated, plan.Status)

	posts, err := f.posts.ListByPlan(context.Background(), f.plan.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 6)
}

func TestGenerate_AllWeeksFail(t *testing.T) {
	f := newGeneratorFixture(t)
	gateway := &scriptedGateway{script: []scriptEntry{
		{err: fmt.Errorf("boom")},
		{err: fmt.Errorf("boom")},
		{response: "not json"},
		{response: `{"posts":[]}`},
		{err: fmt.Errorf("boom")},
	}}

	result, err := f.generator(gateway).Generate(context.Background(), f.plan.ID)
	require.Error(t, err)
	assert.False(t, result.Success)

	assert.Contains(t, err.Error(), "Week 1: boom")
	assert.Contains(t, err.Error(), "Week 3: JSON parse error")
	assert.Contains(t, err.Error(), "Week 4: AI returned empty posts array")

	plan, gerr := f.plans.GetByID(context.Background(), f.plan.ID)
	require.NoError(t, gerr)
	assert.Equal(t, domain.PlanStatusError, plan.Status)

	count, cerr := f.posts.CountByPlan(context.Background(), f.plan.ID)
	require.NoError(t, cerr)
	assert.Equal(t, 0, count)
}

func TestGenerate_RegenerationReplacesPosts(t *testing.T) {
	f := newGeneratorFixture(t)
	gen := f.generator(&scriptedGateway{script: []scriptEntry{
		{response: weekJSON(1)},
		{response: weekJSON(2)},
		{response: weekJSON(3)},
		{response: weekJSON(4)},
		{response: weekJSON(5)},
	}})

	_, err := gen.Generate(context.Background(), f.plan.ID)
	require.NoError(t, err)

	// Second run: only two weeks come back.
	gen2 := f.generator(&scriptedGateway{script: []scriptEntry{
		{response: weekJSON(1)},
		{response: weekJSON(2)},
		{err: fmt.Errorf("boom")},
		{err: fmt.Errorf("boom")},
		{err: fmt.Errorf("boom")},
	}})

	result, err := gen2.Generate(context.Background(), f.plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, result.PostsCreated)

	count, err := f.posts.CountByPlan(context.Background(), f.plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestGenerate_PlanNotFound(t *testing.T) {
	f := newGeneratorFixture(t)

	_, err := f.generator(&scriptedGateway{}).Generate(context.Background(), "missing")
	assert.Equal(t, domain.ErrPlanNotFound, err)
}

func TestGenerate_CancelledContextStopsAtWeekBoundary(t *testing.T) {
	f := newGeneratorFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel during week 1: the loop must stop before week 2 but still
	// persist what the first week produced.
	gateway := &scriptedGateway{
		script: []scriptEntry{
			{response: weekJSON(1)},
			{response: weekJSON(2)},
		},
		onCall: cancel,
	}

	result, err := f.generator(gateway).Generate(ctx, f.plan.ID)
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 3, result.PostsCreated)
	assert.Equal(t, 1, gateway.calls)
	assert.Contains(t, err.Error(), "Week 2: context canceled")

	plan, gerr := f.plans.GetByID(context.Background(), f.plan.ID)
	require.NoError(t, gerr)
	assert.Equal(t, domain.PlanStatusError, plan.Status)

	count, cerr := f.posts.CountByPlan(context.Background(), f.plan.ID)
	require.NoError(t, cerr)
	assert.Equal(t, 3, count)
}
