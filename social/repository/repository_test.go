package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ezdiharweb/agency-api/core/config"
	"github.com/ezdiharweb/agency-api/core/database"
	"github.com/ezdiharweb/agency-api/social/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"

	db, err := database.NewDatabaseWithCustomPath(cfg, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func seedPlan(t *testing.T, db *gorm.DB) (*PlanGormRepository, *PostGormRepository, *domain.ContentPlan) {
	t.Helper()
	ctx := context.Background()

	profiles := NewProfileGormRepository(db)
	plans := NewPlanGormRepository(db)
	posts := NewPostGormRepository(db)
	require.NoError(t, profiles.InitSchema(ctx))
	require.NoError(t, plans.InitSchema(ctx))
	require.NoError(t, posts.InitSchema(ctx))

	profile := &domain.MarketingProfile{ClientID: "client-1", Platforms: []string{"instagram", "tiktok"}}
	require.NoError(t, profiles.Create(ctx, profile))

	plan := &domain.ContentPlan{
		ProfileID:    profile.ID,
		Year:         2026,
		Month:        3,
		ScheduleType: domain.ScheduleMWF,
	}
	require.NoError(t, plans.Create(ctx, plan))
	return plans, posts, plan
}

func TestProfileRoundTripKeepsPlatforms(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	profiles := NewProfileGormRepository(db)
	require.NoError(t, profiles.InitSchema(ctx))

	profile := &domain.MarketingProfile{
		ClientID:  "client-1",
		Industry:  "Hospitality",
		Platforms: []string{"instagram", "tiktok", "snapchat"},
	}
	require.NoError(t, profiles.Create(ctx, profile))

	loaded, err := profiles.GetByClientID(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, loaded.ID)
	assert.Equal(t, []string{"instagram", "tiktok", "snapchat"}, loaded.Platforms)
}

func TestPlanPostsCountSubquery(t *testing.T) {
	db := newTestDB(t)
	plans, posts, plan := seedPlan(t, db)
	ctx := context.Background()

	loaded, err := plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.PostsCount)
	assert.Equal(t, domain.PlanStatusDraft, loaded.Status)

	batch := []*domain.ContentPost{
		{PlanID: plan.ID, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), PostType: domain.PostTypeFeed, Provider: "openai"},
		{PlanID: plan.ID, Date: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), PostType: domain.PostTypeStory, Provider: "openai"},
	}
	require.NoError(t, posts.CreateBatch(ctx, batch))

	loaded, err = plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.PostsCount)

	listed, err := plans.List(ctx, domain.PlanFilter{ProfileID: plan.ProfileID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].PostsCount)
}

func TestPlanDeleteCascadesPosts(t *testing.T) {
	db := newTestDB(t)
	plans, posts, plan := seedPlan(t, db)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &domain.ContentPost{
		PlanID:   plan.ID,
		Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		PostType: domain.PostTypeFeed,
		Provider: domain.ProviderManual,
	}))

	require.NoError(t, plans.Delete(ctx, plan.ID))

	_, err := plans.GetByID(ctx, plan.ID)
	assert.Equal(t, domain.ErrPlanNotFound, err)

	count, err := posts.CountByPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPostListOrderedByDate(t *testing.T) {
	db := newTestDB(t)
	_, posts, plan := seedPlan(t, db)
	ctx := context.Background()

	days := []int{27, 2, 13}
	for _, d := range days {
		require.NoError(t, posts.Create(ctx, &domain.ContentPost{
			PlanID:   plan.ID,
			Date:     time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC),
			PostType: domain.PostTypeFeed,
			Provider: "gemini",
		}))
	}

	listed, err := posts.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, 2, listed[0].Date.Day())
	assert.Equal(t, 13, listed[1].Date.Day())
	assert.Equal(t, 27, listed[2].Date.Day())
}

func TestDeleteByPlanOnlyTouchesThatPlan(t *testing.T) {
	db := newTestDB(t)
	plans, posts, plan := seedPlan(t, db)
	ctx := context.Background()

	other := &domain.ContentPlan{
		ProfileID:    plan.ProfileID,
		Year:         2026,
		Month:        4,
		ScheduleType: domain.ScheduleTuThSa,
	}
	require.NoError(t, plans.Create(ctx, other))

	require.NoError(t, posts.Create(ctx, &domain.ContentPost{
		PlanID: plan.ID, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), PostType: domain.PostTypeFeed, Provider: "openai",
	}))
	require.NoError(t, posts.Create(ctx, &domain.ContentPost{
		PlanID: other.ID, Date: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), PostType: domain.PostTypeFeed, Provider: "openai",
	}))

	require.NoError(t, posts.DeleteByPlan(ctx, plan.ID))

	count, err := posts.CountByPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = posts.CountByPlan(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateStatusOnMissingPlan(t *testing.T) {
	db := newTestDB(t)
	plans, _, _ := seedPlan(t, db)

	err := plans.UpdateStatus(context.Background(), "missing", domain.PlanStatusGenerating)
	assert.Equal(t, domain.ErrPlanNotFound, err)
}
