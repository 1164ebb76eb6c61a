package repository

import (
	"context"
	"testing"

	"study_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- AchievementRepository ---

func TestAchievementRepository_MissingKeyYieldsFreshSet(t *testing.T) {
	repo := NewAchievementRepository(newFileStore(t))

	set, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, set, len(model.BadgeCatalog), "every badge in the catalog gets a flag")
	assert.Equal(t, 0, set.EarnedCount())
}

func TestAchievementRepository_ReconcilesAgainstCatalog(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	// stored set carries an unknown badge and misses most known ones
	raw := []byte(`{"firstEntry":true,"retiredBadge":true}`)
	require.NoError(t, store.Save(ctx, KeyAchievements, raw))

	set, err := NewAchievementRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.True(t, set[model.BadgeFirstEntry])
	assert.False(t, set[model.BadgeStreak3], "missing flags default to false")
	_, hasUnknown := set["retiredBadge"]
	assert.False(t, hasUnknown, "unknown badges are dropped on load")
}

func TestAchievementRepository_CorruptDataYieldsFreshSet(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, KeyAchievements, []byte("[broken")))

	set, err := NewAchievementRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, set.EarnedCount())
}

// --- GoalRepository ---

func TestGoalRepository_Roundtrip(t *testing.T) {
	repo := NewGoalRepository(newFileStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 3.5))
	goal, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3.5, goal)

	require.NoError(t, repo.Erase(ctx))
	goal, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, goal)
}

func TestGoalRepository_CorruptDataYieldsZero(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, KeyStudyGoal, []byte("not-a-number")))

	goal, err := NewGoalRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, goal)
}

// --- TimerRepository ---

func TestTimerRepository_Roundtrip(t *testing.T) {
	repo := NewTimerRepository(newFileStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.TimerStats{CompletedSessions: 3, TotalFocusMinutes: 75}))
	stats, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.CompletedSessions)
	assert.Equal(t, 75, stats.TotalFocusMinutes)
}

func TestTimerRepository_NegativeCountersDiscarded(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, KeyTimerStats, []byte(`{"completedSessions":-1,"totalFocusMinutes":10}`)))

	stats, err := NewTimerRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.TimerStats{}, stats, "implausible stored counters reset wholesale")
}

// --- PreferenceRepository ---

func TestPreferenceRepository_DefaultsWhenUnset(t *testing.T) {
	repo := NewPreferenceRepository(newFileStore(t))

	prefs, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs.Theme)
	assert.False(t, prefs.RemindersEnabled)
}

func TestPreferenceRepository_Roundtrip(t *testing.T) {
	repo := NewPreferenceRepository(newFileStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.Preferences{Theme: "light", RemindersEnabled: true}))

	prefs, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", prefs.Theme)
	assert.True(t, prefs.RemindersEnabled)
}
