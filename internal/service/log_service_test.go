package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a file-backed store in a temp dir.
func newTestStore(t *testing.T) *repository.FileStore {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestLogService wires a LogService over a fresh store.
func newTestLogService(t *testing.T) *LogService {
	t.Helper()
	svc := NewLogService(repository.NewLogRepository(newTestStore(t)))
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

// fixedClock pins a service clock to a known instant.
func fixedClock(ts string) func() time.Time {
	parsed, err := time.ParseInLocation("2006-01-02 15:04", ts, time.Local)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed }
}

func mustAppend(t *testing.T, svc *LogService, req AppendLogRequest) model.LogEntry {
	t.Helper()
	entry, err := svc.Append(context.Background(), req)
	require.NoError(t, err)
	return entry
}

func gradePtr(g float64) *float64 { return &g }

// --- Append ---

func TestAppend_ValidEntry(t *testing.T) {
	svc := newTestLogService(t)

	entry := mustAppend(t, svc, AppendLogRequest{
		Date:    "2026-08-30",
		Subject: "  math  ",
		Hours:   2.5,
		Grade:   gradePtr(88),
		Notes:   " revised integrals ",
	})

	assert.NotEmpty(t, entry.ID, "entry ID should be generated")
	assert.Equal(t, "math", entry.Subject, "subject should be lowercased and trimmed")
	assert.Equal(t, "Math", entry.DisplaySubject)
	assert.Equal(t, 2.5, entry.Hours)
	assert.Equal(t, 88.0, *entry.Grade)
	assert.Equal(t, "revised integrals", entry.Notes, "notes should be trimmed")
	assert.False(t, entry.CreatedAt.IsZero())

	assert.Len(t, svc.Snapshot(), 1)
}

func TestAppend_GeneratesUniqueIDs(t *testing.T) {
	svc := newTestLogService(t)

	e1 := mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})
	e2 := mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})

	assert.NotEqual(t, e1.ID, e2.ID)
}

func TestAppend_ZeroHoursAllowed(t *testing.T) {
	svc := newTestLogService(t)

	entry := mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 0})
	assert.Equal(t, 0.0, entry.Hours)
}

func TestAppend_RejectsInvalidInput(t *testing.T) {
	svc := newTestLogService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  AppendLogRequest
		want error
	}{
		{"empty date", AppendLogRequest{Subject: "math", Hours: 1}, util.ErrEmptyDate},
		{"malformed date", AppendLogRequest{Date: "30/08/2026", Subject: "math", Hours: 1}, util.ErrInvalidDate},
		{"blank subject", AppendLogRequest{Date: "2026-08-30", Subject: "   ", Hours: 1}, util.ErrEmptySubject},
		{"negative hours", AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: -1}, util.ErrInvalidHours},
		{"hours above 24", AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 25}, util.ErrInvalidHours},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Append(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// rejected inputs must leave the collection untouched
	assert.Empty(t, svc.Snapshot())
}

// --- RemoveByID ---

func TestRemoveByID_DeletesEntry(t *testing.T) {
	svc := newTestLogService(t)

	keep := mustAppend(t, svc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 1})
	drop := mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 2})

	require.NoError(t, svc.RemoveByID(context.Background(), drop.ID))

	entries := svc.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, keep.ID, entries[0].ID)
}

func TestRemoveByID_UnknownID(t *testing.T) {
	svc := newTestLogService(t)
	mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})

	err := svc.RemoveByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, util.ErrEntryNotFound)
	assert.Len(t, svc.Snapshot(), 1, "failed delete should not modify the collection")
}

// --- Clear ---

func TestClear_EmptiesCollection(t *testing.T) {
	svc := newTestLogService(t)
	mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})
	mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 2})

	require.NoError(t, svc.Clear(context.Background()))
	assert.Empty(t, svc.Snapshot())
}

// --- Persistence and migration ---

func TestLoad_RestoresPersistedEntries(t *testing.T) {
	store := newTestStore(t)
	repo := repository.NewLogRepository(store)
	ctx := context.Background()

	first := NewLogService(repo)
	require.NoError(t, first.Load(ctx))
	_, err := first.Append(ctx, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 3})
	require.NoError(t, err)

	second := NewLogService(repo)
	require.NoError(t, second.Load(ctx))

	entries := second.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "math", entries[0].Subject)
	assert.Equal(t, 3.0, entries[0].Hours)
}

func TestLoad_MigratesLegacyEntries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// legacy records carry no id and no creation timestamp
	legacy := []map[string]interface{}{
		{"date": "2026-08-29", "subject": "math", "displaySubject": "Math", "hours": 2},
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, repository.KeyStudyLogs, raw))

	svc := NewLogService(repository.NewLogRepository(store))
	require.NoError(t, svc.Load(ctx))

	entries := svc.Snapshot()
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID, "migration should backfill a generated ID")
	assert.False(t, entries[0].CreatedAt.IsZero(), "migration should backfill a creation time")
	assert.Nil(t, entries[0].Grade, "missing grade stays unset")

	// the migrated form must have been written back
	fresh := NewLogService(repository.NewLogRepository(store))
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, entries[0].ID, fresh.Snapshot()[0].ID)
}

func TestLoad_CorruptDataFallsBackToEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, repository.KeyStudyLogs, []byte("{not json")))

	svc := NewLogService(repository.NewLogRepository(store))
	require.NoError(t, svc.Load(ctx))
	assert.Empty(t, svc.Snapshot())
}

// --- Mutation callback ---

func TestOnMutate_FiresOnEveryMutation(t *testing.T) {
	svc := newTestLogService(t)
	ctx := context.Background()

	calls := 0
	svc.SetOnMutate(func() { calls++ })

	entry := mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})
	require.NoError(t, svc.RemoveByID(ctx, entry.ID))
	require.NoError(t, svc.Clear(ctx))

	assert.Equal(t, 3, calls)

	// validation failures never notify
	_, err := svc.Append(ctx, AppendLogRequest{Subject: "math", Hours: 1})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestOnAppend_FiresOnlyForAppends(t *testing.T) {
	svc := newTestLogService(t)
	ctx := context.Background()

	appends := 0
	svc.SetOnAppend(func() { appends++ })

	entry := mustAppend(t, svc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})
	assert.Equal(t, 1, appends)

	// deletes and clears are mutations but not appends
	require.NoError(t, svc.RemoveByID(ctx, entry.ID))
	require.NoError(t, svc.Clear(ctx))
	assert.Equal(t, 1, appends)

	_, err := svc.Append(ctx, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 30})
	require.Error(t, err)
	assert.Equal(t, 1, appends, "rejected appends do not count")
}
