package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/infra/repository"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/testutil"
)

func TestCommitmentSaveAndFindSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCommitmentRepository(testDB.DB)
	ctx := context.Background()

	commitment := newTestCommitment(t)

	require.NoError(t, repo.Save(ctx, commitment))

	found, err := repo.FindByID(ctx, commitment.ID())
	require.NoError(t, err)

	assert.Equal(t, commitment.ID().String(), found.ID().String())
	assert.Equal(t, commitment.Title(), found.Title())
	assert.Equal(t, commitment.Window().String(), found.Window().String())
	assert.Equal(t, commitment.Weekdays().ToSlice(), found.Weekdays().ToSlice())
}

func TestCommitmentFindByIDNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCommitmentRepository(testDB.DB)

	unknownID, err := domain.CommitmentIDFromString(uuid.NewString())
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), unknownID)

	assert.ErrorIs(t, err, domain.ErrCommitmentNotFound)
}

func TestCommitmentFindByUserIDSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCommitmentRepository(testDB.DB)
	ctx := context.Background()

	userID, err := domain.UserIDFromString(uuid.Must(uuid.NewV7()).String())
	require.NoError(t, err)

	weekdays, err := domain.NewWeekdaySet(time.Tuesday)
	require.NoError(t, err)

	for _, title := range []string{"first", "second"} {
		commitment, err := domain.NewCommitment(
			userID,
			title,
			domain.MustTimeWindow(domain.MustClockTime(9, 0), domain.MustClockTime(10, 0)),
			weekdays,
			nil,
			domain.Date{},
			domain.Date{},
			nil,
		)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, commitment))
	}

	// another user's commitment must not leak in
	other := newTestCommitment(t)
	require.NoError(t, repo.Save(ctx, other))

	found, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)

	assert.Len(t, found, 2)

	for _, c := range found {
		assert.Equal(t, userID.String(), c.UserID().String())
	}
}

func TestCommitmentUpdateSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCommitmentRepository(testDB.DB)
	ctx := context.Background()

	commitment := newTestCommitment(t)
	require.NoError(t, repo.Save(ctx, commitment))

	require.NoError(t, commitment.Rename("evening gym session"))

	weekdays, err := domain.NewWeekdaySet(time.Saturday)
	require.NoError(t, err)

	require.NoError(t, commitment.Reschedule(
		domain.MustTimeWindow(domain.MustClockTime(7, 0), domain.MustClockTime(8, 0)),
		weekdays,
		nil,
	))

	require.NoError(t, repo.Update(ctx, commitment))

	found, err := repo.FindByID(ctx, commitment.ID())
	require.NoError(t, err)

	assert.Equal(t, "evening gym session", found.Title())
	assert.Equal(t, "07:00", found.Window().Start().String())
	assert.Equal(t, []time.Weekday{time.Saturday}, found.Weekdays().ToSlice())
}

func TestCommitmentUpdateClearsOccurrences(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCommitmentRepository(testDB.DB)
	ctx := context.Background()

	userID, err := domain.UserIDFromString(uuid.Must(uuid.NewV7()).String())
	require.NoError(t, err)

	occurrence, err := domain.DateFromString("2025-03-11")
	require.NoError(t, err)

	commitment, err := domain.NewCommitment(
		userID,
		"dentist appointment",
		domain.MustTimeWindow(domain.MustClockTime(14, 0), domain.MustClockTime(15, 0)),
		domain.WeekdaySet{},
		[]domain.Date{occurrence},
		domain.Date{},
		domain.Date{},
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, commitment))

	// Switch the one-off rule to a recurring one; the stored occurrence
	// list must be cleared, not left behind by a zero-value-skipping update.
	weekdays, err := domain.NewWeekdaySet(time.Saturday)
	require.NoError(t, err)

	require.NoError(t, commitment.Reschedule(
		domain.MustTimeWindow(domain.MustClockTime(14, 0), domain.MustClockTime(15, 0)),
		weekdays,
		nil,
	))
	require.NoError(t, repo.Update(ctx, commitment))

	found, err := repo.FindByID(ctx, commitment.ID())
	require.NoError(t, err)

	assert.Empty(t, found.Occurrences())
	assert.Equal(t, []time.Weekday{time.Saturday}, found.Weekdays().ToSlice())
	assert.False(t, found.AppliesOn(occurrence))
}

func TestCommitmentUpdateNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCommitmentRepository(testDB.DB)

	commitment := newTestCommitment(t)

	err := repo.Update(context.Background(), commitment)

	assert.ErrorIs(t, err, domain.ErrCommitmentNotFound)
}

func TestCommitmentDeleteSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCommitmentRepository(testDB.DB)
	ctx := context.Background()

	commitment := newTestCommitment(t)
	require.NoError(t, repo.Save(ctx, commitment))

	require.NoError(t, repo.Delete(ctx, commitment.ID()))

	_, err := repo.FindByID(ctx, commitment.ID())
	assert.ErrorIs(t, err, domain.ErrCommitmentNotFound)

	err = repo.Delete(ctx, commitment.ID())
	assert.ErrorIs(t, err, domain.ErrCommitmentNotFound)
}
