package repository

import (
	"context"
	"testing"
	"time"

	"beltdash/backend/internal/models"
	"beltdash/backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationsStayStagedUntilSaveChanges(t *testing.T) {
	db := testutils.SetupTestDB(t)
	ctx := context.Background()

	uow := NewUnitOfWork(db)
	defer uow.Close()

	user := models.User{
		Username:     "staged_user",
		Email:        "staged@example.com",
		PasswordHash: "x",
		Status:       models.StatusActive,
		RoleID:       1,
	}
	uow.Users.Add(&user)

	// Nothing committed yet.
	found, err := uow.Users.GetByUsername(ctx, "staged_user")
	require.NoError(t, err)
	assert.Nil(t, found)

	affected, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err = uow.Users.GetByUsername(ctx, "staged_user")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "staged@example.com", found.Email)
}

func TestSaveChangesCommitsAcrossRepositories(t *testing.T) {
	db := testutils.SetupTestDB(t)
	ctx := context.Background()
	owner := testutils.CreateTestUser(t, db)

	uow := NewUnitOfWork(db)
	defer uow.Close()

	user := models.User{
		Username:     "batch_user",
		Email:        "batch@example.com",
		PasswordHash: "x",
		Status:       models.StatusActive,
		RoleID:       1,
	}
	score := models.Score{UserID: owner.ID, Points: 77}

	uow.Users.Add(&user)
	uow.Scores.Add(&score)

	affected, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	gotScore, err := uow.Scores.GetByID(ctx, score.ID)
	require.NoError(t, err)
	require.NotNil(t, gotScore)
	assert.Equal(t, 77, gotScore.Points)
}

func TestSaveChangesStampsTimestamps(t *testing.T) {
	db := testutils.SetupTestDB(t)
	ctx := context.Background()

	uow := NewUnitOfWork(db)
	defer uow.Close()

	user := models.User{
		Username:     "stamped",
		Email:        "stamped@example.com",
		PasswordHash: "x",
		Status:       models.StatusActive,
		RoleID:       1,
	}
	uow.Users.Add(&user)
	_, err := uow.SaveChanges(ctx)
	require.NoError(t, err)

	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
	createdAt := user.CreatedAt

	time.Sleep(10 * time.Millisecond)

	user.Username = "restamped"
	uow.Users.Update(&user)
	_, err = uow.SaveChanges(ctx)
	require.NoError(t, err)

	assert.Equal(t, createdAt, user.CreatedAt, "CreatedAt must not change on update")
	assert.True(t, user.UpdatedAt.After(createdAt), "UpdatedAt must move forward on update")
}

func TestCloseDiscardsStagedWork(t *testing.T) {
	db := testutils.SetupTestDB(t)
	ctx := context.Background()

	uow := NewUnitOfWork(db)
	user := models.User{
		Username:     "discarded",
		Email:        "discarded@example.com",
		PasswordHash: "x",
		Status:       models.StatusActive,
		RoleID:       1,
	}
	uow.Users.Add(&user)
	uow.Close()

	affected, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Zero(t, affected)

	found, err := uow.Users.GetByUsername(ctx, "discarded")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDeleteStagedThroughUnitOfWork(t *testing.T) {
	db := testutils.SetupTestDB(t)
	ctx := context.Background()
	user := testutils.CreateTestUser(t, db)

	uow := NewUnitOfWork(db)
	defer uow.Close()

	loaded, err := uow.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	uow.Users.Delete(loaded)
	affected, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	gone, err := uow.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
