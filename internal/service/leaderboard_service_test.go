package service

import (
	"context"
	"testing"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeaderboard(t *testing.T) {
	db := newTestDB(t)
	// nil redis client: caching is skipped, ranking comes from the ledger
	svc := NewLeaderboardService(repository.NewXpRepository(db), repository.NewUserRepository(db), nil)
	auth := newAuthService(db)
	xp := repository.NewXpRepository(db)

	first, err := auth.Register(RegisterRequest{Email: "a@example.com", Password: "password123", Role: model.Student, FullName: "Ana"})
	require.NoError(t, err)
	second, err := auth.Register(RegisterRequest{Email: "b@example.com", Password: "password123", Role: model.Student})
	require.NoError(t, err)

	require.NoError(t, xp.Append(&model.XpLedgerEntry{StudentID: first.ID, Amount: 30, Reason: "test"}))
	require.NoError(t, xp.Append(&model.XpLedgerEntry{StudentID: first.ID, Amount: 20, Reason: "test"}))
	require.NoError(t, xp.Append(&model.XpLedgerEntry{StudentID: second.ID, Amount: 40, Reason: "test"}))

	entries, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, first.ID, entries[0].StudentID, "ledger sums decide the order")
	assert.Equal(t, 50, entries[0].TotalXp)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Ana", entries[0].Name)

	assert.Equal(t, second.ID, entries[1].StudentID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "Anonymous", entries[1].Name, "students without a profile name stay anonymous")
}

func TestGetLeaderboardEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(repository.NewXpRepository(db), repository.NewUserRepository(db), nil)

	entries, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
