package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndList(t *testing.T) {
	repo := NewChatRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "bob", "hi", "hello"))
	require.NoError(t, repo.Append(ctx, "bob", "bye", "goodbye"))

	records, err := repo.ListByUsername(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "hi", records[0].Question)
	assert.Equal(t, "hello", records[0].Answer)
	assert.Equal(t, "bye", records[1].Question)
	assert.Equal(t, "goodbye", records[1].Answer)
	assert.False(t, records[0].CreatedAt.After(records[1].CreatedAt))
}

func TestAppendIsLastElement(t *testing.T) {
	repo := NewChatRepository(setupTestDB(t))
	ctx := context.Background()

	for _, turn := range [][2]string{
		{"q1", "a1"},
		{"q2", "a2"},
		{"q3", "a3"},
	} {
		require.NoError(t, repo.Append(ctx, "alice", turn[0], turn[1]))

		records, err := repo.ListByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotEmpty(t, records)

		last := records[len(records)-1]
		assert.Equal(t, turn[0], last.Question)
		assert.Equal(t, turn[1], last.Answer)
	}
}

func TestListEmptyHistory(t *testing.T) {
	repo := NewChatRepository(setupTestDB(t))

	records, err := repo.ListByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListIsScopedToUsername(t *testing.T) {
	repo := NewChatRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "alice", "q-alice", "a-alice"))
	require.NoError(t, repo.Append(ctx, "bob", "q-bob", "a-bob"))

	records, err := repo.ListByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "q-alice", records[0].Question)
}
