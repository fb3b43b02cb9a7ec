package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todo_system/internal/store"
)

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	s := store.New(10)

	first, err := s.CreateUser("Alice", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Pro)
	assert.Empty(t, first.Todos)

	second, err := s.CreateUser("Other Alice", "alice")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
	assert.Nil(t, second)
}

func TestLookupsReturnLiveReferences(t *testing.T) {
	s := store.New(10)

	created, err := s.CreateUser("Alice", "alice")
	require.NoError(t, err)

	byName, ok := s.UserByUsername("alice")
	require.True(t, ok)
	byID, ok := s.UserByID(created.ID)
	require.True(t, ok)

	// Both lookups alias the same record; a mutation through one is visible
	// through the other immediately.
	require.NoError(t, s.UpgradeUser(byName))
	assert.True(t, byID.Pro)
	assert.True(t, created.Pro)
}

func TestLookupsUnknown(t *testing.T) {
	s := store.New(10)

	_, ok := s.UserByUsername("ghost")
	assert.False(t, ok)
	_, ok = s.UserByID("no-such-id")
	assert.False(t, ok)
}

func TestUpgradeUserOnlyOnce(t *testing.T) {
	s := store.New(10)
	u, err := s.CreateUser("Alice", "alice")
	require.NoError(t, err)

	require.NoError(t, s.UpgradeUser(u))
	assert.True(t, u.Pro)

	err = s.UpgradeUser(u)
	assert.ErrorIs(t, err, store.ErrAlreadyPro)
	assert.True(t, u.Pro, "pro flag never reverts")
}

func TestAppendTodoEnforcesFreeQuota(t *testing.T) {
	s := store.New(3)
	u, err := s.CreateUser("Alice", "alice")
	require.NoError(t, err)

	deadline := time.Now().Add(24 * time.Hour)
	for i := 0; i < 3; i++ {
		assert.False(t, s.QuotaReached(u))
		_, err := s.AppendTodo(u, "task", deadline)
		require.NoError(t, err)
	}

	// A free user may hold exactly the limit, never one more.
	assert.True(t, s.QuotaReached(u))
	_, err = s.AppendTodo(u, "one too many", deadline)
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)
	assert.Len(t, u.Todos, 3)
}

func TestAppendTodoProUserUncapped(t *testing.T) {
	s := store.New(3)
	u, err := s.CreateUser("Alice", "alice")
	require.NoError(t, err)
	require.NoError(t, s.UpgradeUser(u))

	deadline := time.Now().Add(24 * time.Hour)
	for i := 0; i < 5; i++ {
		assert.False(t, s.QuotaReached(u))
		_, err := s.AppendTodo(u, "task", deadline)
		require.NoError(t, err)
	}
	assert.Len(t, u.Todos, 5)
}

func TestTodoByIDScopedToOwner(t *testing.T) {
	s := store.New(10)
	alice, err := s.CreateUser("Alice", "alice")
	require.NoError(t, err)
	bob, err := s.CreateUser("Bob", "bob")
	require.NoError(t, err)

	todo, err := s.AppendTodo(alice, "alice's task", time.Now())
	require.NoError(t, err)

	found, ok := s.TodoByID(alice, todo.ID)
	require.True(t, ok)
	assert.Same(t, todo, found)

	// The same id under another user is simply not found.
	_, ok = s.TodoByID(bob, todo.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, s.RemoveTodo(bob, todo.ID), store.ErrTodoNotFound)
}

func TestUpdateAndCompleteTodo(t *testing.T) {
	s := store.New(10)
	u, err := s.CreateUser("Alice", "alice")
	require.NoError(t, err)

	todo, err := s.AppendTodo(u, "before", time.Now())
	require.NoError(t, err)
	id, createdAt := todo.ID, todo.CreatedAt

	newDeadline := time.Now().Add(48 * time.Hour)
	s.UpdateTodo(todo, "after", newDeadline)
	assert.Equal(t, "after", todo.Title)
	assert.Equal(t, newDeadline, todo.Deadline)
	assert.Equal(t, id, todo.ID)
	assert.Equal(t, createdAt, todo.CreatedAt)
	assert.False(t, todo.Done)

	s.CompleteTodo(todo)
	assert.True(t, todo.Done)
	s.CompleteTodo(todo)
	assert.True(t, todo.Done, "completion never reverts")
}

func TestRemoveTodoRemovesExactlyOne(t *testing.T) {
	s := store.New(10)
	u, err := s.CreateUser("Alice", "alice")
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 3; i++ {
		todo, err := s.AppendTodo(u, "task", time.Now())
		require.NoError(t, err)
		ids = append(ids, todo.ID)
	}

	require.NoError(t, s.RemoveTodo(u, ids[1]))

	remaining := s.Todos(u)
	require.Len(t, remaining, 2)
	assert.Equal(t, ids[0], remaining[0].ID)
	assert.Equal(t, ids[2], remaining[1].ID)
}
