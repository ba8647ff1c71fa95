package memstore

import (
	"testing"
	"time"

	"github.com/runoshun/gestor-tareas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_NextID(t *testing.T) {
	store := New()

	id1, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, id1)

	id2, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 2, id2)
}

func TestStore_SaveAndList(t *testing.T) {
	store := New()

	now := time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ID:          1,
		Description: "Buy milk",
		Created:     now,
	}
	require.NoError(t, store.Save(task))

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Description)
	assert.Equal(t, now, tasks[0].Created)
	assert.False(t, tasks[0].Completed)
}

func TestStore_List_ReturnsCopies(t *testing.T) {
	store := New()
	require.NoError(t, store.Save(&domain.Task{ID: 1, Description: "Buy milk"}))

	tasks, err := store.List()
	require.NoError(t, err)
	tasks[0].Complete()

	again, err := store.List()
	require.NoError(t, err)
	assert.False(t, again[0].Completed, "mutating a returned task must not change the store")
}

func TestStore_Save_UpdatesInPlace(t *testing.T) {
	store := newTestStore(t, "a", "b", "c")

	tasks, err := store.List()
	require.NoError(t, err)
	task := tasks[1]
	task.Complete()
	require.NoError(t, store.Save(task))

	tasks, err = store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"a", "b", "c"}, descriptions(tasks))
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)
	assert.False(t, tasks[2].Completed)
}

func TestStore_Save_AdvancesNextID(t *testing.T) {
	store := New()
	require.NoError(t, store.Save(&domain.Task{ID: 7}))

	id, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 8, id)
}

func TestStore_List_InsertionOrder(t *testing.T) {
	store := newTestStore(t, "first", "", "third with spaces")

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "", "third with spaces"}, descriptions(tasks))
}

func TestStore_List_Empty(t *testing.T) {
	store := New()

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t, "a", "b", "c")

	require.NoError(t, store.Delete(2))

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, descriptions(tasks))

	// IDs are not reused after a delete
	id, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 4, id)
}

func TestStore_Delete_Missing(t *testing.T) {
	store := newTestStore(t, "a")

	require.NoError(t, store.Delete(99))

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

// newTestStore creates a store holding one task per description.
func newTestStore(t *testing.T, descs ...string) *Store {
	t.Helper()
	store := New()
	for _, d := range descs {
		id, err := store.NextID()
		require.NoError(t, err)
		require.NoError(t, store.Save(&domain.Task{ID: id, Description: d}))
	}
	return store
}

func descriptions(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Description
	}
	return out
}
