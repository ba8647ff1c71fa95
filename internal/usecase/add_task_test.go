package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/gestor-tareas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	now := time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)
	clock := &testutil.MockClock{NowTime: now}
	logger := &testutil.MockLogger{}
	uc := NewAddTask(repo, clock, logger)

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{Description: "Buy milk"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, out.TaskID)
	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, "Buy milk", repo.Tasks[0].Description)
	assert.False(t, repo.Tasks[0].Completed)
	assert.Equal(t, now, repo.Tasks[0].Created)

	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "task", logger.Entries[0].Category)
	assert.Contains(t, logger.Entries[0].Msg, "created task #1")
}

func TestAddTask_Execute_AppendsInOrder(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, &testutil.MockClock{}, nil)

	descs := []string{"first", "", "  padded  ", "ñandú [x] 1. 2."}
	for _, d := range descs {
		_, err := uc.Execute(context.Background(), AddTaskInput{Description: d})
		require.NoError(t, err)
	}

	assert.Equal(t, descs, repo.Descriptions())
	for _, task := range repo.Tasks {
		assert.False(t, task.Completed)
	}
}

func TestAddTask_Execute_NextIDError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.NextIDErr = assert.AnError
	uc := NewAddTask(repo, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{Description: "x"})

	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "generate task ID")
	assert.Empty(t, repo.Tasks)
}

func TestAddTask_Execute_SaveError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.SaveErr = assert.AnError
	uc := NewAddTask(repo, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{Description: "x"})

	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "save task")
}
