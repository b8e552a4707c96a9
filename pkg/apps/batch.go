// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"context"
	"io"

	"github.com/azure/acactl/pkg/ux"
	"github.com/benbjohnson/clock"
)

// BatchTask is one operation of a batch, keyed by its title in progress output.
type BatchTask struct {
	Title  string
	Action func(ctx context.Context) error
}

// BatchRunner runs a set of tasks concurrently and returns once every task settled.
// The returned error combines the failures of all tasks.
type BatchRunner interface {
	RunBatch(ctx context.Context, tasks []BatchTask) error
}

// TaskListBatchRunner runs batches through a ux.TaskList. Failed tasks never stop their siblings.
type TaskListBatchRunner struct {
	writer io.Writer
	clock  clock.Clock
}

func NewTaskListBatchRunner(writer io.Writer, clock clock.Clock) *TaskListBatchRunner {
	return &TaskListBatchRunner{
		writer: writer,
		clock:  clock,
	}
}

func (r *TaskListBatchRunner) RunBatch(ctx context.Context, tasks []BatchTask) error {
	if len(tasks) == 0 {
		return nil
	}

	taskList := ux.NewTaskList(&ux.TaskListOptions{
		Writer:          r.writer,
		ContinueOnError: true,
		Clock:           r.clock,
	})

	for _, task := range tasks {
		taskList.AddTask(ux.TaskOptions{
			Title: task.Title,
			Async: true,
			Action: func(_ ux.SetProgressFunc) (ux.TaskState, error) {
				if err := task.Action(ctx); err != nil {
					return ux.Error, err
				}

				return ux.Success, nil
			},
		})
	}

	return taskList.Run()
}
