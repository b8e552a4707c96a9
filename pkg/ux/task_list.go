// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ux

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/azure/acactl/pkg/output"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
	"github.com/theckman/yacspin"
	"go.uber.org/multierr"
)

type TaskState int

const (
	Pending TaskState = iota
	Running
	Skipped
	Warning
	Error
	Success
)

func (s TaskState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Skipped:
		return "skipped"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// SetProgressFunc reports intermediate progress text for a running task.
type SetProgressFunc func(progress string)

// TaskOptions describes one unit of work in a TaskList.
type TaskOptions struct {
	Title  string
	Action func(SetProgressFunc) (TaskState, error)
	// Async tasks start immediately and run alongside the tasks that follow them.
	Async bool
}

// TaskListOptions controls how a TaskList runs and renders.
type TaskListOptions struct {
	Writer io.Writer
	// Keep running the remaining tasks after a synchronous task fails.
	ContinueOnError bool
	// Upper bound on async tasks running at once. Zero or less means unbounded.
	MaxConcurrentAsync int
	Clock              clock.Clock
}

var DefaultTaskListOptions TaskListOptions = TaskListOptions{
	Writer: os.Stdout,
	Clock:  clock.New(),
}

// Task is the record of a task added to a TaskList.
type Task struct {
	Title     string
	State     TaskState
	Error     error
	Progress  string
	StartTime time.Time
	EndTime   time.Time
}

// Elapsed returns how long the task ran, or zero if it never started.
func (t *Task) Elapsed() time.Duration {
	if t.StartTime.IsZero() || t.EndTime.IsZero() {
		return 0
	}

	return t.EndTime.Sub(t.StartTime)
}

type taskEntry struct {
	task    *Task
	options TaskOptions
}

// TaskList runs a list of tasks and prints one line per task as it settles.
// On an interactive terminal a spinner shows the running count between result lines.
type TaskList struct {
	options *TaskListOptions
	entries []*taskEntry

	mu        sync.Mutex
	spinner   *yacspin.Spinner
	completed int
}

// NewTaskList creates a new TaskList instance.
func NewTaskList(options *TaskListOptions) *TaskList {
	mergedOptions := TaskListOptions{}
	if options != nil {
		if err := mergo.Merge(&mergedOptions, options); err != nil {
			panic(err)
		}
	}

	if err := mergo.Merge(&mergedOptions, DefaultTaskListOptions); err != nil {
		panic(err)
	}

	return &TaskList{
		options: &mergedOptions,
	}
}

// AddTask appends a task to the list.
func (t *TaskList) AddTask(options TaskOptions) *TaskList {
	t.entries = append(t.entries, &taskEntry{
		task: &Task{
			Title: options.Title,
			State: Pending,
		},
		options: options,
	})

	return t
}

// Tasks returns the records of every task in the order they were added.
func (t *TaskList) Tasks() []*Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	tasks := make([]*Task, len(t.entries))
	for i, entry := range t.entries {
		copied := *entry.task
		tasks[i] = &copied
	}

	return tasks
}

// Run executes every task and waits for all of them to settle.
// The returned error combines the errors of every failed task.
func (t *TaskList) Run() error {
	t.startSpinner()

	var wg sync.WaitGroup
	var semaphore chan struct{}
	if t.options.MaxConcurrentAsync > 0 {
		semaphore = make(chan struct{}, t.options.MaxConcurrentAsync)
	}

	var errs error
	var errsMu sync.Mutex
	appendErr := func(err error) {
		errsMu.Lock()
		defer errsMu.Unlock()

		errs = multierr.Append(errs, err)
	}

	halted := false
	for _, entry := range t.entries {
		if halted {
			t.finish(entry, Skipped, nil)
			continue
		}

		if entry.options.Async {
			wg.Add(1)
			go func(entry *taskEntry) {
				defer wg.Done()

				if semaphore != nil {
					semaphore <- struct{}{}
					defer func() { <-semaphore }()
				}

				if err := t.execute(entry); err != nil {
					appendErr(err)
				}
			}(entry)

			continue
		}

		if err := t.execute(entry); err != nil {
			appendErr(err)
			halted = !t.options.ContinueOnError
		}
	}

	wg.Wait()
	t.stopSpinner(errs == nil)

	return errs
}

func (t *TaskList) execute(entry *taskEntry) error {
	t.mu.Lock()
	entry.task.State = Running
	entry.task.StartTime = t.options.Clock.Now()
	t.mu.Unlock()

	setProgress := func(progress string) {
		t.mu.Lock()
		defer t.mu.Unlock()

		entry.task.Progress = progress
		if t.spinner != nil {
			t.spinner.Message(fmt.Sprintf("%s: %s", entry.task.Title, progress))
		}
	}

	state, err := t.runAction(entry, setProgress)
	if err != nil && state != Warning {
		state = Error
	}

	t.finish(entry, state, err)

	if state == Error {
		return fmt.Errorf("%s: %w", entry.task.Title, err)
	}

	return nil
}

func (t *TaskList) runAction(entry *taskEntry, setProgress SetProgressFunc) (state TaskState, err error) {
	if entry.options.Action == nil {
		return Skipped, nil
	}

	defer func() {
		if r := recover(); r != nil {
			state = Error
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	state, err = entry.options.Action(setProgress)
	if err == nil && (state == Pending || state == Running || state == Error) {
		// A task cannot end pending, and an error state needs an error.
		if state == Error {
			err = errors.New("task failed")
		} else {
			state = Success
		}
	}

	return state, err
}

func (t *TaskList) finish(entry *taskEntry, state TaskState, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry.task.State = state
	entry.task.Error = err
	if !entry.task.StartTime.IsZero() {
		entry.task.EndTime = t.options.Clock.Now()
	}
	t.completed++

	if t.spinner != nil {
		if pauseErr := t.spinner.Pause(); pauseErr != nil {
			log.Printf("failed pausing spinner: %v", pauseErr)
		}
	}

	fmt.Fprintln(t.options.Writer, formatTaskLine(entry.task))

	if t.spinner != nil {
		t.spinner.Message(t.runningMessage())
		if unpauseErr := t.spinner.Unpause(); unpauseErr != nil {
			log.Printf("failed resuming spinner: %v", unpauseErr)
		}
	}
}

func formatTaskLine(task *Task) string {
	var prefix string
	switch task.State {
	case Success:
		prefix = output.WithSuccessFormat("(✓) Done:")
	case Skipped:
		prefix = output.WithGrayFormat("(-) Skipped:")
	case Warning:
		prefix = output.WithWarningFormat("(!) Warning:")
	default:
		prefix = output.WithErrorFormat("(x) Failed:")
	}

	line := fmt.Sprintf("%s %s", prefix, task.Title)
	if task.State != Skipped {
		line += " " + output.WithGrayFormat("(%s)", task.Elapsed().Round(100*time.Millisecond))
	}

	if task.Error != nil {
		line += "\n    " + output.WithErrorFormat("%s", task.Error.Error())
	}

	return line
}

func (t *TaskList) runningMessage() string {
	return fmt.Sprintf("%d/%d complete", t.completed, len(t.entries))
}

func (t *TaskList) startSpinner() {
	if !isInteractiveWriter(t.options.Writer) {
		return
	}

	spinner, err := yacspin.New(yacspin.Config{
		Writer:            t.options.Writer,
		Frequency:         200 * time.Millisecond,
		CharSet:           yacspin.CharSets[33],
		Suffix:            " Running",
		SuffixAutoColon:   true,
		Message:           t.runningMessage(),
		StopCharacter:     "(✓) Done",
		StopColors:        []string{"fgGreen"},
		StopFailCharacter: "(x) Error",
		StopFailColors:    []string{"fgRed"},
	})
	if err != nil {
		log.Printf("failed creating spinner: %v", err)
		return
	}

	if err := spinner.Start(); err != nil {
		log.Printf("failed starting spinner: %v", err)
		return
	}

	t.mu.Lock()
	t.spinner = spinner
	t.mu.Unlock()
}

func (t *TaskList) stopSpinner(success bool) {
	t.mu.Lock()
	spinner := t.spinner
	t.spinner = nil
	t.mu.Unlock()

	if spinner == nil {
		return
	}

	t.mu.Lock()
	summary := t.runningMessage()
	t.mu.Unlock()

	var err error
	if success {
		spinner.StopMessage(summary)
		err = spinner.Stop()
	} else {
		spinner.StopFailMessage(summary)
		err = spinner.StopFail()
	}

	if err != nil {
		log.Printf("failed stopping spinner: %v", err)
	}
}

func isInteractiveWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
