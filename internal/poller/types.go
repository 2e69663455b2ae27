// internal/poller/types.go
package poller

import "fmt"

// Func is a poll callback: no arguments, no result.
// A panic inside it is a task fault.
type Func func()

// Poller is the capability form of a callback, implemented per device.
type Poller interface {
	Poll()
}

// TaskInfo is a read-only view of one registered task.
type TaskInfo struct {
	Name    string
	Enabled bool
	Bound   bool // false when registered without a callback
	Runs    uint64
	Faults  uint64
}

// TaskFault records one recovered callback failure.
type TaskFault struct {
	Task  string
	Value any // value passed to panic
}

func (f TaskFault) Error() string {
	return fmt.Sprintf("poll task %q: %v", f.Task, f.Value)
}

// Unwrap exposes an error panic value to errors.Is / errors.As.
func (f TaskFault) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}

// PassReport summarizes one PollAll pass.
// Invoked + Skipped == number of registered tasks.
type PassReport struct {
	Invoked int
	Skipped int
	Faults  []TaskFault
}
