// internal/poller/registry.go
package poller

import (
	"log"
	"sync"
)

type task struct {
	name    string
	fn      Func
	enabled bool
	runs    uint64
	faults  uint64
}

// Registry is an ordered set of named poll tasks.
//
// One registry belongs to one emulator session; there is no package-level
// instance. Registration and enable/disable may happen from any goroutine.
// PollAll must not be called concurrently with itself.
type Registry struct {
	mu    sync.Mutex
	tasks []*task
	log   *log.Logger
}

// New creates an empty registry. A nil logger uses log.Default().
func New(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{log: logger}
}

// RegisterTask appends a task, enabled.
//
// Names are not required to be unique, but lookups by name only ever see
// the first task registered under it.
func (r *Registry) RegisterTask(name string, fn Func) {
	if name == "" {
		r.log.Printf("poll registry: rejected task with empty name")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findLocked(name) != nil {
		r.log.Printf("poll registry: duplicate task name %q; name lookups will match the first registration", name)
	}

	r.tasks = append(r.tasks, &task{
		name:    name,
		fn:      fn,
		enabled: true,
	})
	r.log.Printf("registered poll task (task=%s)", name)
}

// RegisterPoller registers p.Poll as the callback. A nil p binds nothing.
func (r *Registry) RegisterPoller(name string, p Poller) {
	if p == nil {
		r.RegisterTask(name, nil)
		return
	}
	r.RegisterTask(name, p.Poll)
}

// SetTaskEnabled flips the first task named name. Unknown names are ignored.
// The change applies from the next PollAll.
func (r *Registry) SetTaskEnabled(name string, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.findLocked(name)
	if t == nil {
		return
	}
	t.enabled = enabled
	r.log.Printf("poll task %s (task=%s)", enabledWord(enabled), name)
}

// TaskEnabled reports the flag of the first task named name.
// Unknown names report false.
func (r *Registry) TaskEnabled(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.findLocked(name)
	return t != nil && t.enabled
}

// PollAll runs every enabled, bound task once, in registration order.
// A panicking callback is recovered, logged and reported; the pass goes on.
func (r *Registry) PollAll() PassReport {
	type planned struct {
		t  *task
		fn Func
	}

	// Snapshot under the lock, run outside it.
	r.mu.Lock()
	plan := make([]planned, 0, len(r.tasks))
	skipped := 0
	for _, t := range r.tasks {
		if !t.enabled || t.fn == nil {
			skipped++
			continue
		}
		plan = append(plan, planned{t: t, fn: t.fn})
	}
	r.mu.Unlock()

	rep := PassReport{Skipped: skipped}

	for _, p := range plan {
		fault := r.invoke(p.t.name, p.fn)

		r.mu.Lock()
		p.t.runs++
		if fault != nil {
			p.t.faults++
		}
		r.mu.Unlock()

		rep.Invoked++
		if fault != nil {
			rep.Faults = append(rep.Faults, *fault)
		}
	}

	return rep
}

// Tasks returns a snapshot of all tasks in registration order.
func (r *Registry) Tasks() []TaskInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]TaskInfo, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, TaskInfo{
			Name:    t.name,
			Enabled: t.enabled,
			Bound:   t.fn != nil,
			Runs:    t.runs,
			Faults:  t.faults,
		})
	}
	return out
}

// TotalFaults is the number of faults recovered across all tasks so far.
func (r *Registry) TotalFaults() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n uint64
	for _, t := range r.tasks {
		n += t.faults
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// invoke is the per-task fault boundary.
func (r *Registry) invoke(name string, fn Func) (fault *TaskFault) {
	defer func() {
		if v := recover(); v != nil {
			r.log.Printf("poll task fault (task=%s): %v", name, v)
			fault = &TaskFault{Task: name, Value: v}
		}
	}()

	fn()
	return nil
}

func (r *Registry) findLocked(name string) *task {
	for _, t := range r.tasks {
		if t.name == name {
			return t
		}
	}
	return nil
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
