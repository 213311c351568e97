// Package task runs cooperative timed tasks on the frame tick.
//
// A task is a small state object advanced once per frame with the frame's
// delta time. Tasks never block: each Step does one frame of work and
// reports whether the task has finished. Timing is accumulated from the
// deltas, so results do not depend on frame rate.
package task

// Task is advanced once per frame until Step reports done.
type Task interface {
	Step(dt float32) (done bool)
}

// Func adapts a function to the Task interface.
type Func func(dt float32) bool

// Step calls f.
func (f Func) Step(dt float32) bool { return f(dt) }

// Scheduler multiplexes tasks onto a single frame tick.
// Tasks are stepped in the order they were started. A task started while
// the scheduler is stepping runs from the next Update.
type Scheduler struct {
	tasks []Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make([]Task, 0, 16)}
}

// Start queues t to be stepped from the next Update.
func (s *Scheduler) Start(t Task) {
	if t == nil {
		return
	}
	s.tasks = append(s.tasks, t)
}

// Update steps every running task once and drops finished ones.
func (s *Scheduler) Update(dt float32) {
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		if s.tasks[i].Step(dt) {
			s.tasks[i] = nil
		}
	}

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t != nil {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Len returns the number of running tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Clear drops every task without running it. Do not call from inside a Step.
func (s *Scheduler) Clear() {
	for i := range s.tasks {
		s.tasks[i] = nil
	}
	s.tasks = s.tasks[:0]
}

// Delay calls fn once after the given number of seconds.
type Delay struct {
	Duration float32
	elapsed  float32
	fn       func()
}

// After returns a task that calls fn once duration seconds have elapsed.
func After(duration float32, fn func()) *Delay {
	return &Delay{Duration: duration, fn: fn}
}

// Step implements Task.
func (d *Delay) Step(dt float32) bool {
	d.elapsed += dt
	if d.elapsed < d.Duration {
		return false
	}
	if d.fn != nil {
		d.fn()
	}
	return true
}

// Generation invalidates older requests when a newer one is made.
type Generation struct {
	current uint64
}

// Next starts a new generation and returns a check that reports true once
// a later generation has started.
func (g *Generation) Next() (stale func() bool) {
	g.current++
	mine := g.current
	return func() bool { return g.current != mine }
}
