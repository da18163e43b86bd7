package uitree

// Wait reports whether a suspended task may resume. A nil Wait is already
// satisfied.
type Wait func() bool

// WaitUntil returns a Wait satisfied once cond returns true.
func WaitUntil(cond func() bool) Wait {
	return Wait(cond)
}

// WaitFrames returns a Wait that holds its task for n scheduler steps.
func WaitFrames(n int) Wait {
	if n <= 0 {
		return nil
	}
	remaining := n
	return func() bool {
		remaining--
		return remaining < 0
	}
}

// WaitClip returns a Wait satisfied once clip stops playing.
func WaitClip(clip TransitionClip) Wait {
	if clip == nil {
		return nil
	}
	return func() bool { return !clip.IsPlaying() }
}

// Step is one non-suspending section of a task. The returned Wait must be
// satisfied before the next step runs.
type Step func() Wait

// Task is a cooperative sequence of steps. Tasks only suspend between steps,
// so anything a step does runs to completion before any other task resumes.
type Task struct {
	steps     []Step
	pc        int
	wait      Wait
	done      bool
	cancelled bool
	running   bool
	onCancel  func()
}

// NewTask creates a task that runs steps in order.
func NewTask(steps ...Step) *Task {
	return &Task{steps: steps}
}

// OnCancel registers fn to run synchronously when the task is cancelled.
func (t *Task) OnCancel(fn func()) {
	t.onCancel = fn
}

// Done reports whether every step has run.
func (t *Task) Done() bool {
	return t.done
}

// Cancelled reports whether Cancel was called before the task finished.
func (t *Task) Cancelled() bool {
	return t.cancelled
}

// Finished reports whether the task will never run another step.
func (t *Task) Finished() bool {
	return t.done || t.cancelled
}

// Cancel stops the task. Remaining steps never run. The cancel handler runs
// exactly once, before Cancel returns. Cancelling a finished task is a no-op.
func (t *Task) Cancel() {
	if t.done || t.cancelled {
		return
	}
	t.cancelled = true
	t.wait = nil
	if fn := t.onCancel; fn != nil {
		t.onCancel = nil
		fn()
	}
}

// resume runs steps until the task blocks on an unsatisfied Wait or finishes.
// A task that is already on the call stack is not resumed again.
func (t *Task) resume() {
	if t.running {
		return
	}
	t.running = true
	defer func() { t.running = false }()

	for !t.done && !t.cancelled {
		if t.wait != nil {
			if !t.wait() {
				return
			}
			t.wait = nil
		}
		if t.pc >= len(t.steps) {
			t.done = true
			return
		}
		step := t.steps[t.pc]
		t.pc++
		t.wait = step()
	}
}

// Scheduler is the single cooperative execution context shared by every node
// of a tree. It is not safe for concurrent use: all calls must come from the
// goroutine that drives the tree (usually the game loop).
type Scheduler struct {
	tasks    []*Task
	snapshot []*Task // reused buffer for Step
	stepping bool
}

// Submit adds t and runs it immediately until its first unsatisfied Wait.
func (s *Scheduler) Submit(t *Task) {
	if t == nil || t.Finished() {
		return
	}
	s.tasks = append(s.tasks, t)
	t.resume()
	if t.Finished() {
		s.compact()
	}
}

// Step resumes every pending task once, in submission order, and returns the
// number of tasks still pending. Tasks submitted during the step are resumed
// by Submit itself and are not stepped again until the next call. A nested
// call from inside a step does nothing.
func (s *Scheduler) Step() int {
	if s.stepping {
		return len(s.tasks)
	}
	s.stepping = true
	defer func() { s.stepping = false }()

	s.snapshot = append(s.snapshot[:0], s.tasks...)
	for i, t := range s.snapshot {
		t.resume()
		s.snapshot[i] = nil
	}
	s.compact()
	return len(s.tasks)
}

// Pending returns the number of unfinished tasks.
func (s *Scheduler) Pending() int {
	count := 0
	for _, t := range s.tasks {
		if !t.Finished() {
			count++
		}
	}
	return count
}

// CancelAll cancels every pending task.
func (s *Scheduler) CancelAll() {
	tasks := s.tasks
	s.tasks = nil
	for _, t := range tasks {
		t.Cancel()
	}
}

// compact drops finished tasks in place without retaining dangling pointers.
func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Finished() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
