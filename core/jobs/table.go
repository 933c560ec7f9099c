// Package jobs tracks background processes spawned by the shell.
package jobs

import "sync"

// Process is the part of *os.Process the table needs. Kill must be a
// non-blocking signal send, never a wait.
type Process interface {
	Kill() error
}

// Table maps OS-assigned pids to their live process handles. A single
// instance is shared for the lifetime of the shell; every access holds the
// lock so a future reaper can be added without changing callers.
type Table struct {
	mu    sync.Mutex
	procs map[int]Process
}

func NewTable() *Table {
	return &Table{procs: make(map[int]Process)}
}

// Insert records a newly started background process under its pid. The
// caller guarantees the pid isn't already tracked; the OS keeps pids unique
// among concurrently live children.
func (t *Table) Insert(pid int, proc Process) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.procs[pid] = proc
}

// PIDs returns a snapshot of the tracked pids in no particular order.
func (t *Table) PIDs() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]int, 0, len(t.procs))
	for pid := range t.procs {
		out = append(out, pid)
	}
	return out
}

// Len reports the number of tracked processes.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.procs)
}

// Kill removes the record for pid and terminates the process. The record is
// removed whether or not the termination succeeds. found reports whether the
// pid was tracked; err is the termination error, if any.
func (t *Table) Kill(pid int) (found bool, err error) {
	t.mu.Lock()
	proc, found := t.procs[pid]
	delete(t.procs, pid)
	t.mu.Unlock()

	if !found {
		return false, nil
	}
	return true, proc.Kill()
}
