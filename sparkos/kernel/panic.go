package kernel

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// PanicInfo describes a panic recovered from a task goroutine.
type PanicInfo struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

func (p PanicInfo) String() string {
	return fmt.Sprintf("task=%d panic=%v", p.TaskID, p.Value)
}

var (
	panicActive atomic.Bool
	panicOnce   sync.Once

	panicMu      sync.Mutex
	panicHandler func(PanicInfo)
)

// InPanicMode reports whether a task has panicked.
func InPanicMode() bool {
	return panicActive.Load()
}

// SetPanicHandler installs the process-wide panic handler.
//
// Only the first panic reaches the handler. It must not panic.
func SetPanicHandler(fn func(PanicInfo)) {
	panicMu.Lock()
	panicHandler = fn
	panicMu.Unlock()
}

func triggerPanic(info PanicInfo) {
	panicOnce.Do(func() {
		panicActive.Store(true)
		info.Stack = debug.Stack()

		panicMu.Lock()
		fn := panicHandler
		panicMu.Unlock()
		if fn != nil {
			fn(info)
		}
	})
}
