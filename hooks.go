package tabula

import "sync"

// Operation is the name of a model lifecycle operation guarded by the hooks.
type Operation string

// Operations dispatched by the model.
const (
	OpInit   Operation = "init"
	OpCreate Operation = "create"
	OpSelect Operation = "select"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Timing defines when a hook runs relative to its operation.
type Timing int

const (
	// Before hooks run to completion before the operation body begins.
	Before Timing = iota
	// After hooks run once the operation body completed, success or failure.
	After
)

// Hook is a single lifecycle callback. Every hook receives the model as the
// first argument, before hooks receive the operation input and after hooks
// additionally its outcome. Return values do not exist - a hook acts through
// its side effects.
type Hook func(args ...interface{})

type hookSlot struct {
	op     Operation
	timing Timing
}

// HookRegistry holds, per operation, the ordered before and after hook lists.
// Registration order is invocation order - no reordering, no deduplication,
// no priorities. A slot with no hooks registered is simply nothing to invoke.
type HookRegistry struct {
	hooks map[hookSlot][]Hook
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{hooks: map[hookSlot][]Hook{}}
}

// Register appends the hook 'h' to the (op, timing) slot and returns the
// registry for chained registration.
func (r *HookRegistry) Register(op Operation, timing Timing, h Hook) *HookRegistry {
	if r.hooks == nil {
		r.hooks = map[hookSlot][]Hook{}
	}
	slot := hookSlot{op: op, timing: timing}
	r.hooks[slot] = append(r.hooks[slot], h)
	return r
}

// Invoke dispatches every hook registered for (op, timing) strictly in the
// registration order, passing 'args' through positionally.
func (r *HookRegistry) Invoke(op Operation, timing Timing, args ...interface{}) {
	if r == nil {
		return
	}
	for _, h := range r.hooks[hookSlot{op: op, timing: timing}] {
		h(args...)
	}
}

// fold appends the hooks of 'other' into 'r', keeping their registration order.
func (r *HookRegistry) fold(other *HookRegistry) {
	if other == nil {
		return
	}
	if r.hooks == nil {
		r.hooks = map[hookSlot][]Hook{}
	}
	for slot, hooks := range other.hooks {
		r.hooks[slot] = append(r.hooks[slot], hooks...)
	}
}

var (
	sharedMu    sync.Mutex
	sharedHooks = map[string]*HookRegistry{}
)

// RegisterSharedHook registers a hook shared by every model instance built
// for the 'table'. Shared hooks are folded into the instance registry at
// construction, after the instance's own hooks.
func RegisterSharedHook(table string, op Operation, timing Timing, h Hook) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	r, ok := sharedHooks[table]
	if !ok {
		r = NewHookRegistry()
		sharedHooks[table] = r
	}
	r.Register(op, timing, h)
}

// ResetSharedHooks removes all shared hooks registered for the 'table'.
func ResetSharedHooks(table string) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	delete(sharedHooks, table)
}

func sharedHooksFor(table string) *HookRegistry {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	return sharedHooks[table]
}
