package utils

import (
	"context"
	"strings"
	"sync"
)

// Memo caches values for the lifetime of a single request. The withMemo
// middleware installs a fresh one per request so repeated lookups (a tool
// call listing tasks twice, for example) hit the database once.
type Memo struct {
	mu     sync.Mutex
	values map[string]any
}

func NewMemo() *Memo {
	return &Memo{values: make(map[string]any)}
}

// WithMemo returns a copy of ctx carrying m.
func WithMemo(ctx context.Context, m *Memo) context.Context {
	return context.WithValue(ctx, memoCtxKey, m)
}

// MemoFromContext returns the request memo or nil.
func MemoFromContext(ctx context.Context) *Memo {
	m, _ := ctx.Value(memoCtxKey).(*Memo)
	return m
}

// Forget drops every cached key that starts with prefix. Writes call it so
// later reads in the same request see fresh data.
func (m *Memo) Forget(prefix string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}
}

// Remember returns the value cached under key in the request memo,
// computing it with load on first use. Errors are not cached. Without a
// memo in ctx load runs every time.
func Remember[T any](ctx context.Context, key string, load func() (T, error)) (T, error) {
	m := MemoFromContext(ctx)
	if m == nil {
		return load()
	}

	m.mu.Lock()
	if v, ok := m.values[key]; ok {
		m.mu.Unlock()
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	} else {
		m.mu.Unlock()
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return value, nil
}

// ForgetInContext is Forget on the request memo, if any.
func ForgetInContext(ctx context.Context, prefix string) {
	MemoFromContext(ctx).Forget(prefix)
}
