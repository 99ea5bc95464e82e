// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package record

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Handler receives a newly created Record.
type Handler func(Record) error

// SubscriptionID identifies a registered Handler.
type SubscriptionID uint64

// HandlerError reports a Handler that returned an error or panicked.
type HandlerError struct {
	ID  SubscriptionID
	Err error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("subscriber %d: %v", e.ID, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Hub delivers Records to subscribers synchronously, in subscription order.
type Hub struct {
	mu      sync.RWMutex
	subs    []subscription
	nextID  SubscriptionID
	enabled atomic.Bool
}

// NewHub creates an enabled Hub with no subscribers.
func NewHub() *Hub {
	h := &Hub{}
	h.enabled.Store(true)
	return h
}

// Subscribe registers h and returns its ID. A nil handler is ignored and yields 0.
func (hub *Hub) Subscribe(h Handler) SubscriptionID {
	if h == nil {
		return 0
	}
	hub.mu.Lock()
	defer hub.mu.Unlock()

	hub.nextID++
	hub.subs = append(hub.subs, subscription{id: hub.nextID, handler: h})
	return hub.nextID
}

// Unsubscribe removes the handler registered under id and reports whether it existed.
func (hub *Hub) Unsubscribe(id SubscriptionID) bool {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	for i, s := range hub.subs {
		if s.id == id {
			// Copy so that snapshots taken by an in-flight Notify stay intact.
			subs := make([]subscription, 0, len(hub.subs)-1)
			subs = append(subs, hub.subs[:i]...)
			hub.subs = append(subs, hub.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers.
func (hub *Hub) Len() int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.subs)
}

// SetEnabled turns delivery on or off. Subscribers stay registered while disabled.
func (hub *Hub) SetEnabled(enabled bool) { hub.enabled.Store(enabled) }

// Enabled reports whether Notify delivers records.
func (hub *Hub) Enabled() bool { return hub.enabled.Load() }

// Notify calls every handler with r. A failing handler never stops later
// ones; failures are returned joined, each as a *HandlerError.
func (hub *Hub) Notify(r Record) error {
	if !hub.Enabled() {
		return nil
	}

	hub.mu.RLock()
	subs := hub.subs
	hub.mu.RUnlock()

	var errs []error
	for _, s := range subs {
		if err := call(s.handler, r); err != nil {
			errs = append(errs, &HandlerError{ID: s.id, Err: err})
		}
	}
	return errors.Join(errs...)
}

func call(h Handler, r Record) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return h(r)
}
