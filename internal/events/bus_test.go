// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishFanOut(t *testing.T) {
	bus := NewBus[int]("test", nil)

	var got []string
	bus.Subscribe(func(v int) error { got = append(got, "a"); return nil })
	bus.Subscribe(func(v int) error { got = append(got, "b"); return nil })

	failed := bus.Publish(1)

	assert.Zero(t, failed)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestBus_FailingHandlersAreIsolated(t *testing.T) {
	bus := NewBus[string]("test", nil)

	var delivered []string
	bus.Subscribe(func(v string) error { return errors.New("boom") })
	bus.Subscribe(func(v string) error { panic("kaboom") })
	bus.Subscribe(func(v string) error { delivered = append(delivered, v); return nil })

	failed := bus.Publish("evt")

	assert.Equal(t, 2, failed)
	assert.Equal(t, []string{"evt"}, delivered)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus[int]("test", nil)

	calls := 0
	unsubscribe := bus.Subscribe(func(int) error { calls++; return nil })
	bus.Publish(1)
	unsubscribe()
	unsubscribe()
	bus.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Zero(t, bus.Len())
}

func TestBus_SubscribeDuringPublishDoesNotAffectInFlight(t *testing.T) {
	bus := NewBus[int]("test", nil)

	lateCalls := 0
	var unsubscribeSelf func()
	unsubscribeSelf = bus.Subscribe(func(int) error {
		bus.Subscribe(func(int) error { lateCalls++; return nil })
		unsubscribeSelf()
		return nil
	})

	bus.Publish(1)
	assert.Zero(t, lateCalls, "handler added during publish must not see that publish")
	assert.Equal(t, 1, bus.Len())

	bus.Publish(2)
	assert.Equal(t, 1, lateCalls)
}

func TestBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewBus[int]("test", nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unsubscribe := bus.Subscribe(func(int) error { return nil })
			unsubscribe()
		}()
		go func(v int) {
			defer wg.Done()
			bus.Publish(v)
		}(i)
	}
	wg.Wait()

	assert.Zero(t, bus.Len())
}

func TestSafeRun(t *testing.T) {
	require.NoError(t, SafeRun(func() error { return nil }))

	sentinel := errors.New("sentinel")
	assert.ErrorIs(t, SafeRun(func() error { return sentinel }), sentinel)
	assert.ErrorIs(t, SafeRun(func() error { panic("x") }), ErrPanic)
}
