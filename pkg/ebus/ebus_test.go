package ebus_test

import (
	"testing"
	"time"

	"github.com/roffe/speedo/pkg/ebus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus(t *testing.T) *ebus.Bus {
	t.Helper()
	b := ebus.New(time.Minute)
	t.Cleanup(b.Close)
	return b
}

func recv(t *testing.T, ch <-chan float64) float64 {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for value")
	}
	return 0
}

func TestPublish(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		data  float64
	}{
		{name: "speed", topic: ebus.TopicSpeed, data: 1.23},
		{name: "other", topic: "rpm", data: 3000},
	}
	b := newBus(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, b.Publish(tt.topic, tt.data))
		})
	}
}

func TestSubscribe(t *testing.T) {
	b := newBus(t)
	ch := b.Subscribe(ebus.TopicSpeed)
	require.NoError(t, b.Publish(ebus.TopicSpeed, 3.14))
	assert.Equal(t, 3.14, recv(t, ch))

	last, ok := b.Last(ebus.TopicSpeed)
	assert.True(t, ok)
	assert.Equal(t, 3.14, last)

	b.Unsubscribe(ch)
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("unsubscribe did not close channel")
	}
}

func TestSubscribeGetsCachedValue(t *testing.T) {
	b := newBus(t)
	first := b.Subscribe(ebus.TopicSpeed)
	require.NoError(t, b.Publish(ebus.TopicSpeed, 80))
	recv(t, first)

	late := b.Subscribe(ebus.TopicSpeed)
	assert.Equal(t, 80.0, recv(t, late))
}

func TestDuplicateValuesDropped(t *testing.T) {
	b := newBus(t)
	ch := b.Subscribe(ebus.TopicSpeed)
	require.NoError(t, b.Publish(ebus.TopicSpeed, 10))
	require.NoError(t, b.Publish(ebus.TopicSpeed, 10))
	require.NoError(t, b.Publish(ebus.TopicSpeed, 11))
	assert.Equal(t, 10.0, recv(t, ch))
	assert.Equal(t, 11.0, recv(t, ch))
}

func TestSubscribeFunc(t *testing.T) {
	b := newBus(t)
	got := make(chan float64, 1)
	cancel := b.SubscribeFunc(ebus.TopicSpeed, func(v float64) { got <- v })
	require.NotNil(t, cancel)
	require.NoError(t, b.Publish(ebus.TopicSpeed, 2.71))
	assert.Equal(t, 2.71, recv(t, got))
	cancel()
}

func TestAggregators(t *testing.T) {
	b := newBus(t)
	scale := ebus.ScaleAggregator("gps.ms", ebus.TopicSpeed, 3.6)
	b.RegisterAggregator(scale, scale, ebus.OffsetAggregator("raw", "trimmed", -2))

	speed := b.Subscribe(ebus.TopicSpeed)
	trimmed := b.Subscribe("trimmed")
	require.NoError(t, b.Publish("gps.ms", 10))
	assert.InDelta(t, 36.0, recv(t, speed), 1e-9)
	require.NoError(t, b.Publish("raw", 5))
	assert.Equal(t, 3.0, recv(t, trimmed))
}

func TestClose(t *testing.T) {
	b := ebus.New(0)
	ch := b.Subscribe(ebus.TopicSpeed)
	b.Close()
	_, ok := <-ch
	assert.False(t, ok)
	assert.ErrorIs(t, b.Publish(ebus.TopicSpeed, 1), ebus.ErrClosed)
	b.Close()
}

func TestSubscribeAfterClose(t *testing.T) {
	b := ebus.New(0)
	b.Close()

	ch := b.Subscribe(ebus.TopicSpeed)
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel from closed bus left open")
	}

	cancel := b.SubscribeFunc(ebus.TopicSpeed, func(float64) { t.Error("callback on closed bus") })
	done := make(chan struct{})
	go func() {
		cancel()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("unsubscribe blocked on closed bus")
	}
}
