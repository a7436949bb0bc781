package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/chelwa/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestDispatcher_ProcessesInArrivalOrder(t *testing.T) {
	var mu sync.Mutex
	processed := make([]string, 0)
	started := make(chan struct{})
	release := make(chan struct{})

	handler := func(ctx context.Context, ev Event) (*Outcome, error) {
		if ev.SessionID == "first" {
			close(started)
			<-release
		}
		mu.Lock()
		processed = append(processed, ev.SessionID)
		mu.Unlock()
		return &Outcome{}, nil
	}

	d := NewDispatcher(handler, 10, 1, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	var wg sync.WaitGroup
	submit := func(id string) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Submit(context.Background(), Event{Type: LocationUpdated, SessionID: id})
			assert.NoError(t, err)
		}()
	}

	submit("first")
	<-started

	submit("second")
	require.Eventually(t, func() bool { return len(d.shards[0]) == 1 }, time.Second, time.Millisecond)
	submit("third")
	require.Eventually(t, func() bool { return len(d.shards[0]) == 2 }, time.Second, time.Millisecond)

	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second", "third"}, processed)
}

func TestDispatcher_ReturnsHandlerResult(t *testing.T) {
	expected := &Outcome{Location: &models.LocationResult{Refetched: true}}
	handlerErr := errors.New("boom")

	handler := func(ctx context.Context, ev Event) (*Outcome, error) {
		if ev.Type == DetailsFetched {
			return nil, handlerErr
		}
		return expected, nil
	}

	d := NewDispatcher(handler, 1, 1, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	outcome, err := d.Submit(context.Background(), Event{Type: LocationUpdated})
	require.NoError(t, err)
	assert.Equal(t, expected, outcome)

	outcome, err = d.Submit(context.Background(), Event{Type: DetailsFetched})
	assert.ErrorIs(t, err, handlerErr)
	assert.Nil(t, outcome)
}

func TestDispatcher_RecoversFromPanic(t *testing.T) {
	handler := func(ctx context.Context, ev Event) (*Outcome, error) {
		if ev.SessionID == "bad" {
			panic("unexpected")
		}
		return &Outcome{}, nil
	}

	d := NewDispatcher(handler, 1, 1, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	_, err := d.Submit(context.Background(), Event{SessionID: "bad"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "handler panic")

	_, err = d.Submit(context.Background(), Event{SessionID: "good"})
	assert.NoError(t, err)
}

func TestDispatcher_QueueFull(t *testing.T) {
	handler := func(ctx context.Context, ev Event) (*Outcome, error) {
		return &Outcome{}, nil
	}
	// не запускаем Run, чтобы очередь не разбиралась
	d := NewDispatcher(handler, 1, 1, newTestLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := d.Submit(ctx, Event{SessionID: "a"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = d.Submit(context.Background(), Event{SessionID: "b"})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestDispatcher_Stopped(t *testing.T) {
	handler := func(ctx context.Context, ev Event) (*Outcome, error) {
		return &Outcome{}, nil
	}
	d := NewDispatcher(handler, 1, 1, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case <-d.done:
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)

	_, err := d.Submit(context.Background(), Event{SessionID: "late"})
	assert.ErrorIs(t, err, ErrStopped)
}

// keyOnOtherShard подбирает сессию, попадающую в другой шард
func keyOnOtherShard(t *testing.T, d *Dispatcher, key string) string {
	t.Helper()
	base := d.shardFor(Event{SessionID: key})
	for i := 0; i < 1000; i++ {
		candidate := fmt.Sprintf("other-%d", i)
		if d.shardFor(Event{SessionID: candidate}) != base {
			return candidate
		}
	}
	t.Fatal("no session key maps to another shard")
	return ""
}

func TestDispatcher_SlowSessionDoesNotBlockOthers(t *testing.T) {
	release := make(chan struct{})
	handler := func(ctx context.Context, ev Event) (*Outcome, error) {
		if ev.SessionID == "slow" {
			<-release
		}
		return &Outcome{}, nil
	}

	d := NewDispatcher(handler, 10, 4, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	slowDone := make(chan error, 1)
	go func() {
		_, err := d.Submit(context.Background(), Event{Type: DetailsFetched, SessionID: "slow"})
		slowDone <- err
	}()

	other := keyOnOtherShard(t, d, "slow")
	submitCtx, submitCancel := context.WithTimeout(context.Background(), time.Second)
	defer submitCancel()
	_, err := d.Submit(submitCtx, Event{Type: LocationUpdated, SessionID: other})
	require.NoError(t, err)

	close(release)
	assert.NoError(t, <-slowDone)
}

func TestDispatcher_ShardIsStablePerKey(t *testing.T) {
	d := NewDispatcher(func(ctx context.Context, ev Event) (*Outcome, error) { return nil, nil }, 1, 8, newTestLogger())

	for _, id := range []string{"a", "session-1", "0f8fad5b-d9cb-469f-a165-70867728950e"} {
		shard := d.shardFor(Event{Type: LocationUpdated, SessionID: id})
		assert.Equal(t, shard, d.shardFor(Event{Type: PlacesChanged, SessionID: id}))
		assert.Equal(t, shard, d.shardFor(Event{Type: DetailsFetched, SessionID: id, PlaceID: "p1"}))
		assert.GreaterOrEqual(t, shard, 0)
		assert.Less(t, shard, 8)
	}
	// карточка без сессии распределяется по идентификатору места
	assert.Equal(t, d.shardFor(Event{SessionID: "p1"}), d.shardFor(Event{PlaceID: "p1"}))
}
