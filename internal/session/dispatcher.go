// Package session хранит состояние сессий и последовательно обрабатывает их события.
package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/shenikar/chelwa/internal/models"
	"github.com/shenikar/chelwa/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const defaultQueueSize = 1024

var (
	ErrQueueFull = errors.New("event queue is full")
	ErrStopped   = errors.New("dispatcher stopped")
)

// EventType - тип события от клиента
type EventType string

const (
	LocationUpdated EventType = "location_updated"
	PlacesChanged   EventType = "places_changed"
	DetailsFetched  EventType = "details_fetched"
)

// Event - событие, ожидающее обработки
type Event struct {
	Type        EventType
	SessionID   string
	Observation models.LocationObservation
	Places      []models.Venue
	PlaceID     string
}

// Outcome - результат обработки события
type Outcome struct {
	Location       *models.LocationResult
	Recommendation *models.Recommendation
	Place          *models.PlaceCard
}

// HandlerFunc обрабатывает одно событие
type HandlerFunc func(ctx context.Context, ev Event) (*Outcome, error)

type envelope struct {
	ctx   context.Context
	event Event
	reply chan result
}

type result struct {
	outcome *Outcome
	err     error
}

// Dispatcher обрабатывает события по очередям-шардам. События одного ключа
// (сессии, либо места для карточки без сессии) попадают в один шард и обрабатываются
// строго в порядке поступления, по одному за раз.
type Dispatcher struct {
	handler HandlerFunc
	shards  []chan envelope
	done    chan struct{}
	logger  *logrus.Logger
}

// NewDispatcher создает диспетчер с workers шардами по queueSize событий в каждом
func NewDispatcher(handler HandlerFunc, queueSize, workers int, logger *logrus.Logger) *Dispatcher {
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	if workers < 1 {
		workers = 1
	}
	shards := make([]chan envelope, workers)
	for i := range shards {
		shards[i] = make(chan envelope, queueSize)
	}
	return &Dispatcher{
		handler: handler,
		shards:  shards,
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// Start запускает обработку событий в отдельной горутине
func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.WithField("workers", len(d.shards)).Info("Starting session event dispatcher...")
	go d.Run(ctx)
}

// Run обрабатывает очереди до отмены контекста
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)

	var wg sync.WaitGroup
	for _, events := range d.shards {
		wg.Add(1)
		go func(events chan envelope) {
			defer wg.Done()
			d.consume(ctx, events)
		}(events)
	}
	wg.Wait()
	d.logger.Info("Stopping session event dispatcher.")
}

func (d *Dispatcher) consume(ctx context.Context, events chan envelope) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-events:
			metrics.SetEventQueueSize(d.pending())
			outcome, err := d.process(env)
			env.reply <- result{outcome: outcome, err: err}
		}
	}
}

func (d *Dispatcher) pending() int {
	total := 0
	for _, events := range d.shards {
		total += len(events)
	}
	return total
}

// shardFor выбирает шард по ключу события
func (d *Dispatcher) shardFor(ev Event) int {
	key := ev.SessionID
	if key == "" {
		key = ev.PlaceID
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.shards)))
}

func (d *Dispatcher) process(env envelope) (outcome *Outcome, err error) {
	log := d.logger.WithFields(logrus.Fields{
		"event_type": env.event.Type,
		"session_id": env.event.SessionID,
	})
	log.Debug("Processing session event...")

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Session event handler panicked: %v", r)
			err = fmt.Errorf("session: handler panic: %v", r)
		}
	}()

	metrics.RecordEvent(string(env.event.Type))
	return d.handler(env.ctx, env.event)
}

// Submit ставит событие в очередь его шарда и ждет результата обработки
func (d *Dispatcher) Submit(ctx context.Context, ev Event) (*Outcome, error) {
	env := envelope{
		ctx:   ctx,
		event: ev,
		reply: make(chan result, 1),
	}

	select {
	case <-d.done:
		return nil, ErrStopped
	default:
	}

	select {
	case d.shards[d.shardFor(ev)] <- env:
		metrics.SetEventQueueSize(d.pending())
	default:
		return nil, ErrQueueFull
	}

	select {
	case res := <-env.reply:
		return res.outcome, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("session: waiting for %s: %w", ev.Type, ctx.Err())
	case <-d.done:
		select {
		case res := <-env.reply:
			return res.outcome, res.err
		default:
			return nil, ErrStopped
		}
	}
}
