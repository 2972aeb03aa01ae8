package realtime

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	natspkg "github.com/Mat0512/roadbuddy-client/internal/pkg/nats"
)

// Event is a named event delivered on a topic
type Event struct {
	Topic string
	Name  string
	Data  []byte
}

// Handler processes events delivered to a listener
type Handler func(Event)

// StatusHandler receives connection lifecycle updates
type StatusHandler func(models.ConnectionStatus)

// Channel multiplexes named-event topics over a single shared NATS
// connection. One transport subscription is held per topic regardless of how
// many listeners are registered; events fan out to every listener bound to
// the matching event name. Binding the same topic/event pair twice is
// therefore well defined: both listeners receive the event.
type Channel struct {
	client *natspkg.Client

	mu     sync.Mutex
	topics map[string]*topicSub

	statusMu       sync.Mutex
	statusHandlers []StatusHandler
}

type topicSub struct {
	sub       *nats.Subscription
	listeners map[string]map[int]Handler // event name -> listener id -> handler
	nextID    int
}

// New creates a realtime channel on top of an established NATS client and
// wires connection lifecycle notifications
func New(client *natspkg.Client) *Channel {
	c := &Channel{
		client: client,
		topics: make(map[string]*topicSub),
	}

	conn := client.GetConn()
	conn.SetDisconnectErrHandler(func(_ *nats.Conn, err error) {
		status := models.ConnectionStatus{State: models.ConnectionStateDisconnected}
		if err != nil {
			status.Message = err.Error()
		}
		c.notifyStatus(status)
	})
	conn.SetReconnectHandler(func(_ *nats.Conn) {
		c.notifyStatus(models.ConnectionStatus{State: models.ConnectionStateConnected})
	})
	conn.SetErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
		status := models.ConnectionStatus{State: models.ConnectionStateError}
		if err != nil {
			status.Message = err.Error()
		}
		c.notifyStatus(status)
	})

	return c
}

// Subscription represents one listener registration; Unsubscribe removes the
// listener and releases the transport subscription once the topic has no
// listeners left
type Subscription struct {
	cancel func()
	once   sync.Once
}

// Unsubscribe removes the listener. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// Subscribe registers a listener for a named event on a topic
func (c *Channel) Subscribe(topic, event string, h Handler) (*Subscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts, ok := c.topics[topic]
	if !ok {
		sub, err := c.client.Subscribe(topic+".>", func(msg *nats.Msg) {
			c.dispatch(topic, msg)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
		}
		ts = &topicSub{
			sub:       sub,
			listeners: make(map[string]map[int]Handler),
		}
		c.topics[topic] = ts
	}

	if ts.listeners[event] == nil {
		ts.listeners[event] = make(map[int]Handler)
	}
	id := ts.nextID
	ts.nextID++
	ts.listeners[event][id] = h

	return &Subscription{cancel: func() {
		c.removeListener(topic, event, id)
	}}, nil
}

// Publish sends a named event on a topic as an ephemeral peer broadcast
func (c *Channel) Publish(topic, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	if err := c.client.Publish(topic+"."+event, data); err != nil {
		return fmt.Errorf("failed to publish %s on %s: %w", event, topic, err)
	}

	return nil
}

// OnStatusChange registers a connection status listener
func (c *Channel) OnStatusChange(fn StatusHandler) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.statusHandlers = append(c.statusHandlers, fn)
}

func (c *Channel) dispatch(topic string, msg *nats.Msg) {
	event := strings.TrimPrefix(msg.Subject, topic+".")

	c.mu.Lock()
	ts, ok := c.topics[topic]
	if !ok {
		c.mu.Unlock()
		return
	}
	handlers := make([]Handler, 0, len(ts.listeners[event]))
	for _, h := range ts.listeners[event] {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	ev := Event{Topic: topic, Name: event, Data: msg.Data}
	for _, h := range handlers {
		h(ev)
	}
}

func (c *Channel) removeListener(topic, event string, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts, ok := c.topics[topic]
	if !ok {
		return
	}

	delete(ts.listeners[event], id)
	if len(ts.listeners[event]) == 0 {
		delete(ts.listeners, event)
	}

	// Release the transport subscription once nothing listens on the topic
	if len(ts.listeners) == 0 {
		if err := ts.sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe from topic",
				logger.String("topic", topic),
				logger.Err(err))
		}
		delete(c.topics, topic)
	}
}

func (c *Channel) notifyStatus(status models.ConnectionStatus) {
	c.statusMu.Lock()
	handlers := make([]StatusHandler, len(c.statusHandlers))
	copy(handlers, c.statusHandlers)
	c.statusMu.Unlock()

	logger.Info("Realtime channel status changed",
		logger.String("state", string(status.State)),
		logger.String("message", status.Message))

	for _, fn := range handlers {
		fn(status)
	}
}
