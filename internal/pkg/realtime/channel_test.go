package realtime

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"

	natspkg "github.com/Mat0512/roadbuddy-client/internal/pkg/nats"
)

var (
	testNatsServer *server.Server
	testNatsURL    = "nats://127.0.0.1:8371"
)

func TestMain(m *testing.M) {
	testNatsServer = RunServerOnPort(8371)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func RunServerOnPort(port int) *server.Server {
	opts := natsserver.DefaultTestOptions
	opts.Port = port
	return natsserver.RunServer(&opts)
}

func setupChannel(t *testing.T) (*Channel, *natspkg.Client) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	return New(client), client
}

type testPayload struct {
	RequestID string `json:"request_id"`
}

func TestPublishSubscribeRoundTrip(t *testing.T) {
	ch, client := setupChannel(t)
	defer client.Close()

	received := make(chan Event, 1)
	sub, err := ch.Subscribe("user.42", "service.request.accepted", func(ev Event) {
		received <- ev
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.GetConn().Flush())

	err = ch.Publish("user.42", "service.request.accepted", testPayload{RequestID: "req-1"})
	require.NoError(t, err)

	select {
	case ev := <-received:
		assert.Equal(t, "user.42", ev.Topic)
		assert.Equal(t, "service.request.accepted", ev.Name)

		var payload testPayload
		require.NoError(t, json.Unmarshal(ev.Data, &payload))
		assert.Equal(t, "req-1", payload.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for event")
	}
}

func TestEventNameFiltering(t *testing.T) {
	ch, client := setupChannel(t)
	defer client.Close()

	accepted := make(chan Event, 1)
	sub, err := ch.Subscribe("user.7", "service.request.accepted", func(ev Event) {
		accepted <- ev
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.GetConn().Flush())

	// A different event on the same topic must not reach the listener
	require.NoError(t, ch.Publish("user.7", "service.request.cancel", testPayload{RequestID: "req-2"}))
	require.NoError(t, ch.Publish("user.7", "service.request.accepted", testPayload{RequestID: "req-3"}))

	select {
	case ev := <-accepted:
		var payload testPayload
		require.NoError(t, json.Unmarshal(ev.Data, &payload))
		assert.Equal(t, "req-3", payload.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for event")
	}

	select {
	case ev := <-accepted:
		t.Fatalf("Unexpected extra event: %s", ev.Name)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDuplicateBindingFanOut(t *testing.T) {
	ch, client := setupChannel(t)
	defer client.Close()

	first := make(chan Event, 1)
	second := make(chan Event, 1)

	sub1, err := ch.Subscribe("location.req-9", "location.updated", func(ev Event) {
		first <- ev
	})
	require.NoError(t, err)
	defer sub1.Unsubscribe()

	sub2, err := ch.Subscribe("location.req-9", "location.updated", func(ev Event) {
		second <- ev
	})
	require.NoError(t, err)
	defer sub2.Unsubscribe()

	require.NoError(t, client.GetConn().Flush())

	require.NoError(t, ch.Publish("location.req-9", "location.updated", testPayload{RequestID: "req-9"}))

	for i, c := range []chan Event{first, second} {
		select {
		case <-c:
		case <-time.After(2 * time.Second):
			t.Fatalf("Listener %d did not receive the event", i)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ch, client := setupChannel(t)
	defer client.Close()

	removed := make(chan Event, 4)
	kept := make(chan Event, 4)

	sub1, err := ch.Subscribe("chat.11", "message.sent", func(ev Event) {
		removed <- ev
	})
	require.NoError(t, err)

	sub2, err := ch.Subscribe("chat.11", "message.sent", func(ev Event) {
		kept <- ev
	})
	require.NoError(t, err)
	defer sub2.Unsubscribe()

	require.NoError(t, client.GetConn().Flush())

	sub1.Unsubscribe()
	// Unsubscribe is idempotent
	sub1.Unsubscribe()

	require.NoError(t, ch.Publish("chat.11", "message.sent", testPayload{RequestID: "msg-1"}))

	select {
	case <-kept:
	case <-time.After(2 * time.Second):
		t.Fatal("Remaining listener did not receive the event")
	}

	select {
	case <-removed:
		t.Fatal("Removed listener still received the event")
	case <-time.After(100 * time.Millisecond):
	}
}
