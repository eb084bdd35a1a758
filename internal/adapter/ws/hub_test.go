package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func dial(t *testing.T, srv *httptest.Server, slug string) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/sites/" + slug
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", slug, err)
	}
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/sites/", func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimPrefix(r.URL.Path, "/ws/sites/")
		hub.Handle(w, r, slug)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func waitForSubscribers(t *testing.T, hub *Hub, slug string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount(slug) < n {
		if time.Now().After(deadline) {
			t.Fatalf("subscribers for %q = %d, want %d", slug, hub.SubscriberCount(slug), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestConnectionOutlivesHandlerSetup(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	_ = dial(t, srv, "smile-dental")
	waitForSubscribers(t, hub, "smile-dental", 1)

	// The subscription must persist while the client stays connected; the
	// server side must not tear it down on its own.
	time.Sleep(200 * time.Millisecond)
	if n := hub.SubscriberCount("smile-dental"); n != 1 {
		t.Fatalf("subscribers after idle = %d, want 1", n)
	}
}

func TestBroadcastReachesSlugSubscribers(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	conn := dial(t, srv, "smile-dental")
	waitForSubscribers(t, hub, "smile-dental", 1)

	hub.Broadcast(context.Background(), Message{
		Type:    EventSiteUpdated,
		Slug:    "smile-dental",
		Payload: json.RawMessage(`{"business_name":"Smile Dental"}`),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != EventSiteUpdated || msg.Slug != "smile-dental" {
		t.Errorf("message = %+v", msg)
	}
}

func TestBroadcastSkipsOtherSlugs(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	conn := dial(t, srv, "aurora-dental")
	waitForSubscribers(t, hub, "aurora-dental", 1)

	hub.Broadcast(context.Background(), Message{
		Type: EventSiteUpdated,
		Slug: "smile-dental",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if _, _, err := conn.Read(ctx); err == nil {
		t.Fatal("subscriber for a different slug must not receive the message")
	}
}
