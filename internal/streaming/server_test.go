package streaming

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHubBroadcastsToConnectedClient(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	wsURL := "ws" + srv.URL[len("http"):]
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	type payload struct {
		Term string `json:"Term"`
		Cost int    `json:"Cost"`
	}

	// give the server a moment to register the connection before
	// broadcasting — Upgrade happens asynchronously relative to Dial
	// returning.
	time.Sleep(50 * time.Millisecond)
	hub.Broadcast(payload{Term: "not(x0)", Cost: 1})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}

	var got payload
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Term != "not(x0)" || got.Cost != 1 {
		t.Fatalf("got %+v, want Term=not(x0) Cost=1", got)
	}
}
