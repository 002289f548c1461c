package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mark3tsim/internal/types"
)

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Send: make(chan []byte, 4), ID: "client-a"}
	hub.RegisterClient(client)
	require.Eventually(t, func() bool { return hub.GetClientCount() == 1 }, time.Second, time.Millisecond)

	// Registration pushes a connection_status frame.
	select {
	case msg := <-client.Send:
		require.Contains(t, string(msg), string(types.ConnectionStatus))
	case <-time.After(time.Second):
		t.Fatal("no connection status message received")
	}

	hub.UnregisterClient(client)
	require.Eventually(t, func() bool { return hub.GetClientCount() == 0 }, time.Second, time.Millisecond)
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Send: make(chan []byte, 4), ID: "client-b"}
	hub.RegisterClient(client)
	require.Eventually(t, func() bool { return hub.GetClientCount() == 1 }, time.Second, time.Millisecond)
	<-client.Send // drain the connection status frame

	hub.BroadcastMessage(types.MarketTick, map[string]uint64{"tick": 1})

	select {
	case msg := <-client.Send:
		require.Contains(t, string(msg), string(types.MarketTick))
	case <-time.After(time.Second):
		t.Fatal("broadcast did not reach the client")
	}
}

func TestHub_EvictsSlowClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// The buffer holds only the connection status frame, so the first
	// broadcast finds the client's channel full.
	client := &Client{Send: make(chan []byte, 1), ID: "client-c"}
	hub.RegisterClient(client)
	require.Eventually(t, func() bool { return hub.GetClientCount() == 1 }, time.Second, time.Millisecond)

	hub.BroadcastMessage(types.MarketTick, map[string]uint64{"tick": 1})
	require.Eventually(t, func() bool { return hub.GetClientCount() == 0 }, time.Second, time.Millisecond)
}
