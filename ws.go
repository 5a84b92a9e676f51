package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/dsk-ducdn2/car-rental-app-sub001/mockdata"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsHub fans snapshots out to connected websocket clients. Writes happen
// under mu so a connection never sees concurrent writers.
type wsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *wsHub {
	return &wsHub{clients: make(map[*websocket.Conn]struct{})}
}

func handleWebSocket(h *wsHub, p *poller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("ws upgrade error: %v", err)
			return
		}
		// Send the latest snapshot so new clients don't wait for the next change.
		h.add(conn, p.snapshot())
		go h.readPump(conn)
	}
}

func (h *wsHub) add(c *websocket.Conn, snap *mockdata.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	_ = writeSnapshot(c, snap)
}

func (h *wsHub) remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

func (h *wsHub) broadcast(snap mockdata.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("ws encode error: %v", err)
		return
	}
	h.mu.Lock()
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			c.Close()
			delete(h.clients, c)
		}
	}
	h.mu.Unlock()
}

func (h *wsHub) readPump(c *websocket.Conn) {
	defer func() {
		h.remove(c)
		_ = c.Close()
	}()
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func writeSnapshot(c *websocket.Conn, snap *mockdata.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.WriteMessage(websocket.TextMessage, data)
}
