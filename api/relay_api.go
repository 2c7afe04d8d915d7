package api

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

const relayEchoPrefix = "echo: "

// RelayHub is a stateless fan-out echo relay, fully
// separate from the placement engine. Any text frame from
// any connected client is re-broadcast with an echo prefix
// to every connected client, sender included. No auth, no
// message framing beyond the transport's.
type RelayHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
}

func NewRelayHub() *RelayHub {
	return &RelayHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte),
	}
}

// Run owns the clients map and does all the writes, so no
// per-conn write lock is needed.
func (h *RelayHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case msg := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					log.Println("relay broadcast error:", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

func (h *RelayHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	log.Println("relay client connected\tRemote Addr: ", conn.RemoteAddr().String())
	h.register <- conn

	go h.readPump(conn)
}

func (h *RelayHub) readPump(conn *websocket.Conn) {
	defer func() {
		h.unregister <- conn
		log.Println("relay client disconnected:", conn.RemoteAddr().String())
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Println(err)
			}
			// whatever else is not really an error. would be normal closure
			break
		}

		msg := make([]byte, 0, len(relayEchoPrefix)+len(payload))
		msg = append(msg, relayEchoPrefix...)
		msg = append(msg, payload...)
		h.broadcast <- msg
	}
}
