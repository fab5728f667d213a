package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Feed pushes live updates over WebSocket: the "orders" topic carries ledger
// events to staff consoles, the "menu" topic carries full menu snapshots so
// patron clients can purge out-of-stock cart lines without polling.
type Feed struct {
	clients    map[string]map[*websocket.Conn]bool // topic -> set of clients
	broadcast  chan broadcastMsg
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	conn  *websocket.Conn
	topic string
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type broadcastMsg struct {
	topic string
	event Event
}

func NewFeed() *Feed {
	return &Feed{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMsg),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (f *Feed) Run() {
	for {
		select {
		case sub := <-f.register:
			f.mu.Lock()
			if f.clients[sub.topic] == nil {
				f.clients[sub.topic] = make(map[*websocket.Conn]bool)
			}
			f.clients[sub.topic][sub.conn] = true
			f.mu.Unlock()

		case sub := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[sub.topic][sub.conn]; ok {
				delete(f.clients[sub.topic], sub.conn)
				sub.conn.Close()
			}
			f.mu.Unlock()

		case msg := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients[msg.topic] {
				if err := conn.WriteJSON(msg.event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(f.clients[msg.topic], conn)
				}
			}
			f.mu.Unlock()
		}
	}
}

// ----- services.Notifier -----

func (f *Feed) OrderCreated(o *entity.Order) {
	f.broadcast <- broadcastMsg{topic: "orders", event: Event{Type: "order_created", Data: o}}
}

func (f *Feed) OrderUpdated(o *entity.Order) {
	f.broadcast <- broadcastMsg{topic: "orders", event: Event{Type: "order_updated", Data: o}}
}

func (f *Feed) MenuChanged(items []entity.MenuItem) {
	f.broadcast <- broadcastMsg{topic: "menu", event: Event{Type: "menu", Data: items}}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handle upgrades the connection and keeps it subscribed to one topic until
// the client goes away. Auth (for the staff topic) happens in middleware
// before this runs.
func (f *Feed) Handle(topic string) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("ws upgrade error: %v", err)
			return
		}

		f.register <- subscription{conn: conn, topic: topic}

		go func() {
			defer func() {
				f.unregister <- subscription{conn: conn, topic: topic}
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
