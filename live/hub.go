package live

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// The hub fans collection-change notices out to every open session a user
// has. A second tab that hears "cart moved to revision N" reloads instead of
// writing over the first tab's change.

type Client struct {
	Send   chan []byte
	UserID string
}

type broadcastMsg struct {
	UserID string
	Data   []byte
}

type Hub struct {
	sessions   map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.sessions[c.UserID] == nil {
				h.sessions[c.UserID] = make(map[*Client]bool)
			}
			h.sessions[c.UserID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.sessions[c.UserID]; conns != nil {
				// A slow client may already have been evicted by the
				// broadcast loop; only close Send once.
				if _, ok := conns[c]; ok {
					delete(conns, c)
					close(c.Send)
				}
				if len(conns) == 0 {
					delete(h.sessions, c.UserID)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			if conns := h.sessions[m.UserID]; conns != nil {
				for c := range conns {
					select {
					case c.Send <- m.Data:
					default:
						close(c.Send)
						delete(conns, c)
					}
				}
				if len(conns) == 0 {
					delete(h.sessions, m.UserID)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.sessions {
				for c := range conns {
					close(c.Send)
				}
			}
			h.sessions = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// ChangeNotice tells other sessions a collection moved to a new revision.
type ChangeNotice struct {
	Collection string `json:"collection"` // "cart" or "wishlist"
	Revision   int64  `json:"revision"`
	Timestamp  int64  `json:"timestamp"`
}

// NotifyChange broadcasts a revision notice to every session of the user.
// Guest sessions have no identity and no cross-session feed.
func (h *Hub) NotifyChange(userID, collection string, revision int64) {
	if userID == "" {
		return
	}
	data, err := json.Marshal(ChangeNotice{
		Collection: collection,
		Revision:   revision,
		Timestamp:  time.Now().Unix(),
	})
	if err != nil {
		log.Println("NotifyChange marshal error:", err)
		return
	}
	select {
	case h.broadcast <- broadcastMsg{UserID: userID, Data: data}:
	default:
		log.Printf("Warning: updates channel full; dropping notice for user %s", userID)
	}
}

// Default is the process-wide hub; main wires it up and the cart/wishlist
// handlers publish into it.
var Default = NewHub()
