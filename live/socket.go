package live

import (
	"log"
	"net/http"

	"everbloom/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// UpdatesHandler upgrades the connection and subscribes the session to its
// user's change feed.
func UpdatesHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		userID := utils.GetUserIDFromRequest(r)
		if userID == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Send:   make(chan []byte, 256),
			UserID: userID,
		}

		hub.register <- client
		go writePump(client, conn)
		go readPump(client, conn, hub)
	}
}

func writePump(c *Client, conn *websocket.Conn) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// The feed is one-way; reads only detect the client going away.
func readPump(c *Client, conn *websocket.Conn, hub *Hub) {
	defer func() {
		hub.unregister <- c
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
