package handlers

import (
	"log"
	"net/http"

	"blog-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// FeedHandler serves the live blog feed over websocket.
type FeedHandler struct {
	mgr *ws.Manager
}

func NewFeedHandler(mgr *ws.Manager) *FeedHandler {
	return &FeedHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleFeedWS upgrades to websocket and streams blog events until the
// client disconnects. Subscribers only receive; inbound frames are drained
// and discarded.
// GET /ws
func (h *FeedHandler) HandleFeedWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Register(conn)
	log.Printf("feed subscriber connected (%d active)", h.mgr.Count())

	defer func() {
		h.mgr.Unregister(conn)
		log.Printf("feed subscriber disconnected (%d active)", h.mgr.Count())
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("feed read error: %v", err)
			}
			return
		}
	}
}
