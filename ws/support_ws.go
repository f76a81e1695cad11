package ws

import (
	"net/http"
	"sync"

	"carrental/pkg/chatbot"
	"carrental/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SupportHub serves the live support chat. Every inbound message is answered
// by the keyword bot; connections are independent, there are no rooms.
type SupportHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
	log   logger.ILogger
}

func NewSupportHub(log logger.ILogger) *SupportHub {
	return &SupportHub{
		conns: make(map[*websocket.Conn]bool),
		log:   log,
	}
}

type inbound struct {
	Message string `json:"message"`
}

type outbound struct {
	Intent   chatbot.Intent `json:"intent"`
	Response string         `json:"response"`
}

// Serve upgrades the request and runs the per-connection read loop until the
// client goes away.
func (h *SupportHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("ws upgrade failed", logger.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	n := len(h.conns)
	h.mu.Unlock()
	h.log.Info("support chat connected", logger.Int("active", n))

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		var in inbound
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warning("support chat read error", logger.Error(err))
			}
			return
		}

		out := outbound{
			Intent:   chatbot.Classify(in.Message),
			Response: chatbot.Reply(in.Message),
		}
		if err := conn.WriteJSON(out); err != nil {
			h.log.Warning("support chat write error", logger.Error(err))
			return
		}
	}
}
