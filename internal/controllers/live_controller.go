package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"teranga_match/internal/live"
	"teranga_match/internal/services"
)

// LiveController upgrades subscribers of an event's live score to websocket.
type LiveController struct {
	events   *services.EventService
	hub      *live.Hub
	upgrader websocket.Upgrader
}

func NewLiveController(events *services.EventService, hub *live.Hub, allowedOrigins []string) *LiveController {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &LiveController{
		events: events,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// Subscribe sends the current live data, then every update published for
// the event until the client goes away.
func (lc *LiveController) Subscribe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	e, err := lc.events.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := lc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection.")
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(live.Message{EventID: e.ID, LiveData: e.LiveData}); err != nil {
		return
	}
	lc.hub.Register(id, conn)
	defer lc.hub.Unregister(id, conn)

	fields := logrus.Fields{"event_id": id, "conn_ptr": fmt.Sprintf("%p", conn)}
	logrus.WithFields(fields).Info("live WebSocket connection established")
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).WithFields(fields).Debug("live WebSocket read ended")
			}
			break
		}
	}
	logrus.WithFields(fields).Info("live WebSocket connection closed")
}
