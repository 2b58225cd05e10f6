package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscribersOfThatEvent(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		id := uint(1)
		if r.URL.Query().Get("event") == "2" {
			id = 2
		}
		hub.Register(id, conn)
		defer hub.Unregister(id, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	c1, _, err := websocket.DefaultDialer.Dial(wsURL+"?event=1", nil)
	require.NoError(t, err)
	defer c1.Close()
	c2, _, err := websocket.DefaultDialer.Dial(wsURL+"?event=2", nil)
	require.NoError(t, err)
	defer c2.Close()

	require.Eventually(t, func() bool {
		return hub.Subscribers(1) == 1 && hub.Subscribers(2) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish(1, map[string]string{"score": "2-1"})

	var got struct {
		EventID  uint              `json:"eventId"`
		LiveData map[string]string `json:"liveData"`
	}
	require.NoError(t, c1.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, c1.ReadJSON(&got))
	assert.Equal(t, uint(1), got.EventID)
	assert.Equal(t, "2-1", got.LiveData["score"])

	require.NoError(t, c2.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = c2.ReadMessage()
	assert.Error(t, err)
}

func TestHub_PublishAfterCloseIsIgnored(t *testing.T) {
	hub := NewHub()
	hub.Close()
	hub.Close()
	assert.NotPanics(t, func() { hub.Publish(1, "x") })
}
