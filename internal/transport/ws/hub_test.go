package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sarrisk/internal/cache"
	"sarrisk/internal/config"
	"sarrisk/internal/model"
	"sarrisk/internal/service"
)

func receive(t *testing.T, conn *Connection) Message {
	t.Helper()
	select {
	case data, ok := <-conn.Send:
		require.True(t, ok, "connection closed")
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
	return Message{}
}

func TestHub_BroadcastReachesMissionOnly(t *testing.T) {
	hub := NewHub(zap.NewNop())
	a := &Connection{MissionCode: "AAA111", Send: make(chan []byte, 4)}
	b := &Connection{MissionCode: "BBB222", Send: make(chan []byte, 4)}
	hub.Register(a)
	hub.Register(b)

	hub.BroadcastToCoordinator("AAA111", service.EventTeamJoined, map[string]string{"name": "Alpha"})

	msg := receive(t, a)
	assert.Equal(t, service.EventTeamJoined, msg.Type)
	assert.JSONEq(t, `{"name":"Alpha"}`, string(msg.Payload))

	hub.BroadcastToCoordinator("BBB222", service.EventBoardUpdate, []int{})
	assert.Equal(t, service.EventBoardUpdate, receive(t, b).Type)
	assert.Len(t, a.Send, 0)
}

func TestHub_DisconnectMissionClosesConnections(t *testing.T) {
	hub := NewHub(zap.NewNop())
	a := &Connection{MissionCode: "AAA111", Send: make(chan []byte, 4)}
	b := &Connection{MissionCode: "AAA111", Send: make(chan []byte, 4)}
	hub.Register(a)
	hub.Register(b)

	hub.DisconnectMission("AAA111")

	for _, c := range []*Connection{a, b} {
		select {
		case _, ok := <-c.Send:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("connection not closed")
		}
	}

	// Unregistering an already removed connection is a no-op
	hub.Unregister(a)
}

// newTestServer serves the coordinator feed for mission ABC123 and returns
// the owning coordinator's token
func newTestServer(t *testing.T) (*httptest.Server, *Hub, *service.AuthService, string) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	auth := service.NewAuthService(&config.Config{
		JWTSecret:           "s",
		CoordinatorUsername: "admin",
		CoordinatorPassword: "pw",
		TeamTokenTTL:        time.Hour,
	})
	owner := login(t, auth)

	missionCache := cache.NewMissionCache(rdb)
	require.NoError(t, missionCache.SetMeta(context.Background(), "ABC123", &model.MissionMeta{
		Name:          "Ridge",
		CoordinatorID: owner.CoordinatorID,
		Status:        model.MissionOpen,
	}))

	missions := service.NewMissionService(nil, nil, missionCache, cache.NewBoardCache(rdb), auth, zap.NewNop())
	hub := NewHub(zap.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/v1/ws/missions/{code}/coordinator", NewHandler(hub, auth, missions, zap.NewNop()).CoordinatorWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub, auth, owner.Token
}

func login(t *testing.T, auth *service.AuthService) *model.LoginResponse {
	t.Helper()
	resp, err := auth.Login("admin", "pw")
	require.NoError(t, err)
	return resp
}

func TestHandler_RejectsMissingAndForeignTokens(t *testing.T) {
	srv, _, auth, _ := newTestServer(t)
	base := srv.URL + "/v1/ws/missions/ABC123/coordinator"

	resp, err := http.Get(base)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(base + "?token=" + login(t, auth).Token)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_StreamsEvents(t *testing.T) {
	srv, hub, _, token := newTestServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/missions/ABC123/coordinator?token=" + token

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration is asynchronous; retry until the event arrives
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	received := make(chan Message, 1)
	go func() {
		var msg Message
		if err := conn.ReadJSON(&msg); err == nil {
			received <- msg
		}
	}()

	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case msg := <-received:
			assert.Equal(t, service.EventAssessmentUpdated, msg.Type)
			return
		case <-tick.C:
			hub.BroadcastToCoordinator("ABC123", service.EventAssessmentUpdated, map[string]int{"scored": 1})
		case <-deadline:
			t.Fatal("no event received")
		}
	}
}
