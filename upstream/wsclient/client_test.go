package wsclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"room-bot/errors"
	"room-bot/upstream"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type received struct {
	Type   string          `json:"type"`
	ID     string          `json:"id"`
	Action string          `json:"action"`
	Params json.RawMessage `json:"params"`
}

// fakeRoom answers actions the way the room service does. grab is never
// answered, join is accepted unless rejectJoin is set.
func fakeRoom(t *testing.T, rejectJoin bool) (*httptest.Server, chan received) {
	upgrader := websocket.Upgrader{}
	actions := make(chan received, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		write := func(v string) { _ = conn.WriteMessage(websocket.TextMessage, []byte(v)) }
		reply := func(id string, ok bool, payload string) {
			f := `{"type":"reply","id":"` + id + `","ok":` + strconv.FormatBool(ok)
			if payload != "" {
				f += `,"payload":` + payload
			}
			write(f + "}")
		}
		for {
			var req received
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			actions <- req
			switch req.Action {
			case "join":
				write(`{"type":"room","payload":{"dj":{"id":2,"username":"dj"},"media":{"author":"A","title":"T"},` +
					`"users":[{"id":1,"username":"alice","vote":1},{"id":2,"username":"dj"}],"waitList":[{"id":2}],"elapsed":42}}`)
				reply(req.ID, !rejectJoin, "")
				write(`{"type":"event","kind":"grab","payload":7}`)
			case "history":
				reply(req.ID, true, `[{"id":"h1","timestamp":"2024-05-01 11:50:00.000000"}]`)
			case "skip":
				reply(req.ID, false, "")
			case "grab":
			default:
				reply(req.ID, true, "")
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv, actions
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timed out")
	}
	var zero T
	return zero
}

func TestClient_Connect_Snapshot_And_Events(t *testing.T) {
	req := require.New(t)
	srv, actions := fakeRoom(t, false)
	client := New(logs.GetLoggerFromLevel(slog.LevelDebug), wsURL(srv), 0)
	defer client.Close()

	events := make(chan upstream.Event, 1)
	client.OnEvent(func(evt upstream.Event) { events <- evt })

	// When connecting
	req.NoError(client.Connect(context.Background(), "lounge"))

	// Then the join was sent with the room
	join := waitFor(t, actions)
	req.Equal("action", join.Type)
	req.Equal("join", join.Action)
	req.JSONEq(`{"room":"lounge"}`, string(join.Params))
	req.NotEmpty(join.ID)

	// And the snapshot is readable right away
	req.Equal("T", client.Media().Title)
	req.Equal(2, *client.DJ().ID)
	req.Len(client.Users(), 2)
	req.Len(client.WaitList(), 1)
	req.Equal(42, client.TimeElapsed())

	// And events are forwarded as raw events
	evt := waitFor(t, events)
	req.Equal(upstream.KindGrab, evt.Kind)
	req.JSONEq(`7`, string(evt.Payload))
}

func TestClient_Actions_Resolve_Callbacks(t *testing.T) {
	req := require.New(t)
	srv, actions := fakeRoom(t, false)
	client := New(logs.GetLoggerFromLevel(slog.LevelDebug), wsURL(srv), 10*time.Millisecond)
	defer client.Close()
	req.NoError(client.Connect(context.Background(), "lounge"))
	waitFor(t, actions)

	outcomes := make(chan bool, 2)
	req.True(client.Ban(5, 2, upstream.BanDay, func(ok bool) { outcomes <- ok }))
	ban := waitFor(t, actions)
	req.JSONEq(`{"userID":5,"reason":2,"duration":"d"}`, string(ban.Params))
	req.True(waitFor(t, outcomes))

	req.True(client.ForceSkip(func(ok bool) { outcomes <- ok }))
	req.Equal("skip", waitFor(t, actions).Action)
	req.False(waitFor(t, outcomes))

	req.True(client.SendChat("hello"))
	chat := waitFor(t, actions)
	req.Equal("chat", chat.Action)

	history := make(chan []upstream.HistoryEntry, 1)
	client.History(func(entries []upstream.HistoryEntry, err error) {
		req.NoError(err)
		history <- entries
	})
	entries := waitFor(t, history)
	req.Len(entries, 1)
	req.Equal("h1", entries[0].ID)
}

func TestClient_Close_Fails_Pending_Callbacks(t *testing.T) {
	req := require.New(t)
	srv, actions := fakeRoom(t, false)
	client := New(logs.GetLoggerFromLevel(slog.LevelDebug), wsURL(srv), 0)
	req.NoError(client.Connect(context.Background(), "lounge"))
	waitFor(t, actions)

	// Given a grab the server never answers
	outcomes := make(chan bool, 1)
	req.True(client.Grab(func(ok bool) { outcomes <- ok }))
	waitFor(t, actions)

	// When the client closes
	req.NoError(client.Close())

	// Then the callback still learns about the failure
	req.False(waitFor(t, outcomes))
	req.False(client.Woot(nil))

	failed := make(chan error, 1)
	client.History(func(_ []upstream.HistoryEntry, err error) { failed <- err })
	req.ErrorIs(waitFor(t, failed), errors.ErrNotConnected)
}

func TestClient_Join_Rejected(t *testing.T) {
	srv, _ := fakeRoom(t, true)
	client := New(logs.GetLoggerFromLevel(slog.LevelDebug), wsURL(srv), 0)
	require.ErrorIs(t, client.Connect(context.Background(), "lounge"), errors.ErrActionRejected)
}

func TestClient_Not_Connected(t *testing.T) {
	client := New(logs.GetLoggerFromLevel(slog.LevelDebug), "ws://127.0.0.1:1", 0)
	require.False(t, client.SendChat("hi"))
	require.Nil(t, client.Media())
	require.Nil(t, client.DJ())
	require.NoError(t, client.Close())
}

func TestClient_Failed_Write_After_Disconnect_Fires_Callback_Once(t *testing.T) {
	req := require.New(t)
	client := New(logs.GetLoggerFromLevel(slog.LevelDebug), "ws://127.0.0.1:1", 0)
	calls := 0
	client.pending["r1"] = ack(func(bool) { calls++ })

	// Given the read loop failed r1 before its write returned
	client.failPending()
	req.Equal(1, calls)

	// Then abandoning it reports the callback as delivered
	req.False(client.abandon("r1"))

	// And a request nobody answered is still owed its callback
	client.pending["r3"] = ack(func(bool) { calls++ })
	req.True(client.abandon("r3"))
	req.Equal(1, calls)
}
