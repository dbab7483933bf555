package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"takhub/internal/config"
	"takhub/internal/room"
	"takhub/internal/store"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{BoardSize: 5}
	rm := room.NewManager(store.NewMemoryStore(), cfg)
	return NewRouter(rm, nil, cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad JSON response %q: %v", w.Body.String(), err)
	}
	return w.Code, out
}

func TestCreateJoinAndMove(t *testing.T) {
	r := newTestRouter(t)

	code, resp := doJSON(t, r, "POST", "/create-room", CreateRoomRequest{PlayerName: "alice"})
	if code != http.StatusOK {
		t.Fatalf("create: %d %v", code, resp)
	}
	roomCode, _ := resp["roomCode"].(string)
	whiteID, _ := resp["playerId"].(string)
	if roomCode == "" || whiteID == "" {
		t.Fatalf("create response: %v", resp)
	}

	code, resp = doJSON(t, r, "POST", "/join-room", JoinRoomRequest{RoomCode: roomCode, PlayerName: "bob"})
	if code != http.StatusOK {
		t.Fatalf("join: %d %v", code, resp)
	}
	blackID, _ := resp["playerId"].(string)

	code, resp = doJSON(t, r, "POST", "/move", MoveRequest{RoomCode: roomCode, PlayerID: whiteID, Ply: "a1"})
	if code != http.StatusOK {
		t.Fatalf("move: %d %v", code, resp)
	}

	// Out of turn.
	code, _ = doJSON(t, r, "POST", "/move", MoveRequest{RoomCode: roomCode, PlayerID: whiteID, Ply: "b1"})
	if code != http.StatusBadRequest {
		t.Fatalf("out-of-turn move: %d", code)
	}

	code, _ = doJSON(t, r, "POST", "/move", MoveRequest{RoomCode: roomCode, PlayerID: blackID, Ply: "e5"})
	if code != http.StatusOK {
		t.Fatalf("black move: %d", code)
	}

	code, resp = doJSON(t, r, "GET", "/room?roomCode="+roomCode, nil)
	if code != http.StatusOK {
		t.Fatalf("get room: %d", code)
	}
	if _, ok := resp["rendered"].(string); !ok {
		t.Fatalf("room response missing rendering: %v", resp)
	}

	code, resp = doJSON(t, r, "GET", "/standings?roomCode="+roomCode, nil)
	if code != http.StatusOK || resp["standings"] == nil {
		t.Fatalf("standings: %d %v", code, resp)
	}
}

func TestCreateRoomValidation(t *testing.T) {
	r := newTestRouter(t)

	code, _ := doJSON(t, r, "POST", "/create-room", CreateRoomRequest{})
	if code != http.StatusBadRequest {
		t.Fatalf("missing name: %d", code)
	}

	code, _ = doJSON(t, r, "POST", "/create-room", CreateRoomRequest{PlayerName: "alice", BoardSize: 12})
	if code != http.StatusBadRequest {
		t.Fatalf("bad board size: %d", code)
	}
}

func TestMoveOnMissingRoom(t *testing.T) {
	r := newTestRouter(t)
	code, _ := doJSON(t, r, "POST", "/move", MoveRequest{RoomCode: "NOPE", PlayerID: "x", Ply: "a1"})
	if code != http.StatusNotFound {
		t.Fatalf("missing room: %d", code)
	}
}
