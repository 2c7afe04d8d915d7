package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	mc "github.com/saeidalz13/armada-backend/models/connection"
	mp "github.com/saeidalz13/armada-backend/models/placement"
)

var dialer = websocket.Dialer{
	HandshakeTimeout: 10 * time.Second,
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	sessionManager := mc.NewArmadaSessionManager()
	fleetManager := mp.NewArmadaFleetManager()
	rp := NewRequestProcessor(sessionManager, fleetManager, nil)

	relayHub := NewRelayHub()
	go relayHub.Run()

	mux := http.NewServeMux()
	mux.Handle("GET /armada", rp)
	mux.Handle("GET /relay", relayHub)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestConn(t *testing.T, server *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	wsUrl := "ws" + strings.TrimPrefix(server.URL, "http") + path
	conn, _, err := dialer.Dial(wsUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 10))
	return conn
}

type Test[T, K any] struct {
	name string

	expectedCode uint8

	reqPayload  T
	respPayload K // Used to unmarshal the response
}

func TestPlacementSession(t *testing.T) {
	server := newTestServer(t)
	conn := newTestConn(t, server, "/armada")

	var respSessionId mc.Message[mc.RespSessionId]
	if err := conn.ReadJSON(&respSessionId); err != nil {
		t.Fatal(err)
	}
	if respSessionId.Code != mc.CodeSessionID {
		t.Fatalf("expected code: %d\tgot: %d", mc.CodeSessionID, respSessionId.Code)
	}
	if respSessionId.Payload.SessionID == "" {
		t.Fatal("expected a non-empty session id")
	}

	t.Run("new fleet", func(t *testing.T) {
		if err := conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeNewFleet)); err != nil {
			t.Fatal(err)
		}

		var resp mc.Message[mc.RespNewFleet]
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.Code != mc.CodeNewFleet {
			t.Fatalf("expected code: %d\tgot: %d", mc.CodeNewFleet, resp.Code)
		}
		if len(resp.Payload.Ships) != 5 {
			t.Fatalf("expected 5 ships\tgot: %d", len(resp.Payload.Ships))
		}
		for _, sh := range resp.Payload.Ships {
			if sh.Origin != nil {
				t.Fatalf("ship %s must start unplaced", sh.Name)
			}
		}
	})

	placeTests := []struct {
		name           string
		reqPayload     mc.ReqPlaceShip
		expectedPlaced bool
	}{
		{
			name:           "carrier at origin",
			reqPayload:     mc.ReqPlaceShip{ShipName: mp.ShipNameCarrier, Size: 5, Row: 0, Col: 0, Horizontal: true},
			expectedPlaced: true,
		},
		{
			name:           "battleship overlapping carrier",
			reqPayload:     mc.ReqPlaceShip{ShipName: mp.ShipNameBattleship, Size: 4, Row: 0, Col: 3, Horizontal: true},
			expectedPlaced: false,
		},
		{
			name:           "battleship one row down",
			reqPayload:     mc.ReqPlaceShip{ShipName: mp.ShipNameBattleship, Size: 4, Row: 1, Col: 0, Horizontal: true},
			expectedPlaced: true,
		},
	}

	for _, test := range placeTests {
		t.Run(test.name, func(t *testing.T) {
			req := mc.NewMessage[mc.ReqPlaceShip](mc.CodePlaceShip)
			req.AddPayload(test.reqPayload)
			if err := conn.WriteJSON(req); err != nil {
				t.Fatal(err)
			}

			var resp mc.Message[mc.RespPlaceShip]
			if err := conn.ReadJSON(&resp); err != nil {
				t.Fatal(err)
			}
			if resp.Code != mc.CodePlaceShip {
				t.Fatalf("expected code: %d\tgot: %d", mc.CodePlaceShip, resp.Code)
			}
			if resp.Payload.Placed != test.expectedPlaced {
				t.Fatalf("expected placed: %t\tgot: %t", test.expectedPlaced, resp.Payload.Placed)
			}
		})
	}

	hoverTests := []Test[mc.ReqHoverCell, mc.Message[mc.RespHoverCell]]{
		{
			name:         "hover over carrier cells is invalid",
			expectedCode: mc.CodeHoverCell,
			reqPayload:   mc.ReqHoverCell{ShipName: mp.ShipNameSubmarine, Size: 3, Row: 0, Col: 2, Horizontal: true},
		},
		{
			name:         "hover over open water is valid",
			expectedCode: mc.CodeHoverCell,
			reqPayload:   mc.ReqHoverCell{ShipName: mp.ShipNameSubmarine, Size: 3, Row: 5, Col: 5, Horizontal: true},
		},
	}

	for i, test := range hoverTests {
		t.Run(test.name, func(t *testing.T) {
			req := mc.NewMessage[mc.ReqHoverCell](mc.CodeHoverCell)
			req.AddPayload(test.reqPayload)
			if err := conn.WriteJSON(req); err != nil {
				t.Fatal(err)
			}

			if err := conn.ReadJSON(&test.respPayload); err != nil {
				t.Fatal(err)
			}
			if test.respPayload.Code != test.expectedCode {
				t.Fatalf("expected code: %d\tgot: %d", test.expectedCode, test.respPayload.Code)
			}

			wantInvalid := i == 0
			if test.respPayload.Payload.Invalid != wantInvalid {
				t.Fatalf("expected invalid: %t\tgot: %t", wantInvalid, test.respPayload.Payload.Invalid)
			}
		})
	}

	t.Run("rotate selected ship", func(t *testing.T) {
		// empty ship name falls back to the sticky selection,
		// which is the battleship after the last placement
		req := mc.NewMessage[mc.ReqRotateShip](mc.CodeRotateShip)
		if err := conn.WriteJSON(req); err != nil {
			t.Fatal(err)
		}

		var resp mc.Message[mc.RespRotateShip]
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.Code != mc.CodeRotateShip {
			t.Fatalf("expected code: %d\tgot: %d", mc.CodeRotateShip, resp.Code)
		}
		if !resp.Payload.Rotated {
			t.Fatal("expected rotation to succeed")
		}

		for _, sh := range resp.Payload.Ships {
			if sh.Name != mp.ShipNameBattleship {
				continue
			}
			if sh.Horizontal {
				t.Fatal("expected battleship to be vertical after rotation")
			}
			// straight pivot drop is blocked by the carrier at
			// (0,1); nearest legal pivot lands the origin at (1,1)
			if sh.Origin == nil || *sh.Origin != mp.NewCell(1, 1) {
				t.Fatalf("expected origin (1,1)\tgot: %+v", sh.Origin)
			}
		}
	})

	t.Run("snap offset", func(t *testing.T) {
		req := mc.NewMessage[mc.ReqSnapOffset](mc.CodeSnapOffset)
		req.AddPayload(mc.ReqSnapOffset{
			Element: mp.Rect{Top: 100, Left: 100, Width: 200, Height: 40},
			Board:   mp.Rect{Top: 100, Left: 100, Width: 400, Height: 400},
			Dx:      85,
			Dy:      42,
		})
		if err := conn.WriteJSON(req); err != nil {
			t.Fatal(err)
		}

		var resp mc.Message[mc.RespSnapOffset]
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.Code != mc.CodeSnapOffset {
			t.Fatalf("expected code: %d\tgot: %d", mc.CodeSnapOffset, resp.Code)
		}
		if resp.Payload.Dx != 80 || resp.Payload.Dy != 40 {
			t.Fatalf("expected snapped offset (80, 40)\tgot: (%v, %v)", resp.Payload.Dx, resp.Payload.Dy)
		}
	})

	t.Run("fleet state keeps selection", func(t *testing.T) {
		if err := conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeFleetState)); err != nil {
			t.Fatal(err)
		}

		var resp mc.Message[mc.RespFleetState]
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.Code != mc.CodeFleetState {
			t.Fatalf("expected code: %d\tgot: %d", mc.CodeFleetState, resp.Code)
		}
		// rotation must not move the selection off the battleship
		if resp.Payload.SelectedShip != mp.ShipNameBattleship {
			t.Fatalf("expected selection: %s\tgot: %s", mp.ShipNameBattleship, resp.Payload.SelectedShip)
		}
	})

	t.Run("invalid code", func(t *testing.T) {
		if err := conn.WriteJSON(mc.NewSignal(255)); err != nil {
			t.Fatal(err)
		}

		var resp mc.Message[mc.NoPayload]
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.Code != mc.CodeInvalidSignal {
			t.Fatalf("expected code: %d\tgot: %d", mc.CodeInvalidSignal, resp.Code)
		}
	})
}

func TestNewFleetReplacesPrevious(t *testing.T) {
	sessionManager := mc.NewArmadaSessionManager()
	fleetManager := mp.NewArmadaFleetManager()
	rp := NewRequestProcessor(sessionManager, fleetManager, nil)

	mux := http.NewServeMux()
	mux.Handle("GET /armada", rp)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	conn := newTestConn(t, server, "/armada")

	var respSessionId mc.Message[mc.RespSessionId]
	if err := conn.ReadJSON(&respSessionId); err != nil {
		t.Fatal(err)
	}

	newFleet := func() string {
		t.Helper()
		if err := conn.WriteJSON(mc.NewSignal(mc.CodeNewFleet)); err != nil {
			t.Fatal(err)
		}
		var resp mc.Message[mc.RespNewFleet]
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatal(err)
		}
		return resp.Payload.FleetUuid
	}

	firstUuid := newFleet()
	secondUuid := newFleet()

	if _, err := fleetManager.GetFleet(secondUuid); err != nil {
		t.Fatalf("expected the session's current fleet to exist: %v", err)
	}

	// the replaced fleet must be freed right away, not pile up
	// until session teardown
	if _, err := fleetManager.GetFleet(firstUuid); err == nil {
		t.Fatal("expected the replaced fleet to be terminated")
	}
}

func TestPlaceShipWithoutFleet(t *testing.T) {
	server := newTestServer(t)
	conn := newTestConn(t, server, "/armada")

	var respSessionId mc.Message[mc.RespSessionId]
	if err := conn.ReadJSON(&respSessionId); err != nil {
		t.Fatal(err)
	}

	req := mc.NewMessage[mc.ReqPlaceShip](mc.CodePlaceShip)
	req.AddPayload(mc.ReqPlaceShip{ShipName: mp.ShipNameCarrier, Size: 5, Row: 0, Col: 0, Horizontal: true})
	if err := conn.WriteJSON(req); err != nil {
		t.Fatal(err)
	}

	var resp mc.Message[mc.NoPayload]
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil {
		t.Fatal("expected an error for a session without a fleet")
	}
}
