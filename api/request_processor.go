package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/armada-backend/db/sqlc"
	mc "github.com/saeidalz13/armada-backend/models/connection"
	mp "github.com/saeidalz13/armada-backend/models/placement"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var upgrader = websocket.Upgrader{

	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// probably more than enough but this is a good average size
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	fleetManager   mp.FleetManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	fleetManager mp.FleetManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		fleetManager:   fleetManager,
		q:              q,
	}

	rp = rp.mustGetServerIpNet()
	return rp
}

func (rp RequestProcessor) mustGetServerIpNet() RequestProcessor {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ipnet != nil && ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				rp.ipnet = *ipnet
				return rp
			}
		}
	}

	// Hosts with no external interface (e.g. test runners)
	// still need an analytics key
	rp.ipnet = net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}
	return rp
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		session, err := rp.sessionManager.FindSession(sessionIdQuery)
		if err != nil {
			// This either means an expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
			return
		}
		rp.sessionManager.ReconnectSession(session, conn)
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	var sessionFleet *mp.Fleet
	sessionId := session.Id()

	defer func() {
		if fleetUuid := rp.sessionManager.GetSessionFleetUuid(session); fleetUuid != "" {
			rp.fleetManager.TerminateFleet(fleetUuid)
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// then something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		var signal mc.Signal

		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		// In this branch we create the fleet owned by this session.
		// All five ships start in the unplaced tray.
		case mc.CodeNewFleet:
			// a re-sent new fleet request replaces the session's
			// fleet; the replaced one is freed right away, not at
			// session teardown
			if prevFleetUuid := rp.sessionManager.GetSessionFleetUuid(session); prevFleetUuid != "" {
				rp.fleetManager.TerminateFleet(prevFleetUuid)
			}

			fleetUuid, fleet, respMsg := NewRequest(payload).HandleNewFleet(rp.fleetManager)
			sessionFleet = fleet
			rp.sessionManager.SetSessionFleetUuid(session, fleetUuid)

			rp.incrementAnalytics(serverPqtypeInet, analyticsFleetsCreated)

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// Drag-end commit. The placement is re-validated here no
		// matter what the client observed during the drag.
		case mc.CodePlaceShip:
			if sessionFleet == nil {
				if err := rp.writeNoFleet(session, mc.CodePlaceShip); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandlePlaceShip(sessionFleet)
			if respMsg.Payload.Placed {
				rp.incrementAnalytics(serverPqtypeInet, analyticsShipsPlaced)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// Rotate-in-place of the selected ship. An infeasible
		// rotation is a silent no-op, not an error.
		case mc.CodeRotateShip:
			if sessionFleet == nil {
				if err := rp.writeNoFleet(session, mc.CodeRotateShip); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandleRotateShip(sessionFleet)
			if respMsg.Payload.Rotated {
				rp.incrementAnalytics(serverPqtypeInet, analyticsShipsRotated)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// Speculative validity of the cell under the pointer,
		// used by the client for hover-invalid highlighting.
		case mc.CodeHoverCell:
			if sessionFleet == nil {
				if err := rp.writeNoFleet(session, mc.CodeHoverCell); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandleHoverCell(sessionFleet)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeSnapOffset:
			respMsg := NewRequest(payload).HandleSnapOffset()
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeFleetState:
			if sessionFleet == nil {
				if err := rp.writeNoFleet(session, mc.CodeFleetState); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			respMsg := NewRequest().HandleFleetState(sessionFleet)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

func (rp *RequestProcessor) writeNoFleet(session *mc.Session, code uint8) error {
	msg := mc.NewMessage[mc.NoPayload](code)
	msg.AddError("no fleet exists for this session", "send the new fleet request first")
	return rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON)
}

const (
	analyticsFleetsCreated uint8 = iota
	analyticsShipsPlaced
	analyticsShipsRotated
)

// Analytics failures are logged and never fatal
// to the session.
func (rp *RequestProcessor) incrementAnalytics(serverIp pqtype.Inet, counter uint8) {
	if rp.q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	var err error
	switch counter {
	case analyticsFleetsCreated:
		err = rp.q.AnalyticsIncrementFleetsCreatedCount(ctx, serverIp)
	case analyticsShipsPlaced:
		err = rp.q.AnalyticsIncrementShipsPlacedCount(ctx, serverIp)
	case analyticsShipsRotated:
		err = rp.q.AnalyticsIncrementShipsRotatedCount(ctx, serverIp)
	}

	if err != nil {
		log.Println(err)
	}
}
