package connection

import (
	"log"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     uint8         = 2
	gracePeriod       time.Duration = time.Minute * 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	reconnectionAfterAbnormalClosure(conn *websocket.Conn)
	handleReadFromConnErr(err error, retries uint8) uint8
	writeToConnWithRetry(msg interface{}, msgType uint8) error
	onConnErr(err error) uint8
}

// Session is one client's setup conversation. Its fleet
// uuid ties the ws connection to the fleet the session
// owns in the fleet manager.
type Session struct {
	id                     string
	conn                   *websocket.Conn
	fleetUuid              string
	reconnectionSignalChan chan bool
	createdAt              time.Time
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:                     id,
		conn:                   conn,
		reconnectionSignalChan: make(chan bool),
		createdAt:              time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

// Sorts a connection error into a loop action: retry the
// operation, hold the session through the reconnection
// grace period, or give up on the connection.
func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	switch {
	case websocket.IsCloseError(err, websocket.CloseTryAgainLater):
		log.Println("server overloaded:", err)
		return ConnLoopRetry

	// Mobile browsers backgrounding the setup page drop the
	// socket with 1006. The session outlives the socket so the
	// client can pick its fleet back up on return.
	case websocket.IsCloseError(err, websocket.CloseAbnormalClosure):
		log.Println("abnormal closure:", err)
		return ConnLoopAbnormalClosureRetry

	default:
		// Normal and going-away closures, protocol errors and
		// malformed frames (binary or non-UTF-8 payloads from
		// clients that are not the setup UI) all end the
		// session. None of them is worth a retry.
		log.Println("closing conn loop:", err)
		return ConnLoopBreak
	}
}

// Writes one message to the session's connection, retrying
// transient failures with a linear backoff. An abnormal
// closure is reported to the caller so the session manager
// can run the grace period.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	var retries uint8

	for {
		var err error

		switch msgType {
		case MessageTypeJSON:
			err = s.conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = s.conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries >= maxWriteWsRetries {
				log.Printf("max retries reached for writing to ws [%s]: %s", s.conn.RemoteAddr().String(), err)
				return NewConnErr(ConnLoopBreak)
			}
			retries++
			log.Printf("write to ws [%s] failed; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)

		case ConnLoopAbnormalClosureRetry:
			return NewConnErr(ConnLoopAbnormalClosureRetry)

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop due to:" + err.Error())
		}
	}
}

// Maps a read error onto the session loop's next action.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopAbnormalClosureRetry:
		return ConnLoopAbnormalClosureRetry

	case ConnLoopRetry:
		if retries >= maxWriteWsRetries {
			return ConnLoopBreak
		}
		log.Printf("read from ws [%s] failed; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
		return ConnLoopContinue

	default:
		log.Printf("break ws conn loop [%s] due to: %s\n", s.conn.RemoteAddr().String(), err)
		return ConnLoopBreak
	}
}

// Swaps in the reconnected client's socket. Closing the old
// signal channel releases the grace-period wait; a fresh
// channel arms the session for the next abnormal closure.
func (s *Session) reconnectionAfterAbnormalClosure(conn *websocket.Conn) {
	close(s.reconnectionSignalChan)

	s.conn = conn
	s.reconnectionSignalChan = make(chan bool)
}

var _ ConnectionHandler = (*Session)(nil)
