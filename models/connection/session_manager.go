package connection

import (
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/armada-backend/internal/error"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(session *Session)
	ReconnectSession(session *Session, conn *websocket.Conn)
	HandleAbnormalClosureSession(session *Session) error

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)

	GetSessionFleetUuid(session *Session) string
	SetSessionFleetUuid(session *Session, fleetUuid string)
}

type ArmadaSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*ArmadaSessionManager)(nil)

func NewArmadaSessionManager() *ArmadaSessionManager {
	initMapSize := 10

	return &ArmadaSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

func (asm *ArmadaSessionManager) GetSessionFleetUuid(session *Session) string {
	return session.fleetUuid
}

func (asm *ArmadaSessionManager) SetSessionFleetUuid(session *Session, fleetUuid string) {
	session.fleetUuid = fleetUuid
}

func (asm *ArmadaSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))

	asm.mu.Lock()
	asm.sessions[sessionId] = NewSession(sessionId, conn)
	session := asm.sessions[sessionId]
	asm.mu.Unlock()

	return session
}

func (asm *ArmadaSessionManager) FindSession(sessionId string) (*Session, error) {
	asm.mu.RLock()
	defer asm.mu.RUnlock()

	session, prs := asm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (asm *ArmadaSessionManager) TerminateSession(session *Session) {
	asm.mu.Lock()
	delete(asm.sessions, session.id)
	asm.mu.Unlock()
}

func (asm *ArmadaSessionManager) ReconnectSession(session *Session, conn *websocket.Conn) {
	session.reconnectionAfterAbnormalClosure(conn)
}

// To ensure that there are no dangling connections,
// the session manager marks the connections with a
// lifetime of more than 20 mins as stale and deletes them.
func (asm *ArmadaSessionManager) CleanupPeriodically() {
	assumedClosedConns := 10

	for {
		time.Sleep(asm.cleanupInterval)

		asm.mu.Lock()
		toDelete := make([]string, 0, assumedClosedConns)

		for ID, session := range asm.sessions {
			if time.Since(session.createdAt) > asm.cleanupInterval {
				toDelete = append(toDelete, ID)
			}
		}

		log.Println("Clean up sessions:")
		for _, ID := range toDelete {
			delete(asm.sessions, ID)
			log.Printf("removed: %s", ID)
		}
		asm.mu.Unlock()
	}
}

// Abnormal closures happen due to backgrounding in IOS
// clients or other unexpected reasons for web apps. The
// session is kept alive for a grace period so the client
// can reconnect with its session id and keep its fleet.
func (asm *ArmadaSessionManager) HandleAbnormalClosureSession(s *Session) error {
	log.Printf("starting grace period for %s\n", s.id)

	timer := time.NewTimer(gracePeriod)
	select {
	case <-timer.C:
		log.Printf("session terminated: %s\n", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-s.reconnectionSignalChan:
		log.Printf("client reconnected, session: %s\n", s.id)
		return nil
	}
}

func (asm *ArmadaSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)

	if err != nil {
		connErr, ok := err.(ConnErr)
		if !ok {
			panic("this will never happen")
		}

		switch connErr.Code() {
		case ConnLoopBreak, ConnInvalidMsgType:
			return connErr

		case ConnLoopAbnormalClosureRetry:
			if err := asm.HandleAbnormalClosureSession(session); err != nil {
				return connErr
			}
		}
	}

	return nil
}

func (asm *ArmadaSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := asm.HandleAbnormalClosureSession(session); err != nil {
				return 0, nil, err
			}
			continue

		default:
			return 0, nil, NewConnErr(ConnLoopBreak).AddDesc(err.Error())
		}
	}
}
