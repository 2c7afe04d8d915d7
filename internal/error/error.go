package error

import "fmt"

func ErrFleetNotExists(fleetUuid string) error {
	return fmt.Errorf("fleet with this uuid does not exist, uuid: %s", fleetUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}
