package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	// Creates the five-slot fleet owned by this session
	CodeNewFleet

	// Drag-end commit of a ship to a target cell
	CodePlaceShip

	// Rotates the currently selected ship in place
	CodeRotateShip

	// Speculative validity check for the cell under the
	// pointer during an active drag
	CodeHoverCell

	// Advisory grid alignment of a raw drag offset
	CodeSnapOffset

	// Full fleet snapshot for the rendering client
	CodeFleetState

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
