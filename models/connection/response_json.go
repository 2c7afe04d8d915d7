package connection

import (
	mp "github.com/saeidalz13/armada-backend/models/placement"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespNewFleet struct {
	FleetUuid string            `json:"fleet_uuid"`
	Ships     []mp.ShipSnapshot `json:"ships"`
}

type RespPlaceShip struct {
	Placed       bool              `json:"placed"`
	SelectedShip string            `json:"selected_ship,omitempty"`
	Ships        []mp.ShipSnapshot `json:"ships"`
}

type RespRotateShip struct {
	Rotated bool              `json:"rotated"`
	Ships   []mp.ShipSnapshot `json:"ships"`
}

type RespHoverCell struct {
	Invalid bool `json:"invalid"`
}

type RespSnapOffset struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

type RespFleetState struct {
	SelectedShip string            `json:"selected_ship,omitempty"`
	Ships        []mp.ShipSnapshot `json:"ships"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
