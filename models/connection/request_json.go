package connection

import (
	mp "github.com/saeidalz13/armada-backend/models/placement"
)

// Drag-end descriptor: the ship identity plus the target
// cell already hit-tested by the rendering layer.
type ReqPlaceShip struct {
	ShipName   string `json:"ship_name"`
	Size       int    `json:"size"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Horizontal bool   `json:"horizontal"`
}

// Empty ship name falls back to the fleet's sticky
// selection (the last successfully placed ship).
type ReqRotateShip struct {
	ShipName string `json:"ship_name"`
}

type ReqHoverCell struct {
	ShipName   string `json:"ship_name"`
	Size       int    `json:"size"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Horizontal bool   `json:"horizontal"`
}

type ReqSnapOffset struct {
	Element mp.Rect `json:"element"`
	Board   mp.Rect `json:"board"`
	Dx      float64 `json:"dx"`
	Dy      float64 `json:"dy"`
}
