package api

import (
	"encoding/json"
	"log"

	mc "github.com/saeidalz13/armada-backend/models/connection"
	mp "github.com/saeidalz13/armada-backend/models/placement"
)

type RequestHandler interface {
	HandleNewFleet(fleetManager mp.FleetManager) (string, *mp.Fleet, mc.Message[mc.RespNewFleet])
	HandlePlaceShip(fleet *mp.Fleet) mc.Message[mc.RespPlaceShip]
	HandleRotateShip(fleet *mp.Fleet) mc.Message[mc.RespRotateShip]
	HandleHoverCell(fleet *mp.Fleet) mc.Message[mc.RespHoverCell]
	HandleSnapOffset() mc.Message[mc.RespSnapOffset]
	HandleFleetState(fleet *mp.Fleet) mc.Message[mc.RespFleetState]
}

// Every incoming valid request is handled in line
// with the RequestHandler interface.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	var req Request
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return req
	}
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) HandleNewFleet(fleetManager mp.FleetManager) (string, *mp.Fleet, mc.Message[mc.RespNewFleet]) {
	fleetUuid, fleet := fleetManager.CreateFleet()

	resp := mc.NewMessage[mc.RespNewFleet](mc.CodeNewFleet)
	resp.AddPayload(mc.RespNewFleet{FleetUuid: fleetUuid, Ships: fleet.Snapshot()})
	return fleetUuid, fleet, resp
}

// Drag-end commit of a ship descriptor to the target cell
// hit-tested by the client. A failed placement is a normal
// boolean outcome; the client puts the ship back in the
// tray and renders no other change.
func (r Request) HandlePlaceShip(fleet *mp.Fleet) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)

	var reqPlaceShip mc.ReqPlaceShip
	if err := json.Unmarshal(r.payload, &reqPlaceShip); err != nil {
		resp.AddError(err.Error(), "invalid place ship request payload")
		return resp
	}

	placed := fleet.PlaceShip(
		reqPlaceShip.ShipName,
		reqPlaceShip.Size,
		reqPlaceShip.Row,
		reqPlaceShip.Col,
		reqPlaceShip.Horizontal,
	)

	resp.AddPayload(mc.RespPlaceShip{
		Placed:       placed,
		SelectedShip: fleet.SelectedShip(),
		Ships:        fleet.Snapshot(),
	})
	return resp
}

// Rotate acts on the named ship, falling back to the
// fleet's sticky selection when the client sends no name.
// No selection or an unplaced target is a guarded no-op.
func (r Request) HandleRotateShip(fleet *mp.Fleet) mc.Message[mc.RespRotateShip] {
	resp := mc.NewMessage[mc.RespRotateShip](mc.CodeRotateShip)

	var reqRotateShip mc.ReqRotateShip
	if err := json.Unmarshal(r.payload, &reqRotateShip); err != nil {
		resp.AddError(err.Error(), "invalid rotate ship request payload")
		return resp
	}

	shipName := reqRotateShip.ShipName
	if shipName == "" {
		shipName = fleet.SelectedShip()
	}

	rotated := false
	if shipName != "" {
		rotated = fleet.Rotate(shipName)
	}

	resp.AddPayload(mc.RespRotateShip{
		Rotated: rotated,
		Ships:   fleet.Snapshot(),
	})
	return resp
}

// Speculative check for the cell currently under the
// pointer. Commits nothing.
func (r Request) HandleHoverCell(fleet *mp.Fleet) mc.Message[mc.RespHoverCell] {
	resp := mc.NewMessage[mc.RespHoverCell](mc.CodeHoverCell)

	var reqHoverCell mc.ReqHoverCell
	if err := json.Unmarshal(r.payload, &reqHoverCell); err != nil {
		resp.AddError(err.Error(), "invalid hover cell request payload")
		return resp
	}

	canPlace := fleet.CanPlace(
		reqHoverCell.ShipName,
		reqHoverCell.Size,
		reqHoverCell.Row,
		reqHoverCell.Col,
		reqHoverCell.Horizontal,
	)

	resp.AddPayload(mc.RespHoverCell{Invalid: !canPlace})
	return resp
}

func (r Request) HandleSnapOffset() mc.Message[mc.RespSnapOffset] {
	resp := mc.NewMessage[mc.RespSnapOffset](mc.CodeSnapOffset)

	var reqSnapOffset mc.ReqSnapOffset
	if err := json.Unmarshal(r.payload, &reqSnapOffset); err != nil {
		resp.AddError(err.Error(), "invalid snap offset request payload")
		return resp
	}

	dx, dy := mp.SnapOffset(reqSnapOffset.Element, reqSnapOffset.Board, reqSnapOffset.Dx, reqSnapOffset.Dy)
	resp.AddPayload(mc.RespSnapOffset{Dx: dx, Dy: dy})
	return resp
}

func (r Request) HandleFleetState(fleet *mp.Fleet) mc.Message[mc.RespFleetState] {
	resp := mc.NewMessage[mc.RespFleetState](mc.CodeFleetState)
	resp.AddPayload(mc.RespFleetState{
		SelectedShip: fleet.SelectedShip(),
		Ships:        fleet.Snapshot(),
	})
	return resp
}
