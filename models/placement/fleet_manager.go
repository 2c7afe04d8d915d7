package placement

import (
	"sync"

	"github.com/google/uuid"

	cerr "github.com/saeidalz13/armada-backend/internal/error"
)

type FleetManager interface {
	CreateFleet() (string, *Fleet)
	GetFleet(fleetUuid string) (*Fleet, error)
	TerminateFleet(fleetUuid string)
}

type ArmadaFleetManager struct {
	fleets map[string]*Fleet
	mu     sync.RWMutex
}

var _ FleetManager = (*ArmadaFleetManager)(nil)

func NewArmadaFleetManager() *ArmadaFleetManager {
	return &ArmadaFleetManager{
		fleets: make(map[string]*Fleet, 10),
	}
}

func (afm *ArmadaFleetManager) CreateFleet() (string, *Fleet) {
	fleetUuid := uuid.NewString()[:6]
	fleet := NewStandardFleet()

	afm.mu.Lock()
	afm.fleets[fleetUuid] = fleet
	afm.mu.Unlock()

	return fleetUuid, fleet
}

func (afm *ArmadaFleetManager) GetFleet(fleetUuid string) (*Fleet, error) {
	afm.mu.RLock()
	fleet, prs := afm.fleets[fleetUuid]
	afm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrFleetNotExists(fleetUuid)
	}

	return fleet, nil
}

func (afm *ArmadaFleetManager) TerminateFleet(fleetUuid string) {
	afm.mu.Lock()
	delete(afm.fleets, fleetUuid)
	afm.mu.Unlock()
}
