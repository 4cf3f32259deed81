package Inventory

import (
	"context"
	"fmt"

	"Tractor/ApiClient"
	"Tractor/Models"
)

// Manager owns the new-vehicle list. Every mutation goes to the server and is
// followed by a full re-fetch; the cached list is never patched locally, so
// what the caller sees is always a server read.
type Manager struct {
	api      *ApiClient.Client
	vehicles []Models.NewVehicle
}

func NewManager(api *ApiClient.Client) *Manager {
	return &Manager{api: api}
}

func (m *Manager) Refresh(ctx context.Context) error {
	vehicles, err := m.api.GetNewVehicles(ctx)
	if err != nil {
		return err
	}
	m.vehicles = vehicles
	return nil
}

func (m *Manager) Vehicles() []Models.NewVehicle {
	return m.vehicles
}

// Available returns the vehicles a sale form may offer.
func (m *Manager) Available() []Models.NewVehicle {
	var available []Models.NewVehicle
	for _, v := range m.vehicles {
		if v.IsAvailable {
			available = append(available, v)
		}
	}
	return available
}

// Find returns the cached vehicle with the given id, for pre-filling the edit
// form from a selected row.
func (m *Manager) Find(id uint) (Models.NewVehicle, bool) {
	for _, v := range m.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Models.NewVehicle{}, false
}

func (m *Manager) Add(ctx context.Context, model string, price float64) error {
	_, err := m.api.AddNewVehicle(ctx, Models.NewVehicle{Model: model, Price: price})
	if err != nil {
		return err
	}
	return m.Refresh(ctx)
}

func (m *Manager) Update(ctx context.Context, id uint, model string, price float64) error {
	_, err := m.api.UpdateNewVehicle(ctx, id, Models.NewVehicle{Model: model, Price: price})
	if err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// Delete is destructive and therefore gated on confirm: the request does not
// fire unless confirm answers true for the targeted vehicle.
func (m *Manager) Delete(ctx context.Context, id uint, confirm func(Models.NewVehicle) bool) error {
	vehicle, ok := m.Find(id)
	if !ok {
		return fmt.Errorf("no vehicle with id %d", id)
	}
	if confirm != nil && !confirm(vehicle) {
		return nil
	}
	if err := m.api.DeleteNewVehicle(ctx, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// UsedVehicles lists the trade-ins. Read-only: rows only ever appear as a
// side effect of exchange sales.
func (m *Manager) UsedVehicles(ctx context.Context) ([]Models.UsedVehicle, error) {
	return m.api.GetUsedVehicles(ctx)
}
