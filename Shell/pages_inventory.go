package Shell

import (
	"context"
	"fmt"
	"strconv"

	"Tractor/Models"
)

func (a *App) newVehiclesPage(ctx context.Context) {
	for {
		if err := a.Inventory.Refresh(ctx); err != nil {
			a.resolveErr(err, "Failed to load vehicles")
			return
		}

		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "--- New Vehicle Inventory ---")
		vehicles := a.Inventory.Vehicles()
		if len(vehicles) == 0 {
			fmt.Fprintln(a.out, "No vehicles in inventory")
		}
		for _, v := range vehicles {
			status := "available"
			if !v.IsAvailable {
				status = "sold"
			}
			fmt.Fprintf(a.out, "  %d: %-24s %-14s %s\n", v.ID, v.Model, rupees(v.Price), status)
		}
		fmt.Fprintln(a.out, "a. Add vehicle   e. Edit vehicle   d. Delete vehicle   b. Back")

		choice, ok := a.prompt("Select")
		if !ok {
			return
		}
		switch choice {
		case "a":
			a.addVehicle(ctx)
		case "e":
			a.editVehicle(ctx)
		case "d":
			a.deleteVehicle(ctx)
		case "b", "":
			return
		default:
			a.Error("Unknown option")
		}
	}
}

func (a *App) addVehicle(ctx context.Context) {
	model, ok := a.prompt("Model")
	if !ok || model == "" {
		a.Error("Model is required")
		return
	}
	price, ok := a.promptPrice("Price")
	if !ok {
		return
	}
	if err := a.Inventory.Add(ctx, model, price); err != nil {
		a.resolveErr(err, "Failed to save vehicle")
		return
	}
	a.Success("Vehicle added successfully")
}

func (a *App) editVehicle(ctx context.Context) {
	id, ok := a.promptID("Vehicle id")
	if !ok {
		return
	}
	// Pre-fill from the selected row so enter keeps the current values.
	current, found := a.Inventory.Find(id)
	if !found {
		a.Error("No such vehicle")
		return
	}
	model := a.promptKeep("Model", current.Model)
	priceRaw := a.promptKeep("Price", strconv.FormatFloat(current.Price, 'f', -1, 64))
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price < 0 {
		a.Error("Price must be a non-negative number")
		return
	}
	if err := a.Inventory.Update(ctx, id, model, price); err != nil {
		a.resolveErr(err, "Failed to save vehicle")
		return
	}
	a.Success("Vehicle updated successfully")
}

func (a *App) deleteVehicle(ctx context.Context) {
	id, ok := a.promptID("Vehicle id")
	if !ok {
		return
	}
	err := a.Inventory.Delete(ctx, id, func(v Models.NewVehicle) bool {
		return a.promptYesNo(fmt.Sprintf("Are you sure you want to delete %q?", v.Model))
	})
	if err != nil {
		a.resolveErr(err, "Failed to delete vehicle")
		return
	}
	a.Success("Vehicle deleted successfully")
}

func (a *App) usedVehiclesPage(ctx context.Context) {
	vehicles, err := a.Inventory.UsedVehicles(ctx)
	if err != nil {
		a.resolveErr(err, "Failed to load used vehicles")
		return
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "--- Used Vehicles (trade-ins) ---")
	if len(vehicles) == 0 {
		fmt.Fprintln(a.out, "No used vehicles taken in yet")
		return
	}
	for _, v := range vehicles {
		addr := v.CustomerAddress.Data()
		fmt.Fprintf(a.out, "  %d: %s %s — from %s (%s), %s, %s — %s on %s\n",
			v.ID, v.Make, v.Model,
			v.CustomerName, v.CustomerPhone,
			addr.City, addr.State,
			rupees(v.PriceTaken),
			v.CreatedAt.Format("2006-01-02"),
		)
	}
}

func (a *App) promptID(label string) (uint, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		a.Error("Invalid id")
		return 0, false
	}
	return uint(id), true
}

func (a *App) promptPrice(label string) (float64, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		a.Error("Price must be a non-negative number")
		return 0, false
	}
	return price, true
}
