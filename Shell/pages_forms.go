package Shell

import (
	"context"
	"fmt"
	"sort"

	"Tractor/Forms"
	"Tractor/Models"
)

func (a *App) normalSalePage(ctx context.Context) {
	if !a.loadVehicleChoices(ctx) {
		return
	}

	form := &Forms.NormalSaleForm{}
	for {
		a.fillSaleDetails(&form.SaleDetails, form.Recalculate)
		form.Recalculate()
		fmt.Fprintf(a.out, "Total amount (auto-calculated): %s\n", rupees(form.TotalAmount))

		if !a.formValid(form.Validate()) {
			if a.promptYesNo("Correct the highlighted fields?") {
				continue
			}
			return
		}

		sale, err := form.Sale()
		if err != nil {
			a.Error("Could not prepare the sale: " + err.Error())
			return
		}
		_, err = a.Api.CreateNormalSale(ctx, sale)
		if err != nil {
			// Inputs stay in the form; nothing typed is lost on failure.
			a.resolveErr(err, "Failed to record sale")
			if a.keepDraft(err) && a.promptYesNo("Edit and resubmit?") {
				continue
			}
			return
		}
		a.Success("Sale recorded successfully!")
		return
	}
}

func (a *App) exchangeSalePage(ctx context.Context) {
	if !a.loadVehicleChoices(ctx) {
		return
	}

	form := &Forms.ExchangeSaleForm{}
	for {
		a.fillSaleDetails(&form.SaleDetails, form.Recalculate)
		a.fillUsedVehicle(&form.UsedVehicle, form.Recalculate)
		form.Recalculate()
		fmt.Fprintf(a.out, "Total amount after trade-in (auto-calculated): %s\n", rupees(form.TotalAmount))

		if !a.formValid(form.Validate()) {
			if a.promptYesNo("Correct the highlighted fields?") {
				continue
			}
			return
		}

		sale, err := form.Sale()
		if err != nil {
			a.Error("Could not prepare the sale: " + err.Error())
			return
		}
		_, err = a.Api.CreateExchangeSale(ctx, sale)
		if err != nil {
			a.resolveErr(err, "Failed to record sale")
			if a.keepDraft(err) && a.promptYesNo("Edit and resubmit?") {
				continue
			}
			return
		}
		a.Success("Sale recorded successfully!")
		return
	}
}

// loadVehicleChoices refreshes the inventory and lists what a sale may
// reference. Only available vehicles are offered.
func (a *App) loadVehicleChoices(ctx context.Context) bool {
	if err := a.Inventory.Refresh(ctx); err != nil {
		a.resolveErr(err, "Failed to load vehicles")
		return false
	}
	available := a.Inventory.Available()
	if len(available) == 0 {
		a.Error("No vehicles available for sale")
		return false
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Available vehicles:")
	for _, v := range available {
		fmt.Fprintf(a.out, "  %d: %s — %s\n", v.ID, v.Model, rupees(v.Price))
	}
	return true
}

// fillSaleDetails walks the shared fields. Pressing enter keeps the current
// value, so corrections never require retyping the whole form. recalc runs
// after every field that feeds the total.
func (a *App) fillSaleDetails(d *Forms.SaleDetails, recalc func() float64) {
	d.Location = a.promptKeep("Location (Thanjavur/Mayiladuthurai)", d.Location)
	d.DeliveryDate = a.promptKeep("Delivery date (YYYY-MM-DD)", d.DeliveryDate)
	d.Salesman = a.promptKeep("Salesman", d.Salesman)
	d.CustomerName = a.promptKeep("Customer name", d.CustomerName)
	d.CustomerPhone = a.promptKeep("Customer phone", d.CustomerPhone)
	a.fillAddress(&d.CustomerAddress)
	d.VehicleID = a.promptKeep("Vehicle id", d.VehicleID)
	d.C2CPrice = a.promptKeep("C2C price", d.C2CPrice)
	d.Discount = a.promptKeep("Discount amount", d.Discount)

	d.DownPayment = a.promptKeep("Down payment", d.DownPayment)
	fmt.Fprintf(a.out, "  running total: %s\n", rupees(recalc()))

	d.HasLoan = a.promptYesNo("Loan required?")
	if d.HasLoan {
		d.FinanceCompany = a.promptKeep("Finance company", d.FinanceCompany)
		d.LoanAmount = a.promptKeep("Loan amount", d.LoanAmount)
	}
	fmt.Fprintf(a.out, "  running total: %s\n", rupees(recalc()))

	d.Mas = a.promptYesNo("MAS?")
	d.DocCharge = a.promptKeep("Document charge", d.DocCharge)
	fmt.Fprintf(a.out, "  running total: %s\n", rupees(recalc()))
}

func (a *App) fillUsedVehicle(u *Forms.UsedVehicleFields, recalc func() float64) {
	fmt.Fprintln(a.out, "Trade-in vehicle details:")
	u.Make = a.promptKeep("Make", u.Make)
	u.Model = a.promptKeep("Model", u.Model)
	u.CustomerName = a.promptKeep("Previous owner name", u.CustomerName)
	u.CustomerPhone = a.promptKeep("Previous owner phone", u.CustomerPhone)
	a.fillAddress(&u.CustomerAddress)
	u.PriceTaken = a.promptKeep("Price taken", u.PriceTaken)
	fmt.Fprintf(a.out, "  running total: %s\n", rupees(recalc()))
}

func (a *App) fillAddress(addr *Models.Address) {
	addr.FlatNo = a.promptKeep("Flat no (optional)", addr.FlatNo)
	addr.Street = a.promptKeep("Street (optional)", addr.Street)
	addr.District = a.promptKeep("District (optional)", addr.District)
	addr.City = a.promptKeep("City (optional)", addr.City)
	addr.State = a.promptKeep("State (optional)", addr.State)
}

// formValid prints the field errors in a stable order and reports whether the
// form may be submitted.
func (a *App) formValid(errs Forms.Errors) bool {
	if len(errs) == 0 {
		return true
	}
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", field, errs[field])
	}
	return false
}

// keepDraft: a failed submission keeps the draft for correction unless the
// session itself expired, in which case the Run loop goes back to login.
func (a *App) keepDraft(err error) bool {
	return a.Router.State() != Unauthenticated && err != nil
}

func (a *App) promptKeep(label string, current string) string {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	value, ok := a.prompt(label)
	if !ok || value == "" {
		return current
	}
	return value
}
