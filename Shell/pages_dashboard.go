package Shell

import (
	"context"
	"fmt"
	"strings"

	"Tractor/Dashboard"
	"Tractor/Models"
)

func (a *App) dashboardPage(ctx context.Context) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Loading dashboard...")

	switch a.Router.State() {
	case AuthenticatedAdmin:
		view, err := Dashboard.LoadAdmin(ctx, a.Api, a)
		if err != nil {
			a.resolveErr(err, "Failed to load dashboard data")
			return
		}
		a.renderAdminDashboard(view)
	case AuthenticatedSalesManager:
		view, err := Dashboard.LoadSalesManager(ctx, a.Api, a)
		if err != nil {
			a.resolveErr(err, "Failed to load dashboard data")
			return
		}
		a.renderSalesManagerDashboard(view)
	}
}

func (a *App) renderAdminDashboard(view Dashboard.AdminView) {
	if !view.Loaded {
		return
	}
	s := view.Analytics.Sales
	fmt.Fprintln(a.out, "--- Admin Dashboard ---")
	fmt.Fprintf(a.out, "Total revenue: %s\n", rupees(s.Revenue))
	fmt.Fprintf(a.out, "Total sales: %d\n", s.Total)
	fmt.Fprintf(a.out, "New vehicles in stock: %d\n", view.Analytics.Inventory.NewVehicles)
	fmt.Fprintf(a.out, "Used vehicles taken in: %d\n", view.Analytics.Inventory.UsedVehicles)

	if len(s.ByLocation) > 0 {
		fmt.Fprintln(a.out, "Sales by location:")
		for _, row := range s.ByLocation {
			fmt.Fprintf(a.out, "  %-20s %d\n", row.Location, row.Count)
		}
	}
	if len(s.ByMonth) > 0 {
		fmt.Fprintln(a.out, "Sales by month:")
		for _, row := range s.ByMonth {
			fmt.Fprintf(a.out, "  %-10s %3d sales  %s\n", row.Month, row.Count, rupees(row.Revenue))
		}
	}
	if len(s.PaymentStatus) > 0 {
		fmt.Fprintln(a.out, "Payment status:")
		for _, row := range s.PaymentStatus {
			fmt.Fprintf(a.out, "  %-10s %d\n", row.Status, row.Count)
		}
	}

	a.renderAlerts(view.Alerts)
}

func (a *App) renderSalesManagerDashboard(view Dashboard.SalesManagerView) {
	if !view.Loaded {
		return
	}
	fmt.Fprintln(a.out, "--- Sales Dashboard ---")
	if len(view.Sales) == 0 {
		fmt.Fprintln(a.out, "No sales recorded yet")
	} else {
		fmt.Fprintln(a.out, "Recent sales:")
		for _, sale := range view.Sales {
			customer := sale.Customer.Data()
			fmt.Fprintf(a.out, "  #%d %-8s %-20s %s\n",
				sale.ID, sale.SaleType, customer.Name, rupees(sale.TotalAmount))
		}
	}

	a.renderAlerts(view.Alerts)
}

func (a *App) renderAlerts(alerts []Models.PaymentAlert) {
	if len(alerts) == 0 {
		fmt.Fprintln(a.out, "No payment alerts at this time")
		return
	}
	fmt.Fprintln(a.out, "Payment alerts:")
	for _, alert := range alerts {
		fmt.Fprintf(a.out, "  [%s] %s (%s) — %s, %d days since sale, %s\n",
			strings.ToUpper(alert.AlertType),
			alert.Customer.Name,
			alert.Customer.Phone,
			alert.Vehicle.Model,
			alert.DaysSinceSale,
			rupees(alert.TotalAmount),
		)
	}
}

func rupees(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}
