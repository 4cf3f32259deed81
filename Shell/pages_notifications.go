package Shell

import (
	"context"
	"fmt"

	"Tractor/Reports"
)

func (a *App) notificationsPage(ctx context.Context) {
	notifications, err := a.Api.GetNotifications(ctx)
	if err != nil {
		a.resolveErr(err, "Failed to load notifications")
		return
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "--- Notifications ---")
	if len(notifications) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return
	}
	for _, n := range notifications {
		marker := "*"
		if n.IsRead {
			marker = " "
		}
		fmt.Fprintf(a.out, " %s %d: %s — %s (%s)\n",
			marker, n.ID, n.Title, n.Message, n.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out, "r. Mark one read   A. Mark all read   b. Back")

	choice, ok := a.prompt("Select")
	if !ok {
		return
	}
	switch choice {
	case "r":
		id, ok := a.promptID("Notification id")
		if !ok {
			return
		}
		if err := a.Api.MarkNotificationRead(ctx, id); err != nil {
			a.resolveErr(err, "Failed to update notification")
			return
		}
		a.Success("Marked as read")
	case "A":
		if err := a.Api.MarkAllNotificationsRead(ctx); err != nil {
			a.resolveErr(err, "Failed to update notifications")
			return
		}
		a.Success("All notifications marked as read")
	}
}

func (a *App) reportsPage(ctx context.Context) {
	sales, err := a.Api.GetSales(ctx, 0)
	if err != nil {
		a.resolveErr(err, "Failed to load sales")
		return
	}
	path, ok := a.prompt("Output file [sales_register.xlsx]")
	if !ok {
		return
	}
	if path == "" {
		path = "sales_register.xlsx"
	}
	if err := Reports.ExportSales(sales, path); err != nil {
		a.Error("Failed to write report: " + err.Error())
		return
	}
	a.Success(fmt.Sprintf("Exported %d sales to %s", len(sales), path))
}
