package Dashboard

import (
	"context"
	"errors"
	"sync"

	"Tractor/ApiClient"
	"Tractor/Models"
)

// Notifier is the transient-message surface (the toast equivalent).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// AdminView is the admin dashboard data set: platform analytics plus payment
// alerts.
type AdminView struct {
	Analytics Models.Analytics
	Alerts    []Models.PaymentAlert
	Loaded    bool
}

// SalesManagerView is the sales manager data set: the latest sales plus
// payment alerts.
type SalesManagerView struct {
	Sales  []Models.Sale
	Alerts []Models.PaymentAlert
	Loaded bool
}

const recentSalesLimit = 10

const loadFailedMessage = "Failed to load dashboard data"

// LoadAdmin fetches both admin resources concurrently and waits for both to
// settle. If either fails the whole view reports one failure notification and
// comes back in its empty default state; there is no partial rendering.
// A context cancelled by navigating away produces neither. Auth expiry is not
// handled here: it is returned so the shell can tear the session down.
func LoadAdmin(ctx context.Context, api *ApiClient.Client, notify Notifier) (AdminView, error) {
	var (
		wg        sync.WaitGroup
		analytics Models.Analytics
		alerts    []Models.PaymentAlert
		errA      error
		errB      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		analytics, errA = api.GetAnalytics(ctx)
	}()
	go func() {
		defer wg.Done()
		alerts, errB = api.GetPaymentAlerts(ctx)
	}()
	wg.Wait()

	if ctx.Err() != nil {
		return AdminView{}, nil
	}
	if errors.Is(errA, ApiClient.ErrAuthExpired) || errors.Is(errB, ApiClient.ErrAuthExpired) {
		return AdminView{}, ApiClient.ErrAuthExpired
	}
	if errA != nil || errB != nil {
		notify.Error(loadFailedMessage)
		return AdminView{}, nil
	}
	return AdminView{Analytics: analytics, Alerts: alerts, Loaded: true}, nil
}

// LoadSalesManager is the sales manager counterpart of LoadAdmin with the
// same all-or-nothing settling and single-failure policy.
func LoadSalesManager(ctx context.Context, api *ApiClient.Client, notify Notifier) (SalesManagerView, error) {
	var (
		wg     sync.WaitGroup
		sales  []Models.Sale
		alerts []Models.PaymentAlert
		errA   error
		errB   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		sales, errA = api.GetSales(ctx, recentSalesLimit)
	}()
	go func() {
		defer wg.Done()
		alerts, errB = api.GetPaymentAlerts(ctx)
	}()
	wg.Wait()

	if ctx.Err() != nil {
		return SalesManagerView{}, nil
	}
	if errors.Is(errA, ApiClient.ErrAuthExpired) || errors.Is(errB, ApiClient.ErrAuthExpired) {
		return SalesManagerView{}, ApiClient.ErrAuthExpired
	}
	if errA != nil || errB != nil {
		notify.Error(loadFailedMessage)
		return SalesManagerView{}, nil
	}
	return SalesManagerView{Sales: sales, Alerts: alerts, Loaded: true}, nil
}
