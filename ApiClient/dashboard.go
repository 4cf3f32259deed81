package ApiClient

import (
	"context"

	"Tractor/Models"
)

func (c *Client) GetAnalytics(ctx context.Context) (Models.Analytics, error) {
	var analytics Models.Analytics
	err := c.do(ctx, "GET", "/dashboard/analytics", nil, &analytics)
	return analytics, err
}

func (c *Client) GetPaymentAlerts(ctx context.Context) ([]Models.PaymentAlert, error) {
	var alerts []Models.PaymentAlert
	err := c.do(ctx, "GET", "/dashboard/payment-alerts", nil, &alerts)
	return alerts, err
}
