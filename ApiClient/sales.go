package ApiClient

import (
	"context"
	"fmt"

	"Tractor/Models"
)

func (c *Client) CreateNormalSale(ctx context.Context, sale Models.Sale) (Models.Sale, error) {
	var created Models.Sale
	err := c.do(ctx, "POST", "/sales/normal", sale, &created)
	return created, err
}

func (c *Client) CreateExchangeSale(ctx context.Context, sale Models.Sale) (Models.Sale, error) {
	var created Models.Sale
	err := c.do(ctx, "POST", "/sales/exchange", sale, &created)
	return created, err
}

// GetSales lists sales, newest first. limit <= 0 means the server default.
func (c *Client) GetSales(ctx context.Context, limit int) ([]Models.Sale, error) {
	path := "/sales"
	if limit > 0 {
		path = fmt.Sprintf("/sales?limit=%d", limit)
	}
	var sales []Models.Sale
	err := c.do(ctx, "GET", path, nil, &sales)
	return sales, err
}

func (c *Client) GetSale(ctx context.Context, id uint) (Models.Sale, error) {
	var sale Models.Sale
	err := c.do(ctx, "GET", fmt.Sprintf("/sales/%d", id), nil, &sale)
	return sale, err
}
