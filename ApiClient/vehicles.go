package ApiClient

import (
	"context"
	"fmt"

	"Tractor/Models"
)

func (c *Client) GetNewVehicles(ctx context.Context) ([]Models.NewVehicle, error) {
	var vehicles []Models.NewVehicle
	err := c.do(ctx, "GET", "/vehicles/new", nil, &vehicles)
	return vehicles, err
}

func (c *Client) AddNewVehicle(ctx context.Context, vehicle Models.NewVehicle) (Models.NewVehicle, error) {
	var created Models.NewVehicle
	err := c.do(ctx, "POST", "/vehicles/new", vehicle, &created)
	return created, err
}

func (c *Client) UpdateNewVehicle(ctx context.Context, id uint, vehicle Models.NewVehicle) (Models.NewVehicle, error) {
	var updated Models.NewVehicle
	err := c.do(ctx, "PUT", fmt.Sprintf("/vehicles/new/%d", id), vehicle, &updated)
	return updated, err
}

func (c *Client) DeleteNewVehicle(ctx context.Context, id uint) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/vehicles/new/%d", id), nil, nil)
}

func (c *Client) GetUsedVehicles(ctx context.Context) ([]Models.UsedVehicle, error) {
	var vehicles []Models.UsedVehicle
	err := c.do(ctx, "GET", "/vehicles/used", nil, &vehicles)
	return vehicles, err
}
