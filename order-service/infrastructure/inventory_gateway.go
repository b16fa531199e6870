package infrastructure

import (
	"context"

	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/gateway"
	"github.com/pkg/errors"
)

// HTTPInventoryGateway dispatches inventory commands over the inventory
// service's REST API.
type HTTPInventoryGateway struct {
	client  *gateway.Client
	baseURL string
}

// NewHTTPInventoryGateway creates a gateway against the inventory service
func NewHTTPInventoryGateway(baseURL string, client *gateway.Client) *HTTPInventoryGateway {
	return &HTTPInventoryGateway{
		client:  client,
		baseURL: baseURL,
	}
}

// Reserve places a hold on stock for one cart item. A non-2xx answer
// (e.g. insufficient stock) surfaces as an error for the saga to branch on.
func (g *HTTPInventoryGateway) Reserve(ctx context.Context, cmd contracts.ReserveProduct) error {
	url := g.baseURL + "/products/" + cmd.ProductID.String() + "/reservations"
	if err := g.client.PostJSON(ctx, url, cmd, nil); err != nil {
		return errors.Wrapf(err, "failed to reserve product %s", cmd.ProductID)
	}
	return nil
}

// Rollback releases a confirmed reservation
func (g *HTTPInventoryGateway) Rollback(ctx context.Context, cmd contracts.RollbackProduct) error {
	url := g.baseURL + "/products/" + cmd.ProductID.String() + "/rollbacks"
	if err := g.client.PostJSON(ctx, url, cmd, nil); err != nil {
		return errors.Wrapf(err, "failed to roll back product %s", cmd.ProductID)
	}
	return nil
}
