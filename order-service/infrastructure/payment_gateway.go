package infrastructure

import (
	"context"

	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/gateway"
	"github.com/pkg/errors"
)

// HTTPPaymentGateway dispatches payment commands and queries over the
// payment service's REST API.
type HTTPPaymentGateway struct {
	client  *gateway.Client
	baseURL string
}

// NewHTTPPaymentGateway creates a gateway against the payment service
func NewHTTPPaymentGateway(baseURL string, client *gateway.Client) *HTTPPaymentGateway {
	return &HTTPPaymentGateway{
		client:  client,
		baseURL: baseURL,
	}
}

// FetchDetail queries the stored payment instrument. It returns
// (nil, nil) when the payment service knows no such instrument.
func (g *HTTPPaymentGateway) FetchDetail(ctx context.Context, query contracts.FetchPaymentDetail) (*contracts.PaymentDetail, error) {
	url := g.baseURL + "/payment-details/" + query.PaymentID.String()

	var detail contracts.PaymentDetail
	found, err := g.client.GetJSON(ctx, url, &detail)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch payment detail %s", query.PaymentID)
	}
	if !found {
		return nil, nil
	}
	return &detail, nil
}

// Process charges the order. A 2xx answer without a result token counts
// as an absent result and is returned as (nil, nil).
func (g *HTTPPaymentGateway) Process(ctx context.Context, cmd contracts.ProcessPayment) (*contracts.PaymentResult, error) {
	url := g.baseURL + "/payments"

	var result contracts.PaymentResult
	if err := g.client.PostJSON(ctx, url, cmd, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to process payment for order %s", cmd.OrderID)
	}
	if result.Token == "" {
		return nil, nil
	}
	return &result, nil
}
