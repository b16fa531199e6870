package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/myeshop/order-system/shared/events"
	"github.com/pkg/errors"
)

// SNSPublisherAdapter wires an SNS client into the events.Publisher interface
type SNSPublisherAdapter struct {
	snsPublisher *SNSEventPublisher
}

// NewSNSPublisherAdapter creates a new SNS publisher adapter.
// Works against LocalStack when AWS_ENDPOINT_URL is set.
func NewSNSPublisherAdapter(topicArn string) (*SNSPublisherAdapter, error) {
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	snsClient := sns.NewFromConfig(cfg)

	return &SNSPublisherAdapter{
		snsPublisher: NewSNSEventPublisher(snsClient, topicArn),
	}, nil
}

// Publish implements events.Publisher
func (p *SNSPublisherAdapter) Publish(ctx context.Context, evts ...*events.Event) error {
	return p.snsPublisher.Publish(ctx, evts...)
}

// Close closes the publisher
func (p *SNSPublisherAdapter) Close() error {
	// SNS client doesn't need explicit closing
	return nil
}
