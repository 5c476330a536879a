package httpclient

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Info returns the service information
func (c *Client) Info(ctx context.Context) (*schema.ServiceInfo, error) {
	var response schema.ServiceInfo
	if err := c.DoWithContext(ctx, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Health returns the health of the model runtime, or an error if the server
// reports it is unavailable
func (c *Client) Health(ctx context.Context) (*schema.HealthResponse, error) {
	var response schema.HealthResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("health")); err != nil {
		return nil, err
	}
	return &response, nil
}
