package ollama

import (
	"context"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// model represents the API response for a model from Ollama
type model struct {
	Name       string       `json:"name"`
	Model      string       `json:"model,omitempty"`
	ModifiedAt time.Time    `json:"modified_at"`
	Size       int64        `json:"size,omitempty"`
	Digest     string       `json:"digest,omitempty"`
	Details    ModelDetails `json:"details"`
}

// ModelDetails are the details of the model
type ModelDetails struct {
	ParentModel       string   `json:"parent_model,omitempty"`
	Format            string   `json:"format"`
	Family            string   `json:"family"`
	Families          []string `json:"families"`
	ParameterSize     string   `json:"parameter_size"`
	QuantizationLevel string   `json:"quantization_level"`
}

// listModelsResponse represents the API response for listing models
type listModelsResponse struct {
	Data []model `json:"models"`
}

type versionResponse struct {
	Version string `json:"version"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List all models which have been pulled
func (ollama *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	return ollama.listModels(ctx, "tags")
}

// List models which are loaded into memory
func (ollama *Client) ListRunningModels(ctx context.Context) ([]schema.Model, error) {
	return ollama.listModels(ctx, "ps")
}

// Version returns the version of the ollama server
func (ollama *Client) Version(ctx context.Context) (string, error) {
	var response versionResponse
	if err := ollama.DoWithContext(ctx, nil, &response, client.OptPath("version")); err != nil {
		return "", err
	}
	return response.Version, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (ollama *Client) listModels(ctx context.Context, path string) ([]schema.Model, error) {
	// Send the request
	var response listModelsResponse
	if err := ollama.DoWithContext(ctx, nil, &response, client.OptPath(path)); err != nil {
		return nil, err
	}

	result := make([]schema.Model, len(response.Data))
	for i, m := range response.Data {
		result[i] = m.toSchema()
	}

	// Return models
	return result, nil
}

// toSchema converts an API model response to schema.Model
func (m model) toSchema() schema.Model {
	return schema.Model{
		Name:          m.Name,
		Family:        m.Details.Family,
		ParameterSize: m.Details.ParameterSize,
		Size:          m.Size,
		ModifiedAt:    m.ModifiedAt,
	}
}
