package ai

import (
	"context"
	"errors"
	"strings"
)

var ErrMissingAPIKey = errors.New("missing API key")

// ListAvailableModels asks the service which models the client's credential
// can see. Any failure yields an empty list.
func ListAvailableModels(ctx context.Context, client ChatClient) []string {
	list, err := client.ListModels(ctx)
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		if m.ID != "" {
			names = append(names, m.ID)
		}
	}
	return names
}

// AvailableModels runs the model listing diagnostic for apiKey.
func (g *Generator) AvailableModels(ctx context.Context, apiKey string) ([]string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := g.newClient(apiKey)
	if err != nil {
		return nil, err
	}
	return ListAvailableModels(ctx, client), nil
}
