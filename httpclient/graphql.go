package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/commercekit/commercekit/errors"
)

// GraphQLRequest is the standard GraphQL POST envelope.
type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// Query posts a GraphQL request to path and decodes the data field into T.
// GraphQL-level errors are reported as UPSTREAM errors: the transport
// succeeded, the backend rejected the operation.
func Query[T any](ctx context.Context, c *Client, path, query string, variables map[string]any) (T, error) {
	var out T

	resp, err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   GraphQLRequest{Query: query, Variables: variables},
	})
	if err != nil {
		return out, err
	}

	var envelope graphQLResponse
	if err := resp.Decode(&envelope); err != nil {
		return out, errors.Network(err)
	}

	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		return out, errors.Upstream(resp.StatusCode, strings.Join(msgs, "; "))
	}

	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &out); err != nil {
			return out, errors.Network(err)
		}
	}
	return out, nil
}
