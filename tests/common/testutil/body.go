//go:build unit || e2e

// Package testutil turns request DTOs into JSON maps that table tests can
// break one field at a time.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a decoded request body.
type Mutation func(body map[string]any)

// DtoMap round-trips v through JSON so the map keys are the wire names.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, mut := range muts {
		if mut != nil {
			mut(body)
		}
	}
	return body
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) Mutation {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}
