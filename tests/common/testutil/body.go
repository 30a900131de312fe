//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one field of a JSON request body.
type Edit func(map[string]any)

func Set(key string, value any) Edit {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Edit {
	return func(m map[string]any) { delete(m, key) }
}

// BodyMap renders a request DTO as its JSON object so a test can break a
// single field of an otherwise valid body.
func BodyMap(t *testing.T, dto any, edits ...Edit) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}
