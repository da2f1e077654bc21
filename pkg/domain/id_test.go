package domain_test

import (
	"encoding/json"
	"exposure/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDs_JSONUsesCanonicalUUID(t *testing.T) {
	raw := uuid.MustParse("6f1c1b9e-8d0e-4c55-9b7f-3a1f1b2c4d5e")

	b, err := json.Marshal(domain.UserService{
		ID:     domain.ServiceID(raw),
		UserID: domain.UserID(raw),
	})
	require.NoError(t, err)
	require.Contains(t, string(b), `"id":"6f1c1b9e-8d0e-4c55-9b7f-3a1f1b2c4d5e"`)
	require.Contains(t, string(b), `"userId":"6f1c1b9e-8d0e-4c55-9b7f-3a1f1b2c4d5e"`)

	var scan domain.SurfaceScan
	require.NoError(t, json.Unmarshal([]byte(`{"id":"6f1c1b9e-8d0e-4c55-9b7f-3a1f1b2c4d5e"}`), &scan))
	require.Equal(t, domain.ScanID(raw), scan.ID)

	require.Error(t, json.Unmarshal([]byte(`{"id":"nope"}`), &scan))
}
