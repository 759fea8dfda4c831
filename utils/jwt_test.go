package utils

import (
	"testing"
	"time"

	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("patient-1", models.RolePatient, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actorID, role, err := ExtractActorFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "patient-1", actorID)
	assert.Equal(t, models.RolePatient, role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("patient-1", models.RolePatient, -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractActorFromToken(token)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, _, err := ExtractActorFromToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenWithUnknownRoleRejected(t *testing.T) {
	token, err := GenerateToken("actor-1", models.ActorRole("superuser"), time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractActorFromToken(token)
	assert.Error(t, err)
}
