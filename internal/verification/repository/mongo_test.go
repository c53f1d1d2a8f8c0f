package repository

import (
	"testing"

	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDecisionUpdate_OnlyTouchesDecisionFields(t *testing.T) {
	upd := decisionUpdate(verification.StatusDenied)
	require.Len(t, upd, 2)
	require.Equal(t, bson.M{"status": "denied"}, upd["$set"])
	require.Equal(t, bson.M{"decidedAt": true}, upd["$currentDate"])

	// must be a valid update document for the driver
	_, err := bson.Marshal(upd)
	require.NoError(t, err)
}
