package services

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"

	"backend/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleSaveURL(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	require.NoError(t, env.Points.Earn(env.DB, user.ID, 75, "order", "order", 1))

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	svc := NewGooglePassService("3388000000012345", "loyalty", "svc@project.iam.gserviceaccount.com", key,
		env.DB, env.PassRepo, env.PointsRepo, env.UserRepo)

	url, err := svc.SaveURL(user.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "https://pay.google.com/gp/v/save/"))

	tokenStr := strings.TrimPrefix(url, "https://pay.google.com/gp/v/save/")
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(tk *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)

	assert.Equal(t, "savetowallet", claims["typ"])
	assert.Equal(t, "google", claims["aud"])
	assert.Equal(t, "svc@project.iam.gserviceaccount.com", claims["iss"])

	payload := claims["payload"].(map[string]any)
	objects := payload["loyaltyObjects"].([]any)
	require.Len(t, objects, 1)
	obj := objects[0].(map[string]any)
	assert.Equal(t, "3388000000012345.loyalty", obj["classId"])
	assert.Equal(t, user.Email, obj["accountId"])
	points := obj["loyaltyPoints"].(map[string]any)["balance"].(map[string]any)
	assert.Equal(t, float64(75), points["int"])

	// the same serial is reused on subsequent links
	pass, err := env.PassRepo.GetForUser(user.ID, entity.PassGoogle)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(obj["id"].(string), pass.Serial))
}

func TestGoogleSaveURLWithoutKey(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	svc := NewGooglePassService("", "", "", nil, env.DB, env.PassRepo, env.PointsRepo, env.UserRepo)

	_, err := svc.SaveURL(user.ID)
	assert.ErrorIs(t, err, ErrWalletNotConfigured)
}
