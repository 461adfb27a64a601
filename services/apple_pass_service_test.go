package services

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSigner struct{}

func (stubSigner) Sign(manifest []byte) ([]byte, error) {
	sum := sha1.Sum(manifest)
	return sum[:], nil
}

func newAppleSvc(t *testing.T, env *testEnv, signer ManifestSigner) *ApplePassService {
	t.Helper()
	return NewApplePassService("pass.com.example.loyalty", "TEAM123", "Loyalty", signer,
		env.DB, env.PassRepo, env.PointsRepo, env.UserRepo)
}

func TestGetOrIssueIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	svc := newAppleSvc(t, env, stubSigner{})

	first, err := svc.GetOrIssue(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, first.Serial)
	assert.Len(t, first.AuthToken, 64)

	second, err := svc.GetOrIssue(user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Serial, second.Serial)
}

func TestBuildWithoutSignerFails(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	svc := newAppleSvc(t, env, nil)

	pass, err := svc.GetOrIssue(user.ID)
	require.NoError(t, err)
	_, err = svc.Build(pass)
	assert.ErrorIs(t, err, ErrWalletNotConfigured)
}

func TestBuildProducesConsistentArchive(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	require.NoError(t, env.Points.Earn(env.DB, user.ID, 120, "order", "order", 1))
	svc := newAppleSvc(t, env, stubSigner{})

	pass, err := svc.GetOrIssue(user.ID)
	require.NoError(t, err)
	data, err := svc.Build(pass)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = raw
	}
	for _, name := range []string{"pass.json", "manifest.json", "signature", "icon.png", "icon@2x.png", "logo.png"} {
		assert.Contains(t, files, name)
	}

	var manifest map[string]string
	require.NoError(t, json.Unmarshal(files["manifest.json"], &manifest))
	sum := sha1.Sum(files["pass.json"])
	assert.Equal(t, hex.EncodeToString(sum[:]), manifest["pass.json"])
	// the signature is over the manifest, detached
	sig := sha1.Sum(files["manifest.json"])
	assert.Equal(t, sig[:], files["signature"])

	var passJSON map[string]any
	require.NoError(t, json.Unmarshal(files["pass.json"], &passJSON))
	assert.Equal(t, pass.Serial, passJSON["serialNumber"])
	assert.Equal(t, pass.AuthToken, passJSON["authenticationToken"])
	assert.Equal(t, "pass.com.example.loyalty", passJSON["passTypeIdentifier"])

	card := passJSON["storeCard"].(map[string]any)
	primary := card["primaryFields"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(120), primary["value"])
}

func TestDeviceRegistrationRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	svc := newAppleSvc(t, env, stubSigner{})

	pass, err := svc.GetOrIssue(user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RegisterDevice(pass, "device-1", "push-token-a"))
	// re-registering refreshes the push token instead of duplicating
	require.NoError(t, svc.RegisterDevice(pass, "device-1", "push-token-b"))

	require.NoError(t, svc.Touch(pass))
	serials, err := env.PassRepo.UpdatedSerialsForDevice("device-1", pass.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, []string{pass.Serial}, serials)

	require.NoError(t, svc.UnregisterDevice(pass, "device-1"))
	serials, err = env.PassRepo.UpdatedSerialsForDevice("device-1", pass.CreatedAt)
	require.NoError(t, err)
	assert.Empty(t, serials)
}

// Every ledger write must surface on the updated-serials poll, or devices
// never refresh their balance.
func TestEarnBumpsPassForUpdatedSerialsPoll(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.DB, "ana@example.com")
	svc := newAppleSvc(t, env, stubSigner{})

	pass, err := svc.GetOrIssue(user.ID)
	require.NoError(t, err)
	require.NoError(t, svc.RegisterDevice(pass, "device-1", "push-token-a"))

	since := time.Now()
	serials, err := env.PassRepo.UpdatedSerialsForDevice("device-1", since)
	require.NoError(t, err)
	require.Empty(t, serials)

	require.NoError(t, env.Points.Earn(env.DB, user.ID, 25, "order x", "order", 1))

	serials, err = env.PassRepo.UpdatedSerialsForDevice("device-1", since)
	require.NoError(t, err)
	assert.Equal(t, []string{pass.Serial}, serials)
}
