package certutil_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/effective-security/csrgen/certutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyInfoRSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)

	ki, err := certutil.NewKeyInfo(key)
	require.NoError(t, err)
	assert.Equal(t, "RSA", ki.Type)
	assert.Equal(t, 1024, ki.KeySize)
	assert.True(t, ki.IsPrivate)

	ki, err = certutil.NewKeyInfo(key.Public())
	require.NoError(t, err)
	assert.Equal(t, "RSA", ki.Type)
	assert.Equal(t, 1024, ki.KeySize)
	assert.False(t, ki.IsPrivate)
}

func TestKeyInfoECDSA(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	ki, err := certutil.NewKeyInfo(key)
	require.NoError(t, err)
	assert.Equal(t, "ECDSA", ki.Type)
	assert.Equal(t, 256, ki.KeySize)

	ki, err = certutil.NewKeyInfo(key.Public())
	require.NoError(t, err)
	assert.Equal(t, "ECDSA", ki.Type)
	assert.Equal(t, 256, ki.KeySize)
}

func TestKeyInfoUnsupported(t *testing.T) {
	_, err := certutil.NewKeyInfo("key")
	require.Error(t, err)
	assert.Equal(t, "key not supported: string", err.Error())
}

func TestPublicKeyEqual(t *testing.T) {
	k1, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	k2, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)

	assert.True(t, certutil.PublicKeyEqual(k1.Public(), k1.Public()))
	assert.False(t, certutil.PublicKeyEqual(k1.Public(), k2.Public()))
	assert.False(t, certutil.PublicKeyEqual("k1", k1.Public()))
}
