package jwtx_test

import (
	"testing"
	"time"

	"github.com/caffeinepub/task-queue/pkg/cryptox"
	"github.com/caffeinepub/task-queue/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "task-queue-backend"

func newSigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newSigner(t, "origin-key")
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "origin-key", signer.KID())

	claims := jwtx.NewOriginClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "browser", 5*time.Minute,
		exampleIssuer, []string{"backend"}, time.Now().UTC())

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	keyset := jwtx.NewKeySet()
	require.False(t, keyset.IsReady())
	require.NoError(t, keyset.AddSigner(signer))
	require.True(t, keyset.IsReady())

	parsed, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, []string{"backend"}).Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, claims.Label, parsed.Label)
	require.Equal(t, claims.ID, parsed.ID)
	require.ElementsMatch(t, claims.Audience, parsed.Audience)
}

func TestEdDSAVerifyFailures(t *testing.T) {
	signer := newSigner(t, "k1")
	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	sign := func(c jwtx.Claims) string {
		token, err := signer.Sign(c)
		require.NoError(t, err)
		return token
	}
	now := time.Now().UTC()

	t.Run("wrong issuer", func(t *testing.T) {
		token := sign(jwtx.NewOriginClaims("o", "", time.Minute, exampleIssuer, nil, now))
		_, err := jwtx.NewVerifierEdDSA(keyset, "wrong-issuer", nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(jwtx.NewOriginClaims("o", "", time.Minute, exampleIssuer, nil, now.Add(-time.Hour)))
		_, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("unknown key", func(t *testing.T) {
		other := newSigner(t, "k2")
		token, err := other.Sign(jwtx.NewOriginClaims("o", "", time.Minute, exampleIssuer, nil, now))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("other algorithm", func(t *testing.T) {
		c := jwtx.NewOriginClaims("o", "", time.Minute, exampleIssuer, nil, now)
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
		tok.Header["kid"] = "k1"
		raw, err := tok.SignedString([]byte("shared-secret"))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(raw)
		require.Error(t, err)
	})
}

func TestEdDSARejectsInvalidPEM(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("test", []byte("not-a-pem-key"))
	require.ErrorContains(t, err, "invalid PEM")
}

func TestEdDSACommonVerifierAdapter(t *testing.T) {
	signer := newSigner(t, "adapter")
	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	token, err := signer.Sign(jwtx.NewOriginClaims("origin-9", "", time.Minute, exampleIssuer, nil, time.Now().UTC()))
	require.NoError(t, err)

	var v jwtx.Verifier = jwtx.NewCommonEdDSA(keyset, exampleIssuer, nil)
	claims, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "origin-9", claims.Subject)
}
