package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "taskhub"

func testSecret(b byte) []byte {
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = b
	}
	return secret
}

func newPair(t *testing.T) (*HS256Signer, *HS256Verifier) {
	t.Helper()
	signer, err := NewSignerHS256(testSecret('k'))
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret('k'), testIssuer)
	require.NoError(t, err)
	return signer, verifier
}

func TestSignVerify_Roundtrip(t *testing.T) {
	t.Parallel()
	signer, verifier := newPair(t)

	now := time.Now().UTC()
	claims := NewAccessClaims("user-123", "alice@example.com", testIssuer, 30*time.Minute, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "compact JWS has three segments")

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, testIssuer, got.Issuer)
	require.WithinDuration(t, now.Add(30*time.Minute), got.ExpiresAt.Time, 2*time.Second)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()
	signer, verifier := newPair(t)

	// Issued two hours ago with a 30m TTL: exp is firmly in the past even
	// though the signature is perfectly valid.
	claims := NewAccessClaims("user-123", "", testIssuer, 30*time.Minute, time.Now().UTC().Add(-2*time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()
	signer, verifier := newPair(t)

	token, err := signer.Sign(NewAccessClaims("user-123", "", testIssuer, time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	last := token[len(token)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	tampered := token[:len(token)-1] + string(flip)

	_, err = verifier.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_TruncatedToken(t *testing.T) {
	t.Parallel()
	signer, verifier := newPair(t)

	token, err := signer.Sign(NewAccessClaims("user-123", "", testIssuer, time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token[:len(token)-1])
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()
	signer, _ := newPair(t)
	other, err := NewVerifierHS256(testSecret('x'), testIssuer)
	require.NoError(t, err)

	token, err := signer.Sign(NewAccessClaims("user-123", "", testIssuer, time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()
	_, verifier := newPair(t)

	claims := NewAccessClaims("user-123", "", testIssuer, time.Minute, time.Now().UTC())

	// HS384 signed with the same secret: the MAC itself would check out,
	// but the verifier pins HS256 and must refuse to negotiate.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	signed, err := tok.SignedString(testSecret('k'))
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, ErrAlgMismatch)

	// alg=none is never acceptable.
	noneTok := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := noneTok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(unsigned)
	require.ErrorIs(t, err, ErrAlgMismatch)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()
	_, verifier := newPair(t)

	for _, tokenStr := range []string{"", "garbage", "a.b", "a.b.c.d", "not==.base64.either"} {
		_, err := verifier.Verify(tokenStr)
		require.ErrorIs(t, err, ErrMalformed, "token %q", tokenStr)
	}
}

func TestVerify_IssuerMismatch(t *testing.T) {
	t.Parallel()
	signer, verifier := newPair(t)

	token, err := signer.Sign(NewAccessClaims("user-123", "", "someone-else", time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestNewSignerHS256_ShortSecret(t *testing.T) {
	t.Parallel()
	_, err := NewSignerHS256([]byte("too-short"))
	require.Error(t, err)
	_, err = NewVerifierHS256([]byte("too-short"), testIssuer)
	require.Error(t, err)
}
