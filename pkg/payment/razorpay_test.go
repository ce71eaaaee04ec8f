package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signCapture(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyCaptureSignature(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret-one")

	sig := signCapture("secret-one", "order_abc", "pay_xyz")
	assert.True(t, g.VerifyCaptureSignature("order_abc", "pay_xyz", sig))
}

func TestVerifyCaptureSignatureRejectsWrongSecret(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret-one")

	sig := signCapture("secret-two", "order_abc", "pay_xyz")
	assert.False(t, g.VerifyCaptureSignature("order_abc", "pay_xyz", sig))
}

func TestVerifyCaptureSignatureRejectsSwappedIDs(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret-one")

	sig := signCapture("secret-one", "order_abc", "pay_xyz")
	assert.False(t, g.VerifyCaptureSignature("pay_xyz", "order_abc", sig))
	assert.False(t, g.VerifyCaptureSignature("order_abc", "pay_other", sig))
}

func TestVerifyCaptureSignatureRejectsFlippedCharacter(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret-one")

	sig := signCapture("secret-one", "order_abc", "pay_xyz")

	flipped := []byte(sig)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}

	assert.False(t, g.VerifyCaptureSignature("order_abc", "pay_xyz", string(flipped)))
	assert.False(t, g.VerifyCaptureSignature("order_abc", "pay_xyz", ""))
}

func TestAsInt64HandlesDecodedJSONNumbers(t *testing.T) {
	assert.Equal(t, int64(25000), asInt64(float64(25000)))
	assert.Equal(t, int64(25000), asInt64(int64(25000)))
	assert.Equal(t, int64(25000), asInt64(int(25000)))
	assert.Equal(t, int64(0), asInt64(nil))
	assert.Equal(t, int64(0), asInt64("25000"))
}
