package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAcceptsValid(t *testing.T) {
	body := []byte(`{"orderReference":"ord_1","status":"paid"}`)

	if !VerifySignature("whsec_test", body, sign("whsec_test", body)) {
		t.Fatal("expected valid signature to verify")
	}
}

func TestVerifySignatureRejectsTamperedBody(t *testing.T) {
	body := []byte(`{"orderReference":"ord_1","status":"paid"}`)
	signature := sign("whsec_test", body)

	if VerifySignature("whsec_test", []byte(`{"orderReference":"ord_1","status":"failed"}`), signature) {
		t.Fatal("expected tampered body to fail verification")
	}
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	body := []byte(`{}`)

	if VerifySignature("whsec_other", body, sign("whsec_test", body)) {
		t.Fatal("expected wrong secret to fail verification")
	}
}

func TestVerifySignatureRejectsEmpty(t *testing.T) {
	if VerifySignature("", []byte("body"), "sig") {
		t.Fatal("empty secret must never verify")
	}
	if VerifySignature("whsec_test", []byte("body"), "") {
		t.Fatal("empty signature must never verify")
	}
}
