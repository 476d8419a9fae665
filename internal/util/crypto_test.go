package util

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptAES_RoundTrip(t *testing.T) {
	key := "clave-de-respaldo"
	plain := []byte(`{"writings":[{"title":"Mi poema"}]}`)

	enc, err := EncryptAES(key, plain)
	if err != nil {
		t.Fatalf("EncryptAES: %v", err)
	}
	if bytes.Equal(enc, plain) {
		t.Error("ciphertext equals plaintext")
	}

	dec, err := DecryptAES(key, enc)
	if err != nil {
		t.Fatalf("DecryptAES: %v", err)
	}
	if !bytes.Equal(dec, plain) {
		t.Errorf("round trip mismatch: got %q, want %q", dec, plain)
	}
}

func TestDecryptAES_WrongKey(t *testing.T) {
	enc, err := EncryptAES("key-one", []byte("secreto"))
	if err != nil {
		t.Fatalf("EncryptAES: %v", err)
	}

	if _, err := DecryptAES("key-two", enc); err == nil {
		t.Error("DecryptAES with wrong key should fail")
	}
}

func TestDecryptAES_TooShort(t *testing.T) {
	if _, err := DecryptAES("key", []byte{0x01, 0x02}); err == nil {
		t.Error("DecryptAES on truncated input should fail")
	}
}

func TestEncryptAES_NonDeterministic(t *testing.T) {
	key := "key"
	plain := []byte("mismo texto")

	a, err := EncryptAES(key, plain)
	if err != nil {
		t.Fatalf("EncryptAES: %v", err)
	}
	b, err := EncryptAES(key, plain)
	if err != nil {
		t.Fatalf("EncryptAES: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two encryptions produced identical output (nonce reuse?)")
	}
}
