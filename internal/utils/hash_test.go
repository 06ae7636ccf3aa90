// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashContent(t *testing.T) {
	data := []byte("<backup/>")

	sum1 := HashContent(data)
	sum2 := HashContent(data)

	if sum1 != sum2 {
		t.Fatal("hash must be deterministic for the same input")
	}

	expected := sha256.Sum256(data)
	if sum1 != hex.EncodeToString(expected[:]) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %s", expected, sum1)
	}

	if HashContent([]byte("<backup></backup>")) == sum1 {
		t.Fatal("different input must produce different hash")
	}
}

func TestHashContent_Empty(t *testing.T) {
	// sha256 of the empty string
	const want = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := HashContent(nil); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestSignParams_SortsKeys(t *testing.T) {
	params := map[string]string{
		"method":  "photos.getInfo",
		"api_key": "key",
		"format":  "json",
	}

	raw := "secret" + "api_key" + "key" + "format" + "json" + "method" + "photos.getInfo"
	sum := md5.Sum([]byte(raw))

	if got := SignParams("secret", params); got != hex.EncodeToString(sum[:]) {
		t.Fatalf("unexpected signature %s", got)
	}
}

func TestSignParams_SecretChangesSignature(t *testing.T) {
	params := map[string]string{"a": "1"}
	if SignParams("one", params) == SignParams("two", params) {
		t.Fatal("signature must depend on the secret")
	}
}
