// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-fips-indicator.
//
// go-fips-indicator is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package selfcheck performs live cryptographic operations and reports the
// service indicator verdict for each. It exists to demonstrate, end to end,
// that the snapshot protocol composes with real primitives; it is not a
// known-answer test and proves nothing about the primitives themselves.
//
// The Verify calls after each operation stand in for the instrumentation a
// cryptographic library embeds in its own primitives.
package selfcheck

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/jeremyhahn/go-fips-indicator/pkg/indicator"
	"github.com/jeremyhahn/go-fips-indicator/pkg/types"
)

// Result is the indicator verdict for one live operation.
type Result struct {
	// Name describes the operation performed.
	Name string `json:"name"`

	// Approved is true when the approval counter advanced across the
	// operation. In non-validated builds every operation is approved.
	Approved bool `json:"approved"`
}

type operation struct {
	name string
	run  func() error
}

// Run executes every selfcheck operation in order and returns one Result
// per operation. It stops at the first operational failure; indicator
// verdicts, including not-approved ones, are never failures.
func Run() ([]Result, error) {
	results := make([]Result, 0, len(operations))
	for _, op := range operations {
		before := indicator.BeforeCall()
		if err := op.run(); err != nil {
			return results, fmt.Errorf("selfcheck %s: %w", op.name, err)
		}
		results = append(results, Result{
			Name:     op.name,
			Approved: indicator.Approved(before, indicator.AfterCall()),
		})
	}
	return results, nil
}

var operations = []operation{
	{"AES-256-GCM seal", func() error { return sealGCM(32) }},
	{"AES-192-GCM seal", func() error { return sealGCM(24) }},
	{"AES-256-CBC encrypt", encryptCBC},
	{"AES-128-CTR keystream", keystreamCTR},
	{"HMAC-SHA-256", func() error { return computeHMAC(crypto.SHA256) }},
	{"HMAC-SHA-1", func() error { return computeHMAC(crypto.SHA1) }},
	{"EC P-384 key generation", generateECKey},
	{"ECDH P-256 key agreement", agreeECDH},
	{"ECDSA P-256 sign (SHA-256)", signECDSA},
	{"RSA 2048 key generation and PSS sign (SHA-256)", signRSAPSS},
	{"TLS 1.2 KDF (HKDF composite)", deriveCompositeKDF},
}

func sealGCM(keyLength int) error {
	key := make([]byte, keyLength)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	_ = aead.Seal(nil, nonce, []byte("service indicator selfcheck"), nil)
	indicator.VerifyAEADGCM(keyLength)
	return nil
}

func encryptCBC() error {
	key := make([]byte, 32)
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	if _, err := rand.Read(iv); err != nil {
		return err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	plaintext := make([]byte, aes.BlockSize*2)
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)
	indicator.VerifyCipher(types.CipherAES256CBC)
	return nil
}

func keystreamCTR() error {
	key := make([]byte, 16)
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	out := make([]byte, 64)
	cipher.NewCTR(block, iv).XORKeyStream(out, out)
	indicator.VerifyCipher(types.CipherAES128CTR)
	return nil
}

func computeHMAC(digest crypto.Hash) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	var mac = hmac.New(sha256.New, key)
	if digest == crypto.SHA1 {
		mac = hmac.New(sha1.New, key)
	}
	mac.Write([]byte("service indicator selfcheck"))
	_ = mac.Sum(nil)
	indicator.VerifyHMAC(digest)
	return nil
}

func generateECKey() error {
	if _, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader); err != nil {
		return err
	}
	indicator.VerifyECKeyGen(types.CurveP384)
	return nil
}

func agreeECDH() error {
	alice, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	bob, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	if _, err := alice.ECDH(bob.PublicKey()); err != nil {
		return err
	}
	indicator.VerifyECDH(types.CurveP256)
	return nil
}

func signECDSA() error {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return err
	}
	digest := sha256.Sum256([]byte("service indicator selfcheck"))
	if _, err := ecdsa.SignASN1(rand.Reader, key, digest[:]); err != nil {
		return err
	}
	indicator.VerifyDigestSign(&indicator.SignatureContext{
		Digest:  crypto.SHA256,
		KeyType: types.KeyTypeEC,
		Curve:   types.CurveP256,
	})
	return nil
}

func signRSAPSS() error {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return err
	}
	indicator.VerifyKeyGen(&indicator.KeyContext{
		Type: types.KeyTypeRSA,
		Size: key.Size(),
	})

	digest := sha256.Sum256([]byte("service indicator selfcheck"))
	opts := &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: crypto.SHA256}
	if _, err := rsa.SignPSS(rand.Reader, key, crypto.SHA256, digest[:], opts); err != nil {
		return err
	}
	indicator.VerifyDigestSign(&indicator.SignatureContext{
		Digest:          crypto.SHA256,
		KeyType:         types.KeyTypeRSAPSS,
		KeySize:         key.Size(),
		SignatureDigest: crypto.SHA256,
		Padding:         types.PaddingPSS,
		SaltLength:      indicator.PSSSaltLengthDigest,
		MGF1Digest:      crypto.SHA256,
	})
	return nil
}

// deriveCompositeKDF derives TLS 1.2 key material with HKDF-SHA-256 and
// reports it as one composite operation: the per-block HMAC signals are
// suppressed inside the bracket and only the outer KDF check advances the
// counter.
func deriveCompositeKDF() error {
	secret := make([]byte, 32)
	salt := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return err
	}
	if _, err := rand.Read(salt); err != nil {
		return err
	}

	indicator.Lock()
	kdf := hkdf.New(sha256.New, secret, salt, []byte("key expansion"))
	keyMaterial := make([]byte, 96)
	if _, err := io.ReadFull(kdf, keyMaterial); err != nil {
		indicator.Unlock()
		return err
	}
	// One HMAC invocation per expanded block.
	for i := 0; i < len(keyMaterial)/sha256.Size; i++ {
		indicator.VerifyHMAC(crypto.SHA256)
	}
	indicator.Unlock()

	indicator.VerifyTLSKDF(crypto.SHA256)
	return nil
}
