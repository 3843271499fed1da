package tingg

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
)

// EncryptCheckoutRequest encrypts a checkout payload for transport as a URL
// parameter. The derivation mirrors the gateway's reference integration and
// must not change, or the remote end cannot decrypt the request:
//
//	key = first 32 bytes of the hex digest of SHA-256(secret)
//	iv  = first 16 bytes of the hex digest of SHA-256(ivSeed)
//
// The hex digests are used as ASCII key material, not decoded back to raw
// bytes. The AES-256-CBC ciphertext is base64-encoded twice, because the
// reference integration base64-encodes the already-base64 cipher output.
func EncryptCheckoutRequest(ivSeed, secret string, payload CheckoutPayload) (string, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", &CryptoError{Step: "serialize", Err: err}
	}

	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return "", &CryptoError{Step: "key derivation", Err: err}
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, deriveIV(ivSeed)).CryptBlocks(ciphertext, padded)

	inner := base64.StdEncoding.EncodeToString(ciphertext)
	return base64.StdEncoding.EncodeToString([]byte(inner)), nil
}

// DecryptCheckoutRequest reverses EncryptCheckoutRequest and returns the
// original JSON payload bytes.
func DecryptCheckoutRequest(ivSeed, secret, encrypted string) ([]byte, error) {
	inner, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, &CryptoError{Step: "decode", Err: err}
	}
	ciphertext, err := base64.StdEncoding.DecodeString(string(inner))
	if err != nil {
		return nil, &CryptoError{Step: "decode", Err: err}
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, &CryptoError{Step: "decode", Err: errors.New("ciphertext is not a whole number of blocks")}
	}

	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return nil, &CryptoError{Step: "key derivation", Err: err}
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, deriveIV(ivSeed)).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, &CryptoError{Step: "unpad", Err: err}
	}
	return unpadded, nil
}

func deriveKey(secret string) []byte {
	return []byte(hexDigest(secret))[:32]
}

func deriveIV(seed string) []byte {
	return []byte(hexDigest(seed))[:16]
}

func hexDigest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, errors.New("invalid padding")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errors.New("invalid padding")
		}
	}
	return data[:len(data)-padding], nil
}
