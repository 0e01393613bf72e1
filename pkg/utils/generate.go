package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePNR returns a 6 character record locator drawn from the
// uppercase alphanumeric alphabet used on printed itineraries.
func GeneratePNR() (string, error) {
	var sb strings.Builder
	sb.Grow(6)
	max := big.NewInt(int64(len(pnrAlphabet)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate pnr: %w", err)
		}
		sb.WriteByte(pnrAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// GenerateToken returns a 64 character hex session token.
func GenerateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
