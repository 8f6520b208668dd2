package pkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	GameIDLength = 6

	// no 0 or 1
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ23456789"
)

// GenerateGameID - returns a short join code.
func GenerateGameID() string {
	code := make([]byte, GameIDLength)
	limit := big.NewInt(int64(len(gameIDAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic(err)
		}
		code[i] = gameIDAlphabet[n.Int64()]
	}

	return string(code)
}

// IsGameID - reports whether raw could have been produced by GenerateGameID.
func IsGameID(raw string) bool {
	if len(raw) != GameIDLength {
		return false
	}

	for i := 0; i < len(raw); i++ {
		if !strings.ContainsRune(gameIDAlphabet, rune(raw[i])) {
			return false
		}
	}

	return true
}

func GenerateNewID() string {
	return uuid.NewString()
}
