package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}

	return hex.EncodeToString(bytes)[:length]
}

func RandomInt(minVal, maxVal int64) int64 {
	if minVal >= maxVal {
		return minVal
	}

	n, err := rand.Int(rand.Reader, big.NewInt(maxVal-minVal+1))
	if err != nil {
		return minVal
	}

	return n.Int64() + minVal
}

// RandomSteamID produces a plausible 64-bit Steam id for test fixtures.
func RandomSteamID() string {
	return fmt.Sprintf("7656119%09d", RandomInt(0, 999999999))
}

// RandomTradeURL produces a plausible Steam trade offer URL.
func RandomTradeURL() string {
	return fmt.Sprintf(
		"https://steamcommunity.com/tradeoffer/new/?partner=%d&token=%s",
		RandomInt(100000000, 999999999),
		RandomString(8),
	)
}
