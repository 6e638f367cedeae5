// Package randompkg provides functionality for generating random ledger fixtures.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/pkg/datepkg"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max, both inclusive.
func IntBetween(min, max int) int64 {
	return int64(min) + Intn(max-min+1)
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Name generates a random capitalized account or category name.
func Name() string {
	s := String(8)
	return strings.ToUpper(s[:1]) + s[1:]
}

// MoneyAmountBetween generates a random positive amount between min and max with two decimals.
func MoneyAmountBetween(min, max int) decimal.Decimal {
	cents := IntBetween(min*100, max*100)
	return decimal.New(cents, -2)
}

// Currency generates a random currency code.
func Currency() string {
	currencies := []string{"RUB", "USD", "EUR"}
	return currencies[Intn(len(currencies))]
}

// Date generates a random day of the given year.
func Date(year int) datepkg.Date {
	return datepkg.New(year, time.January, 1).Add(int(Intn(365)))
}
