// Package codec reads and writes ledger content as CSV, JSON and YAML.
//
// Every format references accounts and categories by name. Amounts are written
// with two fractional digits and dates as dd-MM-yyyy; ISO dates are accepted on
// input. Account balances are written for information and ignored on input.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/snapshot"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Supported format names.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat indicates a format name no codec is registered for.
var ErrUnknownFormat = fmt.Errorf("%w: unknown format", errorspkg.ErrValidation)

// Encoder collects entities as a domain.Visitor and renders them on Bytes.
type Encoder interface {
	domain.Visitor
	Bytes() ([]byte, error)
}

// Codec converts between text content and ledger data.
type Codec interface {
	Format() string
	Decode(content []byte) (snapshot.RawData, error)
	NewEncoder() Encoder
}

// ForFormat returns the codec for name, ignoring case; "yml" is an alias of "yaml".
//
// Accounts decoded without a currency get defaultCurrency, or currencypkg.Default when it is empty.
func ForFormat(name, defaultCurrency string) (Codec, error) {
	if defaultCurrency = currencypkg.Normalize(defaultCurrency); defaultCurrency == "" {
		defaultCurrency = currencypkg.Default
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatCSV:
		return csvCodec{defaultCurrency: defaultCurrency}, nil
	case FormatJSON:
		return jsonCodec{defaultCurrency: defaultCurrency}, nil
	case FormatYAML, "yml":
		return yamlCodec{defaultCurrency: defaultCurrency}, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatFromPath infers the format from the file extension.
//
// It returns fallback when the extension is not a known format.
func FormatFromPath(path, fallback string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case FormatCSV, FormatJSON, FormatYAML:
		return ext
	case "yml":
		return FormatYAML
	}

	return fallback
}

// Encode walks w with a fresh encoder of c and returns the rendered content.
func Encode(c Codec, w snapshot.Walker) ([]byte, error) {
	enc := c.NewEncoder()
	w.Walk(enc)

	return enc.Bytes()
}

// collectingEncoder gathers the visited entities and renders them at once.
type collectingEncoder struct {
	snapshot.Collector
	render func(domain.Snapshot) ([]byte, error)
}

func (e *collectingEncoder) Bytes() ([]byte, error) {
	return e.render(e.Snapshot())
}

func decodeError(format, row string, err error) error {
	return fmt.Errorf("%w: %s: %s: %v", errorspkg.ErrValidation, format, row, err)
}
