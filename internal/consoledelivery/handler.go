// Package consoledelivery manages the interactive text menu of the ledger.
package consoledelivery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/analytics"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/datepkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/validpkg"
)

// Service provides service layer interface needed by the console handler.
//
//go:generate mockgen -source handler.go -destination handler_mock.go -package consoledelivery
type Service interface {
	CreateAccount(ctx context.Context, name, currency string) (domain.Account, error)
	RenameAccount(ctx context.Context, id int64, name string) (domain.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	ListAccounts(ctx context.Context) []domain.Account

	CreateCategory(ctx context.Context, name string, typ domain.CategoryType) (domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string, typ domain.CategoryType) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) []domain.Category

	AddOperation(ctx context.Context, arg domain.OperationParams) (domain.Operation, error)
	RemoveOperation(ctx context.Context, id int64) error
	ListOperationsForAccount(ctx context.Context, accountID int64) []domain.Operation
	RecalculateBalance(ctx context.Context, accountID int64) (domain.Account, error)

	AccountBalance(ctx context.Context, accountID int64) (analytics.BalanceSummary, error)
	IncomeExpense(ctx context.Context, accountID int64, period analytics.Period) (analytics.IncomeExpenseSummary, error)
	CategoryTotals(ctx context.Context, accountID int64, period analytics.Period) ([]analytics.CategoryTotal, error)

	Import(ctx context.Context, format string, content []byte, mode ledgerservice.ImportMode) (domain.Snapshot, error)
	Export(ctx context.Context, format string) ([]byte, error)
}

// errInputClosed ends the session when the input runs out.
var errInputClosed = errors.New("input closed")

// Handler runs the menu over a line-oriented input and output.
type Handler struct {
	service  Service
	in       *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
	config   configpkg.Config
	today    func() datepkg.Date
}

// New returns a menu handler reading commands from in and writing to out.
func New(service Service, in io.Reader, out io.Writer, config configpkg.Config) *Handler {
	if config.DefaultCurrency == "" {
		config.DefaultCurrency = currencypkg.Default
	}

	return &Handler{
		service:  service,
		in:       bufio.NewScanner(in),
		out:      out,
		validate: currencypkg.NewValidator(),
		config:   config,
		today:    datepkg.Today,
	}
}

const mainMenu = `
=== Ledger ===
1. Accounts
2. Categories
3. Operations
4. Analytics
5. Import
6. Export
0. Exit
`

// Run shows the main menu until the user exits or the input is exhausted.
func (h *Handler) Run(ctx context.Context) error {
	for {
		h.printf("%s", mainMenu)

		choice, err := h.prompt("Choose: ")
		if err != nil {
			return ignoreClosed(err)
		}

		switch choice {
		case "1":
			err = h.accounts(ctx)
		case "2":
			err = h.categories(ctx)
		case "3":
			err = h.operations(ctx)
		case "4":
			err = h.analytics(ctx)
		case "5":
			err = h.importFile(ctx)
		case "6":
			err = h.exportFile(ctx)
		case "0":
			return nil
		default:
			h.printf("Unknown command\n")
		}

		if err != nil {
			return ignoreClosed(err)
		}
	}
}

func ignoreClosed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}

	return err
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

// prompt prints label and returns the next trimmed input line.
func (h *Handler) prompt(label string) (string, error) {
	h.printf("%s", label)

	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}

		return "", errInputClosed
	}

	return strings.TrimSpace(h.in.Text()), nil
}

// promptID reads a positive identifier. An empty line cancels.
func (h *Handler) promptID(label string) (int64, bool, error) {
	for {
		input, err := h.prompt(label)
		if err != nil {
			return 0, false, err
		}

		if input == "" {
			return 0, false, nil
		}

		id, err := strconv.ParseInt(input, 10, 64)
		if err == nil && id > 0 {
			return id, true, nil
		}

		h.printf("Invalid id, try again\n")
	}
}

// promptDate reads an optional date. An empty line returns the zero Date.
func (h *Handler) promptDate(label string) (datepkg.Date, error) {
	for {
		input, err := h.prompt(label)
		if err != nil {
			return datepkg.Date{}, err
		}

		if input == "" {
			return datepkg.Date{}, nil
		}

		d, err := datepkg.Parse(input)
		if err == nil {
			return d, nil
		}

		h.printf("Invalid date, use dd-MM-yyyy\n")
	}
}

// fail reports a service error together with its kind.
func (h *Handler) fail(action string, err error) {
	h.printf("Could not %s (%s): %v\n", action, errorspkg.Kind(err), err)
}

// checkForm validates form and prints every failed field.
func (h *Handler) checkForm(form any) bool {
	err := h.validate.Struct(form)
	if err == nil {
		return true
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		h.printf("Invalid input: %v\n", err)
		return false
	}

	for _, field := range ve {
		h.printf("Invalid input: %s%s\n", field.Field(), validpkg.ErrorMsg(field))
	}

	return false
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.AmountPlaces)
}
