package consoledelivery

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/analytics"
	"github.com/go-petr/pet-ledger/internal/codec"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
)

type accountForm struct {
	Name     string `validate:"required"`
	Currency string `validate:"required,currency"`
}

type renameForm struct {
	Name string `validate:"required"`
}

type categoryForm struct {
	Name string `validate:"required"`
	Type string `validate:"required,oneof=income expense universal"`
}

type operationForm struct {
	Type   string `validate:"required,oneof=income expense"`
	Amount string `validate:"required,numeric"`
}

type importForm struct {
	Path   string `validate:"required"`
	Format string `validate:"required,oneof=csv json yaml"`
	Mode   string `validate:"required,oneof=preview replace merge"`
}

type exportForm struct {
	Path   string `validate:"required"`
	Format string `validate:"required,oneof=csv json yaml"`
}

func (h *Handler) listAccounts(ctx context.Context) []domain.Account {
	accounts := h.service.ListAccounts(ctx)
	if len(accounts) == 0 {
		h.printf("No accounts\n")
		return nil
	}

	for _, a := range accounts {
		h.printf("%d | %s | %s | %s\n", a.ID(), a.Name(), a.Currency(), money(a.Balance()))
	}

	return accounts
}

func (h *Handler) listCategories(ctx context.Context) []domain.Category {
	categories := h.service.ListCategories(ctx)
	if len(categories) == 0 {
		h.printf("No categories\n")
		return nil
	}

	for _, c := range categories {
		h.printf("%d | %s | %s\n", c.ID(), c.Name(), c.Type())
	}

	return categories
}

func (h *Handler) accounts(ctx context.Context) error {
	h.printf("--- Accounts ---\n")
	h.listAccounts(ctx)
	h.printf("1. Create account\n2. Rename account\n3. Delete account\n0. Back\n")

	choice, err := h.prompt("Choose: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		name, err := h.prompt("Name: ")
		if err != nil {
			return err
		}

		currency, err := h.prompt(fmt.Sprintf("Currency (blank for %s): ", h.config.DefaultCurrency))
		if err != nil {
			return err
		}

		if currency == "" {
			currency = h.config.DefaultCurrency
		}

		form := accountForm{Name: name, Currency: currencypkg.Normalize(currency)}
		if !h.checkForm(form) {
			return nil
		}

		account, err := h.service.CreateAccount(ctx, form.Name, form.Currency)
		if err != nil {
			h.fail("create account", err)
			return nil
		}

		h.printf("Account %d created\n", account.ID())
	case "2":
		id, ok, err := h.promptID("Account id (blank to cancel): ")
		if err != nil || !ok {
			return err
		}

		name, err := h.prompt("New name: ")
		if err != nil {
			return err
		}

		form := renameForm{Name: name}
		if !h.checkForm(form) {
			return nil
		}

		if _, err := h.service.RenameAccount(ctx, id, form.Name); err != nil {
			h.fail("rename account", err)
			return nil
		}

		h.printf("Account renamed\n")
	case "3":
		id, ok, err := h.promptID("Account id (blank to cancel): ")
		if err != nil || !ok {
			return err
		}

		if err := h.service.DeleteAccount(ctx, id); err != nil {
			h.fail("delete account", err)
			return nil
		}

		h.printf("Account deleted\n")
	}

	return nil
}

func (h *Handler) categories(ctx context.Context) error {
	h.printf("--- Categories ---\n")
	h.listCategories(ctx)
	h.printf("1. Create category\n2. Update category\n3. Delete category\n0. Back\n")

	choice, err := h.prompt("Choose: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		form, err := h.promptCategory()
		if err != nil || !h.checkForm(form) {
			return err
		}

		typ, err := domain.ParseCategoryType(form.Type)
		if err != nil {
			h.fail("create category", err)
			return nil
		}

		category, err := h.service.CreateCategory(ctx, form.Name, typ)
		if err != nil {
			h.fail("create category", err)
			return nil
		}

		h.printf("Category %d created\n", category.ID())
	case "2":
		id, ok, err := h.promptID("Category id (blank to cancel): ")
		if err != nil || !ok {
			return err
		}

		form, err := h.promptCategory()
		if err != nil || !h.checkForm(form) {
			return err
		}

		typ, err := domain.ParseCategoryType(form.Type)
		if err != nil {
			h.fail("update category", err)
			return nil
		}

		if _, err := h.service.UpdateCategory(ctx, id, form.Name, typ); err != nil {
			h.fail("update category", err)
			return nil
		}

		h.printf("Category updated\n")
	case "3":
		id, ok, err := h.promptID("Category id (blank to cancel): ")
		if err != nil || !ok {
			return err
		}

		if err := h.service.DeleteCategory(ctx, id); err != nil {
			h.fail("delete category", err)
			return nil
		}

		h.printf("Category deleted\n")
	}

	return nil
}

func (h *Handler) promptCategory() (categoryForm, error) {
	name, err := h.prompt("Name: ")
	if err != nil {
		return categoryForm{}, err
	}

	typ, err := h.prompt("Type (income/expense/universal): ")
	if err != nil {
		return categoryForm{}, err
	}

	return categoryForm{Name: name, Type: strings.ToLower(typ)}, nil
}

func (h *Handler) operations(ctx context.Context) error {
	h.printf("--- Operations ---\n")

	if len(h.listAccounts(ctx)) == 0 {
		return nil
	}

	accountID, ok, err := h.promptID("Account id (blank to cancel): ")
	if err != nil || !ok {
		return err
	}

	ops := h.service.ListOperationsForAccount(ctx, accountID)
	if len(ops) == 0 {
		h.printf("No operations\n")
	}

	for _, op := range ops {
		h.printf("%d | %s | %s | %s | category %d | %s\n",
			op.ID(), op.Date(), op.Type(), money(op.Amount()), op.CategoryID(), op.Description())
	}

	h.printf("1. Add operation\n2. Delete operation\n3. Recalculate balance\n0. Back\n")

	choice, err := h.prompt("Choose: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return h.addOperation(ctx, accountID)
	case "2":
		id, ok, err := h.promptID("Operation id (blank to cancel): ")
		if err != nil || !ok {
			return err
		}

		if err := h.service.RemoveOperation(ctx, id); err != nil {
			h.fail("delete operation", err)
			return nil
		}

		h.printf("Operation deleted\n")
	case "3":
		account, err := h.service.RecalculateBalance(ctx, accountID)
		if err != nil {
			h.fail("recalculate balance", err)
			return nil
		}

		h.printf("Balance recalculated: %s\n", money(account.Balance()))
	}

	return nil
}

func (h *Handler) addOperation(ctx context.Context, accountID int64) error {
	categories := h.listCategories(ctx)
	if len(categories) == 0 {
		h.printf("Create a category before adding operations\n")
		return nil
	}

	categoryID, ok, err := h.promptID("Category id (blank to cancel): ")
	if err != nil || !ok {
		return err
	}

	var category *domain.Category
	for i := range categories {
		if categories[i].ID() == categoryID {
			category = &categories[i]
		}
	}

	if category == nil {
		h.printf("Category not found\n")
		return nil
	}

	var form operationForm

	switch category.Type() {
	case domain.CategoryIncome:
		form.Type = "income"
	case domain.CategoryExpense:
		form.Type = "expense"
	default:
		typ, err := h.prompt("Type (income/expense): ")
		if err != nil {
			return err
		}

		form.Type = strings.ToLower(typ)
	}

	if form.Amount, err = h.prompt("Amount: "); err != nil {
		return err
	}

	date, err := h.promptDate("Date (dd-MM-yyyy, blank for today): ")
	if err != nil {
		return err
	}

	if date.IsZero() {
		date = h.today()
	}

	description, err := h.prompt("Description: ")
	if err != nil {
		return err
	}

	if !h.checkForm(form) {
		return nil
	}

	typ, err := domain.ParseOperationType(form.Type)
	if err != nil {
		h.fail("add operation", err)
		return nil
	}

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil {
		h.printf("Invalid input: Amount is invalid\n")
		return nil
	}

	op, err := h.service.AddOperation(ctx, domain.OperationParams{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        typ,
		Amount:      amount,
		Date:        date,
		Description: description,
	})
	if err != nil {
		h.fail("add operation", err)
		return nil
	}

	h.printf("Operation %d added\n", op.ID())

	return nil
}

func (h *Handler) analytics(ctx context.Context) error {
	h.printf("--- Analytics ---\n")

	if len(h.listAccounts(ctx)) == 0 {
		return nil
	}

	accountID, ok, err := h.promptID("Account id (blank to cancel): ")
	if err != nil || !ok {
		return err
	}

	var period analytics.Period

	if period.From, err = h.promptDate("From (dd-MM-yyyy, blank for any): "); err != nil {
		return err
	}

	if period.To, err = h.promptDate("To (dd-MM-yyyy, blank for any): "); err != nil {
		return err
	}

	balance, err := h.service.AccountBalance(ctx, accountID)
	if err != nil {
		h.fail("get analytics", err)
		return nil
	}

	h.printf("Balance: %s %s\n", money(balance.Balance), balance.Currency)

	sum, err := h.service.IncomeExpense(ctx, accountID, period)
	if err != nil {
		h.fail("get analytics", err)
		return nil
	}

	h.printf("Income: %s | Expense: %s | Difference: %s\n", money(sum.Income), money(sum.Expense), money(sum.Difference))

	totals, err := h.service.CategoryTotals(ctx, accountID, period)
	if err != nil {
		h.fail("get analytics", err)
		return nil
	}

	h.printf("By category:\n")

	for _, t := range totals {
		h.printf("%s: +%s / -%s = %s\n", t.CategoryName, money(t.Income), money(t.Expense), money(t.Net))
	}

	return nil
}

func (h *Handler) importFile(ctx context.Context) error {
	path, err := h.prompt("File to import (blank to cancel): ")
	if err != nil || path == "" {
		return err
	}

	mode, err := h.prompt("Mode (replace/merge/preview, blank for replace): ")
	if err != nil {
		return err
	}

	if mode == "" {
		mode = ledgerservice.ModeReplace.String()
	}

	form := importForm{
		Path:   path,
		Format: codec.FormatFromPath(path, ""),
		Mode:   strings.ToLower(mode),
	}
	if !h.checkForm(form) {
		return nil
	}

	content, err := os.ReadFile(form.Path)
	if err != nil {
		h.printf("Could not read file: %v\n", err)
		return nil
	}

	m, err := ledgerservice.ParseImportMode(form.Mode)
	if err != nil {
		h.fail("import", err)
		return nil
	}

	s, err := h.service.Import(ctx, form.Format, content, m)
	if err != nil {
		h.fail("import", err)
		return nil
	}

	verb := "Imported"
	if m == ledgerservice.ModePreview {
		verb = "Would import"
	}

	h.printf("%s %d accounts, %d categories, %d operations\n", verb, len(s.Accounts), len(s.Categories), len(s.Operations))

	return nil
}

func (h *Handler) exportFile(ctx context.Context) error {
	path, err := h.prompt("File to write (blank to cancel): ")
	if err != nil || path == "" {
		return err
	}

	format, err := h.prompt("Format (csv/json/yaml, blank to use the extension): ")
	if err != nil {
		return err
	}

	if format == "" {
		format = codec.FormatFromPath(path, h.config.DefaultFormat)
	}

	form := exportForm{Path: path, Format: strings.ToLower(format)}
	if form.Format == "yml" {
		form.Format = codec.FormatYAML
	}

	if !h.checkForm(form) {
		return nil
	}

	content, err := h.service.Export(ctx, form.Format)
	if err != nil {
		h.fail("export", err)
		return nil
	}

	if err := os.WriteFile(form.Path, content, 0o600); err != nil {
		h.printf("Could not write file: %v\n", err)
		return nil
	}

	h.printf("Exported to %s\n", form.Path)

	return nil
}
