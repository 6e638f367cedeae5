package ledgerapp

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/analytics"
	"github.com/go-petr/pet-ledger/internal/consoledelivery"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/internal/report"
	"github.com/go-petr/pet-ledger/pkg/datepkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// shellCmd runs the interactive menu.
type shellCmd struct {
	app    *App
	input  string
	format string
	save   string
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the ledger through an interactive menu" }
func (*shellCmd) Usage() string {
	return `ledger shell [-import <file>] [-format <csv|json|yaml>] [-save <file>]

  Starts the interactive menu. The ledger is optionally loaded from a file
  first and written back to a file on exit. An empty ledger is seeded with
  the configured categories.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "import", "", "file to load before starting")
	f.StringVar(&c.format, "format", "", "format of the -import file, taken from its extension by default")
	f.StringVar(&c.save, "save", "", "file to write the ledger to on exit")
}

func (c *shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx = c.app.Context(ctx)

	if c.input != "" {
		if _, err := c.app.Load(ctx, c.input, c.format, ledgerservice.ModeReplace); err != nil {
			c.app.errorf("Error loading %s: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
	}

	seeds, err := c.app.Config.Seeds()
	if err != nil {
		c.app.errorf("Error reading seed categories: %v\n", err)
		return subcommands.ExitFailure
	}

	if _, err := c.app.Service.Seed(ctx, seeds); err != nil {
		c.app.errorf("Error seeding categories: %v\n", err)
		return subcommands.ExitFailure
	}

	h := consoledelivery.New(c.app.Service, c.app.Stdin, c.app.Stdout, c.app.Config)
	if err := h.Run(ctx); err != nil {
		c.app.errorf("Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.save != "" {
		if err := c.app.Save(ctx, c.save, ""); err != nil {
			c.app.errorf("Error saving %s: %v\n", c.save, err)
			return subcommands.ExitFailure
		}

		zerolog.Ctx(ctx).Info().Str("path", c.save).Msg("ledger saved")
	}

	return subcommands.ExitSuccess
}

// convertCmd rewrites a ledger file in another format.
type convertCmd struct {
	app  *App
	in   string
	out  string
	from string
	to   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a ledger file between csv, json and yaml" }
func (*convertCmd) Usage() string {
	return `ledger convert -in <file> -out <file> [-from <format>] [-to <format>]

  Reads a ledger file, validates it and writes it in another format.
  Formats are taken from the file extensions unless given explicitly.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "file to read")
	f.StringVar(&c.out, "out", "", "file to write")
	f.StringVar(&c.from, "from", "", "format of the input file")
	f.StringVar(&c.to, "to", "", "format of the output file")
}

func (c *convertCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		c.app.errorf("Both -in and -out are required\n")
		return subcommands.ExitUsageError
	}

	ctx = c.app.Context(ctx)

	if _, err := c.app.Load(ctx, c.in, c.from, ledgerservice.ModeReplace); err != nil {
		c.app.errorf("Error loading %s: %v\n", c.in, err)
		return subcommands.ExitFailure
	}

	if err := c.app.Save(ctx, c.out, c.to); err != nil {
		c.app.errorf("Error writing %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// reportCmd prints per-account analytics.
type reportCmd struct {
	app   *App
	in    string
	from  string
	to    string
	plain bool
	width int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print balances and totals per account" }
func (*reportCmd) Usage() string {
	return `ledger report -in <file> [-from <date>] [-to <date>] [-plain] [-width <n>]

  Prints the balance, income, expense and per-category totals of every account.
  Dates use the dd-MM-yyyy format and bound the period inclusively.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "ledger file to report on")
	f.StringVar(&c.from, "from", "", "first day of the period")
	f.StringVar(&c.to, "to", "", "last day of the period")
	f.BoolVar(&c.plain, "plain", false, "print raw markdown")
	f.IntVar(&c.width, "width", 80, "terminal width used for wrapping")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		c.app.errorf("-in is required\n")
		return subcommands.ExitUsageError
	}

	period, err := parsePeriod(c.from, c.to)
	if err != nil {
		c.app.errorf("Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctx = c.app.Context(ctx)

	if _, err := c.app.Load(ctx, c.in, "", ledgerservice.ModeReplace); err != nil {
		c.app.errorf("Error loading %s: %v\n", c.in, err)
		return subcommands.ExitFailure
	}

	r, err := report.Build(ctx, c.app.Service, period)
	if err != nil {
		c.app.errorf("Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	out := r.Markdown()
	if !c.plain {
		if out, err = report.Render(out, c.width); err != nil {
			c.app.errorf("Error rendering report: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Fprint(c.app.Stdout, out)

	return subcommands.ExitSuccess
}

func parsePeriod(from, to string) (analytics.Period, error) {
	var (
		p   analytics.Period
		err error
	)

	if from != "" {
		if p.From, err = datepkg.Parse(from); err != nil {
			return p, err
		}
	}

	if to != "" {
		if p.To, err = datepkg.Parse(to); err != nil {
			return p, err
		}
	}

	return p, nil
}

// checkCmd validates a ledger file without keeping it.
type checkCmd struct {
	app    *App
	in     string
	format string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a ledger file" }
func (*checkCmd) Usage() string {
	return `ledger check -in <file> [-format <csv|json|yaml>]

  Parses and validates a ledger file and prints what it contains.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "file to check")
	f.StringVar(&c.format, "format", "", "format of the file, taken from its extension by default")
}

func (c *checkCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		c.app.errorf("-in is required\n")
		return subcommands.ExitUsageError
	}

	s, err := c.app.Load(c.app.Context(ctx), c.in, c.format, ledgerservice.ModePreview)
	if err != nil {
		c.app.errorf("%s is invalid (%s): %v\n", c.in, errorspkg.Kind(err), err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(c.app.Stdout, "%s is valid: %d accounts, %d categories, %d operations\n",
		c.in, len(s.Accounts), len(s.Categories), len(s.Operations))

	return subcommands.ExitSuccess
}
