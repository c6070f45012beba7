// Package handlers implements the stocklens terminal commands. Each command
// parses its own flags, calls the API client and prints the result.
package handlers

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/epeers/stocklens/internal/api"
	"github.com/epeers/stocklens/internal/services"
	"github.com/epeers/stocklens/internal/theme"
)

// ErrUsage is returned when a command is invoked with bad arguments
var ErrUsage = errors.New("invalid usage")

// Handler dispatches commands
type Handler struct {
	client   *api.Client
	overview *services.OverviewService
	themes   *theme.Store
	out      *Printer
	now      func() time.Time
}

// NewHandler creates a new Handler
func NewHandler(client *api.Client, themes *theme.Store, out *Printer) *Handler {
	return &Handler{
		client:   client,
		overview: services.NewOverviewService(client.Stocks),
		themes:   themes,
		out:      out,
		now:      time.Now,
	}
}

type command struct {
	usage   string
	summary string
	run     func(h *Handler, ctx context.Context, args []string) error
}

var commands map[string]command

// populated in init since the commands refer back to the table for usage text
func init() {
	commands = map[string]command{
		"search":           {usage: "search <term>", summary: "find companies by ticker or name", run: (*Handler).Search},
		"company":          {usage: "company <ticker>", summary: "company overview with analysis, financials and sector", run: (*Handler).Company},
		"statements":       {usage: "statements [-type income-statement|balance-sheet|cash-flow] <ticker>", summary: "financial statements by fiscal year", run: (*Handler).Statements},
		"analysis":         {usage: "analysis <ticker>", summary: "quick analysis metrics and your inputs", run: (*Handler).Analysis},
		"classify":         {usage: "classify [-category c] [-stable true|false] [-debt true|false] <ticker>", summary: "record your classification of a company", run: (*Handler).Classify},
		"sectors":          {usage: "sectors", summary: "list industries", run: (*Handler).Sectors},
		"peers":            {usage: "peers [-limit n] <ticker>", summary: "peer comparison within the industry", run: (*Handler).Peers},
		"valuations":       {usage: "valuations <ticker>", summary: "list saved valuations", run: (*Handler).Valuations},
		"valuation":        {usage: "valuation <ticker> [id|latest]", summary: "show one valuation", run: (*Handler).Valuation},
		"valuation-create": {usage: "valuation-create -discount r -growth g [-shares n] [-fcf a,b,...] [-name s] [-notes s] <ticker>", summary: "save a new DCF scenario", run: (*Handler).CreateValuation},
		"valuation-update": {usage: "valuation-update [-discount r] [-growth g] [-shares n] [-fcf a,,c] [-name s] [-notes s] <ticker> <id>", summary: "change fields of a valuation", run: (*Handler).UpdateValuation},
		"valuation-delete": {usage: "valuation-delete <ticker> <id>", summary: "delete a valuation", run: (*Handler).DeleteValuation},
		"sensitivity":      {usage: "sensitivity <ticker> <id>", summary: "value grid across discount and growth rates", run: (*Handler).Sensitivity},
		"story":            {usage: "story <ticker>", summary: "show the company story", run: (*Handler).Story},
		"story-save":       {usage: "story-save [-overview s] [-business-model s] ... <ticker>", summary: "replace the company story", run: (*Handler).SaveStory},
		"theme":            {usage: "theme [show|toggle|light|dark]", summary: "show or change the colour theme", run: (*Handler).Theme},
	}
}

// Run executes args[0] with the remaining arguments
func (h *Handler) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		h.Usage(h.out.w)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	if err := cmd.run(h, ctx, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w\nusage: stocklens %s", err, cmd.usage)
		}
		return err
	}
	return nil
}

// Usage lists every command
func (h *Handler) Usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: stocklens <command> [flags] [args]")
	fmt.Fprintln(w)
	for _, name := range names {
		fmt.Fprintf(w, "  %-18s %s\n", name, commands[name].summary)
	}
}

func (h *Handler) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(h.out.w)
	fs.Usage = func() {
		fmt.Fprintf(h.out.w, "usage: stocklens %s\n", commands[name].usage)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses flags and checks the positional argument count
func (h *Handler) parse(fs *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	rest := fs.Args()
	if len(rest) < minArgs || len(rest) > maxArgs {
		return nil, fmt.Errorf("%w: expected %s", ErrUsage, argCount(minArgs, maxArgs))
	}
	return rest, nil
}

func argCount(minArgs, maxArgs int) string {
	if minArgs == maxArgs {
		return fmt.Sprintf("%d argument(s)", minArgs)
	}
	return fmt.Sprintf("%d to %d arguments", minArgs, maxArgs)
}

func ticker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
