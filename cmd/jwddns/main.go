package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"jabberwocky238/jwddns/config"
	"jabberwocky238/jwddns/resolve"
	"jabberwocky238/jwddns/types"
	"jabberwocky238/jwddns/updater"

	flag "github.com/spf13/pflag"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("jwddns", flag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "Path to config file")
	verbose := flags.BoolP("verbose", "v", false, "Log each successful update to stdout (silent by default)")
	strict := flags.BoolP("strict", "s", false, "Individual update failures cause an exit with code 4 instead of 0")
	showRecords := flags.BoolP("resolve", "r", false, "Print each domain's current A/AAAA records after the run")
	showVersion := flags.Bool("version", false, "Print version and exit")
	flags.Parse(args)

	if *showVersion {
		fmt.Printf("jwddns v%s\n", version)
		return types.ExitSuccess
	}

	// Setup logger. Failures and diagnostics go to stderr; stdout is
	// reserved for verbose per-update lines and record output.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	path, err := config.Resolve(*configPath)
	if err != nil {
		logger.Error("config file not found", "error", err)
		return types.ExitConfigNotFound
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, types.ErrNoDomains) {
			logger.Error("no domain entries found", "path", path)
			return types.ExitNoDomains
		}
		logger.Error("failed to load configuration", "path", path, "error", err)
		return types.ExitConfigParse
	}

	ctx := context.Background()

	clientCfg := updater.DefaultClientConfig()
	clientCfg.Timeout = cfg.Timeout
	clientCfg.UserAgent = "jwddns/" + version
	client := updater.NewClient(clientCfg)

	runner := &updater.Runner{
		Executor: client,
		Reporter: updater.NewStreamReporter(os.Stdout, logger, *verbose),
	}

	outcomes := runner.Run(ctx, cfg.Domains)

	if *showRecords {
		printRecords(ctx, logger, cfg.Domains)
	}

	mode := updater.ModeLax
	if *strict {
		mode = updater.ModeStrict
	}
	return updater.Fold(outcomes, mode)
}

// printRecords queries and prints the records each configured domain
// currently resolves to. Lookup failures are warnings only and never
// change the exit code.
func printRecords(ctx context.Context, logger *slog.Logger, entries []types.DomainEntry) {
	resolver := resolve.New(resolve.DefaultConfig())

	for _, entry := range entries {
		if entry.Domain == "" || !entry.HasUpdateURL() {
			continue
		}

		lookups := []struct {
			url    string
			family types.Family
			rtype  string
		}{
			{url: entry.UpdateURL, family: types.FamilyIPv4, rtype: "A"},
			{url: entry.UpdateURLV6, family: types.FamilyIPv6, rtype: "AAAA"},
		}

		for _, l := range lookups {
			if l.url == "" {
				continue
			}
			values, err := resolver.Lookup(ctx, entry.Domain, l.family)
			if err != nil {
				logger.Warn("record lookup failed",
					"domain", entry.Domain,
					"family", l.family,
					"error", err,
				)
				continue
			}
			for _, value := range values {
				fmt.Printf("%s %s %s\n", entry.Domain, l.rtype, value)
			}
		}
	}
}
