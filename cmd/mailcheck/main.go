package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	j "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	mailcheck "github.com/reoring/mailcheck"
	"github.com/reoring/mailcheck/i18n"
	"github.com/reoring/mailcheck/internal/cliconfig"
)

var exampleUsage = `  mailcheck user@example.com "User.Name+tag@Example.COM"
  mailcheck --json --lang ja üser@example.com
  mailcheck --batch addresses.txt
  cat addresses.txt | mailcheck --batch -`

// errInvalid signals the non-zero exit for syntactically invalid input;
// the per-address diagnostics have already been printed.
var errInvalid = errors.New("one or more addresses are invalid")

type jsonResult struct {
	Address string                    `json:"address"`
	Valid   bool                      `json:"valid"`
	Code    string                    `json:"code,omitempty"`
	Message string                    `json:"message,omitempty"`
	Result  *mailcheck.ValidatedEmail `json:"result,omitempty"`
}

func main() {
	cfg := cliconfig.Default()
	var cfgPath, batchPath string
	var verbose bool

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	root := &cobra.Command{
		Use:           "mailcheck [flags] address...",
		Short:         "Validate and canonicalize email addresses",
		Example:       exampleUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log = log.Level(zerolog.DebugLevel)
			}

			// Flags win over the config file; track what was set explicitly.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.Load(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.Apply(&cfg, fc, changed)
				log.Debug().Str("path", cfgFile).Msg("config file applied")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			i18n.SetLanguage(cfg.Lang)

			opts := mailcheck.Options{AllowUnicodeLocal: cfg.UnicodeLocal}
			log.Debug().Bool("unicode_local", cfg.UnicodeLocal).Str("lang", cfg.Lang).Msg("options resolved")

			if batchPath != "" {
				return runBatch(cmd.Context(), log, batchPath, opts, cfg.JSON)
			}
			if len(args) == 0 {
				return errors.New("no addresses given (pass them as arguments or use --batch)")
			}
			return runAddresses(args, opts, cfg.JSON)
		},
	}

	flags := root.Flags()
	flags.BoolVar(&cfg.UnicodeLocal, "unicode-local", cfg.UnicodeLocal, "allow non-ASCII (RFC 6531) local parts")
	flags.BoolVar(&cfg.JSON, "json", cfg.JSON, "emit one JSON object per address")
	flags.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language (en|ja)")
	flags.StringVar(&cfgPath, "config", "", "path to YAML config (default $HOME/.mailcheck/config.yaml)")
	flags.StringVar(&batchPath, "batch", "", `validate newline-separated addresses from a file ("-" for stdin)`)
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInvalid) {
			log.Error().Err(err).Msg("mailcheck failed")
		}
		os.Exit(1)
	}
}

// runAddresses validates each argument through the authoritative path and
// prints the canonical form or the diagnostic.
func runAddresses(args []string, opts mailcheck.Options, asJSON bool) error {
	enc := j.NewEncoder(os.Stdout)
	anyInvalid := false

	for _, addr := range args {
		v, err := mailcheck.Validate(addr, opts)
		if err != nil {
			anyInvalid = true
		}

		if asJSON {
			res := jsonResult{Address: addr, Valid: err == nil}
			if err != nil {
				if is, ok := mailcheck.AsIssue(err); ok {
					res.Code = is.Code
					res.Message = is.Message
				} else {
					res.Code = mailcheck.CodeGeneric
					res.Message = err.Error()
				}
			} else {
				res.Result = &v
			}
			if err := enc.Encode(res); err != nil {
				return err
			}
			continue
		}

		if err != nil {
			fmt.Printf("invalid\t%s\t%s\n", addr, err)
		} else {
			fmt.Printf("ok\t%s\n", v.Normalized)
		}
	}

	if anyInvalid {
		return errInvalid
	}
	return nil
}

// runBatch reads one address per line and runs the parallel boolean path.
func runBatch(ctx context.Context, log zerolog.Logger, path string, opts mailcheck.Options, asJSON bool) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var addrs []string
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		addrs = append(addrs, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	log.Debug().Int("count", len(addrs)).Msg("batch loaded")

	results := mailcheck.Batch(ctx, addrs, opts)

	enc := j.NewEncoder(os.Stdout)
	anyInvalid := false
	for i, addr := range addrs {
		if !results[i] {
			anyInvalid = true
		}
		if asJSON {
			if err := enc.Encode(jsonResult{Address: addr, Valid: results[i]}); err != nil {
				return err
			}
			continue
		}
		if results[i] {
			fmt.Printf("ok\t%s\n", addr)
		} else {
			fmt.Printf("invalid\t%s\n", addr)
		}
	}

	if anyInvalid {
		return errInvalid
	}
	return nil
}
