// chessrules plays, replays and archives chess games under the standard rules.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/archive"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/eco"
	"github.com/lgbarn/chessrules-go/internal/matching"
	"github.com/lgbarn/chessrules-go/internal/replay"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	store := openArchive(cfg)
	if store != nil {
		defer store.Close()
	}

	var err error
	switch {
	case *listArchive:
		var filter *matching.RecordFilter
		if filter, err = buildRecordFilter(); err == nil {
			err = listGames(cfg.Output.File, store, filter)
		}
	case *replayFile != "":
		err = replayGames(cfg, *replayFile)
	default:
		session := NewSession(cfg, store)
		if *ecoFile != "" {
			session.SetOpenings(loadECOClassifier(*ecoFile))
		}
		err = session.Run(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.Log.File = file
}

// openArchive opens the archive when one is configured, exiting on failure.
func openArchive(cfg *config.Config) *archive.Archive {
	if !cfg.Archive.Enabled() {
		if *listArchive {
			fmt.Fprintln(os.Stderr, "Error: -list needs -archive")
			os.Exit(2)
		}
		return nil
	}
	store, err := archive.OpenFromConfig(cfg.Archive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening archive %s: %v\n", cfg.Archive.Dir, err)
		os.Exit(1)
	}
	return store
}

// loadECOClassifier loads an opening table, exiting on failure.
func loadECOClassifier(path string) *eco.ECOClassifier {
	ec := eco.NewECOClassifier()
	if err := ec.LoadFromFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ECO file: %v\n", err)
		os.Exit(1)
	}
	return ec
}

// listGames prints one line per archived game that passes filter.
func listGames(w io.Writer, store *archive.Archive, filter *matching.RecordFilter) error {
	records, err := store.List()
	if err != nil {
		return err
	}
	records = filter.Filter(records)
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d plies\t%s\n",
			rec.ID, rec.Result, rec.Termination, rec.Plies, rec.Ended.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "%d games\n", len(records))
	return nil
}

// replayGames replays every game in path over the worker pool and reports
// each result followed by a summary.
func replayGames(cfg *config.Config, path string) error {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return err
	}
	defer file.Close()

	items, err := replay.ReadGames(file)
	if err != nil {
		return err
	}

	// Per-game engine logging would interleave across workers.
	replayCfg := *cfg
	replayCfg.Log = config.NewLogConfig()
	replayCfg.Log.Verbosity = 0

	report := replay.VerifyAll(&replayCfg, items)
	writeReport(cfg.Output.File, report)
	return nil
}

// writeReport prints the per-game lines and the summary of a batch replay.
func writeReport(w io.Writer, report *replay.Report) {
	for _, res := range report.Results {
		switch {
		case res.Skipped:
			fmt.Fprintf(w, "game %d: skipped\n", res.Index+1)
		case res.Error != nil:
			fmt.Fprintf(w, "game %d: %v\n", res.Index+1, res.Error)
		default:
			line := fmt.Sprintf("game %d: %s after %d plies (%s)", res.Index+1, res.Outcome.Result(), res.Plies, res.Outcome)
			if res.Duplicate {
				line += " [duplicate final position]"
			}
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintf(w, "%d games, %d finished, %d failed, %d duplicate final positions",
		len(report.Results), report.Finished, report.Failed, report.Duplicates)
	if report.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", report.Skipped)
	}
	fmt.Fprintln(w)
}

func usage() {
	fmt.Fprintf(os.Stderr, `chessrules - play and verify chess games

Usage:
  chessrules [options]                  play interactively on stdin
  chessrules -replay games.txt [-j N] [-failfast]
                                        replay and verify games, one per line
  chessrules -archive DIR -list [-where 'plies >= 40' ...]
                                        list archived games

Options:
`)
	flag.PrintDefaults()
}
