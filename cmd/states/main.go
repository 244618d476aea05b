// Command states is the thin CLI driver the original specification
// explicitly permits (SPEC_FULL.md §4.9, §6): given a date window and a
// set of requested state keys, it runs the commanded-state interpreter
// and prints the resulting state table as TSV. It contains no business
// logic of its own — only argument parsing, collaborator wiring, and
// output formatting.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chandraflight/kadistate/archive"
	"github.com/chandraflight/kadistate/chrono"
	"github.com/chandraflight/kadistate/command"
	"github.com/chandraflight/kadistate/config"
	"github.com/chandraflight/kadistate/interp"
	"github.com/chandraflight/kadistate/logging"
	"github.com/chandraflight/kadistate/metrics"
	"github.com/chandraflight/kadistate/rules"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	fs := flag.NewFlagSet("states", flag.ContinueOnError)
	keysFlag := fs.String("keys", "pitch,obsid", "comma-separated state keys to report")
	cmdlogFlag := fs.String("cmdlog", "", "path to a newline-delimited JSON command log (empty: no commands)")
	configFlag := fs.String("config", "", "path to a YAML deployment config")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: states [flags] <start> <stop>")
		return 2
	}
	start, stop := fs.Arg(0), fs.Arg(1)
	requested := strings.Split(*keysFlag, ",")

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		cfg = loaded
	}

	var provider metrics.Provider
	switch cfg.MetricsBackend {
	case "prometheus":
		provider = metrics.NewPrometheusProvider(metrics.PrometheusProviderOptions{})
	case "otel":
		provider = metrics.NewOTelProvider(metrics.OTelProviderOptions{})
	default:
		provider = metrics.NewNoopProvider()
	}
	domain := metrics.NewDomain(provider)
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ctx := context.Background()

	cmds, err := loadCommands(*cmdlogFlag)
	if err != nil {
		logger.ErrorCtx(ctx, "failed to load command log", "error", err)
		return 1
	}

	finder := archive.NewStatic(cmds)
	batch, err := finder.Find(ctx, start, stop, archive.Filter{})
	if err != nil {
		logger.ErrorCtx(ctx, "failed to query archive", "error", err)
		return 1
	}
	domain.ArchiveLookups.Inc(1, "cli")

	reg := rules.NewRegistry()
	matched, keys := reg.Closure(requested)

	transitions, err := rules.Emit(matched, batch)
	if err != nil {
		domain.InterpreterRuns.Inc(1, "error")
		logger.ErrorCtx(ctx, "failed to emit transitions", "error", err)
		return 1
	}

	if contains(keys, "pitch") {
		startSecs, err1 := chrono.DateToSecs(start)
		stopSecs, err2 := chrono.DateToSecs(stop)
		if err1 == nil && err2 == nil {
			transitions = append(transitions, rules.PeriodicPitchSamples(startSecs, stopSecs)...)
		}
	}

	timer := domain.InterpreterDuration()
	res, err := interp.Run(keys, transitions, nil, rules.Dispatcher(), chrono.FutureSentinel)
	timer.ObserveDuration()
	if err != nil {
		domain.InterpreterRuns.Inc(1, "error")
		logger.ErrorCtx(ctx, "interpreter run failed", "error", err)
		return 1
	}
	domain.InterpreterRuns.Inc(1, "ok")
	domain.RowsEmitted.Inc(float64(len(res.Rows)))

	writeTSV(out, res)
	return 0
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func loadCommands(path string) ([]command.Command, error) {
	if path == "" {
		return nil, nil
	}
	return archive.LoadNDJSON(path)
}

func writeTSV(out *os.File, res *interp.Result) {
	w := bufio.NewWriter(out)
	defer w.Flush()
	fmt.Fprint(w, "datestart\tdatestop")
	for _, k := range res.Keys {
		fmt.Fprintf(w, "\t%s", k)
	}
	fmt.Fprintln(w)
	for i, row := range res.Rows {
		fmt.Fprintf(w, "%s\t%s", res.Datestart[i], res.Datestop[i])
		for _, k := range res.Keys {
			fmt.Fprintf(w, "\t%v", row[k].Interface())
		}
		fmt.Fprintln(w)
	}
}
