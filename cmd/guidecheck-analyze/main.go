// Command guidecheck-analyze runs the guide/target compatibility pipeline
// for one pair or a JSONL batch and prints results as JSON
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"guidecheck/internal/modkit"
	"guidecheck/internal/platform/config"
	"guidecheck/internal/platform/logger"
	"guidecheck/internal/platform/store"

	anadom "guidecheck/internal/services/analysis/domain"
	anamod "guidecheck/internal/services/analysis/module"
	predmod "guidecheck/internal/services/predictions/module"
)

func main() {
	var (
		guide    = flag.String("guide", "", "23-char guide sequence (A/T/C/G/-)")
		target   = flag.String("target", "", "23-char target sequence (A/T/C/G/-)")
		asserted = flag.Int("asserted", 0, "caller-asserted label (0 or 1)")
		mlabel   = flag.Int("model-label", 0, "external model label (0 or 1)")
		mconf    = flag.Float64("model-confidence", 0, "external model confidence [0,1]")
		user     = flag.String("user", "", "user id to stamp on persisted records")
		input    = flag.String("input", "", "JSONL file of analyze requests; - for stdin")
		dryRun   = flag.Bool("dry-run", false, "analyze without persisting")
		noStore  = flag.Bool("no-store", false, "skip database wiring entirely")
	)
	flag.Parse()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	l := logger.Get()

	ctx := context.Background()
	deps := modkit.Deps{Cfg: root, Log: *l}

	if !*noStore {
		st, err := store.Open(ctx, store.Config{
			AppName: "guidecheck-analyze",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled: chCfg.MayBool("ENABLED", false),
				URL:     chCfg.MayString("DBURL", ""),
				Role:    "analyze",
			},
		}, store.WithLogger(*l))
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
		deps.PG = st.PG
		deps.CH = st.CH

		predmod.New(deps)
	}

	am := anamod.New(deps)
	analyzer := am.Ports().(anamod.Ports).Analyzer

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if *input != "" {
		if err := runBatch(ctx, analyzer, *input, *dryRun, enc); err != nil {
			l.Fatal().Err(err).Msg("batch analyze failed")
		}
		return
	}

	if *guide == "" || *target == "" {
		log.Fatal("guide/target are required (or use -input)")
	}
	res, err := analyzer.Analyze(ctx, anadom.AnalyzeInput{
		Guide:           *guide,
		Target:          *target,
		AssertedLabel:   *asserted,
		ModelLabel:      *mlabel,
		ModelConfidence: *mconf,
		UserID:          *user,
		DryRun:          *dryRun,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("analyze failed")
	}
	if err := enc.Encode(res); err != nil {
		l.Fatal().Err(err).Msg("encode failed")
	}
}

// runBatch reads one AnalyzeInput per line and streams results out.
// A bad line stops the batch; partial output before it stands
func runBatch(ctx context.Context, analyzer anadom.AnalyzerPort, path string, dryRun bool, enc *json.Encoder) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var in anadom.AnalyzeInput
		if err := json.Unmarshal(line, &in); err != nil {
			return err
		}
		if dryRun {
			in.DryRun = true
		}
		res, err := analyzer.Analyze(ctx, in)
		if err != nil {
			return err
		}
		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	return sc.Err()
}
