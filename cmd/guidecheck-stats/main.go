// Command guidecheck-stats aggregates stored predictions into
// confusion-matrix metrics and prints them as JSON
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"guidecheck/internal/modkit"
	"guidecheck/internal/platform/config"
	"guidecheck/internal/platform/logger"
	"guidecheck/internal/platform/store"

	statsdom "guidecheck/internal/services/stats/domain"
	statsmod "guidecheck/internal/services/stats/module"
)

func main() {
	var (
		sinceStr = flag.String("since", "", "inclusive lower bound, RFC3339 or 2006-01-02")
		untilStr = flag.String("until", "", "exclusive upper bound, RFC3339 or 2006-01-02")
		user     = flag.String("user", "", "restrict to one user id")
	)
	flag.Parse()

	var w statsdom.Window
	var err error
	if w.Since, err = parseTime(*sinceStr); err != nil {
		log.Fatalf("bad -since: %v", err)
	}
	if w.Until, err = parseTime(*untilStr); err != nil {
		log.Fatalf("bad -until: %v", err)
	}
	w.UserID = *user
	if !w.Since.IsZero() && !w.Until.IsZero() && !w.Since.Before(w.Until) {
		log.Fatal("since must be < until")
	}

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{
		AppName: "guidecheck-stats",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
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

	sm := statsmod.New(modkit.Deps{Cfg: root, Log: *l, PG: st.PG})
	stats := sm.Ports().(statsmod.Ports).Stats

	sum, err := stats.Summarize(ctx, w)
	if err != nil {
		l.Fatal().Err(err).Msg("stats failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		l.Fatal().Err(err).Msg("encode failed")
	}
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
