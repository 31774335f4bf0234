package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bietkhonhungvandi212/pagesim/internal/config"
	"github.com/bietkhonhungvandi212/pagesim/internal/replacement"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/file"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/record"
	"github.com/bietkhonhungvandi212/pagesim/internal/timeline"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pagesim:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("PAGESIM_CONFIG"); path != "" {
		cfg, err := config.LoadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.ApplyEnv()
		return cfg, nil
	}
	return config.LoadConfigFromEnv(), nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := util.InitLogger(cfg.LogLevel, "pagesim")

	in, err := cfg.Parse()
	if err != nil {
		return err
	}

	store, err := file.NewRecordStore(cfg.DataDirectory, in.Compression, log)
	if err != nil {
		return err
	}
	if prev, err := store.LoadLastRun(); err == nil {
		log.Info("previous run", "algorithm", prev.Algorithm, "referenceString", prev.ReferenceString,
			"frameCount", prev.FrameCount, "at", prev.Time().Format(time.RFC3339))
	} else if !errors.Is(err, util.ErrNoLastRun) {
		log.Warn("ignoring unreadable last run", "err", err)
	}

	res, err := replacement.Simulate(in.Sequence, in.Capacity, in.Policy)
	if err != nil {
		return err
	}
	log.Info("simulation done", "algorithm", res.Policy, "frames", res.Capacity,
		"references", res.Len(), "pageFaults", res.PageFaults, "hitRatio", res.HitRatio)

	cursor, err := timeline.NewCursor(res)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printStep(cursor.Current(), in.Capacity)
	player := timeline.NewPlayer(in.Speed)
	if err := player.Play(ctx, cursor, func(s replacement.Step) { printStep(s, in.Capacity) }); err != nil {
		log.Warn("playback interrupted", "at", cursor.Index(), "err", err)
	}

	rec := record.FromResult(res, cfg.ReferenceString, time.Now())
	if err := store.SaveLastRun(rec); err != nil {
		return err
	}
	path, err := store.Export(rec)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(rec.Summary())
	fmt.Println("Exported to", path)

	results, err := replacement.Compare(in.Sequence, in.Capacity)
	if err != nil {
		return err
	}
	fmt.Println()
	for _, p := range replacement.Policies() {
		r := results[p]
		fmt.Printf("%-8s faults=%-3d hit=%.2f%%\n", p, r.PageFaults, r.HitRatio*100)
	}
	return nil
}

func printStep(s replacement.Step, capacity int) {
	slots := make([]string, capacity)
	for i := range slots {
		slots[i] = "-"
		if i < len(s.Frames) {
			slots[i] = string(s.Frames[i])
		}
	}

	status := "hit"
	if s.Fault {
		status = "FAULT"
		if s.Evicted {
			status += " (evict " + string(s.Victim) + ")"
		}
	}
	fmt.Printf("%3d  ref=%-4s [%s]  %s\n", s.ReferenceIndex, s.Page, strings.Join(slots, " "), status)
}
