package main

import (
	"context"
	"flag"
	"os"
	"time"

	"family-dues-go/internal/app"
	"family-dues-go/pkg/logger"
)

// One-shot batch runner intended for cron: the wedding converter daily,
// the statement generator monthly.
func main() {
	runStatements := flag.Bool("statements", false, "also generate monthly statements")
	year := flag.Int("year", 0, "statement year (defaults to current)")
	month := flag.Int("month", 0, "statement month 1-12 (defaults to current)")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	log := logger.NewFromEnv()
	log.Info("jobs: starting")

	application, err := app.NewJobRunner(log)
	if err != nil {
		log.Critical("jobs: init failed", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("jobs: close failed", "err", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	services := application.Services()
	exitCode := 0

	converted, err := services.Wedding.ConvertDueWeddings(ctx)
	if err != nil {
		log.Error("jobs: wedding converter failed", "err", err)
		exitCode = 1
	} else {
		log.Info("jobs: wedding converter done", "converted", converted.Converted, "failed", converted.Failed)
	}

	if *runStatements {
		result, err := services.Statements.GenerateMonthly(ctx, *year, *month)
		if err != nil {
			log.Error("jobs: statement generation failed", "err", err)
			exitCode = 1
		} else {
			log.Info("jobs: statements done", "year", result.Year, "month", result.Month, "generated", result.Generated, "failed", result.Failed)
		}
	}

	log.Info("jobs: finished")
	os.Exit(exitCode)
}
