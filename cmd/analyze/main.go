package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/analytics"
	"github.com/Dan9191/coop-loan-analytics/internal/gateway"
	"github.com/Dan9191/coop-loan-analytics/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	loansFile := flag.String("loans", "", "Path to the loans JSON file (required)")
	groupsFile := flag.String("groups", "", "Path to the groups JSON file (required)")
	groupID := flag.String("group", "", "Group to analyze (required)")
	nowStr := flag.String("now", "", "Evaluation date (YYYY-MM-DD), defaults to today")
	seed := flag.Int64("seed", 0, "Seed for synthetic trend values, 0 for random")
	calendar := flag.Bool("calendar", false, "Bucket trends by year and month instead of month name")
	noFill := flag.Bool("no-fill", false, "Report empty trend months as insufficient instead of filling them")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if *loansFile == "" || *groupsFile == "" || *groupID == "" {
		fmt.Fprintln(os.Stderr, "Error: flags -loans, -groups and -group are required.")
		flag.Usage()
		os.Exit(1)
	}

	var asOf time.Time
	if *nowStr != "" {
		d, err := time.Parse(time.DateOnly, *nowStr)
		if err != nil {
			logger.Fatalf("Error parsing -now: %v", err)
		}
		asOf = d.Add(24*time.Hour - time.Nanosecond)
	}

	opts := analytics.TrendOptions{Seed: *seed}
	if *calendar {
		opts.Bucketing = analytics.BucketByCalendarMonth
	}
	if *noFill {
		opts.Fill = analytics.FillNone
	}

	repo := gateway.NewJSONSnapshotRepository(*loansFile, *groupsFile)
	svc := service.NewService(repo, analytics.NewEngine(analytics.Options{Trend: opts}), nil, logger)

	result, err := svc.AnalyzeGroup(context.Background(), *groupID, asOf)
	if err != nil {
		logger.Fatalf("Analysis failed: %v", err)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(output))
}
