package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/dsk-ducdn2/car-rental-app-sub001/mockdata"
	"github.com/oklog/run"
)

var (
	httpPort        = flag.Int("port", 8080, "HTTP port")
	shutdownTimeout = flag.Duration("shutdown_timeout", 10*time.Second, "HTTP server shutdown timeout")
	dataDir         = flag.String("data_dir", "./static", "Directory holding mock-data/*.json")
	upstreamURL     = flag.String("upstream_url", "", "Base URL to poll mock data from (default: this server)")
	refreshMinSecs  = flag.Int("refresh_min_secs", 10, "Minimum refresh interval in seconds")
	fetchTimeout    = flag.Duration("fetch_timeout", 10*time.Second, "Timeout for one poll of all resources")
)

func main() {
	if err := loadEnv(); err != nil {
		log.Fatal(err)
	}
	flag.Parse()
	if err := applyEnv(flag.CommandLine, os.Getenv); err != nil {
		log.Fatalf("config: %v", err)
	}

	base := *upstreamURL
	if base == "" {
		base = fmt.Sprintf("http://localhost:%d", *httpPort)
	}

	hub := newHub()
	poll := newPoller(mockdata.NewClient(base, 0), hub, *refreshMinSecs, *fetchTimeout)

	mux := http.NewServeMux()
	registerRoutes(mux, *dataDir, hub, poll)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *httpPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	var g run.Group

	g.Add(func() error {
		log.Printf("server starting on http://localhost:%d/ (polling %s)", *httpPort, base)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), *shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		} else {
			log.Printf("HTTP server shut down successfully")
		}
	})

	pctx, pcancel := context.WithCancel(context.Background())
	g.Add(func() error {
		poll.run(pctx)
		return nil
	}, func(error) {
		pcancel()
	})

	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	// Run returns the first actor's error; a signal counts as one.
	log.Printf("shutdown initiated: %v", g.Run())
}
