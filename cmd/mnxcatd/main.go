// Command mnxcatd loads the MetaNetX dataset and serves the catalog API.
//
// The data source is picked from the environment, in this order:
//
//	MNX_DATA_DIR        local directory with (optionally gzipped) tables
//	MNX_MINIO_ENDPOINT  S3-compatible object store (MNX_MINIO_BUCKET,
//	                    MNX_MINIO_PREFIX, MNX_MINIO_ACCESS_KEY,
//	                    MNX_MINIO_SECRET_KEY, MNX_MINIO_INSECURE)
//	MNX_S3_BUCKET       AWS S3 (MNX_S3_PREFIX; credentials from the
//	                    default AWS chain)
//
// MNX_LISTEN sets the listen address (default ":8080"); MNX_LOG_FORMAT=json
// switches to JSON logs. Ingestion failure aborts startup.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniosdk "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd-decaf/metanetx"
	"github.com/dd-decaf/metanetx/server"
	"github.com/dd-decaf/metanetx/source"
	miniosource "github.com/dd-decaf/metanetx/source/minio"
	s3source "github.com/dd-decaf/metanetx/source/s3"
)

func main() {
	log := newLogger()
	if err := run(log); err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}
}

func newLogger() *metanetx.Logger {
	if os.Getenv("MNX_LOG_FORMAT") == "json" {
		return metanetx.NewJSONLogger(slog.LevelInfo)
	}
	return metanetx.NewTextLogger(slog.LevelInfo)
}

func run(log *metanetx.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := buildSource(ctx)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	collector := metanetx.NewPrometheusCollector(registry)

	start := time.Now()
	catalog, err := metanetx.Open(ctx, src,
		metanetx.WithLogger(log),
		metanetx.WithMetrics(collector),
	)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	stats := catalog.Stats()
	log.Info("catalog ready",
		"compartments", stats.Compartments,
		"reactions", stats.Reactions,
		"metabolites", stats.Metabolites,
		"elapsed", time.Since(start),
	)

	router := server.NewRouter(server.Config{
		Catalog: catalog,
		Logger:  log,
		Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	listen := os.Getenv("MNX_LISTEN")
	if listen == "" {
		listen = ":8080"
	}
	srv := &http.Server{
		Addr:              listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()
	log.Info("listening", "addr", listen)

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildSource(ctx context.Context) (source.Opener, error) {
	if dir := os.Getenv("MNX_DATA_DIR"); dir != "" {
		return source.NewDir(dir), nil
	}
	if endpoint := os.Getenv("MNX_MINIO_ENDPOINT"); endpoint != "" {
		client, err := miniosdk.New(endpoint, &miniosdk.Options{
			Creds: credentials.NewStaticV4(
				os.Getenv("MNX_MINIO_ACCESS_KEY"),
				os.Getenv("MNX_MINIO_SECRET_KEY"),
				"",
			),
			Secure: os.Getenv("MNX_MINIO_INSECURE") == "",
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return miniosource.New(client, os.Getenv("MNX_MINIO_BUCKET"), os.Getenv("MNX_MINIO_PREFIX")), nil
	}
	if bucket := os.Getenv("MNX_S3_BUCKET"); bucket != "" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("aws config: %w", err)
		}
		return s3source.New(awss3.NewFromConfig(cfg), bucket, os.Getenv("MNX_S3_PREFIX")), nil
	}
	return nil, errors.New("no data source configured: set MNX_DATA_DIR, MNX_MINIO_ENDPOINT or MNX_S3_BUCKET")
}
