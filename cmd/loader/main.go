package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/location-loader/internal/config"
	"github.com/location-loader/internal/domain/repository"
	"github.com/location-loader/internal/infrastructure/geojson"
	"github.com/location-loader/internal/pkg/logger"
	"github.com/location-loader/internal/repository/cache"
	"github.com/location-loader/internal/repository/postgres"
	redisRepo "github.com/location-loader/internal/repository/redis"
	"github.com/location-loader/internal/usecase"
	"github.com/location-loader/internal/usecase/dto"
	"go.uber.org/zap"
)

type Options struct {
	ConfigFile string `short:"c" long:"config"     env:"CONFIG_FILE" description:"Path to .env configuration file" default:".env"`
	Input      string `short:"i" long:"input"      env:"INPUT"       description:"GeoJSON source: file path, - for stdin, or http(s) URL" required:"true"`
	DryRun     bool   `short:"n" long:"dry-run"                      description:"Build records without writing them"`
	NoPublish  bool   `long:"no-publish"                             description:"Do not publish events or cache the report"`
	LogLevel   string `short:"l" long:"log-level"  env:"LOG_LEVEL"   description:"Override log level (debug, info, warn, error)"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	os.Exit(run(opts))
}

func run(opts Options) int {
	// 1. Load configuration
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Read input
	reader := geojson.NewReader(cfg.Import.FetchTimeout, log)
	collection, err := reader.Read(ctx, opts.Input)
	if err != nil {
		log.Error("Failed to read GeoJSON", zap.String("input", opts.Input), zap.Error(err))
		return 1
	}
	log.Info("GeoJSON loaded",
		zap.String("input", opts.Input),
		zap.Int("features", len(collection.Features)))

	// 4. Connect to PostgreSQL (not needed for a dry run)
	var locationRepo repository.LocationRepository
	if !opts.DryRun {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Error("Failed to connect to PostgreSQL", zap.Error(err))
			return 1
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		locationRepo = postgres.NewLocationRepository(db)
	}

	// 5. Connect to Redis (optional)
	var streamRepo repository.StreamRepository
	var cacheRepo repository.CacheRepository
	if cfg.Redis.Enabled && !opts.NoPublish {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, events and report cache disabled", zap.Error(err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}()
			streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
			cacheRepo = cache.NewCacheRepository(redisClient)
		}
	}

	// 6. Run import
	importUC := usecase.NewImportUseCase(
		locationRepo,
		streamRepo,
		cacheRepo,
		usecase.NewRecordBuilder(cfg.Import.Defaults()),
		log,
		cfg.Import.ReportTTL,
	)

	report, err := importUC.Import(ctx, dto.ImportRequest{
		Source:     opts.Input,
		DryRun:     opts.DryRun,
		Collection: collection,
	})
	if err != nil {
		log.Error("Import failed", zap.Error(err))
		return 1
	}

	log.Info("Done",
		zap.String("import_id", report.ID.String()),
		zap.Bool("committed", report.Committed),
		zap.Int("inserted", report.Inserted),
		zap.Int("built", report.Built),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed))

	return 0
}
