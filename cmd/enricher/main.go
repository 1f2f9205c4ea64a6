package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MichalMitros/parts-enricher/cmd/enricher/config"
	"github.com/MichalMitros/parts-enricher/internal/catalog"
	"github.com/MichalMitros/parts-enricher/internal/completion"
	"github.com/MichalMitros/parts-enricher/internal/content"
	"github.com/MichalMitros/parts-enricher/internal/enricher"
	"github.com/MichalMitros/parts-enricher/internal/fetcher"
	"github.com/MichalMitros/parts-enricher/internal/handler"
	"github.com/MichalMitros/parts-enricher/internal/importer"
	"github.com/MichalMitros/parts-enricher/internal/marketplace"
	"github.com/MichalMitros/parts-enricher/internal/platform/metrics"
	"github.com/MichalMitros/parts-enricher/internal/platform/rabbitmq"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage"
	"github.com/MichalMitros/parts-enricher/internal/processor"
	"github.com/MichalMitros/parts-enricher/internal/websearch"
	"github.com/MichalMitros/parts-enricher/pkg/v1/commander"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// local .env is optional, real environment wins
	_ = godotenv.Load()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("logLevel", cfg.LogLevel).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	pg := storage.NewPostgres(pgDB)
	if err := pg.Migrate(ctx); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't migrate database")
	}

	m := metrics.NewMetrics()
	fetch := fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.UserAgent, m)

	market := marketplace.NewClient(fetch, limiter(cfg.Marketplace.RPS), marketplace.Config{
		SearchURL:     cfg.Marketplace.SearchURL,
		TradingURL:    cfg.Marketplace.TradingURL,
		OAuthURL:      cfg.Marketplace.OAuthURL,
		AccessToken:   cfg.Marketplace.AccessToken,
		ClientID:      cfg.Marketplace.ClientID,
		ClientSecret:  cfg.Marketplace.ClientSecret,
		DevID:         cfg.Marketplace.DevID,
		MarketplaceID: cfg.Marketplace.MarketplaceID,
		CategoryID:    cfg.Marketplace.CategoryID,
		Limit:         cfg.Marketplace.Limit,
		RPS:           cfg.Marketplace.RPS,
		CacheSize:     cfg.Marketplace.CacheSize,
		CacheTTL:      cfg.Marketplace.CacheTTL,
	})

	web := websearch.NewClient(fetch, limiter(cfg.WebSearch.RPS), websearch.Config{
		BaseURL:        cfg.WebSearch.BaseURL,
		APIKey:         cfg.WebSearch.APIKey,
		SearchEngineID: cfg.WebSearch.SearchEngineID,
	}, &logger)

	var enricherOps []enricher.Option
	if cfg.Catalog.Enabled {
		scraper, err := catalog.NewScraper(catalog.Config{
			BaseURL:     cfg.Catalog.BaseURL,
			UserAgent:   cfg.Catalog.UserAgent,
			Timeout:     cfg.Catalog.Timeout,
			Delay:       cfg.Catalog.Delay,
			RandomDelay: cfg.Catalog.RandomDelay,
		}, catalog.WithMetrics(m))
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't create catalog scraper")
		}
		enricherOps = append(enricherOps, enricher.WithCatalog(scraper))
	}

	completer := completion.NewClient(fetch, limiter(cfg.Completion.RPS), completion.Config{
		BaseURL:     cfg.Completion.BaseURL,
		APIKey:      cfg.Completion.APIKey,
		Model:       cfg.Completion.Model,
		Temperature: cfg.Completion.Temperature,
	})

	enr := enricher.NewEnricher(pg, market, web, &logger, enricherOps...)
	gen := content.NewGenerator(pg, completer, &logger, m)
	proc := processor.NewProcessor(pg, enr, gen, &logger,
		processor.WithGroupSize(cfg.Processing.GroupSize),
		processor.WithGroupDelay(cfg.Processing.GroupDelay),
		processor.WithDeadline(cfg.Processing.Deadline),
		processor.WithMetrics(m),
	)

	httpOps := []handler.HTTPOption{handler.WithMetrics(m)}

	// process batch commands are optional, HTTP functions work without broker
	var (
		amqpConnection *amqp.Connection
		consumer       *rabbitmq.RabbitMQ
	)
	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ connection")
		}

		consumer, err = rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Prefetch)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ consumer channel")
		}

		if err := consumer.Declare(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't declare RabbitMQ topology")
		}

		publisher, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Prefetch)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ publisher channel")
		}

		cmdr := commander.NewProcessBatchCommander(commander.NewRabbitMQSender(publisher, cfg.RabbitMQ.RoutingKey))
		httpOps = append(httpOps, handler.WithCommander(cmdr))

		// start consuming and handling messages
		if err := handler.NewHandler(consumer, proc, &logger).Start(ctx, cfg.RabbitMQ.Queue); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't start consuming")
		}
	}

	httpHandler := handler.NewHTTPHandler(pg, enr, gen, proc, importer.NewImporter(pg), &logger, httpOps...)
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpHandler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("http server failed")
			cancel()
		}
	}()

	logger.Info().
		Str("addr", cfg.HTTP.Addr).
		Bool("commands", consumer != nil).
		Bool("catalog", cfg.Catalog.Enabled).
		Msg("parts enricher up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shutdown http server gracefully")
	}

	// wait for consumer to finish
	if consumer != nil {
		<-consumer.Done()
	}

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if amqpConnection == nil {
			return
		}
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}

// limiter returns token bucket for single upstream dependency.
func limiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}
