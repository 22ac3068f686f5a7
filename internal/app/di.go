package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	catalogclient "github.com/you-humble/partexplorer/internal/client/http/catalog/v1"
	"github.com/you-humble/partexplorer/internal/config"
	"github.com/you-humble/partexplorer/internal/converter"
	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/internal/repository/cache"
	searchconsumer "github.com/you-humble/partexplorer/internal/service/consumer/search"
	"github.com/you-humble/partexplorer/internal/service/dispatcher"
	"github.com/you-humble/partexplorer/internal/service/lifecycle"
	searchproducer "github.com/you-humble/partexplorer/internal/service/producer/search"
	"github.com/you-humble/partexplorer/internal/service/reference"
	"github.com/you-humble/partexplorer/internal/service/session"
	"github.com/you-humble/partexplorer/internal/service/trending"
	"github.com/you-humble/partexplorer/internal/service/view"
	"github.com/you-humble/partexplorer/internal/transport/http/health"
	thttp "github.com/you-humble/partexplorer/internal/transport/http/search/v1"
	"github.com/you-humble/partexplorer/platform/closer"
	"github.com/you-humble/partexplorer/platform/kafka"
	"github.com/you-humble/partexplorer/platform/kafka/consumer"
	"github.com/you-humble/partexplorer/platform/kafka/middleware"
	"github.com/you-humble/partexplorer/platform/kafka/producer"
	"github.com/you-humble/partexplorer/platform/logger"
)

type Converter interface {
	searchproducer.Converter
	searchconsumer.Converter
}

type CatalogClient interface {
	lifecycle.CatalogClient
	reference.CatalogClient
}

type ReferenceService interface {
	thttp.ReferenceService
	view.CompanyMatcher
	Load(ctx context.Context) error
}

type TrendingService interface {
	thttp.TrendingService
	searchconsumer.Recorder
}

type SessionRegistry interface {
	thttp.SessionService
	RunJanitor(ctx context.Context, interval time.Duration) error
	Close(ctx context.Context) error
}

type SearchConsumer interface {
	RunSearchPerformedConsume(ctx context.Context) error
}

type di struct {
	catalogClient CatalogClient

	redisClient *redis.Client
	sharedCache cache.Store

	reference ReferenceService
	trending  TrendingService

	conv Converter

	syncProducer            sarama.SyncProducer
	searchPerformedProducer kafka.Producer
	searchPublisher         view.SearchPublisher
	consumerGroup           sarama.ConsumerGroup
	searchPerformedConsumer kafka.Consumer
	searchConsumer          SearchConsumer

	sessions SessionRegistry
	handler  http.Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) CatalogClient(_ context.Context) CatalogClient {
	if d.catalogClient == nil {
		cfg := config.C()

		d.catalogClient = catalogclient.NewClient(
			&http.Client{Timeout: cfg.Catalog.Timeout()},
			cfg.Catalog.BaseURL(),
		)
	}

	return d.catalogClient
}

// RedisClient is nil when the shared cache tier is disabled.
func (d *di) RedisClient(ctx context.Context) *redis.Client {
	if d.redisClient == nil && config.C().Redis.Enabled() {
		cfg := config.C().Redis

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})

		closer.AddNamed("Redis client", func(ctx context.Context) error {
			return client.Close()
		})

		if err := client.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis %s: %v\n", cfg.Addr(), err))
		}

		d.redisClient = client
	}

	return d.redisClient
}

// SharedCache returns a nil Store when redis is disabled.
func (d *di) SharedCache(ctx context.Context) cache.Store {
	if d.sharedCache == nil {
		client := d.RedisClient(ctx)
		if client == nil {
			return nil
		}
		d.sharedCache = cache.NewRedisCache(client, config.C().Redis.TTL())
	}

	return d.sharedCache
}

func (d *di) ReferenceService(ctx context.Context) ReferenceService {
	if d.reference == nil {
		cfg := config.C().Catalog

		d.reference = reference.NewReferenceService(
			d.CatalogClient(ctx),
			cfg.RetryAttempts(),
			cfg.RetryBaseDelay(),
		)
	}

	return d.reference
}

func (d *di) TrendingService(_ context.Context) TrendingService {
	if d.trending == nil {
		d.trending = trending.NewTrendingService()
	}

	return d.trending
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.SearchPerformedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) SearchPerformedProducer(ctx context.Context) kafka.Producer {
	if d.searchPerformedProducer == nil {
		d.searchPerformedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.SearchPerformedTopic(),
			logger.L(),
		)
	}

	return d.searchPerformedProducer
}

// SearchPublisher feeds the trending service directly when kafka is
// disabled.
func (d *di) SearchPublisher(ctx context.Context) view.SearchPublisher {
	if d.searchPublisher == nil {
		if config.C().Kafka.Enabled() {
			d.searchPublisher = searchproducer.NewSearchProducer(
				d.SearchPerformedProducer(ctx),
				d.KafkaConverter(ctx),
			)
		} else {
			d.searchPublisher = localPublisher{recorder: d.TrendingService(ctx)}
		}
	}

	return d.searchPublisher
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.SearchPerformedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) SearchPerformedConsumer(ctx context.Context) kafka.Consumer {
	if d.searchPerformedConsumer == nil {
		d.searchPerformedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.SearchPerformedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.searchPerformedConsumer
}

func (d *di) SearchConsumer(ctx context.Context) SearchConsumer {
	if d.searchConsumer == nil {
		d.searchConsumer = searchconsumer.NewSearchConsumer(
			d.SearchPerformedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.TrendingService(ctx),
		)
	}

	return d.searchConsumer
}

// SessionRegistry resolves every shared dependency up front so the session
// factory never touches the lazy getters from request goroutines.
func (d *di) SessionRegistry(ctx context.Context) SessionRegistry {
	if d.sessions == nil {
		cfg := config.C()

		client := d.CatalogClient(ctx)
		shared := d.SharedCache(ctx)
		companies := d.ReferenceService(ctx)
		publisher := d.SearchPublisher(ctx)
		timeout := cfg.Catalog.Timeout()

		factory := func(id uuid.UUID) (session.View, session.Purger) {
			responses := cache.NewLayeredCache(cache.NewMemoryCache(cache.KeepForSession()), shared)
			manager := lifecycle.NewManager(dispatcher.NewDispatcher(), client, responses, timeout)

			return view.NewController(id, manager, companies, publisher), responses
		}

		registry := session.NewRegistry(factory, cfg.Session.IdleTTL())
		closer.AddNamed("Session registry", registry.Close)

		d.sessions = registry
	}

	return d.sessions
}

func (d *di) SearchHandler(ctx context.Context) http.Handler {
	if d.handler == nil {
		d.handler = thttp.NewSearchHandler(
			d.SessionRegistry(ctx),
			d.ReferenceService(ctx),
			d.TrendingService(ctx),
		).Routes()
	}

	return d.handler
}

func (d *di) HealthProbes(ctx context.Context) map[string]health.Probe {
	probes := map[string]health.Probe{}
	if client := d.RedisClient(ctx); client != nil {
		probes["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}
	return probes
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

type localPublisher struct {
	recorder searchconsumer.Recorder
}

func (p localPublisher) SendSearchPerformed(ctx context.Context, event model.SearchPerformed) error {
	return p.recorder.Record(ctx, event)
}
