package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/you-humble/pcbuilder/internal/client/gemini"
	"github.com/you-humble/pcbuilder/internal/client/imagesearch"
	"github.com/you-humble/pcbuilder/internal/config"
	"github.com/you-humble/pcbuilder/internal/converter"
	"github.com/you-humble/pcbuilder/internal/matcher"
	"github.com/you-humble/pcbuilder/internal/migrator"
	"github.com/you-humble/pcbuilder/internal/model"
	buildrepo "github.com/you-humble/pcbuilder/internal/repository/build"
	catalogrepo "github.com/you-humble/pcbuilder/internal/repository/catalog"
	prebuiltrepo "github.com/you-humble/pcbuilder/internal/repository/prebuilt"
	advisorsvc "github.com/you-humble/pcbuilder/internal/service/advisor"
	buildsvc "github.com/you-humble/pcbuilder/internal/service/build"
	catalogsvc "github.com/you-humble/pcbuilder/internal/service/catalog"
	usageconsumer "github.com/you-humble/pcbuilder/internal/service/consumer/usage"
	prebuiltsvc "github.com/you-humble/pcbuilder/internal/service/prebuilt"
	usageproducer "github.com/you-humble/pcbuilder/internal/service/producer/usage"
	advisorhttp "github.com/you-humble/pcbuilder/internal/transport/http/advisor/v1"
	buildhttp "github.com/you-humble/pcbuilder/internal/transport/http/build/v1"
	cataloghttp "github.com/you-humble/pcbuilder/internal/transport/http/catalog/v1"
	prebuilthttp "github.com/you-humble/pcbuilder/internal/transport/http/prebuilt/v1"
	"github.com/you-humble/pcbuilder/platform/closer"
	"github.com/you-humble/pcbuilder/platform/kafka"
	"github.com/you-humble/pcbuilder/platform/kafka/consumer"
	"github.com/you-humble/pcbuilder/platform/kafka/middleware"
	"github.com/you-humble/pcbuilder/platform/kafka/producer"
	"github.com/you-humble/pcbuilder/platform/logger"
)

type Converter interface {
	PartUsageToPayload(m model.PartUsage) ([]byte, error)
	PartUsageToModel(data []byte) (model.PartUsage, error)
}

type UsageConsumer interface {
	RunPartUsageConsume(ctx context.Context) error
}

type CatalogRepository interface {
	catalogsvc.CatalogRepository
	matcher.VersionedCatalog
	usageconsumer.UsageRecorder
}

type CatalogService interface {
	cataloghttp.CatalogService
	advisorsvc.Hydrator
	buildsvc.PriceCalculator
	buildsvc.PartDetailer
}

type Registrar interface {
	Register(r chi.Router)
}

type di struct {
	dbPool             *pgxpool.Pool
	migrator           *migrator.Migrator
	catalogRepository  CatalogRepository
	buildRepository    buildsvc.BuildRepository
	prebuiltRepository prebuiltsvc.PrebuiltRepository

	corpusSource advisorsvc.CorpusSource
	oracle       advisorsvc.Oracle
	imageSearch  advisorsvc.ImageSearcher

	consumerGroup     sarama.ConsumerGroup
	partUsageConsumer kafka.Consumer
	usageConsumer     UsageConsumer

	syncProducer      sarama.SyncProducer
	partUsageProducer kafka.Producer
	usageProducer     buildsvc.UsageProducer

	conv Converter

	catalogService  CatalogService
	advisorService  advisorhttp.AdvisorService
	buildService    buildhttp.BuildService
	prebuiltService prebuilthttp.PrebuiltService

	advisorHandler  Registrar
	catalogHandler  Registrar
	buildHandler    Registrar
	prebuiltHandler Registrar

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) CatalogRepository(ctx context.Context) CatalogRepository {
	if d.catalogRepository == nil {
		d.catalogRepository = catalogrepo.NewCatalogRepository(d.DBPool(ctx))
	}

	return d.catalogRepository
}

func (d *di) BuildRepository(ctx context.Context) buildsvc.BuildRepository {
	if d.buildRepository == nil {
		d.buildRepository = buildrepo.NewBuildRepository(d.DBPool(ctx))
	}

	return d.buildRepository
}

func (d *di) PrebuiltRepository(ctx context.Context) prebuiltsvc.PrebuiltRepository {
	if d.prebuiltRepository == nil {
		d.prebuiltRepository = prebuiltrepo.NewPrebuiltRepository(d.DBPool(ctx))
	}

	return d.prebuiltRepository
}

func (d *di) CorpusSource(ctx context.Context) advisorsvc.CorpusSource {
	if d.corpusSource == nil {
		if config.C().Matcher.CorpusCache() {
			d.corpusSource = matcher.NewCorpusCache(d.CatalogRepository(ctx))
		} else {
			d.corpusSource = matcher.NewDirectCorpus(d.CatalogRepository(ctx))
		}
	}

	return d.corpusSource
}

func (d *di) Oracle(ctx context.Context) advisorsvc.Oracle {
	if d.oracle == nil {
		cfg := config.C().Oracle

		c, err := gemini.NewClient(ctx, cfg.APIKey(), cfg.Model(), cfg.Temperature(), cfg.Timeout())
		if err != nil {
			panic(fmt.Sprintf("failed to create gemini client %s: %v", cfg.Model(), err))
		}

		closer.AddNamed("Gemini client",
			func(ctx context.Context) error {
				return c.Close()
			})

		d.oracle = c
	}

	return d.oracle
}

func (d *di) ImageSearch(ctx context.Context) advisorsvc.ImageSearcher {
	if d.imageSearch == nil {
		cfg := config.C().ImageSearch

		c, err := imagesearch.NewClient(ctx, cfg.APIKey(), cfg.EngineID(), cfg.Timeout())
		if err != nil {
			panic(fmt.Sprintf("failed to create image search client: %v", err))
		}

		d.imageSearch = c
	}

	return d.imageSearch
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.PartUsageConsumerConfig(),
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

func (d *di) PartUsageConsumer(ctx context.Context) kafka.Consumer {
	if d.partUsageConsumer == nil {
		d.partUsageConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.PartUsageTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.partUsageConsumer
}

func (d *di) UsageConsumer(ctx context.Context) UsageConsumer {
	if d.usageConsumer == nil {
		d.usageConsumer = usageconsumer.NewUsageConsumer(
			d.PartUsageConsumer(ctx),
			d.KafkaConverter(ctx),
			d.CatalogRepository(ctx),
		)
	}

	return d.usageConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.PartUsageProducerConfig(),
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

func (d *di) PartUsageProducer(ctx context.Context) kafka.Producer {
	if d.partUsageProducer == nil {
		d.partUsageProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.PartUsageTopic(),
			logger.L(),
		)
	}

	return d.partUsageProducer
}

func (d *di) UsageProducer(ctx context.Context) buildsvc.UsageProducer {
	if d.usageProducer == nil {
		d.usageProducer = usageproducer.NewUsageProducer(
			d.PartUsageProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.usageProducer
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalogsvc.NewCatalogService(
			d.CatalogRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.catalogService
}

func (d *di) AdvisorService(ctx context.Context) advisorhttp.AdvisorService {
	if d.advisorService == nil {
		strict, loose := matcherConfigs(ctx, config.C().Matcher)

		d.advisorService = advisorsvc.NewAdvisorService(
			d.Oracle(ctx),
			d.ImageSearch(ctx),
			d.CorpusSource(ctx),
			d.CatalogService(ctx),
			strict,
			loose,
		)
	}

	return d.advisorService
}

func (d *di) BuildService(ctx context.Context) buildhttp.BuildService {
	if d.buildService == nil {
		d.buildService = buildsvc.NewBuildService(
			d.BuildRepository(ctx),
			d.CatalogService(ctx),
			d.CatalogService(ctx),
			d.UsageProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.buildService
}

func (d *di) PrebuiltService(ctx context.Context) prebuilthttp.PrebuiltService {
	if d.prebuiltService == nil {
		d.prebuiltService = prebuiltsvc.NewPrebuiltService(
			d.PrebuiltRepository(ctx),
			d.CatalogService(ctx),
			d.CatalogService(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.prebuiltService
}

func (d *di) AdvisorHandler(ctx context.Context) Registrar {
	if d.advisorHandler == nil {
		d.advisorHandler = advisorhttp.NewAdvisorHandler(d.AdvisorService(ctx))
	}

	return d.advisorHandler
}

func (d *di) CatalogHandler(ctx context.Context) Registrar {
	if d.catalogHandler == nil {
		d.catalogHandler = cataloghttp.NewCatalogHandler(d.CatalogService(ctx))
	}

	return d.catalogHandler
}

func (d *di) BuildHandler(ctx context.Context) Registrar {
	if d.buildHandler == nil {
		d.buildHandler = buildhttp.NewBuildHandler(d.BuildService(ctx))
	}

	return d.buildHandler
}

func (d *di) PrebuiltHandler(ctx context.Context) Registrar {
	if d.prebuiltHandler == nil {
		d.prebuiltHandler = prebuilthttp.NewPrebuiltHandler(d.PrebuiltService(ctx))
	}

	return d.prebuiltHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

// matcherConfigs applies the configured thresholds to the strict and loose presets.
// Strict overrides tune the build flow, loose overrides the compatibility flow.
func matcherConfigs(ctx context.Context, cfg config.Matcher) (strict, loose matcher.Config) {
	strict = matcher.Strict().
		WithThreshold(cfg.StrictThreshold()).
		WithCategoryThresholds(categoryThresholds(ctx, cfg.CategoryThresholds()))
	loose = matcher.Loose().
		WithThreshold(cfg.LooseThreshold()).
		WithCategoryThresholds(categoryThresholds(ctx, cfg.LooseCategoryThresholds()))

	return strict, loose
}

func categoryThresholds(ctx context.Context, raw map[string]float64) map[model.Category]float64 {
	overrides := make(map[model.Category]float64, len(raw))
	for name, threshold := range raw {
		category, ok := model.ParseCategory(name)
		if !ok {
			logger.Warn(ctx, "unknown category in matcher thresholds", logger.String("category", name))
			continue
		}
		overrides[category] = threshold
	}
	return overrides
}
