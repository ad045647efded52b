package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"craftguide-be/internal/config"
	"craftguide-be/internal/controller"
	"craftguide-be/internal/pkg/logger"
	"craftguide-be/internal/pkg/serverutils"
	"craftguide-be/internal/repository/contract"
	"craftguide-be/internal/repository/implementation"
	"craftguide-be/internal/repository/memory"
	"craftguide-be/internal/service"
	"craftguide-be/pkg/analytics"
	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/llm"
	"craftguide-be/pkg/llm/factory"
	"craftguide-be/pkg/rag/prompt"
	"craftguide-be/pkg/rag/response"
	"craftguide-be/pkg/rag/search"
	"craftguide-be/pkg/tools"

	pkgEvents "craftguide-be/pkg/events"
	pktNats "craftguide-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// KnowledgeCitedTopic carries cited article ids to the view counter.
const KnowledgeCitedTopic = pkgEvents.TypeKnowledgeCited

type Container struct {
	// Controllers
	GuidanceController  controller.IGuidanceController
	KnowledgeController controller.IKnowledgeController
	ToolController      controller.IToolController
	HealthController    controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// corpus is whichever store serves the knowledge base.
type corpus interface {
	knowledge.Store
	knowledge.Tracker
}

// NewContainer wires the application. A nil db serves the YAML corpus from
// memory; optional infrastructure (NATS, Redis) degrades to in-process
// fallbacks with a warning.
func NewContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 1. Knowledge store
	store, storeKind, countArticles, err := newKnowledgeStore(cfg, db)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Using knowledge store: %s", storeKind)

	// 2. Repositories
	var feedbackRepo contract.GuidanceFeedbackRepository
	if db != nil {
		feedbackRepo = implementation.NewGuidanceFeedbackRepository(db)
	} else {
		feedbackRepo = memory.NewGuidanceFeedbackRepository()
	}
	recordRepo := c.newRecordRepository(cfg)

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var sink analytics.Sink
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			sink = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}
	eventsLogger := logger.NewIsolatedLogger("logs/events.log")
	eventPublisher := analytics.NewPublisher(sink, eventsLogger)

	// 4. Generation
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		providerBaseURL(cfg.Ai),
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	retrying := llm.NewRetryingProvider(llmProvider, cfg.Ai.Retries, 500*time.Millisecond)

	// 5. Engine
	ranker := search.NewRanker(store, nil)
	recommender := tools.NewRecommender(tools.DefaultCatalog())

	composerCfg := response.DefaultConfig()
	composerCfg.CitationLimit = cfg.Guidance.CitationLimit
	composerCfg.GenerationTimeout = cfg.Guidance.GenerationTimeout
	composer := response.NewComposer(
		ranker,
		response.NewLLMGenerator(retrying, prompt.NewBuilder()),
		recommender,
		composerCfg,
		sysLogger,
	)

	// 6. Services
	publisherService := service.NewPublisherService(KnowledgeCitedTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, KnowledgeCitedTopic, store, sysLogger)

	guidanceService := service.NewGuidanceService(
		composer,
		recordRepo,
		feedbackRepo,
		store,
		publisherService,
		eventPublisher,
		sysLogger,
	)

	// 7. Controllers
	c.GuidanceController = controller.NewGuidanceController(guidanceService, serverutils.NewJwtMiddleware(cfg.App.JwtSecret))
	c.KnowledgeController = controller.NewKnowledgeController(service.NewKnowledgeService(ranker))
	c.ToolController = controller.NewToolController(service.NewToolService(recommender))
	c.HealthController = controller.NewHealthController(storeKind, countArticles)

	return c, nil
}

func newKnowledgeStore(cfg *config.Config, db *gorm.DB) (corpus, string, controller.CorpusCounter, error) {
	if db != nil {
		repo := implementation.NewKnowledgeRepository(db)
		count := func() (int64, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return repo.Count(ctx)
		}
		return repo, "postgres", count, nil
	}

	articles, err := knowledge.LoadCorpusFile(cfg.Knowledge.CorpusPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to load knowledge corpus: %w", err)
	}
	store, err := knowledge.NewMemoryStore(articles)
	if err != nil {
		return nil, "", nil, err
	}
	count := func() (int64, error) { return int64(store.Len()), nil }
	return store, "memory", count, nil
}

func (c *Container) newRecordRepository(cfg *config.Config) contract.GuidanceRecordRepository {
	if cfg.App.RedisURL == "" {
		return memory.NewGuidanceRecordRepository(cfg.Guidance.RecordTTL)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (guidance records kept in memory)", err)
		_ = rdb.Close()
		return memory.NewGuidanceRecordRepository(cfg.Guidance.RecordTTL)
	}

	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return implementation.NewGuidanceRecordRedisRepository(rdb, cfg.Guidance.RecordTTL)
}

func providerBaseURL(ai config.AIConfig) string {
	if ai.LLMProvider == "ollama" {
		return ai.OllamaBaseURL
	}
	return ai.OpenAIBaseURL
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
