package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/api"
	"github.com/AgentTarik/financas-api/internal/auth"
	"github.com/AgentTarik/financas-api/internal/config"
	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/internal/event"
	"github.com/AgentTarik/financas-api/internal/storage"
	"github.com/AgentTarik/financas-api/internal/usecase"
	"github.com/AgentTarik/financas-api/telemetry"
)

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("uuid4", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		id, err := uuid.Parse(s)
		if err != nil {
			return false
		}
		// v4
		return id.Version() == 4
	})
}

func main() {
	log, _ := telemetry.NewLogger()
	defer log.Sync()

	cfg := config.Load()
	telemetry.InitMetrics()

	// storage: Postgres quando configurado, memória caso contrário
	var (
		tagRepo  storage.TagRepo
		userRepo storage.UserRepo
		incomes  storage.TransactionRepo
		expenses storage.TransactionRepo
		dbPing   func(ctx context.Context) error
	)
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("postgres connect failed", zap.Error(err))
		}
		defer pg.Close()
		if err := storage.Migrate(pg.DB); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
		tagRepo, userRepo = pg, pg
		incomes, expenses = pg.Incomes(), pg.Expenses()
		dbPing = pg.Ping
		log.Info("using postgres storage")
	} else {
		mem := storage.NewMemoryStore()
		tagRepo, userRepo = mem, mem
		incomes, expenses = mem.Incomes(), mem.Expenses()
		log.Info("using in-memory storage")
	}

	// gauge parte do que já existe no armazenamento
	if n, err := tagRepo.CountTags(context.Background()); err == nil {
		telemetry.SetTagsTotal(n)
	}

	// validator
	v := validator.New()
	registerCustomValidations(v)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// eventos: publisher assíncrono quando o Kafka está configurado
	var notify func(domain.Transaction, usecase.Kind)
	if cfg.KafkaEnabled() {
		schemaValidator, err := event.NewValidator()
		if err != nil {
			log.Fatal("event schema load failed", zap.Error(err))
		}
		producer := event.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer producer.Close()

		publisher := event.NewPublisher(log, producer, schemaValidator, 100)
		go publisher.Run(ctx)
		notify = func(tx domain.Transaction, kind usecase.Kind) {
			publisher.Enqueue(event.NewTransactionRegistered(tx, string(kind)))
		}
	}

	// use cases
	tagService := usecase.NewTagService(log, tagRepo)
	registerIncome := usecase.NewRegisterTransaction(log, usecase.KindIncome, incomes, tagRepo, notify)
	registerExpense := usecase.NewRegisterTransaction(log, usecase.KindExpense, expenses, tagRepo, notify)
	summary := usecase.NewGenerateSummary(log, incomes, expenses)

	// handlers with dependencies
	h := &api.Handlers{
		Log:             log,
		V:               v,
		Tags:            tagService,
		RegisterIncome:  registerIncome,
		RegisterExpense: registerExpense,
		Summary:         summary,
		Incomes:         incomes,
		Expenses:        expenses,
		DBPing:          dbPing,
		KafkaEnabled:    cfg.KafkaEnabled(),
	}

	var (
		authHandlers *api.AuthHandlers
		authMW       gin.HandlerFunc
	)
	if cfg.AuthEnabled {
		issuer, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
		if err != nil {
			log.Fatal("jwt issuer init failed", zap.Error(err))
		}
		authHandlers = &api.AuthHandlers{Log: log, Users: userRepo, V: v, Tokens: issuer}
		authMW = auth.RequireAuth(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	}

	// gin engine
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.PrometheusMiddleware())

	// middleware de log http simples
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("dur", time.Since(start)),
		)
	})

	api.SetupRoutes(r, h, authHandlers, authMW)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("addr", cfg.HTTPAddr))

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	cancel()
	ctxTimeout, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctxTimeout)
	log.Info("server stopped")
}
