package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/partlane/go-backend/internal/cfg"
	v1Http "github.com/partlane/go-backend/internal/delivery/v1/http"
	"github.com/partlane/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/partlane/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/partlane/go-backend/internal/repository/minio"
	"github.com/partlane/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/partlane/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/partlane/go-backend/internal/repository/redis"
	redisConv "github.com/partlane/go-backend/internal/repository/redis/converter/generated"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/clients"
	"github.com/partlane/go-backend/pkg/closer"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/logger"
	"github.com/partlane/go-backend/pkg/postgres"
)

const (
	ensureTopicTimeout = 10 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// App собирает зависимости и управляет жизненным циклом приложения.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
	authUC  *usecase.AuthUseCase
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	catConv := pgdbConv.NewCategoryConverterImpl()
	manConv := pgdbConv.NewManufacturerConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	manufacturerRepo := pgdb.NewManufacturerRepo(db.Pool, manConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	credentialRepo := pgdb.NewCredentialRepo(db.Pool)
	sessionRepo := pgdb.NewSessionRepo(db.Pool, userConv)
	quotationRepo := pgdb.NewQuotationRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)
	draftRepo := redis.NewDraftRepo(redisClient, cfg.Redis)
	idempotencyRepo := redis.NewIdempotencyRepo(redisClient, cfg.Redis)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	authUC := usecase.NewAuthUC(userRepo, credentialRepo, sessionRepo, db.Pool, cfg.Auth, log)
	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, manufacturerRepo, cacheRepo, log)
	draftUC := usecase.NewDraftUC(draftRepo, productRepo, cacheRepo, log)
	quotationUC := usecase.NewQuotationUC(quotationRepo, productRepo, cacheRepo, draftRepo, idempotencyRepo, outboxRepo, db.Pool, log)
	uploadUC := usecase.NewUploadUC(imagesInfra, cfg.Minio, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(cfg.Auth, cfg.Minio, authUC, catalogUC, draftUC, quotationUC, uploadUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		worker:  worker,
		authUC:  authUC,
		closer:  cl,
	}, nil
}

// Run запускает приложение и блокируется до сигнала завершения или фатальной ошибки.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bootCtx, bootCancel := context.WithTimeout(ctx, 10*time.Second)
	defer bootCancel()
	if err := a.authUC.EnsureAdmin(bootCtx); err != nil {
		a.logger.Errorf(err, "failed to bootstrap admin account")
		return err
	}

	a.worker.Start(ctx)
	a.closer.Add(func(ctx context.Context) error {
		a.worker.Stop()
		return nil
	})

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()
	a.closer.Add(func(ctx context.Context) error {
		return a.httpSrv.Stop(ctx)
	})

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
