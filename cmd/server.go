package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"custodian/internal/audit"
	"custodian/internal/config"
	"custodian/internal/core"
	"custodian/internal/db"
	"custodian/internal/envelope"
	"custodian/internal/ethereum"
	"custodian/internal/hdwallet"
	"custodian/internal/http/handler"
	"custodian/internal/http/handler/middleware"
	"custodian/internal/http/payload"
	"custodian/internal/http/server"
	"custodian/internal/ledger"
	"custodian/internal/ratelimit"
	"custodian/internal/repository"
	"custodian/internal/verification"
	"custodian/internal/watcher"
	"custodian/pkg/jwt"
	"custodian/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("custodian", zapcore.InfoLevel)
	defer logger.Sync()

	cfg, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewRepository(dbConn)
	if err = repo.Migrate(ctx); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// audit trail is written off the request path
	recorder := audit.NewRecorder(logger, repo, cfg.AuditQueueSize)
	go recorder.Run(ctx)

	limiter, err := newLimiter(ctx, logger, cfg)
	if err != nil {
		return err
	}

	// key custody
	sealer := envelope.NewSealer(cfg.MasterKey, envelope.WithWorkFactor(cfg.ScryptN))
	if err = sealer.Ready(); err != nil {
		// key operations keep failing with a configuration error until MASTER_KEY is fixed
		logger.Warnw("key custody is disabled", "error", err)
	}
	keys := hdwallet.NewKeyService(logger, repo, sealer, limiter, recorder)
	book := ledger.NewLedger(logger, repo, recorder)

	// chain access
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err)
		return err
	}
	defer client.Close()

	node := ethereum.NewNodeService(logger, client, cfg.RPCTimeout)
	if err = checkChainID(ctx, node, cfg.ChainID); err != nil {
		logger.Errorw("rpc endpoint is on the wrong chain", "error", err)
		return err
	}

	tokens := config.NewTokenRegistry(cfg.DAIAddress)
	deployment, err := config.LoadDeployment(cfg.DeploymentsPath, cfg.ChainID)
	if err != nil {
		logger.Errorw("failed to load deployment descriptor",
			"chain_id", cfg.ChainID,
			"error", err)
		return err
	}
	tokens.Override(config.NetworkPolygonAmoy, deployment.Tokens)

	// deposit watcher
	if vault, ok := deployment.VaultAddress(); ok {
		w := watcher.NewWatcher(logger, watcher.Config{
			Vault:         vault,
			Network:       config.NetworkPolygonAmoy,
			ChainID:       cfg.ChainID,
			Confirmations: cfg.Confirmations,
			PollInterval:  cfg.PollInterval,
			MaxRange:      cfg.MaxRange,
		}, node, book, repo, tokens)
		go w.Run(ctx)
	} else {
		logger.Warnw("deployment has no vault, deposit watcher disabled",
			"network", deployment.Network)
	}

	swapContract, _ := deployment.SwapAddress()
	verifier := verification.NewService(logger, node, tokens, cfg.ChainID, swapContract)

	// custodian
	settler := core.NewSettler(logger, verifier, repo, tokens, book, cfg.ChainID)
	custodian := core.NewCustodian(logger, repo, keys, book, settler)

	// handler
	custodyHlr := handler.NewCustodyHandler(
		logger,
		payload.DecodeValidator{},
		custodian)

	// middleware
	mux := http.NewServeMux()
	custodyHlr.Register(mux)

	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))
	hdlr := middleware.NewAuthMiddleware(logger, jwtService).Authenticate(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

// newLimiter shares the export budget across replicas when redis is configured.
func newLimiter(ctx context.Context, logger *zap.SugaredLogger, app config.App) (hdwallet.Limiter, error) {
	if app.RedisURL == "" {
		return ratelimit.NewWindowLimiter(app.DecryptMaxAttempts, app.DecryptWindow), nil
	}

	opts, err := redis.ParseURL(app.RedisURL)
	if err != nil {
		logger.Errorw("invalid redis url", "error", err)
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Errorw("redis connection failed", "error", err)
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return ratelimit.NewRedisLimiter(client, "custody:key-export", app.DecryptMaxAttempts, app.DecryptWindow), nil
}

func checkChainID(ctx context.Context, node *ethereum.NodeService, expected int64) error {
	chainID, err := node.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}
	if !chainID.IsInt64() || chainID.Int64() != expected {
		return fmt.Errorf("node reports chain %s, configured %d", chainID, expected)
	}
	return nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
