package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errEnvVarInvalid  error = errors.New("environment variable is invalid")
)

const (
	apiPortEnvKey            = "API_PORT"
	dbConnEnvKey             = "DB_CONNECTION_URL"
	jwtSecretEnvKey          = "JWT_SECRET"
	masterKeyEnvKey          = "MASTER_KEY"
	rpcURLEnvKey             = "RPC_URL"
	chainIDEnvKey            = "CHAIN_ID"
	deploymentsPathEnvKey    = "DEPLOYMENTS_PATH"
	confirmationsEnvKey      = "CONFIRMATIONS"
	watcherPollEnvKey        = "WATCHER_POLL_MS"
	watcherMaxRangeEnvKey    = "WATCHER_MAX_RANGE"
	rpcTimeoutEnvKey         = "RPC_TIMEOUT_MS"
	scryptNEnvKey            = "SCRYPT_N"
	decryptMaxAttemptsEnvKey = "DECRYPT_MAX_ATTEMPTS"
	decryptWindowEnvKey      = "DECRYPT_WINDOW_MIN"
	redisURLEnvKey           = "REDIS_URL"
	auditQueueSizeEnvKey     = "AUDIT_QUEUE_SIZE"
	daiAddressEnvKey         = "AMOY_MOCK_DAI"
)

type App struct {
	Port               string
	DBConnectionURL    string
	JWTSecret          string
	MasterKey          string
	RPCURL             string
	ChainID            int64
	DeploymentsPath    string
	Confirmations      uint64
	PollInterval       time.Duration
	MaxRange           uint64
	RPCTimeout         time.Duration
	ScryptN            int
	DecryptMaxAttempts int
	DecryptWindow      time.Duration
	RedisURL           string
	AuditQueueSize     int
	DAIAddress         string
}

// NewAppConfig reads the process environment, after loading an optional .env
// file. MASTER_KEY may be absent; key operations then fail on their own.
func NewAppConfig() (App, error) {
	_ = godotenv.Load()

	var (
		app App
		err error
	)

	required := []struct {
		key  string
		dest *string
	}{
		{apiPortEnvKey, &app.Port},
		{dbConnEnvKey, &app.DBConnectionURL},
		{jwtSecretEnvKey, &app.JWTSecret},
		{rpcURLEnvKey, &app.RPCURL},
	}
	for _, r := range required {
		value, ok := os.LookupEnv(r.key)
		if !ok || value == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, r.key)
		}
		*r.dest = value
	}

	rawChainID, ok := os.LookupEnv(chainIDEnvKey)
	if !ok || rawChainID == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, chainIDEnvKey)
	}
	app.ChainID, err = strconv.ParseInt(rawChainID, 10, 64)
	if err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, chainIDEnvKey, err)
	}

	app.MasterKey = os.Getenv(masterKeyEnvKey)
	app.RedisURL = os.Getenv(redisURLEnvKey)
	app.DAIAddress = os.Getenv(daiAddressEnvKey)
	app.DeploymentsPath = stringOr(deploymentsPathEnvKey, "deployments")

	if app.Confirmations, err = uintOr(confirmationsEnvKey, 6); err != nil {
		return App{}, err
	}
	if app.MaxRange, err = uintOr(watcherMaxRangeEnvKey, 2000); err != nil {
		return App{}, err
	}
	if app.MaxRange == 0 {
		return App{}, fmt.Errorf("%w: %s must be positive", errEnvVarInvalid, watcherMaxRangeEnvKey)
	}

	pollMs, err := uintOr(watcherPollEnvKey, 12000)
	if err != nil {
		return App{}, err
	}
	app.PollInterval = time.Duration(pollMs) * time.Millisecond

	timeoutMs, err := uintOr(rpcTimeoutEnvKey, 10000)
	if err != nil {
		return App{}, err
	}
	app.RPCTimeout = time.Duration(timeoutMs) * time.Millisecond

	scryptN, err := uintOr(scryptNEnvKey, 16384)
	if err != nil {
		return App{}, err
	}
	if scryptN <= 1 || scryptN&(scryptN-1) != 0 {
		return App{}, fmt.Errorf("%w: %s must be a power of two above 1", errEnvVarInvalid, scryptNEnvKey)
	}
	app.ScryptN = int(scryptN)

	attempts, err := uintOr(decryptMaxAttemptsEnvKey, 5)
	if err != nil {
		return App{}, err
	}
	app.DecryptMaxAttempts = int(attempts)

	windowMin, err := uintOr(decryptWindowEnvKey, 15)
	if err != nil {
		return App{}, err
	}
	app.DecryptWindow = time.Duration(windowMin) * time.Minute

	queueSize, err := uintOr(auditQueueSizeEnvKey, 1024)
	if err != nil {
		return App{}, err
	}
	app.AuditQueueSize = int(queueSize)

	return app, nil
}

func stringOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func uintOr(key string, fallback uint64) (uint64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	return parsed, nil
}
