package deps

import (
	"context"
	"signup/internal/config"
	"signup/internal/core/domain/controller"
	dl "signup/internal/core/domain/logging"
	drl "signup/internal/core/domain/rate_limiter"
	emailvalidator "signup/internal/implementations/email_validator"
	"signup/internal/implementations/logging"
	ratelimiter "signup/internal/implementations/rate_limiter"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	Redis *redis.Client

	Now func() time.Time

	EmailValidator controller.EmailValidator
	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter drl.RateLimiter
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closeRedisClient := deps.initRedisClient()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.EmailValidator = deps.initEmailValidator()
	if deps.Redis != nil {
		deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	}

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger, err := logging.NewZapLogger(deps.Config.LogLevel, deps.Config.IsTestMode)
	if err != nil {
		panic(err)
	}
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRedisClient() func() {
	if !deps.Config.IsRateLimitEnabled() {
		deps.Logger.Info(context.Background(), "Redis URL is not set, rate limiting is disabled.")
		return func() {}
	}

	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not parse Redis URL.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initEmailValidator() controller.EmailValidator {
	emailValidator, err := emailvalidator.New(deps.Config.EmailValidator, deps.Config.MaxEmailLength)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create email validator.", dl.Entry("err", err))
		panic(err)
	}
	return emailValidator
}
