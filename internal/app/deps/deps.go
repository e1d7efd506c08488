package deps

import (
	"context"
	"exchanger/internal/config"
	"exchanger/internal/core/domain/currency"
	"exchanger/internal/core/domain/event"
	dl "exchanger/internal/core/domain/logging"
	drl "exchanger/internal/core/domain/rate_limiter"
	"exchanger/internal/core/domain/user"
	dbcurrency "exchanger/internal/db/currency"
	dbevent "exchanger/internal/db/event"
	dbuser "exchanger/internal/db/user"
	"exchanger/internal/implementations/email"
	"exchanger/internal/implementations/logging"
	passwordhasher "exchanger/internal/implementations/password_hasher"
	ratelimiter "exchanger/internal/implementations/rate_limiter"
	resettoken "exchanger/internal/implementations/reset_token"
	"exchanger/internal/implementations/session"
	"exchanger/internal/implementations/sms"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	UserRepository     user.UserRepository
	EventRepository    event.EventRepository
	CurrencyRepository currency.CurrencyRepository

	RateLimiter drl.RateLimiter

	PasswordHasher    user.PasswordHasher
	PasswordResetter  user.PasswordResetter
	TokenPairIssuer   user.TokenPairIssuer
	AccessTokenParser user.AccessTokenParser

	EmailResetLinkSender user.PasswordResetLinkSender
	SmsResetLinkSender   user.PasswordResetLinkSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.EventRepository = dbevent.NewPgxRepository(deps.DB)
	deps.CurrencyRepository = dbcurrency.NewPgxRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.PasswordHasher = passwordhasher.NewBcrypt(
		deps.Config.Secret,
		deps.Config.BcryptHasherCost,
	)
	deps.PasswordResetter = resettoken.NewTimeBucket(
		deps.Config.ResetTokenBucketSeconds,
		deps.Config.ResetTokenWindowBuckets,
		deps.Now,
	)

	jwt := session.NewJWT(
		deps.Config.Secret,
		deps.Config.TokenIssuer,
		deps.Config.AccessTokenTTL,
		deps.Config.RefreshTokenTTL,
		deps.Now,
	)
	deps.TokenPairIssuer = jwt
	deps.AccessTokenParser = jwt

	deps.EmailResetLinkSender = email.NewResetLinkSender(
		deps.AwsConfig,
		deps.Config.PasswordResetEmailFrom,
		deps.Config.PasswordResetEmailSubject,
	)
	deps.SmsResetLinkSender = sms.NewResetLinkSender(deps.AwsConfig)

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
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

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
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

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDSN == "" {
		return func() {}
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              deps.Config.SentryDSN,
		TracesSampleRate: 0.01,
	})
	if err != nil {
		panic(fmt.Sprintf("could not init Sentry: %v\n", err))
	}
	return func() { sentry.Flush(2 * time.Second) }
}
