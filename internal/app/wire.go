//go:build wireinject
// +build wireinject

package app

import (
	"fmt"

	"github.com/bytebury/ctrunner/config"
	"github.com/bytebury/ctrunner/internal/delivery/http"
	"github.com/bytebury/ctrunner/internal/delivery/http/middleware"
	"github.com/bytebury/ctrunner/internal/delivery/http/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/wire"

	userHandler "github.com/bytebury/ctrunner/internal/domains/users/handler"
	userRepository "github.com/bytebury/ctrunner/internal/domains/users/repository"
	userService "github.com/bytebury/ctrunner/internal/domains/users/service"

	townHandler "github.com/bytebury/ctrunner/internal/domains/towns/handler"
	townRepository "github.com/bytebury/ctrunner/internal/domains/towns/repository"
	townService "github.com/bytebury/ctrunner/internal/domains/towns/service"

	raceHandler "github.com/bytebury/ctrunner/internal/domains/races/handler"
	raceRepository "github.com/bytebury/ctrunner/internal/domains/races/repository"
	raceService "github.com/bytebury/ctrunner/internal/domains/races/service"

	"github.com/bytebury/ctrunner/pkg/httpserver"
	"github.com/bytebury/ctrunner/pkg/jwt"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/bytebury/ctrunner/pkg/postgres"
	"github.com/bytebury/ctrunner/pkg/redis"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	JWT        *jwt.JWT
}

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	userHandler.New,
	wire.Bind(new(userRepository.Querier), new(*userRepository.Queries)),
	wire.Bind(new(middleware.UserResolver), new(userService.UserService)),
)

var townDomain = wire.NewSet(
	townRepository.New,
	townService.New,
	townHandler.New,
	wire.Bind(new(townRepository.Querier), new(*townRepository.Queries)),
)

var raceDomain = wire.NewSet(
	raceRepository.New,
	raceService.New,
	raceHandler.New,
	wire.Bind(new(raceRepository.Querier), new(*raceRepository.Queries)),
)

var domains = wire.NewSet(
	userDomain,
	townDomain,
	raceDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		wire.Bind(new(logger.Interface), new(*logger.Logger)),
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,

		domains,
		middleware.NewAuth,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

func provideHTTPServer(cfg *config.Config, l logger.Interface, h http.Handlers) *httpserver.Server {
	server := httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Name(cfg.App.Name),
		httpserver.ErrorHandler(response.ErrorHandler),
	)

	http.NewRouter(
		server.App,
		cfg,
		l,
		h,
	)

	return server
}

func provideLogger(cfg *config.Config) *logger.Logger {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) (*jwt.JWT, error) {
	jwt.Initialize(cfg.App.Name, cfg.JWT.Secret, jwt.ParseDuration(cfg.JWT.Expiry))

	return jwt.GetInstance()
}

func providePostgres(cfg *config.Config, l *logger.Logger) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode)

	return postgres.New(dsn,
		postgres.MaxPoolSize(cfg.Pg.PoolMax),
		postgres.Logger(l, cfg.Log.SQLLevel),
	)
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
