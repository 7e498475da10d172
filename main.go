package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nhanhuynh123/pathgrid/api"
	boardapi "github.com/nhanhuynh123/pathgrid/api/board"
	api_i "github.com/nhanhuynh123/pathgrid/api/i"
	"github.com/nhanhuynh123/pathgrid/api/identity"
	"github.com/nhanhuynh123/pathgrid/config"
	"github.com/nhanhuynh123/pathgrid/grid"
	"github.com/nhanhuynh123/pathgrid/infrastruture/lock"
	"github.com/nhanhuynh123/pathgrid/infrastruture/pubsub"
	"github.com/nhanhuynh123/pathgrid/infrastruture/repo"
	"github.com/nhanhuynh123/pathgrid/infrastruture/token"
	"github.com/nhanhuynh123/pathgrid/service"
	"github.com/nhanhuynh123/pathgrid/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	boardRepo       i.BoardRepo
	boardLocker     i.Locker
	boardBroker     i.Broker
	jwtTokenizer    i.Tokenizer
	boardService    i.BoardManager
	boardController api_i.Controller
	router          *api.Router
	appLogger       *log.Logger
)

func newLogger(name, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s%s%s: ", color, name, config.ColorReset), log.LstdFlags)
}

func fatal(format string, args ...interface{}) {
	appLogger.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)
	if config.Envs.DBUser == "" {
		uri = fmt.Sprintf("mongodb://%s:%v", config.Envs.DBHost, config.Envs.DBPort)
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		fatal("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed: %v", err)
	}
	appLogger.Printf("%s[INFO]%s Connected to MongoDB", config.LogInfoColor, config.LogColorReset)
}

func initBoardRepo() {
	if mongoClient == nil {
		boardRepo = repo.NewMemoryBoardRepo()
		appLogger.Printf("%s[INFO]%s DB_HOST not set, keeping boards in memory", config.LogInfoColor, config.LogColorReset)
		return
	}
	boardRepo = repo.NewBoardRepo(mongoClient, config.Envs.DBName, "boards")
	appLogger.Printf("%s[INFO]%s Board repository initialized", config.LogInfoColor, config.LogColorReset)
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed: %v", err)
	}
	appLogger.Printf("%s[INFO]%s Connected to Redis", config.LogInfoColor, config.LogColorReset)
}

func initCoordination() {
	if redisClient == nil {
		boardLocker = lock.NewLocalLocker()
		boardBroker = pubsub.NewLocalBroker()
		appLogger.Printf("%s[INFO]%s REDIS_ADDR not set, using in-process locks and change feed", config.LogInfoColor, config.LogColorReset)
		return
	}
	boardLocker = lock.NewRedisLocker(redisClient, newLogger("LOCKER", config.ColorBlue))
	boardBroker = pubsub.NewRedisBroker(redisClient, newLogger("BROKER", config.ColorMagenta))
	appLogger.Printf("%s[INFO]%s Redis locker and change feed initialized", config.LogInfoColor, config.LogColorReset)
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Printf("%s[INFO]%s JWT Tokenizer initialized", config.LogInfoColor, config.LogColorReset)
}

func initBoardService() {
	var err error
	boardService, err = service.NewBoardService(&service.Config{
		Repo:      boardRepo,
		Locker:    boardLocker,
		Publisher: boardBroker,
		Tokenizer: jwtTokenizer,
		Logger:    newLogger("BOARD", config.ColorCyan),
		Defaults: grid.StoreConfig{
			InitialRows: config.Envs.InitialRows,
			InitialCols: config.Envs.InitialCols,
			Start:       grid.Coord{Row: config.Envs.StartRow, Col: config.Envs.StartCol},
			Finish:      grid.Coord{Row: config.Envs.FinishRow, Col: config.Envs.FinishCol},
		},
		TokenTTL: time.Duration(config.Envs.TokenTTLMinutes) * time.Minute,
	})
	if err != nil {
		fatal("Creating board service: %v", err)
	}
	appLogger.Printf("%s[INFO]%s Board service initialized", config.LogInfoColor, config.LogColorReset)
}

func initBoardController() {
	var err error
	boardController, err = boardapi.NewBoardController(boardService, boardBroker, newLogger("HTTP", config.ColorBlue))
	if err != nil {
		fatal("Creating board controller: %v", err)
	}
	appLogger.Printf("%s[INFO]%s Board controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{boardController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorGreen)
	if err := config.Envs.Validate(); err != nil {
		fatal("Invalid configuration: %v", err)
	}

	if config.Envs.DBHost != "" {
		initMongo(ctx)
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
	}
	initBoardRepo()

	if config.Envs.RedisAddr != "" {
		initRedis(ctx)
		defer redisClient.Close()
	}
	initCoordination()

	initJWTTokenizer()
	initBoardService()
	initBoardController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		fatal("Starting server: %v", err)
	}
}
