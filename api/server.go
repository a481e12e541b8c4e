package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/PaisanX/PaisanX-Backend/db/seed"
	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	"github.com/PaisanX/PaisanX-Backend/models"
	"github.com/PaisanX/PaisanX-Backend/services/events"
	"github.com/PaisanX/PaisanX-Backend/services/limits"
	"github.com/PaisanX/PaisanX-Backend/services/monitoring/logging"
	"github.com/PaisanX/PaisanX-Backend/services/recipient"
	"github.com/PaisanX/PaisanX-Backend/services/transfer"
	"github.com/PaisanX/PaisanX-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.JWTToken

type Server struct {
	router           *gin.Engine
	store            *db.Store
	config           *utils.Config
	logger           *logging.Logger
	recipientService *recipient.Service
	transferService  *transfer.Service
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	s := db.NewStore(conn)
	g := gin.Default()
	l := logging.NewLogger()

	if c.SeedDB {
		if err := seed.Run(s, l); err != nil {
			log.Fatalf("Unable to seed the database - %v", err)
		}
	}

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	TokenController = utils.NewJWTToken(c)

	directory := recipient.NewCachedDirectory(recipient.NewStaticDirectory())
	recipientService := recipient.NewService(directory, l)

	var publisher events.Publisher
	if c.KafkaBrokers != "" {
		publisher = events.NewKafkaPublisher(strings.Split(c.KafkaBrokers, ","))
	}

	var limitsService *limits.Service
	if c.RedisHost != "" {
		dailyCap := decimal.Zero
		if c.DailyTransferCap != "" {
			dailyCap, err = decimal.NewFromString(c.DailyTransferCap)
			if err != nil {
				log.Fatalf("Invalid daily transfer cap - %v", err)
			}
		}

		limitsService, err = limits.NewService(&limits.RedisConfig{
			Host:     c.RedisHost,
			Port:     c.RedisPort,
			Password: c.RedisPassword,
		}, dailyCap)
		if err != nil {
			l.Error("Unable to connect to Redis, daily limits disabled: ", err)
			limitsService = nil
		}
	}

	transferService := transfer.NewService(transfer.NewSQLStore(s), publisher, limitsService, l)

	return &Server{
		router:           g,
		store:            s,
		config:           c,
		logger:           l,
		recipientService: recipientService,
		transferService:  transferService,
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to PaisanX!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Auth{}.router(s)
	Cards{}.router(s)
	Movements{}.router(s)
	Transfers{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
