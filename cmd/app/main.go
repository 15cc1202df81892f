package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/reikohana/inkstone/internal/blogservice"
	"github.com/reikohana/inkstone/internal/common"
	"github.com/reikohana/inkstone/internal/mailservice"
	"github.com/reikohana/inkstone/internal/mediaservice"
	"github.com/reikohana/inkstone/internal/userservice"
)

type application struct {
	config       *Config
	logger       *slog.Logger
	tokenIssuer  *userservice.TokenIssuer
	userService  *userservice.UserService
	blogService  *blogservice.BlogService
	mailService  *mailservice.MailService
	mediaService *mediaservice.MediaService
	wg           sync.WaitGroup
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 25, 25, 15*time.Minute)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	defer common.CloseDB(db)

	logger.Info("database connection pool established")

	mb, err := common.NewMessageBroker(fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port))
	if err != nil {
		logger.Error("could not connect to message broker", "error", err)
		os.Exit(1)
	}
	defer mb.Close()

	if err := common.SetupUserExchange(mb); err != nil {
		logger.Error("could not set up user exchange", "error", err)
		os.Exit(1)
	}

	logger.Info("message broker connection established")

	mediaService, err := mediaservice.NewMediaService(cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket, cfg.S3.UseSSL)
	if err != nil {
		logger.Error("could not create media service", "error", err)
		os.Exit(1)
	}

	issuer := userservice.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	verifier := userservice.NewGoogleVerifier(cfg.Google.ClientID)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	mailService := mailservice.NewMailService(mb, cfg.Mail.Host, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Sender, cfg.Mail.Port, logger)
	defer mailService.Close()

	app := &application{
		config:       cfg,
		logger:       logger,
		tokenIssuer:  issuer,
		userService:  userservice.NewUserService(db, mb, issuer, verifier),
		blogService:  blogservice.NewBlogService(db, cache, logger),
		mailService:  mailService,
		mediaService: mediaService,
	}

	app.mailService.SendWelcomeEmail()

	if err := app.serve(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
