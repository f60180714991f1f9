package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/harentsoaR/proconnect-api/internal/auth"
	"github.com/harentsoaR/proconnect-api/internal/client"
	"github.com/harentsoaR/proconnect-api/internal/config"
	"github.com/harentsoaR/proconnect-api/internal/identity"
	"github.com/harentsoaR/proconnect-api/internal/logger"
	"github.com/harentsoaR/proconnect-api/internal/mail"
	"github.com/harentsoaR/proconnect-api/internal/middleware"
	"github.com/harentsoaR/proconnect-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.MongoDatabase)
	zlog.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	users := store.NewMongoUserStore(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		zlog.Fatal("failed to create user indexes", zap.Error(err))
	}

	// --- Services ---
	codec := auth.NewCodec(cfg.JWTSecret)

	var mailer mail.Mailer
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTP(cfg)
	} else {
		zlog.Warn("SMTP not configured, password reset tokens will be logged")
		mailer = &mail.LogMailer{Log: zlog}
	}

	directory := client.NewDirectory(cfg.DirectoryURL, cfg.ClientTimeout, zlog)
	svc := identity.NewService(users, codec, directory, mailer, cfg.SessionTTL, zlog)
	h := identity.NewHandler(svc, zlog)

	// --- Gin Router ---
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(zlog), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	identity.RegisterRoutes(r, h, codec, users)

	zlog.Info("starting identity service", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
