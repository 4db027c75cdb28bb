package main

import (
	"context"
	golog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"videoflix-site/cache"
	"videoflix-site/cleanup"
	"videoflix-site/config"
	"videoflix-site/database"
	"videoflix-site/ffmpeg"
	"videoflix-site/handlers"
	"videoflix-site/storage"
	"videoflix-site/transcodes"
	"videoflix-site/videos"
)

var db *gorm.DB

func main() {

	initLogger()

	log.Infof("GitSHA: %s", config.GetGitSHA())
	log.Infof("BuildDate: %s", config.GetBuildDate())

	if err := godotenv.Load(); err != nil {
		log.Infoln("no .env file found, relying on environment")
	}

	ffmpeg.Init(log)
	storage.Init(log)
	cache.Init(log)
	videos.Init(log)
	transcodes.Init(log)
	cleanup.Init(log)

	gormLogger := logger.New(
		golog.New(os.Stdout, "\r\n", golog.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  logger.Warn, // Log level
			IgnoreRecordNotFoundError: true,        // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true,        // Don't include params in the SQL log
			Colorful:                  false,       // Disable color
		},
	)

	err := os.MkdirAll(config.GetConfigDir(), 0700)
	if err != nil {
		log.Panicf("failed to create config dir %s", config.GetConfigDir())
	}

	// Initialize database
	dbPath := filepath.Join(config.GetConfigDir(), "videos.db")
	db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Panicf("failed to connect to database %s", dbPath)
	}

	// set only a single connection so we don't actually have concurrent writes
	sqlDB, err := db.DB()
	if err != nil {
		log.Panicln("failed to retrieve database")
	}
	sqlDB.SetMaxOpenConns(1)

	// Migrate the schema
	db.AutoMigrate(&videos.Video{}, &transcodes.Job{})

	database.Init(db, log)
	defer database.Fini()

	// Object store and cache clients
	bucket, err := config.GetBucketName()
	if err != nil {
		log.Panicln(err)
	}
	store, err := storage.NewS3Store(context.Background(), bucket)
	if err != nil {
		log.Panicf("failed to create object store client: %v", err)
	}
	cacheStore := cache.NewRedisStore(config.GetRedisAddr())

	reconciler := cleanup.NewReconciler(store)
	handlers.Init(log, store, cacheStore, reconciler)

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Routes
	e.GET("/api/videos", handlers.PosterAndText)
	e.POST("/api/videos", handlers.CreateVideo)
	e.DELETE("/api/videos/:id", handlers.DeleteVideo)
	e.GET("/api/video-url", handlers.PlaybackURL)
	e.GET("/api/my-films", handlers.MyFilms)
	e.POST("/api/my-films", handlers.CreateMyFilms)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// start the transcode worker
	worker := transcodes.NewWorker(ffmpeg.NewExecRunner(), store)
	go worker.Run()

	// Start server
	e.Logger.Fatal(e.Start(config.GetListenAddr()))
}
