package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"bmaBack/internal/cache"
	"bmaBack/internal/config"
	"bmaBack/internal/handlers"
	"bmaBack/internal/render"
	"bmaBack/internal/repositories"
	"bmaBack/internal/services"
	"bmaBack/utils"
)

type application struct {
	errorLog            *log.Logger
	infoLog             *log.Logger
	db                  *sql.DB
	tokens              *utils.Manager
	authHandler         *handlers.AuthHandler
	notificationHandler *handlers.NotificationHandler
	documentHandler     *handlers.DocumentHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	documentRepo := repositories.DocumentRepository{DB: db}
	notificationRepo := repositories.NotificationRepository{DB: db}

	// Services
	documentService := &services.DocumentService{Store: &documentRepo, ErrorLog: errorLog}
	notificationService := &services.NotificationService{Repo: &notificationRepo}

	var artifactCache services.ArtifactCache
	if rdb != nil {
		artifactCache = cache.NewDocumentCache(rdb, time.Duration(cfg.Redis.TTLMinutes)*time.Minute)
	}

	var archive services.ArchiveStore
	if cfg.Storage.AccessKey != "" {
		s3, err := utils.NewS3Storage(utils.S3Config{
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			Folder:    cfg.Storage.Folder,
		})
		if err != nil {
			errorLog.Fatal(err)
		}
		archive = s3
	}

	pdfService := &services.PDFService{
		Documents: documentService,
		Converter: render.NewHTTPConverter(cfg.Renderer.URL),
		Cache:     artifactCache,
		Archive:   archive,
		Branding:  render.LoadBranding(cfg.Branding.LogoPath, cfg.Branding.FontPath),
		Options:   render.DefaultOptions(),
		InfoLog:   infoLog,
		ErrorLog:  errorLog,
	}

	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}
	authService := &services.AuthService{
		Identity: services.NewIdentityClient(cfg.Identity.URL),
		Tokens:   tokens,
		TokenTTL: time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
	}

	// Handlers
	authHandler := &handlers.AuthHandler{Service: authService}
	notificationHandler := &handlers.NotificationHandler{Service: notificationService}
	documentHandler := &handlers.DocumentHandler{Documents: documentService, PDFs: pdfService}

	return &application{
		errorLog:            errorLog,
		infoLog:             infoLog,
		db:                  db,
		tokens:              tokens,
		authHandler:         authHandler,
		notificationHandler: notificationHandler,
		documentHandler:     documentHandler,
	}
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
