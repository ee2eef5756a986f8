package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/config"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/handlers"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/repositories"
	services "github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/services"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	tokens   *utils.Manager

	wsManager *WebSocketManager

	rfqHandler         *handlers.RFQHandler
	comparisonHandler  *handlers.ComparisonHandler
	negotiationHandler *handlers.NegotiationHandler
	authHandler        *handlers.AuthHandler
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokens, err := utils.NewManager(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	wsManager := NewWebSocketManager()

	// Repositories
	rfqRepo := &repositories.RFQRepository{DB: db}
	quotationRepo := &repositories.QuotationRepository{DB: db}
	aggregateRepo := &repositories.AggregateRepository{DB: db}
	aggregateCache := repositories.NewAggregateCache(redisClient)

	// Services
	rankingService := services.NewRankingService(quotationRepo)
	comparisonService := services.NewComparisonService(quotationRepo)
	exportService := services.NewExportService(comparisonService)
	chatClient := services.NewChatClient(nil, cfg.Chat.BaseURL)
	negotiationService := services.NewNegotiationService(chatClient, wsManager)
	rfqService := &services.RFQService{
		RFQs:       rfqRepo,
		Quotations: quotationRepo,
		Ranking:    rankingService,
		Cache:      aggregateCache,
	}
	dashboardService := &services.DashboardService{
		RFQs:       rfqRepo,
		Quotations: quotationRepo,
		Aggregates: aggregateRepo,
		Cache:      aggregateCache,
		Watcher:    wsManager,
	}
	authService := &services.AuthService{
		Tokens:       tokens,
		BuyerID:      cfg.Auth.BuyerID,
		PasswordHash: cfg.Auth.PasswordHash,
	}

	app := &application{
		errorLog:  errorLog,
		infoLog:   infoLog,
		db:        db,
		tokens:    tokens,
		wsManager: wsManager,
		rfqHandler: &handlers.RFQHandler{
			RFQService:       rfqService,
			DashboardService: dashboardService,
		},
		comparisonHandler: &handlers.ComparisonHandler{
			ComparisonService: comparisonService,
			RankingService:    rankingService,
			ExportService:     exportService,
		},
		negotiationHandler: &handlers.NegotiationHandler{
			NegotiationService: negotiationService,
		},
		authHandler: &handlers.AuthHandler{
			AuthService: authService,
		},
	}
	return app, nil
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
