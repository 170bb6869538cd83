package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/legicam/backend/internal/config"
	"github.com/legicam/backend/internal/delivery/http/handler"
	"github.com/legicam/backend/internal/delivery/http/middleware"
	"github.com/legicam/backend/internal/platform/database"
	"github.com/legicam/backend/internal/platform/queue"
	"github.com/legicam/backend/internal/platform/storage"
	"github.com/legicam/backend/internal/repository/postgres"
	"github.com/legicam/backend/internal/service"
	"github.com/legicam/backend/internal/worker"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Configuration invalide: %v", err)
	}

	// Initialisation de la base de données
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Connexion à la base impossible: %v", err)
	}
	defer db.Close()

	// Initialisation RabbitMQ (mode dégradé toléré : l'ingestion fonctionne,
	// seule la détection automatique de relations est désactivée)
	var publisher queue.Publisher
	if p, err := queue.NewRabbitPublisher(cfg.RabbitURL, service.QueueTextesIngeres); err != nil {
		log.Printf("Warning: RabbitMQ injoignable: %v. Détection automatique désactivée.", err)
	} else {
		publisher = p
		defer publisher.Close()
	}

	var consumer queue.Consumer
	if cfg.DetectionEnabled {
		if c, err := queue.NewRabbitConsumer(cfg.RabbitURL, service.QueueTextesIngeres); err != nil {
			log.Printf("Warning: Consommateur RabbitMQ injoignable: %v", err)
		} else {
			consumer = c
			defer consumer.Close()
		}
	}

	// Initialisation MinIO (dépôt des PDF sources)
	storagePlatform, err := storage.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Printf("Warning: MinIO injoignable: %v", err)
	}
	storageService := service.NewStorageService(storagePlatform, cfg.SourceBucket)
	if storagePlatform != nil {
		if err := storageService.Initialize(context.Background()); err != nil {
			log.Printf("Warning: Initialisation du bucket impossible: %v", err)
		}
	}

	// Injection des dépendances
	texteRepo := postgres.NewTexteRepository(db)
	relationRepo := postgres.NewRelationRepository(db)

	texteService := service.NewTexteService(texteRepo, relationRepo, cfg.CascadeRelationDelete)
	structureService := service.NewStructureService(texteRepo)
	ingestionService := service.NewIngestionService(texteRepo, publisher)
	relationService := service.NewRelationService(texteRepo, relationRepo)
	suggestService := service.NewSuggestService(texteRepo)

	texteHandler := handler.NewTexteHandler(texteService, structureService, ingestionService, storageService)
	relationHandler := handler.NewRelationHandler(relationService)
	suggestHandler := handler.NewSuggestHandler(suggestService)

	// Démarrage du worker de détection de relations
	if consumer != nil {
		detectionService := service.NewDetectionService(texteRepo, relationService)
		texteConsumer := worker.NewTexteConsumer(consumer, detectionService)
		go texteConsumer.Start(context.Background())
	}

	// Configuration du routeur
	r := gin.Default()

	// Configuration CORS (portail public en lecture)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes API Versioning
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowS)*time.Second))
	{
		textes := api.Group("/textes")
		{
			textes.GET("", texteHandler.List)
			textes.POST("", texteHandler.Ingest)
			textes.GET("/upload-url", texteHandler.GetUploadURL)
			textes.GET("/:id", texteHandler.GetDetails)
			textes.DELETE("/:id", texteHandler.Delete)
			textes.GET("/:id/structure", texteHandler.GetStructure)
			textes.GET("/:id/relations", relationHandler.GetForTexte)
		}

		relations := api.Group("/relations")
		{
			relations.POST("", relationHandler.Create)
			relations.DELETE("/:id", relationHandler.Delete)
		}

		api.GET("/suggest", suggestHandler.Suggest)
	}

	// Santé
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	log.Printf("Serveur démarré sur le port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
