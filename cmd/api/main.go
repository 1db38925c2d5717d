package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"staffcrm/internal/config"
	"staffcrm/internal/database"
	"staffcrm/internal/domain/candidate"
	"staffcrm/internal/domain/company"
	"staffcrm/internal/domain/ingest"
	"staffcrm/internal/domain/lead"
	"staffcrm/internal/domain/lookup"
	"staffcrm/internal/domain/requisition"
	"staffcrm/internal/middleware"
	"staffcrm/internal/parser"
	jwtsvc "staffcrm/internal/pkg/jwt"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&candidate.Candidate{},
		&candidate.Education{},
		&candidate.Employment{},
		&candidate.Skill{},
		&company.Company{},
		&requisition.Requisition{},
		&lead.Lead{},
		&lookup.Code{},
		&lookup.ZipCode{},
	); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	lookupRepo := lookup.NewRepository(db)
	zipCache := lookup.NewZipCache(lookupRepo)

	candidateRepo := candidate.NewRepository(db)
	candidateService := candidate.NewService(candidateRepo, zipCache)
	candidateHandler := candidate.NewHandler(candidateService)

	parserClient := parser.NewClient(cfg.ParserURL, cfg.ParserAPIKey, cfg.ParserVersion)
	ingestService := ingest.NewService(
		parserClient,
		candidateRepo,
		ingest.NewStager(cfg.UploadsDir),
		ingest.NewRelocator(cfg.UploadsDir),
		zipCache,
	)
	ingestHandler := ingest.NewHandler(ingestService)

	companyHandler := company.NewHandler(company.NewRepository(db))
	requisitionHandler := requisition.NewHandler(requisition.NewRepository(db))
	leadHandler := lead.NewHandler(lead.NewService(lead.NewRepository(db)))
	lookupHandler := lookup.NewHandler(lookupRepo, zipCache)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			candidate.RegisterRoutes(protected, candidateHandler)
			ingest.RegisterRoutes(protected, ingestHandler)
			company.RegisterRoutes(protected, companyHandler)
			requisition.RegisterRoutes(protected, requisitionHandler)
			lead.RegisterRoutes(protected, leadHandler)

			admin := protected.Group("/")
			admin.Use(middleware.RequireRole("admin"))
			{
				lookup.RegisterRoutes(admin, lookupHandler)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
