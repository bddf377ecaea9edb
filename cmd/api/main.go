package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rrservice/service-dashboard-go/internal/config"
	appHTTP "github.com/rrservice/service-dashboard-go/internal/handler/http"
	"github.com/rrservice/service-dashboard-go/internal/pkg/jwt"
	"github.com/rrservice/service-dashboard-go/internal/pkg/sheets"
	authService "github.com/rrservice/service-dashboard-go/internal/service/auth"
	"github.com/rrservice/service-dashboard-go/internal/service/ingest"
	reportService "github.com/rrservice/service-dashboard-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	sheetClient, err := sheets.NewClient(context.Background(), cfg.Sheets.CredentialsFile, cfg.Sheets.SheetID, cfg.Sheets.Worksheet)
	if err != nil {
		fmt.Println("Error creating sheets client:", err)
		return
	}
	source := sheets.NewCachedSource(sheetClient, cfg.Sheets.CacheTTL)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	builder := ingest.NewBuilder(cfg.Report.ExpectedColumns)
	grouper := reportService.NewStatusGrouper(cfg.Report.StatusGroupPrefix)

	authSvc := authService.NewAuthService(cfg.Auth.Username, cfg.Auth.Password, jwtService)
	reportSvc := reportService.NewReportService(source, builder, grouper, cfg.Report)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, cfg.Location())

	router := appHTTP.NewRouter(jwtService, authHandler, reportHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
