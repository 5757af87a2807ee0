package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fueldelivery/handlers"
	"fueldelivery/repository"
	"fueldelivery/routes"
	"fueldelivery/service"
	"fueldelivery/utils"
)

// draftMaxAge is how long an untouched draft is kept.
const draftMaxAge = 12 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(cfg, true)
	if err != nil {
		return err
	}
	defer st.Close()
	checkOrders(ctx, st.Orders)

	// Services
	orderSvc := service.NewOrderService(st.Orders, repository.NewMemoryDraftRepo(draftMaxAge), service.Defaults{
		Transporter: cfg.Defaults.Transporter,
		FuelType:    cfg.Defaults.FuelType,
	})
	settingsSvc := service.NewSettingsService(st.Company, st.Assets, st.Orders)

	r2 := utils.R2Config{
		AccountID:       cfg.R2.AccountID,
		Bucket:          cfg.R2.Bucket,
		AccessKeyID:     cfg.R2.AccessKeyID,
		SecretAccessKey: cfg.R2.SecretAccessKey,
		PublicURL:       cfg.R2.PublicURL,
	}
	var archiver service.Archiver
	if r2.Enabled() {
		archiver = utils.NewR2Archiver(r2)
	}
	receiptSvc := service.NewReceiptService(
		repository.NewReceiptRepository(st.Orders, st.Company, st.Assets),
		utils.NewChromePrinter(cfg.PDF.Timeout, cfg.PDF.ChromePath),
		archiver,
	)

	orderSvc.WithReceiptCleanup(receiptSvc)

	// Handlers
	h := routes.Handlers{
		Orders:   &handlers.OrderHandler{Service: orderSvc},
		Drafts:   &handlers.DraftHandler{Service: orderSvc},
		Report:   &handlers.ReportHandler{Service: orderSvc},
		Settings: &handlers.SettingsHandler{Service: settingsSvc},
		PDF:      &handlers.PDFHandler{Service: receiptSvc},
	}
	if cfg.Auth.Enabled {
		h.Auth = &handlers.AuthHandler{
			Service: service.NewAuthService(st.Operators, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
			Secure:  cfg.Environment == "production",
		}
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Bool("auth", cfg.Auth.Enabled).Msg("Server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Server error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server stopped")
	return nil
}
