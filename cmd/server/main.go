package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/tulipkids/funwalk-api/internal/auth"
	"github.com/tulipkids/funwalk-api/internal/config"
	"github.com/tulipkids/funwalk-api/internal/database"
	"github.com/tulipkids/funwalk-api/internal/handlers"
	"github.com/tulipkids/funwalk-api/internal/notifier"
	"github.com/tulipkids/funwalk-api/internal/payments"
	"github.com/tulipkids/funwalk-api/internal/registration"
)

func main() {
	// Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Payment Processor
	processor := payments.NewStripeProcessor(cfg.StripeSecretKey)

	// Initialize Notifier
	var discordNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			discordNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg)
	service := registration.NewService(db, processor, discordNotifier)
	registrationHandler := handlers.NewRegistrationHandler(service, cfg)
	adminHandler := handlers.NewAdminHandler(db, authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, registrationHandler, adminHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
