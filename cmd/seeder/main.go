package main

import (
	"context"
	"os"

	"github.com/Ah-ugo/fombinatowers/internal/admin"
	"github.com/Ah-ugo/fombinatowers/internal/auth"
	"github.com/Ah-ugo/fombinatowers/internal/config"
	"github.com/Ah-ugo/fombinatowers/internal/db"
	"github.com/Ah-ugo/fombinatowers/internal/logger"
	"github.com/Ah-ugo/fombinatowers/internal/space"
)

// Populates a fresh database with the launch inventory and the initial admin
// account. Safe to re-run: the admin insert is conflict-free and duplicate
// spaces are the operator's cleanup problem.
func main() {
	logger.Init()
	logger.Info("Seeding Fombina Tower database")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	spaceRepo := space.NewRepository(database)

	for _, sp := range seedSpaces() {
		created, err := spaceRepo.Create(ctx, sp)
		if err != nil {
			logger.Fatalf("Failed to seed space %q: %v", sp.Name, err)
		}
		logger.Infof("Seeded space %q (%s)", created.Name, created.ID)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logger.Fatal("ADMIN_PASSWORD is required to seed the admin account")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Fatalf("Failed to hash admin password: %v", err)
	}

	adminRepo := admin.NewRepository(database)
	seeded, err := adminRepo.Create(ctx, &admin.Admin{
		Name:         "Site Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
	})
	if err != nil {
		logger.Fatalf("Failed to seed admin account: %v", err)
	}
	logger.Infof("Admin account ready: %s", seeded.Email)

	logger.Info("Seeding complete")
}

func seedSpaces() []*space.Space {
	return []*space.Space{
		{
			Name:  "Executive Office Suite A",
			Type:  space.TypeOffice,
			Floor: 15,
			Size:  250,
			Price: 8500000,
			Features: []string{
				"Floor-to-ceiling windows",
				"Private bathroom",
				"Kitchenette",
				"Conference room access",
				"Premium finishes",
				"Smart climate control",
			},
			Available:   true,
			ImageURL:    "/luxury-office-interior-with-city-view.jpg",
			Description: "Luxurious executive office suite with panoramic city views, perfect for C-suite executives and senior management teams.",
		},
		{
			Name:  "Premium Retail Space",
			Type:  space.TypeMall,
			Floor: 2,
			Size:  180,
			Price: 6200000,
			Features: []string{
				"High foot traffic location",
				"Large display windows",
				"Storage area",
				"Loading dock access",
				"Modern lighting",
				"Security system",
			},
			Available:   true,
			ImageURL:    "/luxury-retail-mall-interior.jpg",
			Description: "Prime retail space in the main shopping corridor, ideal for flagship stores and premium brands.",
		},
		{
			Name:  "Corporate Office Floor",
			Type:  space.TypeOffice,
			Floor: 12,
			Size:  500,
			Price: 15000000,
			Features: []string{
				"Open plan layout",
				"Multiple meeting rooms",
				"Breakout areas",
				"Dedicated server room",
				"Pantry facilities",
				"Fiber optic connectivity",
			},
			Available:   true,
			ImageURL:    "/modern-office-space-with-city-view.jpg",
			Description: "Entire floor suitable for growing companies, with flexible layout options and modern amenities.",
		},
		{
			Name:  "Luxury Event Hall",
			Type:  space.TypeEventHall,
			Floor: 20,
			Size:  400,
			Price: 12000000,
			Features: []string{
				"Capacity for 300 guests",
				"State-of-the-art AV system",
				"Catering kitchen",
				"VIP lounge",
				"Rooftop terrace access",
				"Professional lighting",
			},
			Available:   true,
			ImageURL:    "/luxury-conference-room-modern-design.jpg",
			Description: "Stunning event space with breathtaking views, perfect for corporate events, weddings, and galas.",
		},
	}
}
