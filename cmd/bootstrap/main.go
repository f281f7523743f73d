package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/Yackxz2004/Estadia-Banquetes/internal/users"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/config"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
)

// Provisions the first admin account on a fresh deploy. Until it runs, no
// credential exists and the authenticated API cannot be reached.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "bootstrap"})

	_ = godotenv.Load()

	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password (min 8 characters)")
	firstName := flag.String("first-name", "Admin", "admin first name")
	lastName := flag.String("last-name", "", "admin last name")
	flag.Parse()

	if *email == "" || *password == "" {
		logg.Error(ctx, "both -email and -password are required", nil)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "bootstrap",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	svc, err := users.NewService(users.NewRepository(client.DB()), cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to create user service", err)
		os.Exit(1)
	}

	admin, err := svc.Create(ctx, users.CreateUserInput{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      enums.UserRoleAdmin,
	})
	if err != nil {
		logg.Error(ctx, "failed to create admin account", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{"user_id": admin.ID, "email": admin.Email})
	logg.Info(ctx, "admin account created")
}
