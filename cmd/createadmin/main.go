// Command createadmin bootstraps an administrator account in the configured storage.
//
//	createadmin -name Jane -surname Doe -email admin@example.com -phone +27000000001
//
// The password is read from -password or APP_ADMIN_PASSWORD.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/config"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/identity"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage"
	provisionAccountUC "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/provision_account"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
)

const passwordEnv = "APP_ADMIN_PASSWORD"

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML configuration")
	name := flag.String("name", "", "first name")
	surname := flag.String("surname", "", "last name")
	email := flag.String("email", "", "login email")
	phone := flag.String("phone", "", "phone number")
	password := flag.String("password", "", "password (defaults to $"+passwordEnv+")")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv(passwordEnv)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repos, err := storage.Open(ctx, cfg, storage.Options{Logger: log})
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer repos.Close(context.Background())

	useCase := provisionAccountUC.NewUseCase(identity.NewGateway(repos.Credentials), repos.Users, log)

	result, err := useCase.CreateAdmin(ctx, &provisionAccountUC.AccountRequest{
		Name:            *name,
		Surname:         *surname,
		Email:           *email,
		Phone:           *phone,
		Password:        *password,
		ConfirmPassword: *password,
	})
	if err != nil {
		switch {
		case errors.Is(err, provisionAccountUC.ErrMissingFields):
			fmt.Println("name, surname, email, phone and password are required")
		case errors.Is(err, provisionAccountUC.ErrWeakPassword):
			fmt.Println("password must be at least 8 characters and include uppercase, lowercase, number and special character")
		case errors.Is(err, provisionAccountUC.ErrEmailExists):
			fmt.Printf("an account with email %s already exists\n", *email)
		default:
			fmt.Printf("failed to create admin: %v\n", err)
		}
		_ = repos.Close(context.Background())
		os.Exit(1)
	}

	fmt.Printf("Admin %s created with id %s\n", result.Email, result.UserID)
}
