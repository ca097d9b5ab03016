package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/dealer-api/internal/auth"
	"github.com/kingrain94/dealer-api/internal/config"
)

// Signs an access token for an existing account's email with the server's JWT settings.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	email := flag.String("email", "", "Email of the account the token is issued for")
	expirationMinutes := flag.Int("exp", 0, "Token lifetime in minutes, 0 uses ACCESS_TOKEN_EXPIRE_MINUTES")
	flag.Parse()

	if *email == "" {
		log.Fatal("Email is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	codec, err := auth.NewTokenCodec(cfg)
	if err != nil {
		log.Fatalf("Error creating token codec: %v", err)
	}

	token, err := codec.Issue(*email, time.Duration(*expirationMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", token)
}
