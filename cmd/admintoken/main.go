package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/pkg/jwt"
	"github.com/s21platform/stream-hub/internal/pkg/secret"
)

func main() {
	subject := flag.String("subject", "admin", "subject of the issued token")
	ttl := flag.Duration("ttl", 24*time.Hour, "lifetime of the issued token")
	newKey := flag.Bool("fernet-key", false, "print a new FERNET_KEY and exit")
	flag.Parse()

	if *newKey {
		key, err := secret.GenerateKey()
		if err != nil {
			log.Fatalf("failed to generate fernet key: %v", err)
		}
		fmt.Println(key)
		return
	}

	cfg := config.MustLoadAdmin()

	token, expiresAt, err := jwt.New(cfg.JWTSecret).GenerateAdminToken(*subject, *ttl)
	if err != nil {
		log.Fatalf("failed to generate admin token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
	fmt.Println(token)
}
