// Command tokengen issues device tokens for an ordena server.
//
//	JWT_SECRET=... tokengen --device kitchen-tablet --label "Kitchen"
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/mmynk/ordena/internal/auth"
	"github.com/mmynk/ordena/internal/config"
	"github.com/mmynk/ordena/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	device := pflag.StringP("device", "d", "", "device ID to issue the token for (required)")
	label := pflag.StringP("label", "l", "", "human-readable note stored in the token")
	duration := pflag.Duration("duration", cfg.TokenDuration, "token lifetime")
	secret := pflag.String("secret", cfg.JWTSecret, "signing secret (default from JWT_SECRET)")
	pflag.Parse()

	if *secret == "" {
		slog.Error("No signing secret: set JWT_SECRET or pass --secret")
		os.Exit(2)
	}

	token, err := auth.NewJWTManager(*secret, *duration).Generate(*device, *label)
	if err != nil {
		slog.Error("Failed to issue token", "device", *device, "error", err)
		os.Exit(1)
	}

	slog.Info("Token issued", "device", *device, "expires_in", duration.String())
	fmt.Println(token)
}
