package main

import (
	"context"
	"discovery/internal/config"
	"discovery/pkg/domain"
	"discovery/pkg/logger"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// signToken returns an RS256 token whose subject is userID.
func signToken(privateKeyPEM string, userID domain.UserID, ttl time.Duration, now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// JWTCommand constructs the 'jwt' subcommand. Without --user it mints a token
// for a fresh user ID, which is handy when trying out the API locally.
func JWTCommand(cfg *config.Config) *cobra.Command {
	var (
		user string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates an API token for a user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			userID := domain.UserID(uuid.New())
			if user != "" {
				var err error
				if userID, err = domain.ParseUserID(user); err != nil {
					logger.Fatal(ctx, "invalid user ID", zap.Error(err))
				}
			}

			signed, err := signToken(cfg.JWT.PrivateKey, userID, ttl, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not generate token", zap.Error(err))
			}

			fmt.Printf("user:  %s\ntoken: %s\n", userID, signed) //nolint: forbidigo
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID to issue the token for; a new one is generated when empty")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}
