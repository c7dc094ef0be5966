package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"discovery/internal/api/handler/v1handler"
	"discovery/pkg/domain"
	"encoding/pem"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSignToken(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: string(pubPEM)})
	require.NoError(t, err)

	userID := domain.UserID(uuid.New())
	token, err := signToken(string(privPEM), userID, time.Hour, time.Now())
	require.NoError(t, err)

	ctx, err := sec.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, userID, v1handler.GetUserIDFromContext(ctx))

	expired, err := signToken(string(privPEM), userID, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = sec.HandleBearerAuth(context.Background(), expired)
	require.Error(t, err)
}

func TestSignToken_InvalidKey(t *testing.T) {
	_, err := signToken("not a key", domain.UserID(uuid.New()), time.Hour, time.Now())
	require.ErrorContains(t, err, "could not parse RSA private key")
}
