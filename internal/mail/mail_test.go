package mail

import (
	"bytes"
	"context"
	"log/slog"
	"svg-vault/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCodeMessage(t *testing.T) {
	subject, body := codeMessage("042133", 10*time.Minute)
	require.Contains(t, subject, "sign-in code")
	require.Contains(t, body, "042133")
	require.Contains(t, body, "10 minutes")
}

func TestNewSelectsDriver(t *testing.T) {
	sender, err := New(config.MailConfig{Driver: "log"}, nil)
	require.NoError(t, err)
	require.IsType(t, &LogSender{}, sender)

	sender, err = New(config.MailConfig{Driver: "smtp", Host: "smtp.example.com", Port: 587, From: "vault@example.com", TLS: true}, nil)
	require.NoError(t, err)
	require.IsType(t, &SMTPSender{}, sender)

	_, err = New(config.MailConfig{Driver: "pigeon"}, nil)
	require.Error(t, err)
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	sender := &LogSender{logger: slog.New(slog.NewTextHandler(&buf, nil))}

	require.NoError(t, sender.SendCode(context.Background(), "alice@example.com", "123456", 10*time.Minute))
	require.Contains(t, buf.String(), "alice@example.com")
	require.Contains(t, buf.String(), "123456")
}

func TestSMTPSenderRejectsBadRecipient(t *testing.T) {
	sender, err := NewSMTPSender(config.MailConfig{Host: "smtp.example.com", Port: 587, From: "vault@example.com"})
	require.NoError(t, err)

	err = sender.SendCode(context.Background(), "not an address", "123456", time.Minute)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid recipient")
}
