package mail

import (
	"context"
	"fmt"
	"log/slog"
	"svg-vault/internal/config"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Sender delivers one-time sign-in codes.
type Sender interface {
	SendCode(ctx context.Context, to, code string, ttl time.Duration) error
}

// New returns the sender selected by mail.driver.
func New(cfg config.MailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Driver {
	case "smtp":
		return NewSMTPSender(cfg)
	case "log", "":
		return &LogSender{logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}

func codeMessage(code string, ttl time.Duration) (string, string) {
	subject := "Your SVG Vault sign-in code"
	body := fmt.Sprintf(
		"Your sign-in code is %s\n\nIt expires in %d minutes. If you did not request it, you can ignore this email.\n",
		code, int(ttl.Minutes()),
	)
	return subject, body
}

type SMTPSender struct {
	client *gomail.Client
	from   string
}

func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(15 * time.Second),
	}
	if cfg.TLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.From}, nil
}

func (s *SMTPSender) SendCode(ctx context.Context, to, code string, ttl time.Duration) error {
	subject, body := codeMessage(code, ttl)

	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver code: %w", err)
	}
	return nil
}

// LogSender writes codes to the log instead of mailing them. Development only.
type LogSender struct {
	logger *slog.Logger
}

func (s *LogSender) SendCode(_ context.Context, to, code string, ttl time.Duration) error {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("sign-in code", "to", to, "code", code, "expires_in", ttl.String())
	return nil
}
