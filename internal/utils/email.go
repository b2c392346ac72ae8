package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"
)

// Mailer envoie la confirmation de commande via SMTP.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailerFromEnv() *Mailer {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@promomarket.com"
	}

	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
	}
}

// Notify compose et envoie l'e-mail de confirmation d'achat. Un seul
// essai: l'erreur de transport remonte à l'orchestrateur.
func (m *Mailer) Notify(ctx context.Context, to, username string, lines []string, total int64) error {
	msg := mail.NewMsg()

	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Confirmation d'achat - PromoMarket")
	msg.SetBodyString(mail.TypeTextPlain, confirmationBody(username, lines, total))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de la confirmation d'achat à", to)
	return client.DialAndSendWithContext(ctx, msg)
}

func confirmationBody(username string, lines []string, total int64) string {
	return fmt.Sprintf(
		"Bonjour %s,\n\nVotre achat a bien été confirmé !\n\nProduits:\n%s\n\nTotal: %d\n\nMerci de votre confiance !",
		username, strings.Join(lines, "\n"), total)
}
