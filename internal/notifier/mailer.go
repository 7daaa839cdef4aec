// Package notifier mengirim rekap hasil run ETL lewat email.
package notifier

import (
	"fmt"
	"strings"

	"absensi-etl/config"
	"absensi-etl/internal/etl"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	enabled bool
	dialer  *gomail.Dialer
	from    string
	to      []string
}

// NewFromEnv membaca konfigurasi MAIL_*. Tanpa MAIL_HOST notifier jadi
// no-op supaya ETL tetap jalan di lingkungan tanpa SMTP.
func NewFromEnv() *Mailer {
	host := config.GetEnv("MAIL_HOST", "")
	to := strings.Split(config.GetEnv("MAIL_TO", ""), ",")
	var recipients []string
	for _, t := range to {
		if t = strings.TrimSpace(t); t != "" {
			recipients = append(recipients, t)
		}
	}

	if host == "" || len(recipients) == 0 {
		return &Mailer{}
	}

	return &Mailer{
		enabled: true,
		dialer: gomail.NewDialer(
			host,
			config.GetEnvAsInt("MAIL_PORT", 587),
			config.GetEnv("MAIL_USERNAME", ""),
			config.GetEnv("MAIL_PASSWORD", ""),
		),
		from: config.GetEnv("MAIL_FROM", "absensi-etl@localhost"),
		to:   recipients,
	}
}

// SendRecap mengirim ringkasan run. Dipanggil setelah batch selesai;
// kegagalan kirim tidak membatalkan hasil ETL.
func (m *Mailer) SendRecap(results []*etl.Result) error {
	if !m.enabled || len(results) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("Rekap ETL absensi:\n\n")
	for _, res := range results {
		fmt.Fprintf(&b, "%s: %d baris, %d dilewati, %d konflik history, %d fault",
			res.Tanggal, res.Rows, res.Skipped, res.Conflicts, res.Faults)
		if res.DryRun {
			b.WriteString(" (dry-run)")
		}
		b.WriteString("\n")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to...)
	msg.SetHeader("Subject", fmt.Sprintf("ETL absensi %s", results[len(results)-1].Tanggal))
	msg.SetBody("text/plain", b.String())

	return m.dialer.DialAndSend(msg)
}
