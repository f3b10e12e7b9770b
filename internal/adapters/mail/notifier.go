// Package mail dispatches release notifications over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/models"
	"github.com/example/launchpad/internal/ports/secondary"
)

// Notifier implements secondary.Notifier over SMTP. When SMTP is not
// configured, Notify is a logged no-op so local setups work without a
// mail server.
type Notifier struct {
	cfg        config.SMTP
	recipients []string
	dialer     *gomail.Dialer
}

// NewNotifier creates a notifier from the SMTP configuration.
func NewNotifier(cfg config.SMTP) *Notifier {
	n := &Notifier{
		cfg:        cfg,
		recipients: cfg.RecipientList(),
	}

	if cfg.Host == "" || len(n.recipients) == 0 {
		slog.Info("smtp not configured, release notifications disabled")
		return n
	}

	n.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return n
}

// Notify formats and sends the notification message for a persisted release.
func (n *Notifier) Notify(ctx context.Context, release *secondary.ReleaseRecord, action, actor string) error {
	if n.dialer == nil {
		slog.Debug("skipping release notification, smtp disabled", "release_id", release.ID)
		return nil
	}

	body, err := renderBody(release, action, actor)
	if err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	message := gomail.NewMessage()
	message.SetHeader("From", n.cfg.From)
	message.SetHeader("To", n.recipients...)
	message.SetHeader("Subject", subject(release))
	message.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// subject builds the message subject line, e.g.
// "Release decision: GO (FULL) for 2024-06-02".
func subject(release *secondary.ReleaseRecord) string {
	return fmt.Sprintf("Release decision: %s (%s) for %s", release.Status, release.ReleaseType, release.ReleaseDate)
}

var bodyTemplate = template.Must(template.New("notification").Parse(`<html>
<body>
<h2 style="color:{{if .Go}}#2e7d32{{else}}#c62828{{end}}">{{.Release.Status}} &mdash; {{.Release.ReleaseDate}}</h2>
<p>Release type: <strong>{{.Release.ReleaseType}}</strong></p>
<p>Decision {{.Action}} by {{.Actor}}.</p>
{{if .Release.Explanation}}<p>Explanation: {{.Release.Explanation}}</p>{{end}}
{{if .Release.Tickets}}
<h3>Excluded tickets</h3>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Key</th><th>Summary</th></tr>
{{range .Release.Tickets}}
<tr><td>{{if .URL}}<a href="{{.URL}}">{{.TicketKey}}</a>{{else}}{{.TicketKey}}{{end}}</td><td>{{.Summary}}</td></tr>
{{end}}
</table>
{{else}}
<p>No excluded tickets.</p>
{{end}}
</body>
</html>`))

func renderBody(release *secondary.ReleaseRecord, action, actor string) (string, error) {
	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, struct {
		Release *secondary.ReleaseRecord
		Action  string
		Actor   string
		Go      bool
	}{
		Release: release,
		Action:  action,
		Actor:   actor,
		Go:      release.Status == models.StatusGo,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Ensure Notifier implements the interface.
var _ secondary.Notifier = (*Notifier)(nil)
