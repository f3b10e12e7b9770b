// Package jira resolves ticket keys against a JIRA instance.
package jira

import (
	"context"
	"log/slog"
	"strings"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/ports/secondary"
)

// Client implements secondary.TicketLookup against JIRA's REST API.
// When the base URL or credentials are not configured the client runs in
// degraded mode: lookups return the key with a best-effort browse URL and no
// summary, which is a valid result, not a failure.
type Client struct {
	baseURL string
	jira    *gojira.Client
}

// NewClient creates a ticket lookup from the JIRA configuration.
func NewClient(cfg config.JIRA) *Client {
	c := &Client{baseURL: strings.TrimRight(cfg.BaseURL, "/")}

	if cfg.BaseURL == "" || cfg.Username == "" || cfg.APIToken == "" {
		slog.Info("jira credentials not configured, ticket lookup degraded to key-only")
		return c
	}

	transport := gojira.BasicAuthTransport{
		Username: cfg.Username,
		Password: cfg.APIToken,
	}
	client, err := gojira.NewClient(transport.Client(), cfg.BaseURL)
	if err != nil {
		slog.Warn("failed to build jira client, ticket lookup degraded", "error", err)
		return c
	}

	c.jira = client
	return c
}

// Lookup resolves a ticket key. It never returns an error: an unreachable
// tracker or unknown key degrades to key-only details.
func (c *Client) Lookup(ctx context.Context, key string) *secondary.TicketDetail {
	detail := &secondary.TicketDetail{
		Key: key,
		URL: c.browseURL(key),
	}

	if c.jira == nil {
		return detail
	}

	issue, _, err := c.jira.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		slog.Warn("ticket lookup failed", "key", key, "error", err)
		return detail
	}
	if issue.Fields != nil {
		detail.Summary = issue.Fields.Summary
	}

	return detail
}

// browseURL builds the human-facing ticket URL from the key alone, or empty
// when no base URL is known.
func (c *Client) browseURL(key string) string {
	if c.baseURL == "" {
		return ""
	}
	return c.baseURL + "/browse/" + key
}

// Ensure Client implements the interface.
var _ secondary.TicketLookup = (*Client)(nil)
