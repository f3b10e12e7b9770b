package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/ports/secondary"
)

func testRelease() *secondary.ReleaseRecord {
	return &secondary.ReleaseRecord{
		ID:          1,
		ReleaseDate: "2024-06-02",
		Status:      "NO_GO",
		ReleaseType: "FULL",
		Explanation: "rollback risk",
		Tickets: []*secondary.TicketRecord{
			{TicketKey: "ABC-1", Summary: "Login broken", URL: "https://jira.example.com/browse/ABC-1"},
			{TicketKey: "ABC-2"},
		},
	}
}

func TestNotifyNoOpWhenUnconfigured(t *testing.T) {
	notifier := NewNotifier(config.SMTP{})

	if err := notifier.Notify(context.Background(), testRelease(), "created", "a@x.com"); err != nil {
		t.Errorf("Notify() error = %v, want nil no-op", err)
	}
}

func TestSubject(t *testing.T) {
	got := subject(testRelease())
	want := "Release decision: NO_GO (FULL) for 2024-06-02"
	if got != want {
		t.Errorf("subject = %q, want %q", got, want)
	}
}

func TestRenderBody(t *testing.T) {
	body, err := renderBody(testRelease(), "created", "a@x.com")
	if err != nil {
		t.Fatalf("renderBody() error = %v", err)
	}

	for _, want := range []string{
		"NO_GO",
		"2024-06-02",
		"rollback risk",
		"created by a@x.com",
		`<a href="https://jira.example.com/browse/ABC-1">ABC-1</a>`,
		"Login broken",
		"ABC-2",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderBodyWithoutTickets(t *testing.T) {
	release := testRelease()
	release.Tickets = nil

	body, err := renderBody(release, "created", "a@x.com")
	if err != nil {
		t.Fatalf("renderBody() error = %v", err)
	}
	if !strings.Contains(body, "No excluded tickets") {
		t.Error("body missing empty-ticket note")
	}
}
