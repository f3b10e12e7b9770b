package config

import "testing"

func TestIsPrivileged(t *testing.T) {
	tests := []struct {
		name   string
		admins string
		email  string
		want   bool
	}{
		{"listed admin", "a@x.com,b@x.com", "a@x.com", true},
		{"second entry with spaces", "a@x.com, b@x.com", "b@x.com", true},
		{"unlisted user", "a@x.com,b@x.com", "c@x.com", false},
		{"empty allow-list", "", "a@x.com", false},
		{"empty email", "a@x.com", "", false},
		{"no partial match", "admin@x.com", "admin@x.co", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := Access{AdminEmails: tt.admins}
			if got := access.IsPrivileged(tt.email); got != tt.want {
				t.Errorf("IsPrivileged(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestRecipientList(t *testing.T) {
	smtp := SMTP{Recipients: "a@x.com, b@x.com,,c@x.com "}
	got := smtp.RecipientList()
	want := []string{"a@x.com", "b@x.com", "c@x.com"}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recipients[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecipientListEmpty(t *testing.T) {
	if got := (SMTP{}).RecipientList(); len(got) != 0 {
		t.Errorf("RecipientList() = %v, want empty", got)
	}
}
