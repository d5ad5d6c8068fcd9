package database

import "testing"

func TestParseURL(t *testing.T) {
	tests := []struct {
		url        string
		wantDriver Driver
		wantDSN    string
		wantErr    bool
	}{
		{"postgres://u:p@localhost:5432/biblioteca", DriverPostgres, "postgres://u:p@localhost:5432/biblioteca", false},
		{"postgresql://localhost/biblioteca", DriverPostgres, "postgresql://localhost/biblioteca", false},
		{"sqlite://:memory:", DriverSQLite, ":memory:", false},
		{"sqlite:", DriverSQLite, ":memory:", false},
		{"sqlite://biblioteca.db", DriverSQLite, "biblioteca.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", false},
		{"mysql://root@localhost/x", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			driver, dsn, err := parseURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if driver != tt.wantDriver || dsn != tt.wantDSN {
				t.Errorf("got (%q, %q), want (%q, %q)", driver, dsn, tt.wantDriver, tt.wantDSN)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	got := redact("postgres://user:secret@db:5432/biblioteca")
	if got != "postgres://***@db:5432/biblioteca" {
		t.Errorf("redact: got %q", got)
	}
	if got := redact("sqlite://file.db"); got != "sqlite://file.db" {
		t.Errorf("redact without credentials: got %q", got)
	}
}
