package database

import (
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "url wins",
			cfg:  Config{Driver: DriverPostgres, URL: "postgres://u:p@db/pos", Host: "ignored"},
			want: []string{"postgres://u:p@db/pos"},
		},
		{
			name: "postgres fields",
			cfg:  Config{Driver: DriverPostgres, Host: "db", Port: 5432, User: "pos", Password: "secret", Name: "pos_system", SSLMode: "disable"},
			want: []string{"host=db", "port=5432", "dbname=pos_system", "sslmode=disable"},
		},
		{
			name: "mysql fields",
			cfg:  Config{Driver: DriverMySQL, Host: "db", Port: 3306, User: "pos", Password: "secret", Name: "pos_system"},
			want: []string{"pos:secret@tcp(db:3306)/pos_system", "parseTime=true"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.cfg.DSN()
			for _, part := range tt.want {
				if !strings.Contains(dsn, part) {
					t.Errorf("Expected DSN %q to contain %q", dsn, part)
				}
			}
		})
	}
}

func TestFieldsOmitPassword(t *testing.T) {
	cfg := Config{Driver: DriverPostgres, Host: "db", Password: "secret"}
	for _, f := range cfg.Fields() {
		if f.String == "secret" {
			t.Fatalf("Password leaked in field %q", f.Key)
		}
	}
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	if _, err := (Config{Driver: "oracle"}).Dialector(); err == nil {
		t.Fatal("Expected error for unknown driver")
	}
}
