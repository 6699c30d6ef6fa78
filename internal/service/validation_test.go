package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type fakeLookup struct {
	rows  map[string]bool
	err   error
	calls []string
}

func (f *fakeLookup) Exists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	f.calls = append(f.calls, table+"."+column)
	if f.err != nil {
		return false, f.err
	}
	return f.rows[table+"."+column], nil
}

func TestCheckRunsReferencesBeforeUniques(t *testing.T) {
	lookup := &fakeLookup{rows: map[string]bool{"tblproduct.produce_code": true}}
	err := Check(context.Background(), lookup,
		Unique("produce_code", "tblproduct", "produce_code", "P-1"),
		Reference("unit_id", "tblproductunit", "unit_id", int64(999)),
	)

	var ref *ReferenceError
	if !errors.As(err, &ref) {
		t.Fatalf("Expected ReferenceError, got %v", err)
	}
	if ref.Field != "unit_id" {
		t.Errorf("Expected field unit_id, got %s", ref.Field)
	}
	if len(lookup.calls) != 1 {
		t.Errorf("Expected to stop after the first failure, got calls %v", lookup.calls)
	}
}

func TestCheckOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		rows  map[string]bool
		rules []Rule
		want  string
	}{
		{
			name:  "all pass",
			rows:  map[string]bool{"tblproductunit.unit_id": true},
			rules: []Rule{Reference("unit_id", "tblproductunit", "unit_id", 1), Unique("unit_name", "tblproductunit", "unit_name", "box")},
			want:  "",
		},
		{
			name:  "missing reference",
			rows:  map[string]bool{},
			rules: []Rule{Reference("user_id", "tbluser", "user_id", 7)},
			want:  "reference",
		},
		{
			name:  "taken unique value",
			rows:  map[string]bool{"tbluser.username": true},
			rules: []Rule{Unique("username", "tbluser", "username", "alice")},
			want:  "conflict",
		},
		{
			name:  "no rules",
			rules: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(context.Background(), &fakeLookup{rows: tt.rows}, tt.rules...)
			got := ""
			if err != nil {
				got = rejectionReason(err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q (%v)", tt.want, got, err)
			}
		})
	}
}

func TestCheckWrapsLookupFailure(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("connection reset")}
	err := Check(context.Background(), lookup, Reference("unit_id", "tblproductunit", "unit_id", 1))

	var fault *StoreFault
	if !errors.As(err, &fault) {
		t.Fatalf("Expected StoreFault, got %v", err)
	}
	if err.Error() != "Database error: connection reset" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestValidateRequestReportsFirstField(t *testing.T) {
	err := validateRequest(&ProductUnitRequest{})

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if validation.Field != "unit_name" {
		t.Errorf("Expected field unit_name, got %s", validation.Field)
	}
	if validation.Error() != "Validation failed: field 'unit_name' is required" {
		t.Errorf("Unexpected message: %s", validation.Error())
	}
}

func TestClassifyWrite(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"translated duplicate", gorm.ErrDuplicatedKey, "conflict"},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, "conflict"},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062}, "conflict"},
		{"anything else", errors.New("disk full"), "store_fault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyWrite(tt.err, "username", "bob")
			var fault *StoreFault
			got := ""
			switch {
			case errors.As(err, &fault):
				got = "store_fault"
			case err != nil:
				got = rejectionReason(err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q (%v)", tt.want, got, err)
			}
		})
	}
}
