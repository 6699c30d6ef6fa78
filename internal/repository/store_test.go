package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/testutil"

	"gorm.io/gorm"
)

func TestLookupExists(t *testing.T) {
	store, db := testutil.SetupTestStore(t)
	f := testutil.Seed(t, db)

	tests := []struct {
		table  string
		column string
		value  interface{}
		want   bool
	}{
		{model.TableProductUnit, "unit_id", f.Unit.UnitID, true},
		{model.TableProductUnit, "unit_id", int64(999), false},
		{model.TableUser, "username", "alice", true},
		{model.TableUser, "username", "ALICE2", false},
		{model.TableProduct, "produce_code", f.Product.ProduceCode, true},
	}

	err := store.Session(context.Background(), func(r *repository.Repositories) error {
		for _, tt := range tests {
			got, err := r.Lookup.Exists(context.Background(), tt.table, tt.column, tt.value)
			if err != nil {
				return err
			}
			if got != tt.want {
				t.Errorf("Exists(%s.%s = %v) = %v, want %v", tt.table, tt.column, tt.value, got, tt.want)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
}

func TestSessionQueriesDoNotShareConditions(t *testing.T) {
	store, db := testutil.SetupTestStore(t)
	testutil.Seed(t, db)
	ctx := context.Background()

	err := store.Session(ctx, func(r *repository.Repositories) error {
		if _, err := r.Units.FindByID(ctx, 999); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got %v", err)
		}
		units, err := r.Units.FindAll(ctx)
		if err != nil {
			return err
		}
		if len(units) != 1 {
			t.Errorf("Expected 1 unit after a failed lookup, got %d", len(units))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
}

func TestTableWrites(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	ctx := context.Background()

	err := store.Session(ctx, func(r *repository.Repositories) error {
		customer := &model.Customer{CustomerCode: "C-1", CustomerName: "Dana", Contact: "555-0100"}
		if err := r.Customers.Create(ctx, customer); err != nil {
			return err
		}
		if customer.CustomerID == 0 {
			t.Fatal("Expected generated customer_id")
		}

		// Replace clears columns left at their zero value.
		if err := r.Customers.Replace(ctx, &model.Customer{CustomerID: customer.CustomerID, CustomerCode: "C-1", CustomerName: "Dana B"}); err != nil {
			return err
		}
		got, err := r.Customers.FindByID(ctx, customer.CustomerID)
		if err != nil {
			return err
		}
		if got.CustomerName != "Dana B" || got.Contact != "" {
			t.Errorf("Unexpected customer after replace: %+v", got)
		}

		removed, err := r.Customers.Delete(ctx, customer.CustomerID)
		if err != nil || !removed {
			t.Errorf("Expected first delete to remove the row, got %v %v", removed, err)
		}
		removed, err = r.Customers.Delete(ctx, customer.CustomerID)
		if err != nil || removed {
			t.Errorf("Expected second delete to report nothing removed, got %v %v", removed, err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
}

func TestViewFindByIDMissing(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	ctx := context.Background()

	err := store.Session(ctx, func(r *repository.Repositories) error {
		_, err := r.Products.FindView(ctx, 42)
		return err
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Expected ErrRecordNotFound, got %v", err)
	}
}

func TestStorePing(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
