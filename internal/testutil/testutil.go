// Package testutil provides an on-disk SQLite store and HTTP helpers for
// package tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupTestDB opens a fresh migrated SQLite database under t.TempDir.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pos.db")
	db, err := database.Connect(sqlite.Open(path), database.Config{LogLevel: "silent"}, nil)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SetupTestStore is SetupTestDB wrapped in a repository.Store.
func SetupTestStore(t *testing.T) (repository.Store, *gorm.DB) {
	t.Helper()
	db := SetupTestDB(t)
	return repository.NewStore(db), db
}

// Fixture holds one row of every master table, enough to satisfy the
// references of the transactional tables.
type Fixture struct {
	Unit     model.ProductUnit
	Category model.ProductCategory
	User     model.User
	Supplier model.Supplier
	Customer model.Customer
	Product  model.Product
}

// Seed inserts a Fixture directly through GORM.
func Seed(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()
	f := &Fixture{
		Unit:     model.ProductUnit{UnitName: "pcs"},
		Category: model.ProductCategory{CategoryName: "Beverages"},
		User: model.User{
			Username:    "alice",
			Fullname:    "Alice Admin",
			Designation: model.DesignationAdmin,
			AccountType: model.AccountSuperAdmin,
			Password:    "not-a-hash",
		},
		Supplier: model.Supplier{SupplierCode: "SUP-001", SupplierName: "Acme Wholesale"},
		Customer: model.Customer{CustomerCode: "CUS-001", CustomerName: "Walk-in"},
	}
	mustCreate(t, db, &f.Unit)
	mustCreate(t, db, &f.Category)
	mustCreate(t, db, &f.User)
	mustCreate(t, db, &f.Supplier)
	mustCreate(t, db, &f.Customer)

	f.Product = model.Product{
		ProduceCode: "P-001",
		ProductName: "Cola 330ml",
		UnitID:      f.Unit.UnitID,
		CategoryID:  f.Category.CategoryID,
		UnitInStock: 24,
		UnitPrice:   1.5,
		UserID:      f.User.UserID,
	}
	mustCreate(t, db, &f.Product)
	return f
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seed %T: %v", value, err)
	}
}

// DoRequest sends body, JSON encoded when not nil, through app.
func DoRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("encode request body: %v", err)
			}
			raw = string(encoded)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// ParseResponse decodes a JSON object body.
func ParseResponse(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

// ParseList decodes a JSON array body.
func ParseList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
