package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/service"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	store, db := testutil.SetupTestStore(t)
	return newTestApp(store), db
}

func newTestApp(store repository.Store) *fiber.App {
	return NewApp(Options{
		Services:    service.NewServices(service.Deps{Store: store}),
		Store:       store,
		MetricsPath: "/metrics",
	})
}

func TestCatalogFlow(t *testing.T) {
	app, _ := setupApp(t)

	w := testutil.DoRequest(t, app, "POST", "/product-unit/", map[string]string{"unit_name": "pcs"})
	if w.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.StatusCode)
	}
	unit := testutil.ParseResponse(t, w)
	unitID := unit["unit_id"].(float64)

	w = testutil.DoRequest(t, app, "POST", "/product-category/", map[string]string{"category_name": "Snacks"})
	if w.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.StatusCode)
	}
	categoryID := testutil.ParseResponse(t, w)["category_id"].(float64)

	w = testutil.DoRequest(t, app, "POST", "/user/", map[string]interface{}{
		"username":     "bob",
		"fullname":     "Bob Builder",
		"designation":  1,
		"account_type": 1,
		"password":     "secret1",
	})
	if w.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.StatusCode)
	}
	user := testutil.ParseResponse(t, w)
	if _, leaked := user["password"]; leaked {
		t.Error("Expected password to be omitted from the response")
	}
	userID := user["user_id"].(float64)

	product := map[string]interface{}{
		"produce_code":  "SN-1",
		"product_name":  "Crisps",
		"unit_id":       unitID,
		"category_id":   categoryID,
		"unit_in_stock": 12,
		"unit_price":    0.99,
		"reorder_level": 3,
		"user_id":       userID,
	}
	w = testutil.DoRequest(t, app, "POST", "/product/", product)
	if w.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.StatusCode)
	}
	created := testutil.ParseResponse(t, w)
	if created["unit"] != "pcs" || created["category"] != "Snacks" || created["created_by"] != "bob" {
		t.Errorf("Expected enriched names, got %v", created)
	}
	productPath := fmt.Sprintf("/product/%v", created["product_id"])

	w = testutil.DoRequest(t, app, "POST", "/product/", product)
	if w.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400 for duplicate code, got %d", w.StatusCode)
	}
	if body := testutil.ParseResponse(t, w); body["field"] != "produce_code" {
		t.Errorf("Expected field produce_code, got %v", body)
	}

	product["produce_code"] = "SN-2"
	product["unit_id"] = 999
	w = testutil.DoRequest(t, app, "POST", "/product/", product)
	if w.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown unit, got %d", w.StatusCode)
	}
	if body := testutil.ParseResponse(t, w); body["field"] != "unit_id" {
		t.Errorf("Expected field unit_id, got %v", body)
	}

	w = testutil.DoRequest(t, app, "GET", "/product/", nil)
	if w.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.StatusCode)
	}
	if list := testutil.ParseList(t, w); len(list) != 1 {
		t.Errorf("Expected 1 product, got %d", len(list))
	}

	w = testutil.DoRequest(t, app, "DELETE", productPath, nil)
	if w.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.StatusCode)
	}
	if body := testutil.ParseResponse(t, w); body["message"] != "Product deleted successfully" {
		t.Errorf("Unexpected delete body: %v", body)
	}

	w = testutil.DoRequest(t, app, "DELETE", productPath, nil)
	if w.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected 404 on second delete, got %d", w.StatusCode)
	}
	if body := testutil.ParseResponse(t, w); body["error"] != "Product not found" {
		t.Errorf("Unexpected error body: %v", body)
	}
}

func TestRequestErrors(t *testing.T) {
	app, db := setupApp(t)
	f := testutil.Seed(t, db)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		error  string
	}{
		{"non numeric id", "GET", "/customer/abc", nil, http.StatusBadRequest, "Invalid ID"},
		{"zero id", "DELETE", "/supplier/0", nil, http.StatusBadRequest, "Invalid ID"},
		{"missing row", "GET", "/invoice/999", nil, http.StatusNotFound, "Invoice not found"},
		{"malformed body", "POST", "/customer/", "{not json", http.StatusBadRequest, "Invalid JSON"},
		{"empty partial update", "PUT", fmt.Sprintf("/user/%d", f.User.UserID), map[string]string{}, http.StatusBadRequest, "no fields to update"},
		{"missing field", "POST", "/customer/", map[string]string{"customer_code": "C-9"}, http.StatusBadRequest, "Validation failed: field 'customer_name' is required"},
		{"unknown route", "GET", "/nowhere", nil, http.StatusNotFound, "Cannot GET /nowhere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.DoRequest(t, app, tt.method, tt.path, tt.body)
			if w.StatusCode != tt.status {
				t.Fatalf("Expected %d, got %d", tt.status, w.StatusCode)
			}
			if body := testutil.ParseResponse(t, w); body["error"] != tt.error {
				t.Errorf("Expected error %q, got %v", tt.error, body["error"])
			}
		})
	}
}

func TestPartialUpdateOverHTTP(t *testing.T) {
	app, db := setupApp(t)
	f := testutil.Seed(t, db)

	path := fmt.Sprintf("/supplier/%d", f.Supplier.SupplierID)
	w := testutil.DoRequest(t, app, "PUT", path, map[string]string{"contact_person": "Eve"})
	if w.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.StatusCode)
	}
	body := testutil.ParseResponse(t, w)
	if body["contact_person"] != "Eve" || body["supplier_name"] != f.Supplier.SupplierName {
		t.Errorf("Unexpected supplier after update: %v", body)
	}
}

func TestHealthz(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	app := newTestApp(store)

	w := testutil.DoRequest(t, app, "GET", "/healthz", nil)
	if w.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.StatusCode)
	}
	if body := testutil.ParseResponse(t, w); body["status"] != "ok" {
		t.Errorf("Unexpected body: %v", body)
	}
	if w.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Error("Expected X-Request-ID header")
	}

	w = testutil.DoRequest(t, app, "GET", "/metrics", nil)
	if w.StatusCode != http.StatusOK {
		t.Fatalf("Expected metrics endpoint to answer 200, got %d", w.StatusCode)
	}
}
