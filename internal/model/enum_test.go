package model

import "testing"

func TestEnumValidity(t *testing.T) {
	tests := []struct {
		name  string
		code  interface{ Valid() bool }
		valid bool
		str   string
	}{
		{"staff", DesignationStaff, true, "STAFF"},
		{"admin designation", DesignationAdmin, true, "ADMIN"},
		{"designation zero", Designation(0), false, "UNKNOWN"},
		{"designation four", Designation(4), false, "UNKNOWN"},
		{"regular", AccountRegular, true, "REGULAR"},
		{"super admin", AccountSuperAdmin, true, "SUPER_ADMIN"},
		{"account four", AccountType(4), false, "UNKNOWN"},
		{"cash", PaymentCash, true, "CASH"},
		{"mobile money", PaymentMobileMoney, true, "MOBILE_MONEY"},
		{"payment five", PaymentType(5), false, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.(interface{ String() string }).String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}
