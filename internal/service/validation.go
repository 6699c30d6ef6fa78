package service

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/validator"
)

type ruleKind int

const (
	referenceRule ruleKind = iota
	uniqueRule
)

// Rule is one existence or uniqueness check run before a write.
type Rule struct {
	kind   ruleKind
	Field  string
	Table  string
	Column string
	Value  interface{}
}

// Reference requires a row with column = value to exist in table.
func Reference(field, table, column string, value interface{}) Rule {
	return Rule{kind: referenceRule, Field: field, Table: table, Column: column, Value: value}
}

// Unique requires that no row with column = value exists in table.
func Unique(field, table, column string, value interface{}) Rule {
	return Rule{kind: uniqueRule, Field: field, Table: table, Column: column, Value: value}
}

// Check runs every reference rule, then every uniqueness rule, in the order
// given within each group. It stops at the first failure.
func Check(ctx context.Context, lookup repository.Lookup, rules ...Rule) error {
	for _, kind := range []ruleKind{referenceRule, uniqueRule} {
		for _, rule := range rules {
			if rule.kind != kind {
				continue
			}
			exists, err := lookup.Exists(ctx, rule.Table, rule.Column, rule.Value)
			if err != nil {
				return storeFault(err)
			}
			switch {
			case kind == referenceRule && !exists:
				return &ReferenceError{Field: rule.Field, Value: rule.Value}
			case kind == uniqueRule && exists:
				return &ConflictError{Field: rule.Field, Value: rule.Value}
			}
		}
	}
	return nil
}

// validateRequest runs struct tag validation and reports the first failure.
func validateRequest(req interface{}) error {
	errs := validator.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return &ValidationError{Field: first.Field, Reason: reason(first.Tag, first.Value)}
}

func reason(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "date_required":
		return "is required as YYYY-MM-DD"
	case "enum":
		return "is not a known code"
	case "min":
		return "must be at least " + param + " characters"
	case "max":
		return "must be at most " + param + " characters"
	case "gte":
		return "must be greater than or equal to " + param
	case "gt":
		return "must be greater than " + param
	case "lte":
		return "must be less than or equal to " + param
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + param
	}
	return "failed on tag '" + tag + "'"
}
