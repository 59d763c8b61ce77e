package impl

import (
	"maps"
	"slices"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var fieldValidator = validator.New(validator.WithRequiredStructEnabled())

// describeProblems flattens field -> message into a stable "field: message; ..." string.
func describeProblems(problems map[string]string) string {
	fields := slices.Sorted(maps.Keys(problems))

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+problems[field])
	}

	return strings.Join(parts, "; ")
}

func isValidEmail(email string) bool {
	return fieldValidator.Var(email, "required,email") == nil
}

// phoneProblem returns the checkout phone rule's message, "" when phone passes.
func phoneProblem(phone string) string {
	return entity.CustomerInfo{Phone: phone}.Validate()["phone"]
}
