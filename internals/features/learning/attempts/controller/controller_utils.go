// file: internals/features/learning/attempts/controller/controller_utils.go
package controller

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// parseOptionalUUID: "" → (nil, nil); invalid → error
func parseOptionalUUID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// validationMap: validator.ValidationErrors → map[field][]pesan
func validationMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], fe.Tag())
	}
	return out
}
