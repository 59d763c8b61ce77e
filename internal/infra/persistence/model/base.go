// Package model holds the GORM row types. Repositories map them to entities.
package model

import (
	"github.com/google/uuid"
)

// newID returns a time-ordered UUID so primary key indexes stay append-mostly.
func newID() uuid.UUID {
	if id, err := uuid.NewV7(); err == nil {
		return id
	}

	return uuid.New()
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = newID()
	}
}
