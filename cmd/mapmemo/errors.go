package main

import (
	"errors"
	"fmt"

	"mapmemo/internal/notes/domain/entities"
)

var (
	// ErrInvalidCoordinates возвращается для широты вне [-90, 90] или долготы вне [-180, 180].
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrNoteNotFound возвращается командами, которым нужна существующая заметка.
	ErrNoteNotFound = errors.New("note not found")
)

func validateCoordinates(latitude, longitude float64) error {
	if !entities.ValidCoordinates(latitude, longitude) {
		return fmt.Errorf("%w: latitude %v, longitude %v", ErrInvalidCoordinates, latitude, longitude)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
}
