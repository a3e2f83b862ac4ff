// Package entities defines the domain entities of the note store.
package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note - заметка, привязанная к координатам.
// ID назначается один раз при создании и больше не меняется.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Date      time.Time `json:"date"`
}

// NewNote создает заметку со свежим UUID.
func NewNote(title, content string, latitude, longitude float64, date time.Time) Note {
	return Note{
		ID:        uuid.NewString(),
		Title:     ValidText(title),
		Content:   ValidText(content),
		Latitude:  latitude,
		Longitude: longitude,
		Date:      date,
	}
}

// ValidText заменяет каждую некорректную UTF-8 последовательность на U+FFFD.
// После этого JSON-кодирование не меняет текст.
func ValidText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// ValidCoordinates сообщает, лежат ли координаты в [-90, 90] x [-180, 180].
func ValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
