package app

import (
	"encoding/json"

	"mapmemo/internal/notes/domain/entities"
)

// encodeNotes сериализует коллекцию в JSON-массив. Пустая коллекция - это "[]".
func encodeNotes(notes []entities.Note) ([]byte, error) {
	if notes == nil {
		notes = []entities.Note{}
	}
	return json.Marshal(notes)
}

func decodeNotes(blob []byte) ([]entities.Note, error) {
	var notes []entities.Note
	if err := json.Unmarshal(blob, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []entities.Note{}
	}
	return notes, nil
}
