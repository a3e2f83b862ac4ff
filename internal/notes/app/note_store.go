// Package app implements the note store on top of a blob storage port.
package app

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"mapmemo/internal/notes/domain/entities"
	"mapmemo/internal/notes/ports/repositories"
	"mapmemo/pkg/logger"
)

// DefaultNotesKey - ключ, под которым хранится коллекция заметок.
const DefaultNotesKey = "notes"

// Константы для логирования.
const (
	LogBlobMissing    = "notes blob is absent, starting with an empty collection"
	LogNoteCreated    = "note created"
	LogNoteEdited     = "note edited"
	LogNoteDeleted    = "note deleted"
	LogNoteNotMatched = "no note matches id, nothing written"

	ErrReadBlob   = "failed to read notes blob"
	ErrDecodeBlob = "failed to decode notes blob"
	ErrEncodeBlob = "failed to encode notes"
	ErrWriteBlob  = "failed to write notes blob"
)

// NoteStore владеет коллекцией заметок, сохраненной одним блобом под одним ключом.
//
// Каждая изменяющая операция заново читает всю коллекцию, меняет ее в памяти
// и записывает целиком. Блокировок нет: две пересекающиеся мутации гонятся,
// и последняя запись молча затирает предыдущую. Вызывающий код обязан
// выполнять операции последовательно из одного контекста исполнения.
//
// Ошибки хранилища не возвращаются вызывающему: чтение деградирует до пустой
// коллекции, запись теряется. Все такие сбои пишутся в лог.
type NoteStore struct {
	blobs repositories.BlobStore
	key   string
}

// NewNoteStore создает хранилище заметок поверх blobs. Пустой key заменяется на DefaultNotesKey.
func NewNoteStore(blobs repositories.BlobStore, key string) *NoteStore {
	if key == "" {
		key = DefaultNotesKey
	}
	return &NoteStore{
		blobs: blobs,
		key:   key,
	}
}

// Key возвращает ключ блоба с заметками.
func (s *NoteStore) Key() string {
	return s.key
}

// LoadNotes читает всю коллекцию в порядке хранения.
// Отсутствующий, битый или недоступный блоб дает пустой срез.
func (s *NoteStore) LoadNotes(ctx context.Context) []entities.Note {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.LoadNotes"), zap.String("key", s.key))

	blob, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		log.Error(ctx, ErrReadBlob, zap.Error(err))
		return []entities.Note{}
	}
	if blob == nil {
		log.Debug(ctx, LogBlobMissing)
		return []entities.Note{}
	}

	notes, err := decodeNotes(blob)
	if err != nil {
		log.Warn(ctx, ErrDecodeBlob, zap.Error(err), zap.Int("size", len(blob)))
		return []entities.Note{}
	}

	return notes
}

// SaveNotes перезаписывает блоб переданной коллекцией. Сбои только логируются.
func (s *NoteStore) SaveNotes(ctx context.Context, notes []entities.Note) {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.SaveNotes"), zap.String("key", s.key))

	blob, err := encodeNotes(notes)
	if err != nil {
		log.Error(ctx, ErrEncodeBlob, zap.Error(err))
		return
	}

	if err := s.blobs.Set(ctx, s.key, blob); err != nil {
		log.Error(ctx, ErrWriteBlob, zap.Error(err), zap.Int("notes", len(notes)))
		return
	}

	log.Debug(ctx, "notes saved", zap.Int("notes", len(notes)))
}

// CreateNewNote добавляет заметку со свежим ID в конец коллекции и возвращает ее.
func (s *NoteStore) CreateNewNote(ctx context.Context, title, content string, latitude, longitude float64, date time.Time) entities.Note {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.CreateNewNote"))

	note := entities.NewNote(title, content, latitude, longitude, date)

	notes := s.LoadNotes(ctx)
	notes = append(notes, note)
	s.SaveNotes(ctx, notes)

	log.Debug(ctx, LogNoteCreated, zap.String("noteID", note.ID))
	return note
}

// EditNote перезаписывает изменяемые поля первой заметки с указанным ID.
// Если такой заметки нет, ничего не записывается.
func (s *NoteStore) EditNote(ctx context.Context, noteID, title, content string, latitude, longitude float64, date time.Time) {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.EditNote"), zap.String("noteID", noteID))

	notes := s.LoadNotes(ctx)
	for i := range notes {
		if notes[i].ID != noteID {
			continue
		}
		notes[i].Title = entities.ValidText(title)
		notes[i].Content = entities.ValidText(content)
		notes[i].Latitude = latitude
		notes[i].Longitude = longitude
		notes[i].Date = date
		s.SaveNotes(ctx, notes)

		log.Debug(ctx, LogNoteEdited)
		return
	}

	log.Debug(ctx, LogNoteNotMatched)
}

// DeleteNote удаляет все заметки с указанным ID.
func (s *NoteStore) DeleteNote(ctx context.Context, noteID string) {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.DeleteNote"), zap.String("noteID", noteID))

	notes := s.LoadNotes(ctx)
	kept := notes[:0]
	for _, note := range notes {
		if note.ID != noteID {
			kept = append(kept, note)
		}
	}

	removed := len(notes) - len(kept)
	if removed == 0 {
		log.Debug(ctx, LogNoteNotMatched)
		return
	}

	s.SaveNotes(ctx, kept)
	log.Debug(ctx, LogNoteDeleted, zap.Int("removed", removed))
}

// GetNote возвращает первую заметку с указанным ID.
func (s *NoteStore) GetNote(ctx context.Context, noteID string) (entities.Note, bool) {
	for _, note := range s.LoadNotes(ctx) {
		if note.ID == noteID {
			return note, true
		}
	}
	return entities.Note{}, false
}

// SearchNotes возвращает заметки, у которых заголовок или текст содержит query
// без учета регистра. Пустой query возвращает всю коллекцию.
func (s *NoteStore) SearchNotes(ctx context.Context, query string) []entities.Note {
	notes := s.LoadNotes(ctx)
	if query == "" {
		return notes
	}

	needle := strings.ToLower(query)
	matched := make([]entities.Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), needle) ||
			strings.Contains(strings.ToLower(note.Content), needle) {
			matched = append(matched, note)
		}
	}
	return matched
}
