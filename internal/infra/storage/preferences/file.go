package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage хранит предпочтения клиентов в JSON файле
// Формат файла: {"<client_id>": {"language": "pl", "currency": "EUR"}}
type FileStorage struct {
	path string

	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewFileStorage открывает файл предпочтений, создавая пустое хранилище при его отсутствии
func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{
		path: path,
		data: make(map[string]map[string]string),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: NewFileStorage - read %s: %v", ErrReadStorage, path, err)
	}

	if len(raw) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("%w: NewFileStorage - decode %s: %v", ErrReadStorage, path, err)
	}

	return s, nil
}

// Get возвращает сохраненное значение ключа клиента
func (s *FileStorage) Get(_ context.Context, clientID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[clientID][key]
	return value, ok, nil
}

// Set сохраняет значение и сразу записывает файл на диск
// Если запись не удалась, значение в памяти остается прежним
func (s *FileStorage) Set(_ context.Context, clientID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, clientExists := s.data[clientID]
	if !clientExists {
		values = make(map[string]string)
		s.data[clientID] = values
	}
	prev, keyExists := values[key]
	values[key] = value

	if err := s.flush(); err != nil {
		switch {
		case !clientExists:
			delete(s.data, clientID)
		case keyExists:
			values[key] = prev
		default:
			delete(values, key)
		}
		return err
	}

	return nil
}

// flush вызывается под s.mu
func (s *FileStorage) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: flush - encode: %v", ErrWriteStorage, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: flush - mkdir %s: %v", ErrWriteStorage, dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: flush - write %s: %v", ErrWriteStorage, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: flush - rename %s: %v", ErrWriteStorage, tmp, err)
	}

	return nil
}
