package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bookverse/bookverse/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketCustomBooks = []byte("custom_books")
	bucketBookmarks   = []byte("bookmarks")
	bucketPrefs       = []byte("prefs")
)

// Keys within buckets. Values are JSON, matching what the browser app
// kept under its bookverse_* localStorage keys.
const (
	keyCustomBooks = "bookverse_custom_books"
	keyBookmarks   = "bookverse_bookmarks"
	keyTheme       = "bookverse_theme"
)

// BookStore implements domain.Store using BoltDB. Values read from
// disk are promoted into a memory cache keyed by bucket:key.
type BookStore struct {
	db *bolt.DB

	mu    sync.RWMutex
	cache map[string][]byte
}

func cacheKey(bucket []byte, key string) string {
	return string(bucket) + ":" + key
}

// NewBookStore opens the store under dataDir. An empty dataDir gives a
// memory-only store with no persistence, which tests rely on.
func NewBookStore(dataDir string) (*BookStore, error) {
	if dataDir == "" {
		return &BookStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "bookverse.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketCustomBooks, bucketBookmarks, bucketPrefs} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BookStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *BookStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *BookStore) get(bucket []byte, key string, dest interface{}) bool {
	ck := cacheKey(bucket, key)

	s.mu.RLock()
	data, cached := s.cache[ck]
	s.mu.RUnlock()

	if !cached {
		if s.db == nil {
			return false
		}
		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucket)
			if b == nil {
				return nil
			}
			if v := b.Get([]byte(key)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})
		if data == nil {
			return false
		}
		s.mu.Lock()
		s.cache[ck] = data
		s.mu.Unlock()
	}

	// A value that fails to decode counts as absent
	return json.Unmarshal(data, dest) == nil
}

func (s *BookStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[cacheKey(bucket, key)] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *BookStore) delete(bucket []byte, key string) {
	s.mu.Lock()
	delete(s.cache, cacheKey(bucket, key))
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// === Custom books ===

func (s *BookStore) GetCustomBooks() ([]domain.Book, bool) {
	var books []domain.Book
	ok := s.get(bucketCustomBooks, keyCustomBooks, &books)
	return books, ok
}

func (s *BookStore) SaveCustomBooks(books []domain.Book) error {
	return s.set(bucketCustomBooks, keyCustomBooks, books)
}

// === Bookmarks ===

func (s *BookStore) GetBookmarks() ([]int64, bool) {
	var ids []int64
	ok := s.get(bucketBookmarks, keyBookmarks, &ids)
	return ids, ok
}

func (s *BookStore) SaveBookmarks(ids []int64) error {
	return s.set(bucketBookmarks, keyBookmarks, ids)
}

// === Theme preference ===

func (s *BookStore) GetTheme() (string, bool) {
	var theme string
	if !s.get(bucketPrefs, keyTheme, &theme) {
		return "", false
	}
	theme = strings.TrimSpace(theme)
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return "", false
	}
	return theme, true
}

func (s *BookStore) SaveTheme(theme string) error {
	return s.set(bucketPrefs, keyTheme, theme)
}

func (s *BookStore) DeleteTheme() {
	s.delete(bucketPrefs, keyTheme)
}
