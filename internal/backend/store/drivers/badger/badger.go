// Package badger is a KV driver over an embedded Badger database.
package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/caffeinepub/task-queue/pkg/slogx"
)

var ErrClosed = errors.New("badger: database closed")

type Options struct {
	// Dir holds the value log and LSM files. Ignored when InMemory is set.
	Dir      string
	InMemory bool
	Logger   *slog.Logger
}

type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database described by opts.
func Open(opts Options) (*Store, error) {
	path := opts.Dir
	if opts.InMemory {
		path = ""
	}

	bo := badger.DefaultOptions(path).
		WithInMemory(opts.InMemory).
		WithLogger(logAdapter{log: slogx.OrDiscard(opts.Logger).With("component", "badger")})

	db, err := badger.Open(bo)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(value), true, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

func (s *Store) Remove(_ context.Context, key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *Store) Ping(context.Context) error {
	if s.db.IsClosed() {
		return ErrClosed
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// logAdapter routes badger's printf-style logging into slog.
type logAdapter struct{ log *slog.Logger }

func (l logAdapter) Errorf(f string, args ...any)   { l.log.Error(msg(f, args)) }
func (l logAdapter) Warningf(f string, args ...any) { l.log.Warn(msg(f, args)) }
func (l logAdapter) Infof(f string, args ...any)    { l.log.Debug(msg(f, args)) }
func (l logAdapter) Debugf(f string, args ...any)   { l.log.Debug(msg(f, args)) }

func msg(f string, args []any) string {
	return strings.TrimSpace(fmt.Sprintf(f, args...))
}
