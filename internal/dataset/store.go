package dataset

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"propfilter/domain/project"
	"propfilter/internal/errors"
	"propfilter/internal/logger"
	"propfilter/ports"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Store caches normalized tables keyed by source version.
//
// A table is built once per SourceKey; when the file behind a path changes the
// next lookup builds a new table and evicts the stale one. Concurrent lookups
// of the same version share a single load.
type Store struct {
	loader ports.SourceLoaderPort
	cache  *lru.Cache[string, *ports.ProjectTable]
	group  singleflight.Group
	log    *logger.Logger

	mu      sync.Mutex
	current map[string]SourceKey // absolute path -> cached version
}

// loadTimeout bounds a shared load, which outlives any single caller
const loadTimeout = 2 * time.Minute

var _ ports.ProjectTablePort = (*Store)(nil)

// NewStore creates a store holding at most size tables
func NewStore(size int, loader ports.SourceLoaderPort) (*Store, error) {
	cache, err := lru.New[string, *ports.ProjectTable](size)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid(err.Error()), "failed to create table cache")
	}
	return &Store{
		loader:  loader,
		cache:   cache,
		log:     logger.Named("dataset"),
		current: make(map[string]SourceKey),
	}, nil
}

// Table returns the normalized table for the current version of path
func (s *Store) Table(ctx context.Context, path string) (*ports.ProjectTable, error) {
	key, err := Identify(path)
	if err != nil {
		return nil, err
	}
	k := key.String()

	if table, ok := s.cache.Get(k); ok {
		s.log.Debug().Str("source", key.Path).Msg("table cache hit")
		return table, nil
	}

	ch := s.group.DoChan(k, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return s.build(loadCtx, key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.log.Debug().Str("source", key.Path).Msg("joined in-flight load")
		}
		return res.Val.(*ports.ProjectTable), nil
	}
}

func (s *Store) build(ctx context.Context, key SourceKey) (*ports.ProjectTable, error) {
	start := time.Now()

	wide, err := s.loader.LoadWide(ctx, key.Path)
	if err != nil {
		return nil, err
	}
	records, err := project.Normalize(wide)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot normalize %s", key.Path)
	}
	digest, err := Digest(key.Path)
	if err != nil {
		return nil, err
	}

	table := &ports.ProjectTable{
		SourceKey: key.String(),
		Digest:    digest,
		Records:   records,
		LoadedAt:  time.Now(),
	}

	s.remember(key, table)

	s.log.Info().
		Str("source", key.Path).
		Int("wide_rows", len(wide.Rows)).
		Int("projects", len(records)).
		Dur("took", time.Since(start)).
		Msg("table normalized")
	return table, nil
}

// remember caches table as the current version of its path. A build that
// finishes after a newer version was cached is returned to its callers but
// not kept.
func (s *Store) remember(key SourceKey, table *ports.ProjectTable) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.current[key.Path]; ok && cur.String() != key.String() {
		if cur.ModTime.After(key.ModTime) {
			s.log.Debug().Str("source", key.Path).Msg("older version finished last, not cached")
			return
		}
		s.cache.Remove(cur.String())
		s.log.Info().Str("source", key.Path).Msg("source changed, stale table evicted")
	}
	s.current[key.Path] = key
	s.cache.Add(key.String(), table)
}

// Invalidate drops any cached table for path
func (s *Store) Invalidate(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if k, ok := s.current[abs]; ok {
		s.cache.Remove(k.String())
		delete(s.current, abs)
	}
}

// Len returns the number of cached tables
func (s *Store) Len() int {
	return s.cache.Len()
}
