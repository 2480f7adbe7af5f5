package sqlite

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
)

// lazyInit resolves a repository from the provider once.
type lazyInit[T any] struct {
	provider port.DatabaseProvider
	build    func(*sql.DB) T
	once     sync.Once
	repo     T
	err      error
}

func (l *lazyInit[T]) get(ctx context.Context) (T, error) {
	l.once.Do(func() {
		db, err := l.provider.DB(ctx)
		if err != nil {
			l.err = err
			return
		}
		l.repo = l.build(db)
	})
	return l.repo, l.err
}

// LazyPresetRepository opens the database on first use.
type LazyPresetRepository struct {
	init lazyInit[repository.PresetRepository]
}

// NewLazyPresetRepository creates a lazy-loading preset repository.
func NewLazyPresetRepository(provider port.DatabaseProvider) repository.PresetRepository {
	return &LazyPresetRepository{init: lazyInit[repository.PresetRepository]{provider: provider, build: NewPresetRepository}}
}

func (r *LazyPresetRepository) Save(ctx context.Context, preset *entity.Preset) error {
	repo, err := r.init.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, preset)
}

func (r *LazyPresetRepository) FindByID(ctx context.Context, id entity.PresetID) (*entity.Preset, error) {
	repo, err := r.init.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, id)
}

func (r *LazyPresetRepository) GetAll(ctx context.Context) ([]*entity.Preset, error) {
	repo, err := r.init.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetAll(ctx)
}

func (r *LazyPresetRepository) MaxCustomNumber(ctx context.Context) (int, error) {
	repo, err := r.init.get(ctx)
	if err != nil {
		return 0, err
	}
	return repo.MaxCustomNumber(ctx)
}

func (r *LazyPresetRepository) ReserveCustomNumber(ctx context.Context, floor int) (int, error) {
	repo, err := r.init.get(ctx)
	if err != nil {
		return 0, err
	}
	return repo.ReserveCustomNumber(ctx, floor)
}

func (r *LazyPresetRepository) Delete(ctx context.Context, id entity.PresetID) error {
	repo, err := r.init.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

func (r *LazyPresetRepository) DeleteAll(ctx context.Context) error {
	repo, err := r.init.get(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteAll(ctx)
}

// LazyLastSessionRepository opens the database on first use.
type LazyLastSessionRepository struct {
	init lazyInit[repository.LastSessionRepository]
}

// NewLazyLastSessionRepository creates a lazy-loading last session repository.
func NewLazyLastSessionRepository(provider port.DatabaseProvider) repository.LastSessionRepository {
	return &LazyLastSessionRepository{init: lazyInit[repository.LastSessionRepository]{provider: provider, build: NewLastSessionRepository}}
}

func (r *LazyLastSessionRepository) Save(ctx context.Context, session *entity.LastSession) error {
	repo, err := r.init.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, session)
}

func (r *LazyLastSessionRepository) GetLatest(ctx context.Context) (*entity.LastSession, error) {
	repo, err := r.init.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetLatest(ctx)
}

func (r *LazyLastSessionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	repo, err := r.init.get(ctx)
	if err != nil {
		return 0, err
	}
	return repo.DeleteOlderThan(ctx, cutoff)
}

func (r *LazyLastSessionRepository) DeleteAll(ctx context.Context) error {
	repo, err := r.init.get(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteAll(ctx)
}

// LazySettingsStore opens the database on first use.
type LazySettingsStore struct {
	init lazyInit[port.SettingsStore]
}

// NewLazySettingsStore creates a lazy-loading settings store.
func NewLazySettingsStore(provider port.DatabaseProvider) port.SettingsStore {
	return &LazySettingsStore{init: lazyInit[port.SettingsStore]{provider: provider, build: NewSettingsStore}}
}

func (s *LazySettingsStore) Get(ctx context.Context, keys ...string) (map[string]string, error) {
	store, err := s.init.get(ctx)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, keys...)
}

func (s *LazySettingsStore) Set(ctx context.Context, values map[string]string) error {
	store, err := s.init.get(ctx)
	if err != nil {
		return err
	}
	return store.Set(ctx, values)
}

func (s *LazySettingsStore) Clear(ctx context.Context) error {
	store, err := s.init.get(ctx)
	if err != nil {
		return err
	}
	return store.Clear(ctx)
}
