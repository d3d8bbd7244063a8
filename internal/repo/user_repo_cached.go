package repo

import (
	"context"
	"strconv"
	"time"

	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/core/cache"
	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/domain"
	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/schema"
)

// CachedUserRepo decorates a UserRepository with a read-through cache on
// FindByID. Writes go straight to the inner repository and invalidate the
// cached row. Missing rows are cached as "null" so repeated lookups do not
// hit the database.
type CachedUserRepo struct {
	inner domain.UserRepository
	cache *cache.Cache
	ttl   time.Duration
}

var _ domain.UserRepository = (*CachedUserRepo)(nil)

func NewCachedUserRepo(inner domain.UserRepository, c *cache.Cache, ttl time.Duration) *CachedUserRepo {
	return &CachedUserRepo{inner: inner, cache: c, ttl: ttl}
}

func userKey(id int64) string { return "user:id:" + strconv.FormatInt(id, 10) }

func (r *CachedUserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.inner.Create(ctx, u)
}

func (r *CachedUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return cache.GetOrLoadJSON(r.cache, ctx, userKey(id), r.ttl,
		func(ctx context.Context) (*domain.User, error) {
			return r.inner.FindByID(ctx, id)
		})
}

func (r *CachedUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.inner.FindByEmail(ctx, email)
}

func (r *CachedUserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	return r.inner.List(ctx, offset, limit)
}

func (r *CachedUserRepo) Update(ctx context.Context, u *domain.User) error {
	if err := r.inner.Update(ctx, u); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, userKey(u.ID))
	return nil
}

func (r *CachedUserRepo) UpdatePartial(ctx context.Context, id int64, up *schema.UserUpdate) (*domain.User, error) {
	u, err := r.inner.UpdatePartial(ctx, id, up)
	if err != nil {
		return nil, err
	}
	r.cache.Invalidate(ctx, userKey(id))
	return u, nil
}

func (r *CachedUserRepo) SoftDelete(ctx context.Context, id int64) error {
	if err := r.inner.SoftDelete(ctx, id); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, userKey(id))
	return nil
}
