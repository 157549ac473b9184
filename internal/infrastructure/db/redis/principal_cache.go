package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/smarttask/task-system/internal/core/domain"
	"github.com/smarttask/task-system/internal/core/ports"
)

const principalTTL = time.Minute

// PrincipalCache is a read-through cache in front of the principal lookup
// the request gate performs on every authenticated request.
// Key format: principal:<email>
//
// Cached entries carry no password hash; login and signup bypass this cache
// and read the store directly. The short TTL bounds staleness of profile
// edits; token validity itself is never cached.
type PrincipalCache struct {
	client *redis.Client
	source ports.PrincipalResolver
	log    zerolog.Logger
}

func NewPrincipalCache(client *redis.Client, source ports.PrincipalResolver, log zerolog.Logger) *PrincipalCache {
	return &PrincipalCache{client: client, source: source, log: log}
}

type cachedPrincipal struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

// FindByEmail serves from Redis when possible, falling back to the source
// on any miss or cache error. Cache failures never fail the lookup.
func (p *PrincipalCache) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	key := "principal:" + email

	raw, err := p.client.Get(ctx, key).Bytes()
	if err == nil {
		var entry cachedPrincipal
		if jsonErr := json.Unmarshal(raw, &entry); jsonErr == nil {
			return &domain.User{
				ID:        entry.ID,
				Name:      entry.Name,
				Email:     entry.Email,
				Role:      entry.Role,
				CreatedAt: time.Unix(entry.CreatedAt, 0).UTC(),
			}, nil
		}
	} else if err != redis.Nil {
		p.log.Debug().Err(err).Msg("principal cache read failed")
	}

	user, err := p.source.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	entry, err := json.Marshal(cachedPrincipal{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Unix(),
	})
	if err == nil {
		if setErr := p.client.Set(ctx, key, entry, principalTTL).Err(); setErr != nil {
			p.log.Debug().Err(setErr).Msg("principal cache write failed")
		}
	}

	return user, nil
}
