package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	cacheport "go-bazaar/internal/infrastructure/cache/port"
	chatport "go-bazaar/internal/pkg/chat/application/port"
	repository "go-bazaar/internal/pkg/user/persistence/repository/port"
)

const lookupCacheTTL = 5 * time.Minute

// LookupUserUseCase is the user directory the chat core resolves identities
// through. Lookups go through a read-through cache: profiles are immutable
// after signup, so a short TTL needs no invalidation. Cache trouble degrades
// silently to the database; the cache is never authoritative.
type LookupUserUseCase struct {
	Repo  repository.UserRepository
	Cache cacheport.Cache // optional; nil disables caching
}

func NewLookupUserUseCase(repo repository.UserRepository, cache cacheport.Cache) *LookupUserUseCase {
	return &LookupUserUseCase{Repo: repo, Cache: cache}
}

var _ chatport.UserDirectory = (*LookupUserUseCase)(nil)

func (uc *LookupUserUseCase) FindByID(ctx context.Context, userID string) (*chatport.UserRef, error) {
	key := "user:profile:" + userID

	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			var ref chatport.UserRef
			if json.Unmarshal([]byte(raw), &ref) == nil {
				return &ref, nil
			}
		} else if !errors.Is(err, cacheport.ErrMiss) {
			log.Printf("user lookup: cache get: %v", err)
		}
	}

	found, err := uc.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, chatport.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	ref := chatport.UserRef{ID: found.ID, Username: found.Username, Email: found.Email}

	if uc.Cache != nil {
		if raw, err := json.Marshal(ref); err == nil {
			if err := uc.Cache.Set(ctx, key, string(raw), lookupCacheTTL); err != nil {
				log.Printf("user lookup: cache set: %v", err)
			}
		}
	}
	return &ref, nil
}
