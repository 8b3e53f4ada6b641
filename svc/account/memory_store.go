package account

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account // keyed by hex id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]*Account)}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.Email == email {
			return cloneAccount(acc), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneAccount(acc), nil
}

func (s *MemoryStore) Insert(_ context.Context, a *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.Email == a.Email {
			return ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	s.accounts[a.ID.Hex()] = cloneAccount(a)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return ErrNotFound
	}

	for k, v := range fields {
		switch k {
		case "email":
			acc.Email, _ = v.(string)
		case "password":
			acc.Password, _ = v.(string)
		case "firstName":
			acc.FirstName, _ = v.(string)
		case "lastName":
			acc.LastName, _ = v.(string)
		case "isSocial":
			acc.IsSocial, _ = v.(bool)
		case "oauthProvider":
			acc.OAuthProvider, _ = v.(string)
		case "stripeCustomerId":
			acc.StripeCustomerID, _ = v.(string)
		case "subscriptionId":
			acc.SubscriptionID, _ = v.(string)
		case "inactive":
			acc.Inactive, _ = v.(bool)
		case "isAdmin":
			acc.IsAdmin, _ = v.(bool)
		}
	}
	acc.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryStore) List(_ context.Context, params ListParams) (*ListResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*Account, 0, len(s.accounts))
	search := strings.ToLower(params.Search)
	for _, acc := range s.accounts {
		if search != "" &&
			!strings.Contains(strings.ToLower(acc.Email), search) &&
			!strings.Contains(strings.ToLower(acc.FirstName), search) &&
			!strings.Contains(strings.ToLower(acc.LastName), search) {
			continue
		}
		matched = append(matched, acc)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.Limit
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	page := make([]Account, 0, end-start)
	for _, acc := range matched[start:end] {
		page = append(page, *cloneAccount(acc))
	}
	return &ListResult{Accounts: page, Total: total}, nil
}

func cloneAccount(a *Account) *Account {
	cp := *a
	return &cp
}

var _ Store = (*MemoryStore)(nil)
