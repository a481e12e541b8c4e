package recipient

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Directory looks up known payees by identifier. The static implementation
// below stands in for a real account directory service.
type Directory interface {
	Lookup(ctx context.Context, identifier string) (*Recipient, bool, error)
}

type StaticDirectory struct {
	recipients []Recipient
}

func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{
		recipients: []Recipient{
			{Identifier: "juan.perez", Type: AccountTypeAlias, HolderName: "Juan Pérez"},
			{Identifier: "maria.lopez", Type: AccountTypeAlias, HolderName: "María López"},
			{Identifier: "carlos.rodriguez", Type: AccountTypeAlias, HolderName: "Carlos Rodríguez"},
			{Identifier: "ana.martinez", Type: AccountTypeAlias, HolderName: "Ana Martínez"},
			{Identifier: "0000003100010075622001", Type: AccountTypeAccount, HolderName: "Juan Pérez"},
			{Identifier: "0000003100010075622002", Type: AccountTypeAccount, HolderName: "María González"},
			{Identifier: "0000003100010075622003", Type: AccountTypeAccount, HolderName: "Pedro Sánchez"},
			{Identifier: "test.user", Type: AccountTypeAlias, HolderName: "Usuario Test"},
		},
	}
}

func (d *StaticDirectory) Lookup(_ context.Context, identifier string) (*Recipient, bool, error) {
	for _, r := range d.recipients {
		if strings.EqualFold(r.Identifier, identifier) {
			match := r
			return &match, true, nil
		}
	}
	return nil, false, nil
}

// CachedDirectory fronts another directory with an expiring in-process cache,
// so repeated validations of the same identifier skip the backing lookup.
type CachedDirectory struct {
	next Directory
	c    *cache.Cache
}

func NewCachedDirectory(next Directory) *CachedDirectory {
	return &CachedDirectory{
		next: next,
		c:    cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (d *CachedDirectory) Lookup(ctx context.Context, identifier string) (*Recipient, bool, error) {
	key := strings.ToLower(identifier)
	if val, found := d.c.Get(key); found {
		r := val.(Recipient)
		return &r, true, nil
	}

	r, found, err := d.next.Lookup(ctx, identifier)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	d.c.Set(key, *r, cache.DefaultExpiration)
	return r, true, nil
}
