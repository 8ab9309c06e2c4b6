// Package repositorytest provides in-memory repository implementations for tests.
package repositorytest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shopping-service/internal/domain"
	"github.com/spec-kit/shopping-service/internal/repository"
)

// Users is a concurrency-safe in-memory UserRepository.
type Users struct {
	mu     sync.Mutex
	nextID int32
	rows   map[int32]domain.User

	// Err, when set, is returned by every call.
	Err error
}

var _ repository.UserRepository = (*Users)(nil)

// NewUsers seeds the store with the given users, preserving their ids.
func NewUsers(seed ...domain.User) *Users {
	u := &Users{rows: make(map[int32]domain.User)}
	for _, user := range seed {
		u.rows[user.ID] = user
		if user.ID > u.nextID {
			u.nextID = user.ID
		}
	}
	return u
}

func (u *Users) List(_ context.Context) ([]domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return nil, u.Err
	}
	out := make([]domain.User, 0, len(u.rows))
	for _, user := range u.rows {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (u *Users) GetByID(_ context.Context, id int32) (*domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return nil, u.Err
	}
	user, ok := u.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (u *Users) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return nil, u.Err
	}
	for _, user := range u.rows {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (u *Users) Create(_ context.Context, in domain.NewUser) (*domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return nil, u.Err
	}
	u.nextID++
	user := domain.User{
		ID:           u.nextID,
		DisplayName:  in.DisplayName,
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
		IsAdmin:      in.IsAdmin,
	}
	u.rows[user.ID] = user
	return &user, nil
}

func (u *Users) Delete(_ context.Context, id int32) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return u.Err
	}
	if _, ok := u.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(u.rows, id)
	return nil
}

func (u *Users) DeleteAdmins(_ context.Context) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return 0, u.Err
	}
	var n int64
	for id, user := range u.rows {
		if user.IsAdmin {
			delete(u.rows, id)
			n++
		}
	}
	return n, nil
}

// Items is a concurrency-safe in-memory ItemRepository.
type Items struct {
	mu     sync.Mutex
	nextID int32
	rows   map[int32]domain.Item

	// Err, when set, is returned by every call.
	Err error
	// Calls counts List and Search invocations.
	Calls int
}

var _ repository.ItemRepository = (*Items)(nil)

// NewItems seeds the store with the given items, preserving their ids.
func NewItems(seed ...domain.Item) *Items {
	it := &Items{rows: make(map[int32]domain.Item)}
	for _, item := range seed {
		it.rows[item.ID] = item
		if item.ID > it.nextID {
			it.nextID = item.ID
		}
	}
	return it
}

func (it *Items) List(ctx context.Context) ([]domain.Item, error) {
	return it.Search(ctx, "")
}

func (it *Items) Search(_ context.Context, query string) ([]domain.Item, error) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.Calls++
	if it.Err != nil {
		return nil, it.Err
	}
	needle := strings.ToLower(query)
	out := make([]domain.Item, 0, len(it.rows))
	for _, item := range it.rows {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (it *Items) GetByID(_ context.Context, id int32) (*domain.Item, error) {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.Err != nil {
		return nil, it.Err
	}
	item, ok := it.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &item, nil
}

func (it *Items) Create(_ context.Context, in domain.NewItem) (*domain.Item, error) {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.Err != nil {
		return nil, it.Err
	}
	it.nextID++
	item := domain.Item{
		ID:              it.nextID,
		Name:            in.Name,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		DefaultUnitType: in.DefaultUnitType,
	}
	it.rows[item.ID] = item
	return &item, nil
}

func (it *Items) Delete(_ context.Context, id int32) error {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.Err != nil {
		return it.Err
	}
	if _, ok := it.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(it.rows, id)
	return nil
}
