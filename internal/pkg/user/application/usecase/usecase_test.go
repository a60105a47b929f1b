package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cacheport "go-bazaar/internal/infrastructure/cache/port"
	"go-bazaar/internal/pkg/auth"
	chatport "go-bazaar/internal/pkg/chat/application/port"
	user "go-bazaar/internal/pkg/user/domain"
	repository "go-bazaar/internal/pkg/user/persistence/repository/port"
)

type fakeUserRepo struct {
	users  map[string]user.User // keyed by id
	nextID int
	finds  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u user.User) (*user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return nil, repository.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("u%d", f.nextID)
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	f.finds++
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type mapCache struct {
	data map[string]string
}

func (c *mapCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.data[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *mapCache) Del(_ context.Context, keys ...string) (int64, error) {
	for _, k := range keys {
		delete(c.data, k)
	}
	return int64(len(keys)), nil
}

func (c *mapCache) Ping(context.Context) error { return nil }
func (c *mapCache) Close() error               { return nil }

func testStack() (*fakeUserRepo, *SignupUseCase, *LoginUseCase) {
	repo := newFakeUserRepo()
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	return repo, NewSignupUseCase(repo, hasher, tokens), NewLoginUseCase(repo, hasher, tokens)
}

func TestSignup_CreatesAccountAndToken(t *testing.T) {
	_, signup, _ := testStack()

	out, err := signup.Execute(context.Background(), SignupInput{
		Username: "alice", Email: "Alice@Example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.User.ID)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "alice@example.com", out.User.Email, "email is normalized")
	assert.NotEmpty(t, out.Token)
	assert.NotEqual(t, "hunter22", out.User.PasswordHash)
}

func TestSignup_Validation(t *testing.T) {
	_, signup, _ := testStack()

	cases := []SignupInput{
		{Username: "", Email: "a@b.c", Password: "hunter22"},
		{Username: "alice", Email: "not-an-email", Password: "hunter22"},
		{Username: "alice", Email: "a@b.c", Password: "short"},
	}
	for _, in := range cases {
		_, err := signup.Execute(context.Background(), in)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestSignup_Duplicate(t *testing.T) {
	_, signup, _ := testStack()

	_, err := signup.Execute(context.Background(), SignupInput{
		Username: "alice", Email: "a@b.c", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = signup.Execute(context.Background(), SignupInput{
		Username: "alice", Email: "other@b.c", Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestLogin_RoundTrip(t *testing.T) {
	_, signup, login := testStack()

	_, err := signup.Execute(context.Background(), SignupInput{
		Username: "alice", Email: "a@b.c", Password: "hunter22",
	})
	require.NoError(t, err)

	out, err := login.Execute(context.Background(), LoginInput{Email: "a@b.c", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.User.Username)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	_, signup, login := testStack()

	_, err := signup.Execute(context.Background(), SignupInput{
		Username: "alice", Email: "a@b.c", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = login.Execute(context.Background(), LoginInput{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, ErrCredentials)

	_, err = login.Execute(context.Background(), LoginInput{Email: "nobody@b.c", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrCredentials, "unknown email and wrong password are indistinguishable")
}

func TestLookupUser_ReadThroughCache(t *testing.T) {
	repo, signup, _ := testStack()
	cache := &mapCache{data: map[string]string{}}
	lookup := NewLookupUserUseCase(repo, cache)

	out, err := signup.Execute(context.Background(), SignupInput{
		Username: "alice", Email: "a@b.c", Password: "hunter22",
	})
	require.NoError(t, err)

	ref, err := lookup.FindByID(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", ref.Username)
	first := repo.finds

	ref, err = lookup.FindByID(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", ref.Username)
	assert.Equal(t, first, repo.finds, "second lookup is served from the cache")
}

func TestLookupUser_NotFound(t *testing.T) {
	repo, _, _ := testStack()
	lookup := NewLookupUserUseCase(repo, nil)

	_, err := lookup.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, chatport.ErrUserNotFound)
}
