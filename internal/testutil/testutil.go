// Package testutil provides shared fakes and fixtures for passport tests.
package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	mysqldao "news_server/internal/dao/mysql"
	"news_server/internal/dao/mysql/repository"
	myredis "news_server/internal/dao/redis"
)

// NewCache starts a miniredis server and returns a cache backed by it.
func NewCache(t *testing.T) (*myredis.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	cache := myredis.NewRedisCache(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		cache.Close()
		mr.Close()
	})
	return cache, mr
}

// NewRepos opens an in-memory sqlite database with the user table migrated.
func NewRepos(t *testing.T) (*repository.Repositories, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	repos, err := mysqldao.Setup(db)
	if err != nil {
		t.Fatalf("setup repos: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return repos, db
}

// SentSms records one gateway call.
type SentSms struct {
	Mobile        string
	Code          string
	ExpireMinutes int
}

// FakeSms is an in-memory SMS gateway.
type FakeSms struct {
	mu   sync.Mutex
	Err  error
	Sent []SentSms
}

func (f *FakeSms) SendVerificationCode(ctx context.Context, telephone string, code string, expireMinutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, SentSms{Mobile: telephone, Code: code, ExpireMinutes: expireMinutes})
	return nil
}

// Last returns the most recent successful send.
func (f *FakeSms) Last() (SentSms, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return SentSms{}, false
	}
	return f.Sent[len(f.Sent)-1], true
}

// FakeCaptcha returns a fixed text and image.
type FakeCaptcha struct {
	Text  string
	Image []byte
	Err   error
}

func (f *FakeCaptcha) Generate() (string, string, []byte, error) {
	if f.Err != nil {
		return "", "", nil, f.Err
	}
	return "captcha-name", f.Text, f.Image, nil
}

// ErrGateway is a canned gateway failure.
var ErrGateway = errors.New("gateway unavailable")
