package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"dsbind/biz/infrastructure/consts"
	"dsbind/biz/infrastructure/util/log"

	"github.com/go-sql-driver/mysql"
)

// Directory 按名称查找数据源
type Directory interface {
	Lookup(ctx context.Context, name string) (*sql.DB, error)
}

// Source 名称到 DSN 的绑定
type Source interface {
	DSN(ctx context.Context, name string) (string, error)
}

// Opener 根据 DSN 打开连接池
type Opener func(ctx context.Context, dsn string) (*sql.DB, error)

// PoolOptions 连接池参数
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxOpenConns:    consts.DefaultMaxOpenConns,
		MaxIdleConns:    consts.DefaultMaxIdleConns,
		ConnMaxLifetime: consts.DefaultConnMaxLifetime * time.Second,
	}
}

// MySQLOpener 校验 DSN 后打开 mysql 连接池并 ping
func MySQLOpener(opts PoolOptions) Opener {
	return func(ctx context.Context, dsn string) (*sql.DB, error) {
		if _, err := mysql.ParseDSN(dsn); err != nil {
			return nil, consts.ErrInvalidDSN.Wrap(err)
		}
		db, err := sql.Open(consts.MySQLDriver, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql connection: %w", err)
		}
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxIdleConns)
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping mysql: %w", err)
		}
		return db, nil
	}
}

// Resolver 缓存已打开的连接池, 同一名称总是返回同一个 *sql.DB
type Resolver struct {
	source Source
	open   Opener

	mu    sync.Mutex
	pools map[string]*sql.DB
}

func NewResolver(source Source, open Opener) *Resolver {
	return &Resolver{
		source: source,
		open:   open,
		pools:  make(map[string]*sql.DB),
	}
}

func (r *Resolver) Lookup(ctx context.Context, name string) (*sql.DB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.pools[name]; ok {
		return db, nil
	}

	dsn, err := r.source.DSN(ctx, name)
	if err != nil {
		return nil, err
	}
	db, err := r.open(ctx, dsn)
	if err != nil {
		log.CtxError(ctx, "open data source %s failed: %v", name, err)
		return nil, fmt.Errorf("open data source %s: %w", name, err)
	}

	log.CtxInfo(ctx, "data source %s opened", name)
	r.pools[name] = db
	return db, nil
}

// Close 关闭所有已打开的连接池
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, db := range r.pools {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close data source %s: %w", name, err))
		}
		delete(r.pools, name)
	}
	return errors.Join(errs...)
}

func notBound(name string) error {
	return consts.ErrNameNotBound.Wrap(fmt.Errorf("name %q", name))
}
