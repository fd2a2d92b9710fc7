package directory

import (
	"context"
	"errors"
	"maps"
	"time"

	"dsbind/biz/infrastructure/config"
	"dsbind/biz/infrastructure/consts"
	"dsbind/biz/infrastructure/redis"

	"github.com/zeromicro/go-zero/core/stores/monc"
	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StaticSource 配置文件中绑定的名称
type StaticSource struct {
	bindings map[string]string
}

func NewStaticSource(bindings map[string]string) *StaticSource {
	return &StaticSource{bindings: maps.Clone(bindings)}
}

func (s *StaticSource) DSN(_ context.Context, name string) (string, error) {
	dsn, ok := s.bindings[name]
	if !ok || dsn == "" {
		return "", notBound(name)
	}
	return dsn, nil
}

// RedisSource 名称绑定在一个 redis hash 中, field 为名称, value 为 DSN
type RedisSource struct {
	rds *gozero_redis.Redis
	key string
}

func NewRedisSource(config *config.Config) *RedisSource {
	return &RedisSource{
		rds: redis.GetRedis(config),
		key: config.RedisHashKey(),
	}
}

func (s *RedisSource) DSN(ctx context.Context, name string) (string, error) {
	dsn, err := s.rds.HgetCtx(ctx, s.key, name)
	switch {
	case errors.Is(err, gozero_redis.Nil):
		return "", notBound(name)
	case err != nil:
		return "", err
	case dsn == "":
		return "", notBound(name)
	}
	return dsn, nil
}

// Entry mongo 中的名称绑定文档
type Entry struct {
	Name string `bson:"_id" json:"name"`
	DSN  string `bson:"dsn" json:"dsn"`
}

type finder interface {
	FindOneNoCache(ctx context.Context, v, filter any, opts ...*options.FindOneOptions) error
}

// MongoSource 名称绑定在 mongo 集合中
type MongoSource struct {
	conn finder
}

func NewMongoSource(config *config.Config) *MongoSource {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, config.Mongo.Collection, config.Cache)
	return &MongoSource{
		conn: conn,
	}
}

func (s *MongoSource) DSN(ctx context.Context, name string) (string, error) {
	var e Entry
	err := s.conn.FindOneNoCache(ctx, &e, bson.M{
		consts.ID: name,
	})
	switch {
	case errors.Is(err, monc.ErrNotFound):
		return "", notBound(name)
	case err != nil:
		return "", err
	case e.DSN == "":
		return "", notBound(name)
	}
	return e.DSN, nil
}

// NewSource 按配置选择目录类型
func NewSource(config *config.Config) Source {
	switch config.DataSource.Directory {
	case consts.DirectoryRedis:
		return NewRedisSource(config)
	case consts.DirectoryMongo:
		return NewMongoSource(config)
	default:
		return NewStaticSource(config.StaticBindings())
	}
}

// NewResolverFromConfig 按配置构造目录
func NewResolverFromConfig(config *config.Config) *Resolver {
	opts := PoolOptions{
		MaxOpenConns:    config.DataSource.MaxOpenConns,
		MaxIdleConns:    config.DataSource.MaxIdleConns,
		ConnMaxLifetime: time.Duration(config.DataSource.ConnMaxLifetime) * time.Second,
	}
	return NewResolver(NewSource(config), MySQLOpener(opts))
}
