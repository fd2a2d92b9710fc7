package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"dsbind/biz/infrastructure/consts"
	"dsbind/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

// DataSource 描述要激活的数据源
type DataSource struct {
	Name            string
	Directory       string `json:",default=static,options=static|redis|mongo"`
	MaxOpenConns    int    `json:",default=10"`
	MaxIdleConns    int    `json:",default=5"`
	ConnMaxLifetime int64  `json:",default=300"` // 秒
}

// Binding 静态目录中的名称绑定
type Binding struct {
	Name string
	DSN  string
}

type Config struct {
	service.ServiceConf
	DataSource  DataSource
	DataSources []Binding        `json:",optional"`
	Redis       *redis.RedisConf `json:",optional"`
	RedisKey    string           `json:",optional"`
	Mongo       *Mongo           `json:",optional"`
	Cache       cache.CacheConf  `json:",optional"`
}

type Mongo struct {
	URL        string
	DB         string
	Collection string `json:",default=datasource"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

// Validate 检查所选目录类型需要的配置段
func (c *Config) Validate() error {
	if c.DataSource.Name == "" {
		return errors.New("DataSource.Name is required")
	}
	switch c.DataSource.Directory {
	case consts.DirectoryStatic, "":
		for i, b := range c.DataSources {
			if b.Name == "" || b.DSN == "" {
				return fmt.Errorf("DataSources[%d]: Name and DSN are required", i)
			}
		}
	case consts.DirectoryRedis:
		if c.Redis == nil || c.Redis.Host == "" {
			return errors.New("Redis section is required for redis directory")
		}
	case consts.DirectoryMongo:
		if c.Mongo == nil || c.Mongo.URL == "" || c.Mongo.DB == "" {
			return errors.New("Mongo section is required for mongo directory")
		}
		if len(c.Cache) == 0 {
			return errors.New("Cache section is required for mongo directory")
		}
	default:
		return fmt.Errorf("unknown directory %q", c.DataSource.Directory)
	}
	return nil
}

// StaticBindings 静态目录的 name -> dsn
func (c *Config) StaticBindings() map[string]string {
	m := make(map[string]string, len(c.DataSources))
	for _, b := range c.DataSources {
		m[b.Name] = b.DSN
	}
	return m
}

func (c *Config) RedisHashKey() string {
	if c.RedisKey == "" {
		return consts.DefaultRedisKey
	}
	return c.RedisKey
}

func GetConfig() *Config {
	return config
}
