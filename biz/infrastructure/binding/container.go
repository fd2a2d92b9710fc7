package binding

import (
	"database/sql"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"dsbind/biz/infrastructure/consts"
	"dsbind/biz/infrastructure/util/log"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Container 记录数据源模块产生的绑定, 不做并发保护, 只在启动阶段写入
type Container struct {
	dataSource  func() *sql.DB
	txFactory   TransactionFactory
	mappers     []reflect.Type
	knownMapper map[reflect.Type]struct{}
	properties  map[string]string
}

func NewContainer() *Container {
	return &Container{
		knownMapper: make(map[reflect.Type]struct{}),
		properties:  make(map[string]string),
	}
}

func (c *Container) BindDataSourceProvider(provider func() *sql.DB) error {
	if provider == nil {
		return consts.ErrInvalidArgument.Wrap(fmt.Errorf("data source provider is nil"))
	}
	if c.dataSource != nil {
		return consts.ErrAlreadyBound.Wrap(fmt.Errorf("data source provider"))
	}
	c.dataSource = provider
	return nil
}

func (c *Container) BindTransactionFactoryType(factory TransactionFactory) error {
	if factory == nil {
		return consts.ErrInvalidArgument.Wrap(fmt.Errorf("transaction factory is nil"))
	}
	if c.txFactory != nil {
		return consts.ErrAlreadyBound.Wrap(fmt.Errorf("transaction factory"))
	}
	c.txFactory = factory
	return nil
}

// AddMapperTypes 按顺序注册 mapper, 只接受接口类型
func (c *Container) AddMapperTypes(types []reflect.Type) error {
	for _, t := range types {
		if t == nil {
			return consts.ErrInvalidArgument.Wrap(fmt.Errorf("mapper type is nil"))
		}
		if t.Kind() != reflect.Interface {
			log.Info("skip mapper type %s: not an interface", t)
			continue
		}
		if _, ok := c.knownMapper[t]; ok {
			return consts.ErrMapperKnown.Wrap(fmt.Errorf("type %s", t))
		}
		c.knownMapper[t] = struct{}{}
		c.mappers = append(c.mappers, t)
		log.Info("mapper %s registered", t)
	}
	return nil
}

// BindProperties 绑定命名属性, 同名覆盖
func (c *Container) BindProperties(props map[string]string) error {
	maps.Copy(c.properties, props)
	return nil
}

// DataSource 返回已绑定的数据源
func (c *Container) DataSource() (*sql.DB, error) {
	if c.dataSource == nil {
		return nil, consts.ErrNotBound.Wrap(fmt.Errorf("data source provider"))
	}
	return c.dataSource(), nil
}

func (c *Container) TransactionFactory() (TransactionFactory, error) {
	if c.txFactory == nil {
		return nil, consts.ErrNotBound.Wrap(fmt.Errorf("transaction factory"))
	}
	return c.txFactory, nil
}

func (c *Container) MapperTypes() []reflect.Type {
	return slices.Clone(c.mappers)
}

func (c *Container) HasMapper(t reflect.Type) bool {
	_, ok := c.knownMapper[t]
	return ok
}

func (c *Container) Property(name string) (string, bool) {
	v, ok := c.properties[name]
	return v, ok
}

func (c *Container) BoolProperty(name string) (bool, error) {
	v, ok := c.properties[name]
	if !ok {
		return false, consts.ErrNotBound.Wrap(fmt.Errorf("property %s", name))
	}
	return cast.ToBoolE(v)
}

// Properties 返回属性副本
func (c *Container) Properties() map[string]string {
	return maps.Clone(c.properties)
}

// DecodeProperties 把属性解码到带 mapstructure tag 的结构体
func (c *Container) DecodeProperties(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(c.properties)
}

// Settings 数据源模块写入的属性
type Settings struct {
	EnvironmentID string `mapstructure:"mybatis.environment.id"`
	AutoCommit    bool   `mapstructure:"JDBC.autoCommit"`
}
