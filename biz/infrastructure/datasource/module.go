package datasource

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"dsbind/biz/infrastructure/binding"
	"dsbind/biz/infrastructure/consts"
	"dsbind/biz/infrastructure/directory"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Binder 接收模块产生的绑定, 每个方法在一次激活中只调用一次
type Binder interface {
	BindDataSourceProvider(provider func() *sql.DB) error
	BindTransactionFactoryType(factory binding.TransactionFactory) error
	AddMapperTypes(types []reflect.Type) error
	BindProperties(props map[string]string) error
}

// Module 创建后不可变
type Module struct {
	dataSourceName string
	mapperTypes    []reflect.Type
	id             string
}

// NewModule 按给定顺序保存 mapper 类型, mapperTypes 为 nil 时报错, 空切片合法
func NewModule(dataSourceName string, mapperTypes []reflect.Type) (*Module, error) {
	if dataSourceName == "" {
		return nil, consts.ErrInvalidArgument.Wrap(fmt.Errorf("dataSourceName is empty"))
	}
	if mapperTypes == nil {
		return nil, consts.ErrInvalidArgument.Wrap(fmt.Errorf("mapperTypes is nil"))
	}
	return &Module{
		dataSourceName: dataSourceName,
		mapperTypes:    slices.Clone(mapperTypes),
		id:             uuid.NewString(),
	}, nil
}

// NewModuleFromSet 集合按包路径、类型名、方法集排序, 保证注册顺序稳定
// 三者都相同的类型无法区分, 顺序不保证
func NewModuleFromSet(dataSourceName string, mapperTypes map[reflect.Type]struct{}) (*Module, error) {
	if mapperTypes == nil {
		return NewModule(dataSourceName, nil)
	}
	types := lo.Keys(mapperTypes)
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return cmp.Or(
			cmp.Compare(typePath(a), typePath(b)),
			cmp.Compare(typeString(a), typeString(b)),
			cmp.Compare(methodSet(a), methodSet(b)),
		)
	})
	return NewModule(dataSourceName, types)
}

func (m *Module) DataSourceName() string {
	return m.dataSourceName
}

// MapperTypes 每次返回新的切片
func (m *Module) MapperTypes() []reflect.Type {
	return slices.Clone(m.mapperTypes)
}

// String 作为 mybatis.environment.id, 同一进程内的多个模块互不相同
func (m *Module) String() string {
	return "datasource.Module[" + m.dataSourceName + "]#" + m.id
}

// Initialize 查找数据源并把绑定写入 b, 查找失败时不写入任何绑定
func (m *Module) Initialize(ctx context.Context, dir directory.Directory, b Binder) error {
	db, err := dir.Lookup(ctx, m.dataSourceName)
	if err != nil {
		return consts.ErrResourceLookup.Wrap(err)
	}

	if err := b.BindDataSourceProvider(func() *sql.DB { return db }); err != nil {
		return err
	}
	if err := b.BindTransactionFactoryType(binding.JdbcTransactionFactory{}); err != nil {
		return err
	}
	if err := b.AddMapperTypes(m.MapperTypes()); err != nil {
		return err
	}
	return b.BindProperties(PutMyBatisProperties(make(map[string]string), m.String()))
}

// PutMyBatisProperties 写入 MyBatis 必需的两个属性并返回 props 本身
func PutMyBatisProperties(props map[string]string, environmentID string) map[string]string {
	props[consts.EnvironmentIDKey] = environmentID
	props[consts.AutoCommitKey] = strconv.FormatBool(false)
	return props
}

func typePath(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.PkgPath()
}

func typeString(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// methodSet 同名的局部接口用方法签名区分
func methodSet(t reflect.Type) string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	for i := range t.NumMethod() {
		m := t.Method(i)
		sb.WriteString(m.Name)
		sb.WriteString(m.Type.String())
		sb.WriteByte(';')
	}
	return sb.String()
}
