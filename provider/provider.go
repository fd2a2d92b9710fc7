package provider

import (
	"context"
	"reflect"

	"dsbind/biz/application/service"
	"dsbind/biz/infrastructure/binding"
	"dsbind/biz/infrastructure/config"
	"dsbind/biz/infrastructure/datasource"
	"dsbind/biz/infrastructure/directory"
	"dsbind/biz/infrastructure/repository/question_bank"

	"github.com/google/wire"
)

var provider *Provider

func Init(ctx context.Context) func() {
	var (
		err     error
		cleanup func()
	)
	provider, cleanup, err = NewProvider(ctx)
	if err != nil {
		panic(err)
	}
	return cleanup
}

// Provider 提供启动后可用的对象
type Provider struct {
	Config              *config.Config
	Module              *datasource.Module
	Container           *binding.Container
	QuestionBankService service.IQuestionBankService
}

func Get() *Provider {
	return provider
}

// ProvideResolver 目录在退出时关闭所有连接池
func ProvideResolver(c *config.Config) (*directory.Resolver, func()) {
	r := directory.NewResolverFromConfig(c)
	return r, func() {
		_ = r.Close()
	}
}

// ProvideModule 当前进程注册的 mapper 类型
func ProvideModule(c *config.Config) (*datasource.Module, error) {
	return datasource.NewModule(c.DataSource.Name, []reflect.Type{
		question_bank.MapperType,
	})
}

// ProvideContainer 激活数据源模块
func ProvideContainer(ctx context.Context, m *datasource.Module, dir directory.Directory) (*binding.Container, error) {
	c := binding.NewContainer()
	if err := m.Initialize(ctx, dir, c); err != nil {
		return nil, err
	}
	return c, nil
}

var ApplicationSet = wire.NewSet(
	service.QuestionBankServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	ProvideResolver,
	wire.Bind(new(directory.Directory), new(*directory.Resolver)),
	ProvideModule,
	ProvideContainer,
	question_bank.NewMySQLMapperFromContainer,
	wire.Bind(new(question_bank.IMapper), new(*question_bank.MySQLMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
