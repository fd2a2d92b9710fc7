package question_bank

import (
	"fmt"

	"dsbind/biz/infrastructure/binding"
	"dsbind/biz/infrastructure/util/log"
)

// NewMySQLMapperFromContainer 从绑定容器取数据源创建 MySQL 映射器
func NewMySQLMapperFromContainer(c *binding.Container) (*MySQLMapper, error) {
	if !c.HasMapper(MapperType) {
		return nil, fmt.Errorf("mapper %s is not registered", MapperType)
	}
	db, err := c.DataSource()
	if err != nil {
		return nil, err
	}
	log.Info("Creating MySQL mapper %s", MapperType)
	return NewMySQLMapper(db), nil
}
