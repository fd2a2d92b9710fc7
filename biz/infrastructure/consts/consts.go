package consts

// MyBatis 属性
const (
	EnvironmentIDKey = "mybatis.environment.id"
	AutoCommitKey    = "JDBC.autoCommit"
)

// 目录类型
const (
	DirectoryStatic = "static"
	DirectoryRedis  = "redis"
	DirectoryMongo  = "mongo"
)

// 数据库相关
const (
	ID          = "_id"
	MySQLDriver = "mysql"
)

// 默认值
const (
	DefaultRedisKey        = "datasource:names"
	DefaultMaxOpenConns    = 10
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = 300 // 秒
)
