package binding

import (
	"context"
	"database/sql"
)

// TransactionFactory 决定事务边界由谁管理
type TransactionFactory interface {
	// NewTransaction 在 db 上开启事务, autoCommit 为 true 时返回 nil, 由连接自己提交
	NewTransaction(ctx context.Context, db *sql.DB, autoCommit bool) (*sql.Tx, error)
}

// JdbcTransactionFactory 使用宿主连接自身的 commit/rollback, 无状态
type JdbcTransactionFactory struct{}

func (JdbcTransactionFactory) NewTransaction(ctx context.Context, db *sql.DB, autoCommit bool) (*sql.Tx, error) {
	if autoCommit {
		return nil, nil
	}
	return db.BeginTx(ctx, nil)
}
