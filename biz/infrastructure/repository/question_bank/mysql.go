package question_bank

import (
	"context"
	"database/sql"
	"fmt"

	"dsbind/biz/infrastructure/util/log"
)

const (
	countSQL = "SELECT COUNT(*) FROM Essays %s"
	listSQL  = "SELECT id, type, textbook_version, grade, unit, name, description, genre FROM Essays %s ORDER BY grade ASC, unit ASC, id ASC LIMIT ? OFFSET ?"
)

type MySQLMapper struct {
	db *sql.DB
}

var _ IMapper = (*MySQLMapper)(nil)

// NewMySQLMapper 使用数据源模块绑定的连接池
func NewMySQLMapper(db *sql.DB) *MySQLMapper {
	return &MySQLMapper{db: db}
}

// ListQuestionBanks 先统计总数再取一页
func (m *MySQLMapper) ListQuestionBanks(ctx context.Context, req *ListReq) ([]*QuestionBank, int64, error) {
	where, args := buildWhere(req)

	total, err := m.count(ctx, where, args)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	limit, offset := pageOf(req)
	banks, err := m.list(ctx, where, append(args, limit, offset))
	if err != nil {
		return nil, 0, err
	}
	return banks, total, nil
}

func (m *MySQLMapper) count(ctx context.Context, where string, args []any) (int64, error) {
	var total int64
	if err := m.db.QueryRowContext(ctx, fmt.Sprintf(countSQL, where), args...).Scan(&total); err != nil {
		log.CtxError(ctx, "count question banks failed: %v", err)
		return 0, fmt.Errorf("count question banks: %w", err)
	}
	return total, nil
}

func (m *MySQLMapper) list(ctx context.Context, where string, args []any) ([]*QuestionBank, error) {
	rows, err := m.db.QueryContext(ctx, fmt.Sprintf(listSQL, where), args...)
	if err != nil {
		log.CtxError(ctx, "query question banks failed: %v", err)
		return nil, fmt.Errorf("query question banks: %w", err)
	}
	defer rows.Close()

	var banks []*QuestionBank
	for rows.Next() {
		var e Essay
		if err := rows.Scan(&e.ID, &e.Type, &e.TextbookVersion, &e.Grade, &e.Unit, &e.Name, &e.Description, &e.Genre); err != nil {
			return nil, fmt.Errorf("scan essay: %w", err)
		}
		banks = append(banks, e.toQuestionBank())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate essays: %w", err)
	}
	return banks, nil
}
