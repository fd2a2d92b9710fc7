package question_bank

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// IMapper 题库 mapper, 通过数据源模块注册
type IMapper interface {
	ListQuestionBanks(ctx context.Context, req *ListReq) ([]*QuestionBank, int64, error)
}

// MapperType 注册到数据源模块的类型
var MapperType = reflect.TypeOf((*IMapper)(nil)).Elem()

// QuestionBankType 题库类型 (0-课内题库, 1-写作训练, 2-课外题库)
type QuestionBankType int

const (
	InClass QuestionBankType = iota
	Writing
	OutOfClass
)

type ListReq struct {
	Type  *QuestionBankType
	Grade []int64
	Page  int64
	Limit int64
}

type QuestionBank struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Grade       int64  `json:"grade"`
	Unit        int64  `json:"unit"`
	EssayType   string `json:"essayType"`
}

// Essay 对应数据库中的 Essays 表
type Essay struct {
	ID              int     `db:"id"`
	Type            int     `db:"type"`
	TextbookVersion *int    `db:"textbook_version"`
	Grade           *int    `db:"grade"`
	Unit            *int    `db:"unit"`
	Name            *string `db:"name"`
	Description     *string `db:"description"`
	Genre           *string `db:"genre"`
}

func (e *Essay) toQuestionBank() *QuestionBank {
	return &QuestionBank{
		Id:          strconv.Itoa(e.ID),
		Name:        lo.FromPtr(e.Name),
		Description: lo.FromPtr(e.Description),
		Grade:       int64(lo.FromPtr(e.Grade)),
		Unit:        int64(lo.FromPtr(e.Unit)),
		EssayType:   lo.FromPtr(e.Genre),
	}
}

// buildWhere 构建 WHERE 子句和参数
func buildWhere(req *ListReq) (string, []any) {
	var conditions []string
	var args []any

	if req.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, int(*req.Type))
	}

	if len(req.Grade) > 0 {
		placeholders := make([]string, len(req.Grade))
		for i, grade := range req.Grade {
			placeholders[i] = "?"
			args = append(args, grade)
		}
		conditions = append(conditions, fmt.Sprintf("grade IN (%s)", strings.Join(placeholders, ",")))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// pageOf 默认第一页, 每页10条
func pageOf(req *ListReq) (limit, offset int64) {
	page := int64(1)
	limit = int64(10)
	if req.Page > 0 {
		page = req.Page
	}
	if req.Limit > 0 {
		limit = req.Limit
	}
	return limit, (page - 1) * limit
}
