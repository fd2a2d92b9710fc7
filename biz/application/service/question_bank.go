package service

import (
	"context"

	"dsbind/biz/infrastructure/repository/question_bank"
	"dsbind/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IQuestionBankService interface {
	ListQuestionBanks(ctx context.Context, req *question_bank.ListReq) (*ListQuestionBanksResp, error)
}

type ListQuestionBanksResp struct {
	QuestionBanks []*question_bank.QuestionBank `json:"questionBanks"`
	Total         int64                         `json:"total"`
}

type QuestionBankService struct {
	QuestionBankMapper question_bank.IMapper
}

var QuestionBankServiceSet = wire.NewSet(
	wire.Struct(new(QuestionBankService), "*"),
	wire.Bind(new(IQuestionBankService), new(*QuestionBankService)),
)

// ListQuestionBanks 获取题库列表
func (s *QuestionBankService) ListQuestionBanks(ctx context.Context, req *question_bank.ListReq) (*ListQuestionBanksResp, error) {

	// 调用数据层获取题库列表
	questionBanks, total, err := s.QuestionBankMapper.ListQuestionBanks(ctx, req)
	if err != nil {
		log.CtxError(ctx, "Failed to get question banks from database: %v", err)
		return nil, err
	}

	log.CtxInfo(ctx, "Successfully retrieved %d question banks, total: %d", len(questionBanks), total)

	return &ListQuestionBanksResp{
		QuestionBanks: questionBanks,
		Total:         total,
	}, nil
}
