package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dsbind/biz/infrastructure/binding"
	"dsbind/biz/infrastructure/consts"
	"dsbind/biz/infrastructure/repository/question_bank"
	"dsbind/biz/infrastructure/util/log"
	"dsbind/provider"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanup := provider.Init(ctx)
	defer cleanup()

	p := provider.Get()
	var settings binding.Settings
	if err := p.Container.DecodeProperties(&settings); err != nil {
		log.Error("decode properties failed: %v", err)
		return
	}
	autoCommit, err := p.Container.BoolProperty(consts.AutoCommitKey)
	if err != nil {
		log.Error("read %s failed: %v", consts.AutoCommitKey, err)
		return
	}
	log.Info("data source %s bound, environment=%s autoCommit=%t mappers=%v",
		p.Module.DataSourceName(), settings.EnvironmentID, autoCommit, p.Container.MapperTypes())

	// 启动自检: 通过绑定的 mapper 读一条题库
	resp, err := p.QuestionBankService.ListQuestionBanks(ctx, &question_bank.ListReq{Limit: 1})
	if err != nil {
		log.Error("question bank check failed: %v", err)
		return
	}
	log.Info("question bank check ok, total=%d", resp.Total)

	<-ctx.Done()
}
