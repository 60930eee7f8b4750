package initializers

import (
	"context"

	"talent-flow-backend/config"
	"talent-flow-backend/fiberlog"
	"talent-flow-backend/lib/assessment"
	inviteworker "talent-flow-backend/lib/assessment/invite-worker"
	xlsexport "talent-flow-backend/lib/export/xls"
	filestorage "talent-flow-backend/lib/file-storage"
	gpthandler "talent-flow-backend/lib/gpt"
	"talent-flow-backend/lib/job"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	gpthandler.NewHandler()
	xlsexport.NewHandler()
	job.NewHandler()
	assessment.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача отправки кандидатам ссылок на публичную анкету
	inviteworker.StartWorker(ctx)
}
