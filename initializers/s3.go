package initializers

import (
	"context"

	s3client "talent-flow-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	provider, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Бакет для файлов-ответов создаётся при старте
	if err = provider.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
