package gpthandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"talent-flow-backend/config"
	yagptclient "talent-flow-backend/lib/gpt/yagpt-client"
	gptmodels "talent-flow-backend/models/api/gpt"

	"github.com/pkg/errors"
)

type Provider interface {
	GenerateJobDescription(text string) (resp gptmodels.GenJobDescResponse, err error)
}

type impl struct{}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

const descriptionPromt = "Ты - рекрутер. Пишешь тексты вакансий в деловом стиле, " +
	"структурируешь их по блокам: обязанности, требования, условия"

func (i impl) GenerateJobDescription(text string) (resp gptmodels.GenJobDescResponse, err error) {
	if config.Conf.YandexGPT.IAMToken == "" {
		return resp, errors.New("генерация описания не настроена")
	}
	resp.Description, err = yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(descriptionPromt, fmt.Sprintf("Сгенерируй описание для вакансии имея эти вводные данные: %s", text))
	if err != nil {
		log.WithError(err).Error("ошибка генерации описания через YandexGPT")
		return resp, err
	}
	return resp, nil
}
