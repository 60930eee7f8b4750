package inviteworker

import (
	"context"
	"fmt"
	"time"

	"talent-flow-backend/config"
	"talent-flow-backend/db"
	assessmentstore "talent-flow-backend/lib/assessment/store"
	candidatestore "talent-flow-backend/lib/candidate/store"
	"talent-flow-backend/lib/smtp"
	baseworker "talent-flow-backend/lib/utils/base-worker"
	"talent-flow-backend/lib/utils/helpers"
)

// Задача отправки кандидатам ссылки на публичную анкету.
// Кандидат получает письмо один раз, после отправки помечается как приглашённый
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:   *baseworker.NewInstance("AssessmentInviteWorker", 30*time.Second, 5*time.Minute),
		aStore:     assessmentstore.NewInstance(db.DB),
		candidates: candidatestore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

const batchLimit = 50

type impl struct {
	baseworker.BaseImpl
	aStore     assessmentstore.Provider
	candidates candidatestore.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.candidates.ListNotInvited(batchLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка кандидатов без приглашения")
		return
	}
	for _, candidate := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		if candidate.Email == "" {
			continue
		}
		rec, err := i.aStore.GetByJobID(candidate.JobID)
		if err != nil {
			logger.WithError(err).
				WithField("candidate_id", candidate.ID).
				Error("ошибка получения анкеты по вакансии кандидата")
			continue
		}
		if rec == nil || !rec.IsActive {
			continue
		}
		link := fmt.Sprintf("%s/assessment/%s?candidate=%s", config.Conf.App.PublicURL, rec.ID, candidate.ID)
		body := fmt.Sprintf(
			"<p>Здравствуйте, %s!</p>"+
				"<p>Приглашаем вас заполнить анкету по вакансии.</p>"+
				"<p><a href=%q>Перейти к анкете</a></p>",
			candidate.Name, link,
		)
		err = smtp.Instance.SendHTMLEMail(config.Conf.Smtp.InviteFrom, candidate.Email, body, "приглашение на анкету")
		if err != nil {
			logger.WithError(err).
				WithField("candidate_id", candidate.ID).
				Error("ошибка отправки приглашения кандидату")
			continue
		}
		if err = i.candidates.SetInvited(candidate.ID); err != nil {
			logger.WithError(err).
				WithField("candidate_id", candidate.ID).
				Error("ошибка пометки кандидата как приглашённого")
			continue
		}
		logger.
			WithField("candidate_id", candidate.ID).
			WithField("assessment_id", rec.ID).
			Info("кандидату отправлена ссылка на анкету")
	}
}
