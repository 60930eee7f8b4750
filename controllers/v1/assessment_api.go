package apiv1

import (
	"talent-flow-backend/controllers"
	assessmenthandler "talent-flow-backend/lib/assessment"
	apimodels "talent-flow-backend/models/api"
	assessmentapimodels "talent-flow-backend/models/api/assessment"

	"github.com/gofiber/fiber/v2"
)

type assessmentApiController struct {
	controllers.BaseAPIController
}

func InitAssessmentApiRouters(app *fiber.App) {
	controller := assessmentApiController{}
	app.Route("assessment", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.save)
		router.Post("suggest", controller.suggest)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Post("duplicate", controller.duplicate)
			idRoute.Get("responses", controller.responses)
			idRoute.Get("responses/xls", controller.responsesXLS)
			idRoute.Get("pdf", controller.pdfForm)
		})
	})
}

// @Summary Сохранение
// @Tags Анкета
// @Description Сохранение анкеты целиком (создание и обновление)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 assessmentapimodels.SaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Assessment}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment [post]
func (c *assessmentApiController) save(ctx *fiber.Ctx) error {
	var payload assessmentapimodels.SaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, hMsg, err := assessmenthandler.Instance.Save(payload.Assessment)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения анкеты")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Получение по ИД
// @Tags Анкета
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Assessment}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id} [get]
func (c *assessmentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := assessmenthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения анкеты")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("анкета не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Список
// @Tags Анкета
// @Description Список анкет с фильтром
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 assessmentapimodels.ListFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]dbmodels.Assessment}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/list [post]
func (c *assessmentApiController) list(ctx *fiber.Ctx) error {
	var payload assessmentapimodels.ListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := assessmenthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка анкет")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Удаление
// @Tags Анкета
// @Description Удаление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id} [delete]
func (c *assessmentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = assessmenthandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления анкеты")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Дублирование
// @Tags Анкета
// @Description Копия анкеты, опционально на другую вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 assessmentapimodels.DuplicateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Assessment}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/duplicate [post]
func (c *assessmentApiController) duplicate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.DuplicateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, hMsg, err := assessmenthandler.Instance.Duplicate(id, payload.JobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка дублирования анкеты")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Ответы
// @Tags Анкета
// @Description Список ответов кандидатов по анкете
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.AssessmentResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/responses [get]
func (c *assessmentApiController) responses(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := assessmenthandler.Instance.Responses(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения ответов по анкете")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка ответов
// @Tags Анкета
// @Description Выгрузка ответов по анкете в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/responses/xls [get]
func (c *assessmentApiController) responsesXLS(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, hMsg, err := assessmenthandler.Instance.ExportResponsesXLS(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки ответов по анкете")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="responses.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(file.Bytes())
}

// @Summary Печатная форма
// @Tags Анкета
// @Description Печатная форма анкеты в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/pdf [get]
func (c *assessmentApiController) pdfForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, hMsg, err := assessmenthandler.Instance.GenerateForm(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования печатной формы")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="assessment.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Генерация вопросов
// @Tags Анкета
// @Description Черновые вопросы анкеты по описанию вакансии через YandexGPT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 assessmentapimodels.SuggestRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Question}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/suggest [post]
func (c *assessmentApiController) suggest(ctx *fiber.Ctx) error {
	var payload assessmentapimodels.SuggestRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questions, hMsg, err := assessmenthandler.Instance.SuggestQuestions(payload.JobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации вопросов анкеты")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(questions))
}
