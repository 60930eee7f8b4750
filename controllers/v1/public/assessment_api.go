package publicapi

import (
	"talent-flow-backend/controllers"
	assessmenthandler "talent-flow-backend/lib/assessment"
	filestorage "talent-flow-backend/lib/file-storage"
	apimodels "talent-flow-backend/models/api"
	assessmentapimodels "talent-flow-backend/models/api/assessment"

	"github.com/gofiber/fiber/v2"
)

type publicAssessmentApiController struct {
	controllers.BaseAPIController
}

func InitPublicAssessmentApiRouters(app *fiber.App) {
	controller := publicAssessmentApiController{}
	app.Route("assessment", func(router fiber.Router) {
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("submit", controller.submit)
			idRoute.Post("completion", controller.completion)
			idRoute.Post("file/:question_id", controller.uploadFile)
		})
	})
}

// @Summary Получение анкеты
// @Tags Публичная анкета
// @Description Получение активной анкеты для заполнения кандидатом
// @Param   id          		path    string  true         "Идентификатор анкеты"
// @Success 200 {object} apimodels.Response{data=dbmodels.Assessment}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id} [get]
func (c *publicAssessmentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := assessmenthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения анкеты")
	}
	if rec == nil || !rec.IsActive {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("анкета не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Отправка ответов
// @Tags Публичная анкета
// @Description Отправка заполненной анкеты кандидатом. При нарушениях валидации
// возвращается 400 с картой вопрос - сообщение в data
// @Param   id          		path    string  true         "Идентификатор анкеты"
// @Param	body body	 assessmentapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.AssessmentResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id}/submit [post]
func (c *publicAssessmentApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.SubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, hMsg, err := assessmenthandler.Instance.Submit(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки анкеты")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	if len(result.Errors) != 0 {
		resp := apimodels.NewError("ответы не прошли проверку")
		resp.Data = result.Errors
		return ctx.Status(fiber.StatusBadRequest).JSON(resp)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result.Response))
}

// @Summary Прогресс заполнения
// @Tags Публичная анкета
// @Description Процент заполнения по текущим ответам без отправки
// @Param   id          		path    string  true         "Идентификатор анкеты"
// @Param	body body	 assessmentapimodels.CompletionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.CompletionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id}/completion [post]
func (c *publicAssessmentApiController) completion(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.CompletionRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := assessmenthandler.Instance.Completion(id, payload.Responses)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчёта заполнения анкеты")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Загрузка файла
// @Tags Публичная анкета
// @Description Загрузка файла-ответа на вопрос типа file-upload.
// Возвращённый дескриптор сохраняется клиентом как значение ответа
// @Param   id          		path    string  true         "Идентификатор анкеты"
// @Param   question_id    		path    string  true         "Идентификатор вопроса"
// @Param   candidate    		query   string  true         "Идентификатор кандидата"
// @Param   file				formData	file	true	"файл"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.FileAnswerView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id}/file/{question_id} [post]
func (c *publicAssessmentApiController) uploadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := ctx.Query("candidate")
	if candidateID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор кандидата"))
	}
	rec, err := assessmenthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения анкеты")
	}
	if rec == nil || !rec.IsActive {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("анкета не найдена"))
	}
	questionID := ctx.Params("question_id")
	question := rec.FindQuestion(questionID)
	if question == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("вопрос не найден"))
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла")
	}
	defer file.Close()

	storageKey, err := filestorage.Instance.UploadAnswerFile(ctx.Context(), id, candidateID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки файла")
	}
	view := assessmentapimodels.FileAnswerView{
		Name:         fileHeader.Filename,
		Size:         fileHeader.Size,
		Type:         fileHeader.Header.Get(fiber.HeaderContentType),
		LastModified: ctx.Context().Time().UnixMilli(),
		StorageKey:   storageKey,
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
