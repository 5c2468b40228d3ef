package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/mapper"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/adapter/http/validation"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks handles GET /api/tasks?filter=<token>&sort=<token>.
// Unknown tokens are permissive defaults, so there is no 400 path here.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	tasks, err := h.taskService.List(c.Request.Context(), ownerID, c.Query("filter"), c.Query("sort"))
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	task, err := h.taskService.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var req dto.CreateTaskRequest
	raw, err := validation.ParseBody(body, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), ownerID, input)
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := validation.ParseBody(body, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), ownerID, c.Param("id"), input)
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailUpdateTask, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	task, err := h.taskService.ToggleComplete(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailUpdateTask, "failed to toggle task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	if err := h.taskService.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		h.writeTaskError(c, lang, err, apierrors.MsgFailDeleteTask, "failed to delete task")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskDeleted, lang),
	})
}

func (h *TaskHandler) writeTaskError(c *gin.Context, lang string, err error, failMsg, logMsg string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrTaskTextRequired):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTaskTextRequired, lang),
		)
	case errors.Is(err, domain.ErrPriorityOutOfRange):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgPriorityOutOfRange, lang),
		)
	default:
		zap.L().Error(logMsg, zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsg, lang),
		)
	}
}
