package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/usecase"
)

// NotificationHandler notificaciones de stock bajo.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones
// @Tags         notifications
// @Security     Bearer
// @Produce      json,html
// @Param        page    query  int   false  "página (1-based)"
// @Param        unread  query  bool  false  "solo sin leer"
// @Success      200     {object}  dto.NotificationPage
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageRequest(c), c.QueryBool("unread"))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "notifications", fiber.Map{"Title": "Notifications"}, out)
}

// MarkRead godoc
// @Summary      Marcar notificación como leída
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  int  true  "id de la notificación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.MarkRead(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	if wantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect("/notifications", fiber.StatusSeeOther)
}
