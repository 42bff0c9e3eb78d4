package v1

import (
	"net/http"
	"strings"

	"contact-relay/internal/domain"
	"contact-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(r gin.IRoutes, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form submission to the configured Telegram channel. Responses never carry a body.
// @Tags         contact
// @Accept       json
// @Param        contact  body  domain.ContactSubmission  true  "Contact Form Data"
// @Success      200
// @Failure      400
// @Failure      500
// @Router       / [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	if hasBody(c.Request) && !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		_ = c.Error(apperror.BadRequest("unsupported content type", nil))
		return
	}

	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("malformed JSON body", err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}

// hasBody reports whether the request declares or streams a body.
// ContentLength is -1 for chunked uploads.
func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
