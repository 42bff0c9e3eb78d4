package usecase

import (
	"context"
	"errors"
	"fmt"

	"contact-relay/internal/domain"
	"contact-relay/pkg/apperror"
	"contact-relay/pkg/logger"
	"contact-relay/pkg/metrics"
	"contact-relay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	notifier domain.Notifier
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(notifier domain.Notifier, validate *validator.Validate) domain.ContactUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &contactUsecase{
		notifier: notifier,
		validate: validate,
	}
}

// FormatContactMessage renders the notification text. Values are substituted verbatim.
func FormatContactMessage(req *domain.ContactSubmission) string {
	return fmt.Sprintf(`a new contact message from "%s" with subject "%s" and message "%s"`, req.From, req.Subject, req.Message)
}

// SendContactMessage validates the submission and relays it to the notifier
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) error {
	if req == nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return apperror.BadRequest("empty submission", nil)
	}

	if err := validation.Check(uc.validate, req); err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		var verr *validation.ViolationError
		if errors.As(err, &verr) {
			logger.Log.WarnContext(ctx, "Contact submission rejected", "violations", verr.Violations)
		}
		return apperror.BadRequest("invalid submission", err)
	}

	outcome, err := uc.notifier.SendMessage(ctx, FormatContactMessage(req))
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		return apperror.UpstreamFailure(err)
	}
	if outcome == nil || !outcome.OK {
		metrics.Submissions.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		return apperror.UpstreamFailure(errors.New("notification API did not confirm delivery"))
	}

	metrics.Submissions.WithLabelValues(metrics.OutcomeSent).Inc()
	return nil
}
