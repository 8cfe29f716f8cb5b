package store

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"sitara.io/store/gateway"
	"sitara.io/store/models"
)

func validateContactForm(form models.ContactForm) *gateway.ValidationError {
	fields := map[string][]string{}
	if len(strings.TrimSpace(form.Name)) < 2 {
		fields["name"] = append(fields["name"], "name must be at least 2 characters")
	}
	if !strings.Contains(form.Email, "@") {
		fields["email"] = append(fields["email"], "a valid email is required")
	}
	if len(strings.TrimSpace(form.Phone)) < 10 {
		fields["phone"] = append(fields["phone"], "phone must be at least 10 characters")
	}
	if len(strings.TrimSpace(form.Message)) < 10 {
		fields["message"] = append(fields["message"], "message must be at least 10 characters")
	}
	if len(fields) == 0 {
		return nil
	}
	return &gateway.ValidationError{Fields: fields}
}

// SubmitContact validates and sends a storefront contact-form submission.
func (s *service) SubmitContact(ctx context.Context, form models.ContactForm) error {
	if verr := validateContactForm(form); verr != nil {
		return verr
	}

	if err := s.gw.Post(ctx, "/contact", form, nil); err != nil {
		s.logger.Error("failed to submit contact form", zap.Error(err))
		return err
	}
	return nil
}
