package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"sportshare-backend/internal/config"
	"sportshare-backend/internal/logger"
)

type emailService struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewEmailService(cfg config.SendGridConfig) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
	}
}

func (s *emailService) SendBookingDecisionNotification(ctx context.Context, renterEmail, renterName, equipmentTitle, status, startDate, endDate string) error {
	subject := fmt.Sprintf("Your booking for %s was %s", equipmentTitle, status)
	plain := fmt.Sprintf("Hi %s,\n\nYour booking for %s from %s to %s was %s.\n",
		renterName, equipmentTitle, startDate, endDate, status)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your booking for <strong>%s</strong> from %s to %s was <strong>%s</strong>.</p>",
		renterName, equipmentTitle, startDate, endDate, status)
	return s.send(ctx, renterEmail, renterName, subject, plain, html)
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, plain, html string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil, "status", resp.StatusCode)
	return nil
}
