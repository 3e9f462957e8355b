package email

import (
	"context"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"showlink/internal/apperr"
	"showlink/internal/config"
)

type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Sender sends SendGrid dynamic template emails.
type Sender struct {
	conf   config.SendGridConfig
	client mailClient
	logger *logrus.Entry
}

func NewSender(conf config.SendGridConfig, logger *logrus.Entry) *Sender {
	s := &Sender{conf: conf, logger: logger}
	if conf.ApiKey != "" {
		s.client = sendgrid.NewSendClient(conf.ApiKey)
	}
	return s
}

// Send mails templateId, rendered with templateData, to every recipient.
func (s *Sender) Send(ctx context.Context, recipients []string, templateId string, templateData map[string]any) error {
	if s.client == nil || s.conf.SenderEmail == "" {
		return apperr.New(http.StatusForbidden, apperr.MsgMissingCredentials)
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", s.conf.SenderEmail))
	m.SetTemplateID(templateId)
	p := mail.NewPersonalization()
	for _, to := range recipients {
		p.AddTos(mail.NewEmail("", to))
	}
	for k, v := range templateData {
		p.SetDynamicTemplateData(k, v)
	}
	m.AddPersonalizations(p)

	resp, err := s.client.SendWithContext(ctx, m)
	if err == nil && resp.StatusCode >= http.StatusBadRequest {
		err = apperr.Backend(resp.StatusCode, resp.Body)
	}
	if err != nil {
		s.logger.Errorf("send-grid-error: %v", err)
		return apperr.Wrap(http.StatusForbidden, apperr.MsgSendEmailFailed, err)
	}

	s.logger.WithFields(logrus.Fields{
		"templateId": templateId,
		"recipients": len(recipients),
	}).Info("mail-sent-successfully")
	return nil
}
