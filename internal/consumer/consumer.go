package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"

	"showlink/internal/config"
	"showlink/internal/dao"
	"showlink/internal/metadata"
	"showlink/pkg/log"
)

type LeadStore interface {
	GetLead(id string) (*metadata.LeadRecord, error)
	SetLead(lead *metadata.LeadRecord) error
	SetLastConsumeTime(t int64) error
}

type RowAppender interface {
	AppendRows(ctx context.Context, rows [][]any, sheetRange string) error
}

type Mailer interface {
	Send(ctx context.Context, recipients []string, templateId string, templateData map[string]any) error
}

// Consumer delivers published leads to the spreadsheet and notifies the lead
// recipients by email.
type Consumer struct {
	conf     *config.Config
	ctx      context.Context
	cancel   context.CancelFunc
	consumer *nsq.Consumer
	wg       sync.WaitGroup
	logger   *logrus.Entry
	store    LeadStore
	sheet    RowAppender
	mailer   Mailer
	now      func() time.Time
}

func NewConsumer(conf *config.Config, store LeadStore, sheet RowAppender, mailer Mailer) (*Consumer, error) {
	ctx, cancel := context.WithCancel(context.Background())

	logger := log.GetLogger(ctx).WithField("component", "consumer")

	nsqConf := nsq.NewConfig()
	nsqConf.MsgTimeout = time.Minute
	nsqConf.MaxInFlight = 10
	nsqConf.MaxAttempts = 5

	consumer, err := nsq.NewConsumer(conf.NSQ.Topic, conf.NSQ.Channel, nsqConf)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	c := newConsumer(ctx, cancel, conf, store, sheet, mailer, logger)
	c.consumer = consumer
	consumer.AddHandler(c)

	return c, nil
}

func newConsumer(ctx context.Context, cancel context.CancelFunc, conf *config.Config,
	store LeadStore, sheet RowAppender, mailer Mailer, logger *logrus.Entry) *Consumer {
	return &Consumer{
		conf:   conf,
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
		store:  store,
		sheet:  sheet,
		mailer: mailer,
		now:    time.Now,
	}
}

func (c *Consumer) HandleMessage(message *nsq.Message) error {
	c.logger.Debugf("Received NSQ message: %s", string(message.Body))
	message.DisableAutoResponse()

	if err := c.handleLead(c.ctx, message.Body); err != nil {
		message.Requeue(-1)
		return err
	}
	message.Finish()
	return nil
}

// handleLead is idempotent: a lead already recorded in the store is skipped.
func (c *Consumer) handleLead(ctx context.Context, body []byte) error {
	var lead dao.Lead
	if err := json.Unmarshal(body, &lead); err != nil {
		// a message that never decodes would be redelivered forever
		c.logger.WithError(err).Error("Failed to unmarshal lead, dropping it")
		return nil
	}

	logger := c.logger.WithFields(logrus.Fields{
		"leadId": lead.Id,
		"type":   lead.Type,
	})

	done, err := c.store.GetLead(lead.Id)
	if err != nil {
		return fmt.Errorf("failed to look up lead %s: %w", lead.Id, err)
	}
	if done != nil {
		logger.Info("Lead already delivered, skipping")
		return nil
	}

	logger.Info("Processing lead")

	if err := c.sheet.AppendRows(ctx, [][]any{lead.Row()}, c.conf.Sheets.Range); err != nil {
		logger.WithError(err).Error("Failed to append lead to spreadsheet")
		return err
	}

	if c.conf.SendGrid.LeadTemplateId != "" && len(c.conf.SendGrid.LeadRecipients) > 0 {
		err := c.mailer.Send(ctx, c.conf.SendGrid.LeadRecipients, c.conf.SendGrid.LeadTemplateId, lead.TemplateData())
		if err != nil {
			// the row is already written, redelivery would duplicate it
			logger.WithError(err).Error("Failed to send lead notification")
		}
	}

	now := c.now().Unix()
	if err := c.store.SetLead(&metadata.LeadRecord{
		Id:          lead.Id,
		Type:        lead.Type,
		Email:       lead.Email,
		ProcessedAt: now,
	}); err != nil {
		return fmt.Errorf("failed to record lead %s: %w", lead.Id, err)
	}
	if err := c.store.SetLastConsumeTime(now); err != nil {
		logger.WithError(err).Warn("Failed to update last consume time")
	}

	logger.Debug("Successfully processed lead")
	return nil
}

func (c *Consumer) Start() error {
	c.logger.Info("Starting NSQ consumer...")

	err := c.consumer.ConnectToNSQDs(c.conf.NSQ.NSQDAddrs)
	if err != nil {
		return fmt.Errorf("failed to connect to NSQs: %w", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.ctx.Done()
		c.consumer.Stop()
		<-c.consumer.StopChan
	}()

	return nil
}

func (c *Consumer) Stop() {
	c.cancel()
	c.wg.Wait()
}
