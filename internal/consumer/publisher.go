package consumer

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"

	"showlink/internal/dao"
)

// Publisher puts leads on the NSQ topic the Consumer reads.
type Publisher struct {
	producer *nsq.Producer
	topic    string
	logger   *logrus.Entry
}

func NewPublisher(addr, topic string, logger *logrus.Entry) (*Publisher, error) {
	producer, err := nsq.NewProducer(addr, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)
	return &Publisher{producer: producer, topic: topic, logger: logger}, nil
}

func (p *Publisher) PublishLead(lead *dao.Lead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	if err := p.producer.Publish(p.topic, body); err != nil {
		return fmt.Errorf("failed to publish lead %s: %w", lead.Id, err)
	}
	p.logger.Debugf("published lead %s to %s", lead.Id, p.topic)
	return nil
}

func (p *Publisher) Stop() {
	p.producer.Stop()
}
