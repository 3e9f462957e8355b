package config

import (
	"fmt"
	"time"
)

type JwtConfig struct {
	Secret           string        `yaml:"secret"`
	ExpiresIn        time.Duration `yaml:"expiresIn"`
	RefreshSecret    string        `yaml:"refreshSecret"`
	RefreshExpiresIn time.Duration `yaml:"refreshExpiresIn"`
}

type GameChatConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

type PlayFabConfig struct {
	TitleId         string        `yaml:"titleId"`
	Endpoint        string        `yaml:"endpoint"`
	SecretKey       string        `yaml:"secretKey"`
	EmailTemplateId string        `yaml:"emailTemplateId"`
	MarketingListId string        `yaml:"marketingListId"`
	Timeout         time.Duration `yaml:"timeout"`
}

type SendGridConfig struct {
	ApiKey         string   `yaml:"apiKey"`
	SenderEmail    string   `yaml:"senderEmail"`
	LeadTemplateId string   `yaml:"leadTemplateId"`
	LeadRecipients []string `yaml:"leadRecipients"`
}

type SheetsConfig struct {
	SpreadsheetId   string `yaml:"spreadsheetId"`
	CredentialsFile string `yaml:"credentialsFile"`
	Range           string `yaml:"range"`
}

type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	UseSSL          bool   `yaml:"useSSL"`
	Region          string `yaml:"region"`
	PublicUrl       string `yaml:"publicUrl,omitempty"`
}

func (s3 *S3Config) UrlPrefix() string {
	if s3.PublicUrl != "" {
		return fmt.Sprintf("%s/%s", s3.PublicUrl, s3.Bucket)
	}
	if s3.UseSSL {
		return fmt.Sprintf("https://%s/%s", s3.Endpoint, s3.Bucket)
	}
	return fmt.Sprintf("http://%s/%s", s3.Endpoint, s3.Bucket)
}

type NSQConfig struct {
	// producer side
	NSQDAddr string `yaml:"nsqdAddr"`
	// consumer side, supports several nsqd
	NSQDAddrs []string `yaml:"nsqdAddrs"`
	Topic     string   `yaml:"topic"`
	Channel   string   `yaml:"channel"`
	// how long a delivered lead id is remembered by the consumer
	DedupeTTL time.Duration `yaml:"dedupeTTL"`
}

type PingConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

type RandomSearchConfig struct {
	DefaultLimit int `yaml:"defaultLimit"`
}

type Config struct {
	Addr         string             `yaml:"addr"`
	SSLCert      string             `yaml:"sslCert"`
	SSLKey       string             `yaml:"sslKey"`
	Jwt          JwtConfig          `yaml:"jwt"`
	GameChat     GameChatConfig     `yaml:"gameChat"`
	PlayFab      PlayFabConfig      `yaml:"playFab"`
	SendGrid     SendGridConfig     `yaml:"sendGrid"`
	Sheets       SheetsConfig       `yaml:"sheets"`
	S3           S3Config           `yaml:"s3"`
	NSQ          NSQConfig          `yaml:"nsq"`
	DataDir      string             `yaml:"dataDir"`
	Ping         PingConfig         `yaml:"ping"`
	RandomSearch RandomSearchConfig `yaml:"randomSearch"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr: "127.0.0.1:8081",
		Jwt: JwtConfig{
			ExpiresIn:        24 * time.Hour,
			RefreshExpiresIn: 7 * 24 * time.Hour,
		},
		GameChat: GameChatConfig{
			Timeout: 30 * time.Second,
		},
		PlayFab: PlayFabConfig{
			Endpoint: "playfabapi.com",
			Timeout:  30 * time.Second,
		},
		Sheets: SheetsConfig{
			Range: "Sheet1!A:B",
		},
		S3: S3Config{
			Bucket:   "showlink",
			Endpoint: "127.0.0.1:9000",
			UseSSL:   false,
			Region:   "us-east-1",
		},
		NSQ: NSQConfig{
			Topic:     "leads",
			Channel:   "showlink-consumer",
			DedupeTTL: 30 * 24 * time.Hour,
		},
		DataDir: "data",
		Ping: PingConfig{
			Interval: 5 * time.Minute,
		},
		RandomSearch: RandomSearchConfig{
			DefaultLimit: 5,
		},
	}
}
