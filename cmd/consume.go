package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"showlink/internal/config"
	"showlink/internal/consumer"
	"showlink/internal/email"
	"showlink/internal/metadata"
	"showlink/internal/sheets"
)

var consumeCommand = &cobra.Command{
	Use:   "consume",
	Short: "Consume submitted leads from NSQ",
	Long:  `Consume submitted leads from NSQ, append them to the leads spreadsheet and notify the team by email`,
	Run: func(cmd *cobra.Command, args []string) {
		conf, err := config.InitConfig(configFile)
		if err != nil {
			logrus.Fatal("initConfig error, ", err.Error())
		}

		db, err := metadata.NewMetadataDB(leadStoreDir(conf), conf.NSQ.DedupeTTL,
			logrus.WithField("component", "metadata"))
		if err != nil {
			logrus.Fatalf("failed to open metadata db: %v", err)
		}
		defer db.Close()

		sheet := sheets.NewClient(conf.Sheets, logrus.WithField("component", "sheets"))
		mailer := email.NewSender(conf.SendGrid, logrus.WithField("component", "email"))

		c, err := consumer.NewConsumer(conf, db, sheet, mailer)
		if err != nil {
			logrus.Fatalf("Failed to create consumer: %v", err)
		}
		if err := c.Start(); err != nil {
			logrus.Fatalf("Failed to start consumer: %v", err)
		}

		termChan := make(chan os.Signal, 1)
		signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

		<-termChan
		logrus.Infof("consumer is shutting down...")
		c.Stop()
	},
}
