package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"showlink/internal/config"
	"showlink/internal/jobs"
	"showlink/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start showlink server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}

	logrus.Infof("listening on %s", conf.Addr)

	gin.SetMode(gin.ReleaseMode)
	ctx, cancelFunc := context.WithCancel(context.Background())

	srv, err := server.NewServer(ctx, conf)
	if err != nil {
		cancelFunc()
		logrus.Fatalf("newServer error, %s", err.Error())
	}
	go srv.Start()

	if conf.Ping.Enabled {
		pinger := jobs.NewPinger(conf.Ping, logrus.WithField("component", "ping"))
		go pinger.Run(ctx)
	}

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("server is shutting down...")
	cancelFunc()
	srv.Shutdown()
}
