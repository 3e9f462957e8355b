package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"showlink/internal/version"
	"showlink/pkg/log"
)

var (
	logLevel   string
	logFormat  string
	configFile string
)

var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     version.APP,
		Short:   "showlink is the backend for the showlink web front ends",
		Long:    `Game session discovery, player accounts and lead capture for showlink.`,
		Version: version.VERSION + "/" + version.COMMIT,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.InitLog(logLevel, logFormat)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal)")
	flags.StringVar(&logFormat, "log-format", log.FormatText, "Log format (text, json)")
	flags.StringVarP(&configFile, "config", "c", "etc/config.yaml", "Path to config file")

	cmd.AddCommand(serveCommand, consumeCommand, toolsCmd)
	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
