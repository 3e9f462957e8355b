package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"showlink/internal/config"
	"showlink/internal/dao"
	"showlink/internal/gamechat"
	"showlink/internal/gamesession"
	"showlink/internal/metadata"
	"showlink/internal/server"
	"showlink/internal/sheets"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Tools for showlink",
	Long:  `Various tools and utilities for operating showlink.`,
}

var (
	searchStatus       string
	searchFrom         string
	searchTo           string
	searchLimit        int
	ignoreNoConnection bool
)

var randomSearchCmd = &cobra.Command{
	Use:   "random-search",
	Short: "Sample random game sessions from the configured backend",
	Run: func(cmd *cobra.Command, args []string) {
		conf, err := config.InitConfig(configFile)
		if err != nil {
			logrus.Fatal("initConfig error, ", err.Error())
		}

		filter, err := gamesession.ResolveFilter(gamesession.RawFilter{
			StartedFrom: searchFrom,
			StartedTo:   searchTo,
			Status:      searchStatus,
		}, ignoreNoConnection, time.Now)
		if err != nil {
			logrus.Fatalf("invalid filter: %v", err)
		}
		logrus.Debugf("filter: %+v", filter)

		logger := logrus.WithField("component", "random-search")
		agg := gamesession.NewAggregator(gamechat.NewClient(conf.GameChat, logger), gamesession.WithLogger(logger))

		ctx, cancel := context.WithTimeout(context.Background(), conf.GameChat.Timeout+5*time.Second)
		defer cancel()
		result, err := agg.Aggregate(ctx, filter, searchLimit)
		if err != nil {
			logrus.Fatalf("random search failed: %v", err)
		}
		printJSON(dao.ToSessionListResponse(result))
	},
}

var sheetMetaCmd = &cobra.Command{
	Use:   "sheet-meta",
	Short: "Print metadata of the leads spreadsheet",
	Run: func(cmd *cobra.Command, args []string) {
		conf, err := config.InitConfig(configFile)
		if err != nil {
			logrus.Fatal("initConfig error, ", err.Error())
		}

		meta, err := sheets.NewClient(conf.Sheets, logrus.WithField("component", "sheets")).Metadata(context.Background())
		if err != nil {
			logrus.Fatalf("failed to read spreadsheet metadata: %v", err)
		}
		printJSON(meta)
	},
}

var (
	tokenEmail string
	tokenRole  string
)

// tokenCmd mints an access token with placeholder backend credentials, which
// is enough to pass the auth middlewares while developing locally.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign an access token for local testing",
	Run: func(cmd *cobra.Command, args []string) {
		conf, err := config.InitConfig(configFile)
		if err != nil {
			logrus.Fatal("initConfig error, ", err.Error())
		}
		if tokenRole != dao.RoleGuest && tokenRole != dao.RoleProducer {
			logrus.Fatalf("role must be %s or %s", dao.RoleGuest, dao.RoleProducer)
		}

		claims := server.TokenClaims{
			GameChatToken:       uuid.NewString(),
			PlayFabId:           uuid.NewString(),
			PlayFabSessionToken: uuid.NewString(),
			Email:               tokenEmail,
			Role:                tokenRole,
		}
		token, err := server.SignToken(claims, conf.Jwt.Secret, conf.Jwt.ExpiresIn, time.Now())
		if err != nil {
			logrus.Fatalf("failed to sign token: %v", err)
		}
		fmt.Println(token)
	},
}

// leadsCmd inspects the consumer's lead store. badger locks its directory, so
// it must run while the consumer is stopped.
var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect the leads recorded by the consumer",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded leads and the last consume time",
	Run: func(cmd *cobra.Command, args []string) {
		db := openLeadStore()
		defer db.Close()

		report, err := buildLeadsReport(db)
		if err != nil {
			logrus.Fatalf("failed to read leads: %v", err)
		}
		printJSON(report)
	},
}

var leadsForgetCmd = &cobra.Command{
	Use:   "forget <lead-id>...",
	Short: "Forget recorded leads so a redelivery is processed again",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openLeadStore()
		defer db.Close()

		if err := forgetLeads(db, args); err != nil {
			logrus.Fatalf("failed to forget leads: %v", err)
		}
		logrus.Infof("forgot %d leads", len(args))
	},
}

type leadsReport struct {
	LastConsumeTime *time.Time             `json:"lastConsumeTime,omitempty"`
	Leads           []*metadata.LeadRecord `json:"leads"`
}

func openLeadStore() *metadata.MetadataDB {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}
	db, err := metadata.NewMetadataDB(leadStoreDir(conf), conf.NSQ.DedupeTTL, logrus.WithField("component", "metadata"))
	if err != nil {
		logrus.Fatalf("failed to open metadata db: %v", err)
	}
	return db
}

func leadStoreDir(conf *config.Config) string {
	return filepath.Join(conf.DataDir, "consumer")
}

func buildLeadsReport(db *metadata.MetadataDB) (*leadsReport, error) {
	leads, err := db.GetLeads()
	if err != nil {
		return nil, err
	}
	report := &leadsReport{Leads: leads}

	last, err := db.GetLastConsumeTime()
	if err != nil {
		return nil, err
	}
	if last > 0 {
		t := time.Unix(last, 0).UTC()
		report.LastConsumeTime = &t
	}
	return report, nil
}

func forgetLeads(db *metadata.MetadataDB, ids []string) error {
	for _, id := range ids {
		if err := db.DeleteLead(id); err != nil {
			return fmt.Errorf("forget lead %s: %w", id, err)
		}
	}
	return nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logrus.Fatalf("failed to encode output: %v", err)
	}
}

func init() {
	randomSearchCmd.Flags().StringVar(&searchStatus, "status", "", "Comma separated statuses (Pending, Live, Past)")
	randomSearchCmd.Flags().StringVar(&searchFrom, "from", "", "Earliest start date, ISO8601")
	randomSearchCmd.Flags().StringVar(&searchTo, "to", "", "Latest start date, ISO8601")
	randomSearchCmd.Flags().IntVar(&searchLimit, "limit", gamesession.DefaultLimit, "Maximum number of sessions")
	randomSearchCmd.Flags().BoolVar(&ignoreNoConnection, "ignore-no-connection", false, "Skip sessions nobody is connected to")

	tokenCmd.Flags().StringVar(&tokenEmail, "email", "dev@showlink.local", "Email carried by the token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", dao.RoleGuest, "Role carried by the token")

	toolsCmd.AddCommand(randomSearchCmd)
	toolsCmd.AddCommand(sheetMetaCmd)
	toolsCmd.AddCommand(tokenCmd)

	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsForgetCmd)
	toolsCmd.AddCommand(leadsCmd)
}
