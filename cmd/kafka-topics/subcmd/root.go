package subcmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kafkatools/kafka-topics/pkg/admin"
	"github.com/kafkatools/kafka-topics/pkg/cli"
	"github.com/kafkatools/kafka-topics/pkg/config"
	"github.com/kafkatools/kafka-topics/pkg/version"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var debug bool
var noSpinner bool

var rootOptions options

// RootCmd is the cobra CLI root command. The operation is selected with
// mutually exclusive flags rather than subcommands, matching the flag
// surface of the standard kafka-topics tooling.
var RootCmd = &cobra.Command{
	Use:   "kafka-topics [flags]",
	Short: "kafka-topics runs topic operations against a Kafka cluster",
	Long: fmt.Sprintf(
		"This tool helps in Kafka topic operations\n    (with segmentio/kafka-go %s)",
		version.KafkaGoVersion(),
	),
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRun,
	RunE:              run,
}

func init() {
	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	RootCmd.Flags().BoolVar(
		&debug,
		"debug",
		false,
		"enable debug logging",
	)
	RootCmd.Flags().BoolVar(
		&noSpinner,
		"no-spinner",
		false,
		"disable all UI spinners",
	)
	addFlags(RootCmd.Flags(), &rootOptions)
}

// Execute runs kafka-topics.
func Execute(versionRef string) {
	RootCmd.Version = fmt.Sprintf("v%s (ref:%s)", version.Version, versionRef)

	// A bare invocation is treated as a help request, like the original
	// kafka-topics tools do.
	if len(os.Args) == 1 {
		if err := RootCmd.Help(); err != nil {
			log.Errorf("Error: %v", err)
			os.Exit(1)
		}
		return
	}

	RootCmd.SetArgs(expandMultiTokenFlags(os.Args[1:]))

	if err := RootCmd.Execute(); err != nil {
		log.Errorf("Error: %v", err)
		os.Exit(1)
	}
}

func preRun(cmd *cobra.Command, args []string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if err := rootOptions.validate(cmd.Flags()); err != nil {
		return err
	}

	adminProps := admin.Properties{}
	if rootOptions.adminConfigFile != "" {
		clientConfig, err := config.LoadClientFile(
			rootOptions.adminConfigFile,
			rootOptions.expandEnv,
		)
		if err != nil {
			return err
		}
		adminProps.Overlay(clientConfig.Properties)
	}

	flagProps, err := admin.ParseProperties(rootOptions.adminConfig, "--admin-config")
	if err != nil {
		return err
	}
	adminProps.Overlay(flagProps)

	// Topic properties are staged up front so that a malformed token fails
	// before any connection is made.
	var topicProps admin.Properties
	if rootOptions.operation() == OperationCreate {
		topicProps, err = admin.ParseProperties(rootOptions.topicProps, "--topic-props")
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	adminClient, err := admin.NewBrokerAdminClient(
		ctx,
		admin.BrokerAdminClientConfig{
			ConnectorConfig: admin.ConnectorConfig{
				BrokerAddr: rootOptions.bootstrapServer,
				Props:      adminProps,
			},
		},
	)
	if err != nil {
		return err
	}
	defer adminClient.Close()

	runner := cli.NewRunner(adminClient, os.Stdout, log.Infof, !noSpinner)

	switch rootOptions.operation() {
	case OperationList:
		return runner.ListTopics(ctx)
	case OperationCreate:
		return runner.CreateTopic(
			ctx,
			kafka.TopicConfig{
				Topic:             rootOptions.topic,
				NumPartitions:     rootOptions.partitions,
				ReplicationFactor: rootOptions.replicationFactor,
				ConfigEntries:     topicProps.ConfigEntries(),
			},
		)
	case OperationDelete:
		return runner.DeleteTopic(ctx, rootOptions.topic)
	default:
		// validate guarantees an operation was selected.
		return fmt.Errorf("No operation selected")
	}
}
