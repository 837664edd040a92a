package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/kafkatools/kafka-topics/pkg/admin"
	"github.com/kafkatools/kafka-topics/pkg/util"
	"github.com/segmentio/kafka-go"
)

const (
	spinnerCharSet  = 36
	spinnerDuration = 200 * time.Millisecond
)

// Runner runs a single administrative operation and renders its result.
// Functional output (topic names) goes to the out writer; status messages go
// through the printer so that they end up in the logs, not in output that
// scripts might be parsing.
type Runner struct {
	adminClient admin.Client
	out         io.Writer
	printer     func(f string, a ...interface{})
	spinnerObj  *spinner.Spinner
}

// NewRunner constructs a new Runner instance. The spinner is only shown when
// requested and stderr is attached to a terminal.
func NewRunner(
	adminClient admin.Client,
	out io.Writer,
	printer func(f string, a ...interface{}),
	showSpinner bool,
) *Runner {
	var spinnerObj *spinner.Spinner

	if showSpinner && util.InTerminal() {
		spinnerObj = spinner.New(
			spinner.CharSets[spinnerCharSet],
			spinnerDuration,
			spinner.WithWriter(os.Stderr),
			spinner.WithHiddenCursor(true),
		)
		spinnerObj.Prefix = "Loading: "
	}

	return &Runner{
		adminClient: adminClient,
		out:         out,
		printer:     printer,
		spinnerObj:  spinnerObj,
	}
}

// ListTopics fetches the names of all topics in the cluster and prints each
// one on its own line, in the order the cluster returned them.
func (r *Runner) ListTopics(ctx context.Context) error {
	r.startSpinner()

	topicNames, err := r.adminClient.GetTopicNames(ctx)
	r.stopSpinner()
	if err != nil {
		return err
	}

	for _, topicName := range topicNames {
		fmt.Fprintln(r.out, topicName)
	}

	return nil
}

// CreateTopic creates a single topic with the argument config.
func (r *Runner) CreateTopic(ctx context.Context, config kafka.TopicConfig) error {
	r.startSpinner()

	err := r.adminClient.CreateTopic(ctx, config)
	r.stopSpinner()
	if err != nil {
		return err
	}

	r.printer(
		"Created topic %s with %d partitions and replication factor %d",
		config.Topic,
		config.NumPartitions,
		config.ReplicationFactor,
	)
	return nil
}

// DeleteTopic deletes a single topic.
func (r *Runner) DeleteTopic(ctx context.Context, name string) error {
	r.startSpinner()

	err := r.adminClient.DeleteTopic(ctx, name)
	r.stopSpinner()
	if err != nil {
		return err
	}

	r.printer("Deleted topic %s", name)
	return nil
}

func (r *Runner) startSpinner() {
	if r.spinnerObj != nil {
		r.spinnerObj.Start()
	}
}

func (r *Runner) stopSpinner() {
	if r.spinnerObj != nil && r.spinnerObj.Active() {
		r.spinnerObj.Stop()
	}
}
