package subcmd

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
)

// Operation is the administrative operation selected on the command line.
type Operation int

const (
	// OperationNone indicates that no operation flag was set.
	OperationNone Operation = iota
	OperationList
	OperationCreate
	OperationDelete
)

type options struct {
	bootstrapServer   string
	list              bool
	create            bool
	delete            bool
	topic             string
	partitions        int
	replicationFactor int
	adminConfig       []string
	adminConfigFile   string
	expandEnv         bool
	topicProps        []string
}

func addFlags(flags *pflag.FlagSet, options *options) {
	flags.StringVar(
		&options.bootstrapServer,
		"bootstrap-server",
		"",
		"One broker from the Kafka cluster (required)",
	)
	flags.BoolVar(
		&options.list,
		"list",
		false,
		"List topics",
	)
	flags.BoolVar(
		&options.create,
		"create",
		false,
		"Create a topic",
	)
	flags.BoolVar(
		&options.delete,
		"delete",
		false,
		"Delete a topic",
	)
	flags.StringVar(
		&options.topic,
		"topic",
		"",
		"Topic name; required for create and delete",
	)
	flags.IntVar(
		&options.partitions,
		"partitions",
		0,
		"Partition count of the topic; only used (and required) for create",
	)
	flags.IntVar(
		&options.replicationFactor,
		"replication-factor",
		0,
		"Replication factor of the topic; only used (and required) for create",
	)
	flags.StringArrayVar(
		&options.adminConfig,
		"admin-config",
		nil,
		"Client properties in key=value format, e.g. for a kerberos connection; repeatable",
	)
	flags.StringVar(
		&options.adminConfigFile,
		"admin-config-file",
		"",
		"Path to a YAML file with client properties; overridden by --admin-config",
	)
	flags.BoolVar(
		&options.expandEnv,
		"expand-env",
		false,
		"Expand environment in the admin config file",
	)
	flags.StringArrayVar(
		&options.topicProps,
		"topic-props",
		nil,
		"Topic properties in key=value format; only used for create; repeatable",
	)
}

// operation returns the operation selected by the flags. Only meaningful
// after validate has passed.
func (o options) operation() Operation {
	switch {
	case o.list:
		return OperationList
	case o.create:
		return OperationCreate
	case o.delete:
		return OperationDelete
	default:
		return OperationNone
	}
}

// validate enforces the flag contract before anything touches the network:
// a bootstrap server, exactly one operation, and the per-operation
// required/forbidden flag sets.
func (o options) validate(flags *pflag.FlagSet) error {
	var err error

	if o.bootstrapServer == "" {
		err = multierror.Append(
			err,
			errors.New("Must set --bootstrap-server"),
		)
	}

	numOperations := 0
	for _, selected := range []bool{o.list, o.create, o.delete} {
		if selected {
			numOperations++
		}
	}
	if numOperations != 1 {
		err = multierror.Append(
			err,
			errors.New(
				"Must choose exactly one operation from --list, --create, or --delete",
			),
		)
		return err
	}

	switch o.operation() {
	case OperationList:
		for _, name := range []string{
			"topic",
			"partitions",
			"replication-factor",
			"topic-props",
		} {
			if flags.Changed(name) {
				err = multierror.Append(
					err,
					fmt.Errorf(
						"The --list operation cannot take the --%s option",
						name,
					),
				)
			}
		}
	case OperationCreate:
		for _, name := range []string{
			"topic",
			"partitions",
			"replication-factor",
		} {
			if !flags.Changed(name) {
				err = multierror.Append(
					err,
					fmt.Errorf(
						"The --create operation requires the --%s option",
						name,
					),
				)
			}
		}
		if flags.Changed("partitions") && o.partitions <= 0 {
			err = multierror.Append(
				err,
				errors.New("--partitions must be a positive integer"),
			)
		}
		if flags.Changed("replication-factor") && o.replicationFactor <= 0 {
			err = multierror.Append(
				err,
				errors.New("--replication-factor must be a positive integer"),
			)
		}
	case OperationDelete:
		if !flags.Changed("topic") {
			err = multierror.Append(
				err,
				errors.New("The --delete operation requires the --topic option"),
			)
		}
		for _, name := range []string{
			"partitions",
			"replication-factor",
			"topic-props",
		} {
			if flags.Changed(name) {
				err = multierror.Append(
					err,
					fmt.Errorf(
						"The --delete operation cannot take the --%s option",
						name,
					),
				)
			}
		}
	}

	return err
}
