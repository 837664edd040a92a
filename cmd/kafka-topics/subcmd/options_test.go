package subcmd

import (
	"testing"

	"github.com/kafkatools/kafka-topics/pkg/admin"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestArgs(t *testing.T, args []string) (options, *pflag.FlagSet) {
	parsed := options{}
	flags := pflag.NewFlagSet("kafka-topics", pflag.ContinueOnError)
	addFlags(flags, &parsed)

	err := flags.Parse(expandMultiTokenFlags(args))
	require.NoError(t, err)

	return parsed, flags
}

func TestValidateRequiresBootstrapServer(t *testing.T) {
	parsed, flags := parseTestArgs(t, []string{"--list"})
	err := parsed.validate(flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap-server")
}

func TestValidateExactlyOneOperation(t *testing.T) {
	type testCase struct {
		args []string
	}

	testCases := []testCase{
		{
			args: []string{"--bootstrap-server", "localhost:9092"},
		},
		{
			args: []string{
				"--bootstrap-server", "localhost:9092", "--list", "--create",
			},
		},
		{
			args: []string{
				"--bootstrap-server", "localhost:9092",
				"--list", "--create", "--delete",
			},
		},
	}

	for _, testCase := range testCases {
		parsed, flags := parseTestArgs(t, testCase.args)
		err := parsed.validate(flags)
		require.Error(t, err, "args %+v", testCase.args)
		assert.Contains(
			t,
			err.Error(),
			"exactly one operation",
			"args %+v",
			testCase.args,
		)
	}
}

func TestValidateList(t *testing.T) {
	parsed, flags := parseTestArgs(
		t,
		[]string{"--bootstrap-server", "localhost:9092", "--list"},
	)
	require.NoError(t, parsed.validate(flags))
	assert.Equal(t, OperationList, parsed.operation())

	for _, extraArgs := range [][]string{
		{"--topic", "topic-a"},
		{"--partitions", "3"},
		{"--replication-factor", "2"},
		{"--topic-props", "cleanup.policy=compact"},
	} {
		args := append(
			[]string{"--bootstrap-server", "localhost:9092", "--list"},
			extraArgs...,
		)
		parsed, flags := parseTestArgs(t, args)
		err := parsed.validate(flags)
		require.Error(t, err, "args %+v", args)
		assert.Contains(t, err.Error(), "--list operation cannot take")
	}
}

func TestValidateCreate(t *testing.T) {
	parsed, flags := parseTestArgs(
		t,
		[]string{
			"--bootstrap-server", "localhost:9092",
			"--create",
			"--topic", "topic-a",
			"--partitions", "3",
			"--replication-factor", "1",
		},
	)
	require.NoError(t, parsed.validate(flags))
	assert.Equal(t, OperationCreate, parsed.operation())
	assert.Equal(t, "topic-a", parsed.topic)
	assert.Equal(t, 3, parsed.partitions)
	assert.Equal(t, 1, parsed.replicationFactor)

	// Each of topic, partitions, and replication-factor is required.
	for _, args := range [][]string{
		{
			"--bootstrap-server", "localhost:9092", "--create",
			"--partitions", "3", "--replication-factor", "1",
		},
		{
			"--bootstrap-server", "localhost:9092", "--create",
			"--topic", "topic-a", "--replication-factor", "1",
		},
		{
			"--bootstrap-server", "localhost:9092", "--create",
			"--topic", "topic-a", "--partitions", "3",
		},
	} {
		parsed, flags := parseTestArgs(t, args)
		err := parsed.validate(flags)
		require.Error(t, err, "args %+v", args)
		assert.Contains(t, err.Error(), "--create operation requires")
	}
}

func TestValidateCreatePositiveCounts(t *testing.T) {
	for _, args := range [][]string{
		{
			"--bootstrap-server", "localhost:9092", "--create",
			"--topic", "topic-a",
			"--partitions", "0", "--replication-factor", "1",
		},
		{
			"--bootstrap-server", "localhost:9092", "--create",
			"--topic", "topic-a",
			"--partitions", "3", "--replication-factor", "-1",
		},
	} {
		parsed, flags := parseTestArgs(t, args)
		err := parsed.validate(flags)
		require.Error(t, err, "args %+v", args)
		assert.Contains(t, err.Error(), "positive integer")
	}
}

func TestValidateDelete(t *testing.T) {
	parsed, flags := parseTestArgs(
		t,
		[]string{
			"--bootstrap-server", "localhost:9092",
			"--delete",
			"--topic", "topic-a",
		},
	)
	require.NoError(t, parsed.validate(flags))
	assert.Equal(t, OperationDelete, parsed.operation())

	parsed, flags = parseTestArgs(
		t,
		[]string{"--bootstrap-server", "localhost:9092", "--delete"},
	)
	err := parsed.validate(flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--delete operation requires the --topic option")

	for _, extraArgs := range [][]string{
		{"--partitions", "3"},
		{"--replication-factor", "2"},
		{"--topic-props", "cleanup.policy=compact"},
	} {
		args := append(
			[]string{
				"--bootstrap-server", "localhost:9092",
				"--delete", "--topic", "topic-a",
			},
			extraArgs...,
		)
		parsed, flags := parseTestArgs(t, args)
		err := parsed.validate(flags)
		require.Error(t, err, "args %+v", args)
		assert.Contains(t, err.Error(), "--delete operation cannot take")
	}
}

func TestAdminConfigStaging(t *testing.T) {
	parsed, flags := parseTestArgs(
		t,
		[]string{
			"--bootstrap-server", "localhost:9092",
			"--list",
			"--admin-config", "foo=bar", "baz=qux",
		},
	)
	require.NoError(t, parsed.validate(flags))

	props, err := admin.ParseProperties(parsed.adminConfig, "--admin-config")
	require.NoError(t, err)
	assert.Equal(
		t,
		admin.Properties{
			"foo": "bar",
			"baz": "qux",
		},
		props,
	)

	// A token without "=" is fatal before any network call.
	parsed, _ = parseTestArgs(
		t,
		[]string{
			"--bootstrap-server", "localhost:9092",
			"--list",
			"--admin-config", "foo",
		},
	)
	_, err = admin.ParseProperties(parsed.adminConfig, "--admin-config")
	require.Error(t, err)
}
