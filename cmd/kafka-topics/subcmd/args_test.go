package subcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandMultiTokenFlags(t *testing.T) {
	type testCase struct {
		args     []string
		expected []string
	}

	testCases := []testCase{
		{
			args:     []string{},
			expected: []string{},
		},
		{
			args: []string{
				"--bootstrap-server", "localhost:9092", "--list",
			},
			expected: []string{
				"--bootstrap-server", "localhost:9092", "--list",
			},
		},
		{
			// A single value stays untouched.
			args: []string{
				"--admin-config", "foo=bar", "--list",
			},
			expected: []string{
				"--admin-config", "foo=bar", "--list",
			},
		},
		{
			// Extra tokens get the flag name reinserted.
			args: []string{
				"--admin-config", "foo=bar", "baz=qux", "--list",
			},
			expected: []string{
				"--admin-config", "foo=bar",
				"--admin-config", "baz=qux",
				"--list",
			},
		},
		{
			// The group ends at the next flag.
			args: []string{
				"--topic-props", "cleanup.policy=compact", "retention.ms=100",
				"--topic", "topic-a",
			},
			expected: []string{
				"--topic-props", "cleanup.policy=compact",
				"--topic-props", "retention.ms=100",
				"--topic", "topic-a",
			},
		},
		{
			// --flag=value form; following tokens still join the group.
			args: []string{
				"--admin-config=foo=bar", "baz=qux",
			},
			expected: []string{
				"--admin-config=foo=bar",
				"--admin-config", "baz=qux",
			},
		},
		{
			// Separate groups don't bleed into each other.
			args: []string{
				"--admin-config", "a=1", "b=2",
				"--topic-props", "x=y",
				"--create",
			},
			expected: []string{
				"--admin-config", "a=1",
				"--admin-config", "b=2",
				"--topic-props", "x=y",
				"--create",
			},
		},
	}

	for _, testCase := range testCases {
		assert.Equal(
			t,
			testCase.expected,
			expandMultiTokenFlags(testCase.args),
			"args %+v",
			testCase.args,
		)
	}
}
