package admin

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Client is an interface for the administrative operations that kafka-topics
// performs against a cluster.
type Client interface {
	// GetTopicNames gets the names of each topic in the cluster, in the
	// order that the cluster returns them.
	GetTopicNames(ctx context.Context) ([]string, error)

	// CreateTopic creates a topic in the cluster.
	CreateTopic(ctx context.Context, config kafka.TopicConfig) error

	// DeleteTopic deletes a single topic in the cluster.
	DeleteTopic(ctx context.Context, name string) error

	// Close closes the client.
	Close() error
}
