package admin

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// BrokerAdminClient is a Client implementation backed by the kafka-go broker
// APIs.
type BrokerAdminClient struct {
	config    BrokerAdminClientConfig
	connector *Connector
}

var _ Client = (*BrokerAdminClient)(nil)

// BrokerAdminClientConfig contains the configuration settings to construct a
// BrokerAdminClient instance.
type BrokerAdminClientConfig struct {
	ConnectorConfig
}

// NewBrokerAdminClient constructs a new BrokerAdminClient instance.
func NewBrokerAdminClient(
	ctx context.Context,
	config BrokerAdminClientConfig,
) (*BrokerAdminClient, error) {
	connector, err := NewConnector(ctx, config.ConnectorConfig)
	if err != nil {
		return nil, err
	}

	return &BrokerAdminClient{
		config:    config,
		connector: connector,
	}, nil
}

// GetTopicNames gets the names of each topic in the cluster.
func (c *BrokerAdminClient) GetTopicNames(ctx context.Context) ([]string, error) {
	resp, err := c.connector.KafkaClient.Metadata(ctx, &kafka.MetadataRequest{})
	if err != nil {
		return nil, err
	}

	topicNames := []string{}
	for _, topic := range resp.Topics {
		if topic.Error != nil {
			return nil, fmt.Errorf("topic %s: %v", topic.Name, topic.Error)
		}
		topicNames = append(topicNames, topic.Name)
	}
	return topicNames, nil
}

// CreateTopic creates a topic in the cluster.
func (c *BrokerAdminClient) CreateTopic(
	ctx context.Context,
	config kafka.TopicConfig,
) error {
	resp, err := c.connector.KafkaClient.CreateTopics(
		ctx,
		&kafka.CreateTopicsRequest{
			Topics: []kafka.TopicConfig{config},
		},
	)
	if err != nil {
		return err
	}

	// The response carries a per-topic error even when the request itself
	// succeeds, e.g. if the topic already exists.
	for topic, topicErr := range resp.Errors {
		if topicErr != nil {
			return fmt.Errorf("topic %s: %v", topic, topicErr)
		}
	}
	return nil
}

// DeleteTopic deletes a single topic in the cluster.
func (c *BrokerAdminClient) DeleteTopic(ctx context.Context, name string) error {
	resp, err := c.connector.KafkaClient.DeleteTopics(
		ctx,
		&kafka.DeleteTopicsRequest{
			Topics: []string{name},
		},
	)
	if err != nil {
		return err
	}

	for topic, topicErr := range resp.Errors {
		if topicErr != nil {
			return fmt.Errorf("topic %s: %v", topic, topicErr)
		}
	}
	return nil
}

// Close closes the client.
func (c *BrokerAdminClient) Close() error {
	return nil
}
