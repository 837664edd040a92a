package admin

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/aws_msk_iam_v2"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
	log "github.com/sirupsen/logrus"
)

// SASLMechanism is the name of a SASL mechanism that will be used for client
// authentication.
type SASLMechanism string

const (
	SASLMechanismAWSMSKIAM   SASLMechanism = "aws-msk-iam"
	SASLMechanismPlain       SASLMechanism = "plain"
	SASLMechanismScramSHA256 SASLMechanism = "scram-sha-256"
	SASLMechanismScramSHA512 SASLMechanism = "scram-sha-512"
)

// Security protocols understood via the security.protocol client property.
// The names follow librdkafka spelling since that is the vocabulary that
// admin-config files and flags are written in.
const (
	protocolPlaintext     = "plaintext"
	protocolSSL           = "ssl"
	protocolSASLPlaintext = "sasl_plaintext"
	protocolSASLSSL       = "sasl_ssl"
)

const defaultTimeout = 10 * time.Second

// Client properties that the connector knows how to map onto the kafka-go
// dialer and transport. Anything else is logged and skipped.
var recognizedProps = map[string]struct{}{
	"client.id":                             {},
	"request.timeout.ms":                    {},
	"security.protocol":                     {},
	"sasl.mechanism":                        {},
	"sasl.username":                         {},
	"sasl.password":                         {},
	"ssl.ca.location":                       {},
	"ssl.certificate.location":              {},
	"ssl.key.location":                      {},
	"ssl.endpoint.identification.algorithm": {},
	"ssl.server.name":                       {},
}

// ConnectorConfig contains the configuration used to construct a connector.
type ConnectorConfig struct {
	BrokerAddr string
	Props      Properties
}

// Connector is a wrapper around the low-level, kafka-go dialer and client.
type Connector struct {
	Config      ConnectorConfig
	Dialer      *kafka.Dialer
	KafkaClient *kafka.Client
}

// NewConnector constructs a new Connector instance given the argument config.
// The bootstrap address is mandatory; everything else is derived from the
// client properties.
func NewConnector(ctx context.Context, config ConnectorConfig) (*Connector, error) {
	connector := &Connector{
		Config: config,
	}

	for key := range config.Props {
		if _, ok := recognizedProps[key]; !ok {
			log.Debugf("Ignoring unrecognized client property %s", key)
		}
	}

	useTLS, useSASL, err := securitySettings(config.Props)
	if err != nil {
		return nil, err
	}

	timeout := defaultTimeout
	if timeoutStr := config.Props.Get("request.timeout.ms"); timeoutStr != "" {
		timeoutMs, err := strconv.Atoi(timeoutStr)
		if err != nil || timeoutMs <= 0 {
			return nil, fmt.Errorf(
				"Invalid request.timeout.ms value: %s",
				timeoutStr,
			)
		}
		timeout = time.Duration(timeoutMs) * time.Millisecond
	}

	var mechanismClient sasl.Mechanism
	var tlsConfig *tls.Config

	if useSASL {
		mechanismClient, err = saslMechanismClient(ctx, config.Props)
		if err != nil {
			return nil, err
		}
	}

	if useTLS {
		tlsConfig, err = tlsSettings(config.Props)
		if err != nil {
			return nil, err
		}
	}

	connector.Dialer = &kafka.Dialer{
		SASLMechanism: mechanismClient,
		Timeout:       timeout,
		TLS:           tlsConfig,
	}

	log.Debugf(
		"Connecting to cluster on address %s with TLS enabled=%v, SASL enabled=%v",
		config.BrokerAddr,
		useTLS,
		useSASL,
	)
	connector.KafkaClient = &kafka.Client{
		Addr:    kafka.TCP(config.BrokerAddr),
		Timeout: timeout,
		Transport: &kafka.Transport{
			ClientID: config.Props.Get("client.id"),
			Dial:     connector.Dialer.DialFunc,
			SASL:     mechanismClient,
			TLS:      tlsConfig,
		},
	}

	return connector, nil
}

func securitySettings(props Properties) (useTLS bool, useSASL bool, err error) {
	protocol := strings.ToLower(props.Get("security.protocol"))

	switch protocol {
	case "", protocolPlaintext:
	case protocolSSL:
		useTLS = true
	case protocolSASLPlaintext:
		useSASL = true
	case protocolSASLSSL:
		useTLS = true
		useSASL = true
	default:
		return false, false, fmt.Errorf(
			"Unrecognized security.protocol '%s'; choices are plaintext, ssl, sasl_plaintext, and sasl_ssl",
			protocol,
		)
	}

	// Supplying credential or cert material implies the corresponding
	// feature even if the protocol was left at its default.
	if props.Get("sasl.mechanism") != "" {
		useSASL = true
	}
	if props.Get("ssl.certificate.location") != "" ||
		props.Get("ssl.key.location") != "" ||
		props.Get("ssl.ca.location") != "" {
		useTLS = true
	}

	return useTLS, useSASL, nil
}

func saslMechanismClient(ctx context.Context, props Properties) (sasl.Mechanism, error) {
	mechanism := SASLMechanismPlain
	if name := props.Get("sasl.mechanism"); name != "" {
		var err error
		mechanism, err = SASLNameToMechanism(name)
		if err != nil {
			return nil, err
		}
	}

	switch mechanism {
	case SASLMechanismAWSMSKIAM:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		return aws_msk_iam_v2.NewMechanism(awsCfg), nil
	case SASLMechanismPlain:
		return plain.Mechanism{
			Username: props.Get("sasl.username"),
			Password: props.Get("sasl.password"),
		}, nil
	case SASLMechanismScramSHA256:
		return scram.Mechanism(
			scram.SHA256,
			props.Get("sasl.username"),
			props.Get("sasl.password"),
		)
	case SASLMechanismScramSHA512:
		return scram.Mechanism(
			scram.SHA512,
			props.Get("sasl.username"),
			props.Get("sasl.password"),
		)
	default:
		return nil, fmt.Errorf("Unrecognized SASL mechanism: %s", mechanism)
	}
}

func tlsSettings(props Properties) (*tls.Config, error) {
	var certs []tls.Certificate
	var caCertPool *x509.CertPool

	certPath := props.Get("ssl.certificate.location")
	keyPath := props.Get("ssl.key.location")

	if certPath != "" && keyPath != "" {
		log.Debugf("Loading key pair from %s and %s", certPath, keyPath)
		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	if caCertPath := props.Get("ssl.ca.location"); caCertPath != "" {
		log.Debugf("Adding CA certs from %s", caCertPath)
		caCertPool = x509.NewCertPool()
		caCertContents, err := os.ReadFile(caCertPath)
		if err != nil {
			return nil, err
		}
		if ok := caCertPool.AppendCertsFromPEM(caCertContents); !ok {
			return nil, fmt.Errorf(
				"Could not append CA certs from %s",
				caCertPath,
			)
		}
	}

	skipVerify := false
	if algorithm, ok := props["ssl.endpoint.identification.algorithm"]; ok {
		switch strings.ToLower(algorithm) {
		// An empty value disables hostname verification, matching the
		// librdkafka reading of this property.
		case "", "none":
			skipVerify = true
		case "https":
		default:
			return nil, fmt.Errorf(
				"Unrecognized ssl.endpoint.identification.algorithm '%s'; choices are https and none",
				algorithm,
			)
		}
	}

	return &tls.Config{
		Certificates:       certs,
		RootCAs:            caCertPool,
		InsecureSkipVerify: skipVerify,
		ServerName:         props.Get("ssl.server.name"),
	}, nil
}

// SASLNameToMechanism converts the argument SASL mechanism name string to a
// valid instance of the SASLMechanism enum.
func SASLNameToMechanism(name string) (SASLMechanism, error) {
	normalizedName := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	mechanism := SASLMechanism(normalizedName)

	switch mechanism {
	case SASLMechanismAWSMSKIAM,
		SASLMechanismPlain,
		SASLMechanismScramSHA256,
		SASLMechanismScramSHA512:
		return mechanism, nil
	default:
		return mechanism, fmt.Errorf(
			"SASL mechanism '%s' is not valid; choices are AWS-MSK-IAM, PLAIN, SCRAM-SHA-256, and SCRAM-SHA-512",
			mechanism,
		)
	}
}
