package version

import "runtime/debug"

// Version is the current kafka-topics version.
const Version = "1.2.0"

const kafkaGoModule = "github.com/segmentio/kafka-go"

// KafkaGoVersion returns the version of the kafka-go module that this binary
// was built against, as recorded in the build info.
func KafkaGoVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, dep := range info.Deps {
		if dep.Path == kafkaGoModule {
			return dep.Version
		}
	}

	return "unknown"
}
