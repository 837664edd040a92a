package main

import (
	"github.com/kafkatools/kafka-topics/cmd/kafka-topics/subcmd"
)

var (
	// Version is the version of this binary. Overridden as part of the build process.
	Version = "dev"
)

func main() {
	subcmd.Execute(Version)
}
