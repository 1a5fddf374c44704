// Package config builds the runtime configuration from environment
// variables.
package config

import (
	"os"
	"strings"
)

const (
	defaultLogLevel   = "info"
	defaultInput      = "-"
	defaultKafkaTopic = "floe.trades"
)

// Config keeps the runtime configuration for the engine process.
type Config struct {
	LogLevel string
	Input    string
	Kafka    KafkaConfig
}

// KafkaConfig holds trade reporting settings. Reporting is off when
// no brokers are configured.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

// Load builds Config from environment variables. Input "-" means
// stdin.
func Load() *Config {
	return &Config{
		LogLevel: getString("FLOE_LOG_LEVEL", defaultLogLevel),
		Input:    getString("FLOE_INPUT", defaultInput),
		Kafka: KafkaConfig{
			Brokers: getList("FLOE_KAFKA_BROKERS"),
			Topic:   getString("FLOE_KAFKA_TOPIC", defaultKafkaTopic),
		},
	}
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getList(key string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
