package config

// KafkaConfig configures the optional asynchronous validation pipeline:
// an input topic of domain names, an output topic of validated
// TrustChain JSON, and an error topic for failed validations. Mirrors
// the shape of the teacher's Kafka() configuration surface.
type KafkaConfig struct {
	Brokers        []string `mapstructure:"brokers" default:"[\"localhost:9092\"]"`
	GroupID        string   `mapstructure:"groupID" default:"dnssec-chain-validator"`
	TopicsConsumer []string `mapstructure:"topicsConsumer" default:"[\"dnssec.validate.requests\"]"`
	TopicsProducer []string `mapstructure:"topicsProducer" default:"[\"dnssec.validate.results\"]"`
	TopicsError    []string `mapstructure:"topicsError" default:"[\"dnssec.validate.errors\"]"`
	MaxRetry       int      `mapstructure:"maxRetry" default:"5"`
}
