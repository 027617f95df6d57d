package cmd

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	FulfillmentBaseURL       string
	RedisHost                string
	TaxCacheTTLSeconds       int
	KafkaHost                string
	KafkaOrderConfirmedTopic string
}
