package cmd

import "fmt"

// Config carries all runtime settings for the dispatch service.
// Values come from the environment; see cmd/app for the variable names.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DirectoryServiceURL    string
	DriverOrdersServiceURL string
	HTTPClientTimeoutSec   int

	KafkaBrokers       []string
	KafkaConsumerGroup string
	KafkaOrderTopic    string

	// RedisAddr is optional. When empty the driver directory is queried
	// directly without a cache in front of it.
	RedisAddr        string
	RedisCacheTTLSec int

	CapacityThreshold int
	SweepIntervalSec  int
	SweepWorkers      int
}

// PostgresDSN builds the connection string for the delivery store.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
