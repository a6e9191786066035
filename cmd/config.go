package cmd

import "time"

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderCreatedTopic string
	RedisHost              string
	RedisPassword          string
	JWTSecret              string
	StaleOrderMaxAge       time.Duration
	RestaurantCacheTTL     time.Duration
}
