// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Service signature and default tables

package catalog

import "regexp"

// Service identifies an external backing service a repository talks to
type Service string

// Known services, in catalog order
const (
	PostgreSQL    Service = "postgresql"
	MySQL         Service = "mysql"
	MongoDB       Service = "mongodb"
	Redis         Service = "redis"
	Elasticsearch Service = "elasticsearch"
	RabbitMQ      Service = "rabbitmq"
	Kafka         Service = "kafka"
	Memcached     Service = "memcached"
	MinIO         Service = "minio"
)

// Defaults holds the suggested container image and port for a service
type Defaults struct {
	Image string
	Port  int
}

// ServiceSignatures is the ordered signature list for one service
type ServiceSignatures struct {
	Service  Service
	Patterns []*regexp.Regexp
}

// rawServicePatterns is the source form of ServicePatterns
var rawServicePatterns = []struct {
	service  Service
	patterns []string
}{
	{PostgreSQL, []string{`postgres://`, `postgresql://`, `psycopg2`, `pg\.`, `PG::`, `POSTGRES`, `5432`, `"pg"`, `asyncpg`}},
	{MySQL, []string{`mysql://`, `mysql2`, `pymysql`, `MySql`, `MYSQL`, `3306`}},
	{MongoDB, []string{`mongodb://`, `mongoose`, `pymongo`, `MongoClient`, `MONGO`, `27017`}},
	{Redis, []string{`redis://`, `ioredis`, `redis\.`, `Redis\(`, `REDIS`, `6379`}},
	{Elasticsearch, []string{`elasticsearch`, `@elastic`, `ELASTICSEARCH`, `9200`}},
	{RabbitMQ, []string{`amqp://`, `amqplib`, `pika`, `RabbitMQ`, `RABBITMQ`, `5672`}},
	{Kafka, []string{`kafka`, `kafkajs`, `kafka-python`, `KAFKA`, `9092`}},
	{Memcached, []string{`memcached`, `pylibmc`, `MEMCACHED`, `11211`}},
	{MinIO, []string{`minio`, `MINIO`, `9000`}},
}

// ServicePatterns maps every service to its signatures, in catalog order.
// All patterns are compiled case-insensitively.
var ServicePatterns = compileServicePatterns()

// ServiceDefaults maps every service to its suggested image and port
var ServiceDefaults = map[Service]Defaults{
	PostgreSQL:    {Image: "postgres:16-alpine", Port: 5432},
	MySQL:         {Image: "mysql:8", Port: 3306},
	MongoDB:       {Image: "mongo:7", Port: 27017},
	Redis:         {Image: "redis:7-alpine", Port: 6379},
	Elasticsearch: {Image: "elasticsearch:8.11.0", Port: 9200},
	RabbitMQ:      {Image: "rabbitmq:3-management-alpine", Port: 5672},
	Kafka:         {Image: "confluentinc/cp-kafka:7.5.0", Port: 9092},
	Memcached:     {Image: "memcached:1.6-alpine", Port: 11211},
	MinIO:         {Image: "minio/minio:latest", Port: 9000},
}

func compileServicePatterns() []ServiceSignatures {
	out := make([]ServiceSignatures, 0, len(rawServicePatterns))
	for _, raw := range rawServicePatterns {
		sig := ServiceSignatures{Service: raw.service}
		for _, p := range raw.patterns {
			sig.Patterns = append(sig.Patterns, regexp.MustCompile("(?i)"+p))
		}
		out = append(out, sig)
	}
	return out
}

// Lookup returns the service with the given identifier
func Lookup(name string) (Service, bool) {
	for _, sig := range ServicePatterns {
		if string(sig.Service) == name {
			return sig.Service, true
		}
	}
	return "", false
}

// DefaultsFor returns the suggested image and port for a service
func DefaultsFor(s Service) (Defaults, bool) {
	d, ok := ServiceDefaults[s]
	return d, ok
}

// Services returns all known services in catalog order
func Services() []Service {
	out := make([]Service, 0, len(ServicePatterns))
	for _, sig := range ServicePatterns {
		out = append(out, sig.Service)
	}
	return out
}
