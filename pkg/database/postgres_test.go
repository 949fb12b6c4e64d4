package database

import (
	"testing"

	"itinera/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "itinera",
		DBPassword: "secret",
		DBName:     "itinera",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=itinera password=secret dbname=itinera sslmode=disable", DSN(cfg))
}
