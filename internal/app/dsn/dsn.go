package dsn

import (
	"fmt"
	"os"
)

// FromEnv builds a postgres DSN from DB_HOST, DB_PORT, DB_USER, DB_PASS
// and DB_NAME.
func FromEnv() string {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	pass := os.Getenv("DB_PASS")
	dbname := getenv("DB_NAME", "starfleet")
	sslmode := getenv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, dbname, sslmode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
