package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenMySQL connects to MySQL and verifies the connection.
func OpenMySQL(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// mysqlSchema creates the tables used by the MySQL repositories.  The seq
// columns preserve insertion order for catalog listings.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            VARCHAR(20)  NOT NULL PRIMARY KEY,
		email         VARCHAR(255) NOT NULL,
		name          VARCHAR(255) NOT NULL,
		picture       VARCHAR(1024) NULL,
		google_id     VARCHAR(255) NULL,
		password_hash VARCHAR(255) NULL,
		role          ENUM('user','admin') NOT NULL DEFAULT 'user',
		created_at    DATETIME NOT NULL,
		UNIQUE KEY uq_accounts_email (email),
		UNIQUE KEY uq_accounts_google_id (google_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id           VARCHAR(20)  NOT NULL PRIMARY KEY,
		event_id     VARCHAR(20)  NULL,
		client_name  TEXT         NOT NULL,
		client_email TEXT         NOT NULL,
		client_phone TEXT         NOT NULL,
		event_date   TEXT         NOT NULL,
		guest_count  INT UNSIGNED NOT NULL,
		package      TEXT         NOT NULL,
		budget       DOUBLE       NOT NULL,
		message      TEXT         NOT NULL,
		status       ENUM('pending','confirmed','cancelled') NOT NULL DEFAULT 'pending',
		created_at   DATETIME NOT NULL,
		KEY idx_bookings_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS events (
		seq               BIGINT UNSIGNED NOT NULL AUTO_INCREMENT UNIQUE,
		id                VARCHAR(20)  NOT NULL PRIMARY KEY,
		title             VARCHAR(255) NOT NULL,
		category          VARCHAR(64)  NOT NULL,
		description       TEXT         NOT NULL,
		short_description VARCHAR(512) NOT NULL,
		image_url         VARCHAR(1024) NOT NULL,
		gallery           JSON NOT NULL,
		price_basic       DOUBLE NOT NULL,
		price_premium     DOUBLE NOT NULL,
		price_luxury      DOUBLE NOT NULL,
		features          JSON NOT NULL,
		timeline          JSON NOT NULL,
		is_featured       TINYINT(1) NOT NULL DEFAULT 0,
		KEY idx_events_category (category)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		seq          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT UNIQUE,
		id           VARCHAR(20)  NOT NULL PRIMARY KEY,
		client_name  VARCHAR(255) NOT NULL,
		client_image VARCHAR(1024) NOT NULL,
		rating       TINYINT UNSIGNED NOT NULL,
		review       TEXT NOT NULL,
		event_type   VARCHAR(64) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS services (
		seq         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT UNIQUE,
		id          VARCHAR(20)  NOT NULL PRIMARY KEY,
		title       VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		icon        VARCHAR(32) NOT NULL,
		features    JSON NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS team (
		seq      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT UNIQUE,
		id       VARCHAR(20)  NOT NULL PRIMARY KEY,
		name     VARCHAR(255) NOT NULL,
		position VARCHAR(255) NOT NULL,
		image    VARCHAR(1024) NOT NULL,
		bio      TEXT NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// MigrateMySQL applies the schema.  Every statement is idempotent.
func MigrateMySQL(ctx context.Context, db *sql.DB) error {
	for _, stmt := range mysqlSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
