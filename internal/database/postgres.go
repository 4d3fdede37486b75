package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL and initializes the schema.
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Set connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize tables
	if err = InitPostgresTables(); err != nil {
		return err
	}

	return nil
}

// InitPostgresTables creates all necessary tables if they don't exist.
// Safe to invoke on every process start.
func InitPostgresTables() error {
	queries := []string{
		// Users table
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			user_type VARCHAR(50) NOT NULL DEFAULT 'parent',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			last_login TIMESTAMP
		)`,

		// Case details table (exactly one row per user, created at signup)
		`CREATE TABLE IF NOT EXISTS case_details (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			children_names TEXT NOT NULL DEFAULT '',
			children_ages TEXT NOT NULL DEFAULT '',
			case_number TEXT NOT NULL DEFAULT '',
			caseworker_name TEXT NOT NULL DEFAULT '',
			caseworker_contact TEXT NOT NULL DEFAULT '',
			court_date TEXT NOT NULL DEFAULT '',
			separation_date TEXT NOT NULL DEFAULT '',
			case_type TEXT NOT NULL DEFAULT '',
			UNIQUE(user_id)
		)`,

		// Documents table (immutable after upload)
		`CREATE TABLE IF NOT EXISTS documents (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			filename TEXT NOT NULL,
			file_type VARCHAR(255) NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL,
			upload_date TIMESTAMP NOT NULL DEFAULT NOW(),
			ai_analysis TEXT NOT NULL DEFAULT '',
			file_data BYTEA
		)`,

		// Violations table
		`CREATE TABLE IF NOT EXISTS violations (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			violation_type VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			date_occurred VARCHAR(50) NOT NULL DEFAULT '',
			legislation_reference TEXT NOT NULL DEFAULT '',
			evidence TEXT NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'open',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Compliance tasks table
		`CREATE TABLE IF NOT EXISTS compliance_tasks (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			task_name TEXT NOT NULL,
			category VARCHAR(100) NOT NULL,
			due_date VARCHAR(50) NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			completion_date VARCHAR(50),
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Appointments table
		`CREATE TABLE IF NOT EXISTS appointments (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			appointment_type VARCHAR(100) NOT NULL,
			date_time VARCHAR(50) NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'scheduled',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Reflections/journal table
		`CREATE TABLE IF NOT EXISTS reflections (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			reflection_text TEXT NOT NULL,
			date VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Chat history table (append-only conversation transcript)
		`CREATE TABLE IF NOT EXISTS chat_history (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			role VARCHAR(20) NOT NULL,
			message TEXT NOT NULL,
			timestamp TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Create indexes for better performance
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		`CREATE INDEX IF NOT EXISTS idx_case_details_user_id ON case_details(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_user_id ON documents(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_upload_date ON documents(upload_date)`,
		`CREATE INDEX IF NOT EXISTS idx_violations_user_id ON violations(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_violations_status ON violations(status)`,
		`CREATE INDEX IF NOT EXISTS idx_violations_created_at ON violations(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_compliance_tasks_user_id ON compliance_tasks(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_compliance_tasks_status ON compliance_tasks(status)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_user_id ON appointments(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_reflections_user_id ON reflections(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reflections_created_at ON reflections(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_history_user_id ON chat_history(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_history_id ON chat_history(user_id, id)`,
	}

	for _, query := range queries {
		if _, err := PostgresDB.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
