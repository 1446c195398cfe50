// Command dbtool bootstraps the database: it verifies connectivity, creates
// the schema and optionally seeds the first admin account so the API has
// someone who can create the rest.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id uuid PRIMARY KEY,
	name text NOT NULL,
	email text NOT NULL UNIQUE,
	password text NOT NULL,
	role text NOT NULL,
	created_at timestamptz,
	updated_at timestamptz
);

CREATE TABLE IF NOT EXISTS customers (
	id uuid PRIMARY KEY,
	name text NOT NULL,
	address text NOT NULL,
	phone text,
	created_at timestamptz,
	updated_at timestamptz
);

CREATE TABLE IF NOT EXISTS parcels (
	id uuid PRIMARY KEY,
	tracking_number text NOT NULL UNIQUE,
	sender_name text NOT NULL,
	sender_address text NOT NULL,
	recipient_name text NOT NULL,
	recipient_address text NOT NULL,
	recipient_phone text,
	status text NOT NULL DEFAULT 'pending',
	weight numeric(8,2),
	dimensions text,
	notes text,
	courier_id uuid REFERENCES users(id) ON DELETE SET NULL,
	customer_id uuid REFERENCES customers(id) ON DELETE SET NULL,
	created_at timestamptz,
	updated_at timestamptz
);

CREATE INDEX IF NOT EXISTS idx_parcels_status ON parcels(status);
CREATE INDEX IF NOT EXISTS idx_parcels_courier_id ON parcels(courier_id);
CREATE INDEX IF NOT EXISTS idx_parcels_customer_id ON parcels(customer_id);

CREATE TABLE IF NOT EXISTS parcel_histories (
	id uuid PRIMARY KEY,
	parcel_id uuid NOT NULL REFERENCES parcels(id) ON DELETE CASCADE,
	old_status text,
	new_status text NOT NULL,
	user_id uuid REFERENCES users(id) ON DELETE SET NULL,
	notes text,
	created_at timestamptz
);

CREATE INDEX IF NOT EXISTS idx_parcel_histories_parcel_id ON parcel_histories(parcel_id);
`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_SSLMODE"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	log.Println("Initializing database schema...")
	if _, err = db.Exec(schema); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if err = seedAdmin(db); err != nil {
		log.Fatalf("admin seeding failed: %v", err)
	}
}

// seedAdmin creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when the variables are unset or the account
// already exists.
func seedAdmin(db *sql.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed.")
		return nil
	}

	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		log.Println("Admin account already present, nothing to seed.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO users (id, name, email, password, role, created_at, updated_at)
		VALUES ($1, 'Administrator', $2, $3, 'admin', now(), now())
	`, uuid.New(), email, string(hash))
	if err != nil {
		return err
	}

	log.Printf("Seeded admin account %s.", email)
	return nil
}
