package main

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"time"

	"movie-portal/pkg/config"
	"movie-portal/pkg/database"
	"movie-portal/pkg/logger"
	api "movie-portal/service-api"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

var (
	embeddedDB   *embeddedpostgres.EmbeddedPostgres
	dbConnection *sql.DB
	dbPort       uint32
)

// findAvailablePort finds an available port starting from the given port
func findAvailablePort(startPort uint32) uint32 {
	for port := startPort; port < startPort+100; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			ln.Close()
			return port
		}
	}
	log.Fatalf("Could not find an available port starting from %d", startPort)
	return 0
}

func startEmbeddedDB(ctx context.Context) {
	logger.Info("Starting embedded PostgreSQL...")

	dbPort = findAvailablePort(15432)
	logger.Infof("Using port %d for PostgreSQL", dbPort)

	// create data directory in user home
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get user home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".movie-portal", "data")
	runtimeDir := filepath.Join(homeDir, ".movie-portal", "runtime")
	binariesDir := filepath.Join(homeDir, ".movie-portal", "binaries")

	// create directories
	for _, dir := range []string{dataDir, runtimeDir, binariesDir} {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	// clean up any existing data to avoid conflicts
	err = os.RemoveAll(dataDir)
	if err != nil {
		logger.Warnf("failed to clean up existing data directory: %v", err)
	}
	err = os.MkdirAll(dataDir, 0755)
	if err != nil {
		log.Fatalf("Failed to recreate data directory: %v", err)
	}

	// create embedded PostgreSQL instance with dynamic port
	embeddedDB = embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Username("postgres").
		Password("postgres").
		Database("movieportal").
		Port(dbPort).
		RuntimePath(runtimeDir).
		DataPath(dataDir).
		BinariesPath(binariesDir))

	// start the database
	err = embeddedDB.Start()
	if err != nil {
		log.Fatalf("Failed to start embedded PostgreSQL: %v", err)
	}

	logger.Info("Waiting for embedded PostgreSQL to be ready...")

	// wait for database to be ready with retries
	for i := 0; i < 30; i++ { // try for 30 seconds
		time.Sleep(1 * time.Second)

		connectionString := fmt.Sprintf("host=localhost port=%d user=postgres password=postgres dbname=movieportal sslmode=disable", dbPort)
		testDB, err := sql.Open("postgres", connectionString)
		if err == nil {
			err := testDB.Ping()
			if err == nil {
				testDB.Close()
				logger.Info("Embedded PostgreSQL is ready")
				break
			}
			testDB.Close()
		}

		if i == 29 {
			log.Fatalf("Embedded PostgreSQL failed to start after 30 seconds")
		}

		logger.Infof("Waiting for PostgreSQL... (%d/30)", i+1)
	}

	// create config for database connection
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            fmt.Sprintf("%d", dbPort),
			Username:        "postgres",
			Password:        "postgres",
			Name:            "movieportal",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 5 * time.Minute,
		},
	}

	dbConnection, err = database.NewPgDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to embedded PostgreSQL: %v", err)
	}

	err = dbConnection.Ping()
	if err != nil {
		log.Fatalf("Failed to ping embedded PostgreSQL: %v", err)
	}

	// initialize schema using the embedded schema file
	err = initializeSchema()
	if err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	// seed the default admin account
	err = seedAdminUser()
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	logger.Infof("Embedded PostgreSQL started successfully on port %d", dbPort)

	<-ctx.Done()

	logger.Info("Shutting down embedded PostgreSQL...")
	if dbConnection != nil {
		dbConnection.Close()
	}
	if embeddedDB != nil {
		embeddedDB.Stop()
	}
}

func initializeSchema() error {
	logger.Info("Initializing database schema...")

	if len(schemaSQL) == 0 {
		return fmt.Errorf("schema.sql is empty or not embedded properly")
	}

	_, err := dbConnection.Exec(schemaSQL)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	logger.Info("Database schema initialized successfully")
	return nil
}

// seedAdminUser creates the bootstrap admin account when it does not exist.
func seedAdminUser() error {
	err := api.SeedAdmin(dbConnection, "admin@localhost", "change-me-immediately")
	if err != nil {
		return err
	}

	logger.Info("Seeded default admin account: admin@localhost")
	return nil
}

// GetDBConnection returns the database connection for use by services
func GetDBConnection() *sql.DB {
	return dbConnection
}

// GetDBPort returns the port of the embedded PostgreSQL instance
func GetDBPort() uint32 {
	return dbPort
}
