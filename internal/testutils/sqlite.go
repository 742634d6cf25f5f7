package testutils

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// roadmapDDL creates the schema by hand for SQLite compatibility: the
// Postgres models carry gen_random_uuid() defaults that SQLite cannot
// parse, and BeforeCreate hooks supply the IDs anyway.
var roadmapDDL = []string{
	`CREATE TABLE organizations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		name TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		domain TEXT NOT NULL,
		description TEXT,
		metadata TEXT
	)`,
	`CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		organization_id TEXT NOT NULL,
		name TEXT NOT NULL,
		display_name TEXT NOT NULL,
		description TEXT,
		client_name TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		metadata TEXT
	)`,
	`CREATE TABLE project_members (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		organization_id TEXT NOT NULL,
		project_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE phases (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		name TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		description TEXT,
		order_index INTEGER NOT NULL UNIQUE,
		color TEXT
	)`,
	`CREATE TABLE stage_templates (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		organization_id TEXT,
		phase_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		duration_days INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE task_blueprints (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		stage_template_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		duration_days INTEGER NOT NULL DEFAULT 1,
		estimated_hours REAL NOT NULL DEFAULT 0,
		required_capability TEXT,
		tags TEXT,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE project_phase_statuses (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		organization_id TEXT NOT NULL,
		project_id TEXT NOT NULL,
		phase_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'locked',
		order_index INTEGER NOT NULL,
		started_at DATETIME,
		completed_at DATETIME,
		UNIQUE (project_id, phase_id)
	)`,
	`CREATE TABLE project_stages (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		organization_id TEXT NOT NULL,
		project_id TEXT NOT NULL,
		phase_id TEXT NOT NULL,
		template_stage_id TEXT,
		name TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'locked',
		order_index INTEGER NOT NULL,
		duration_days INTEGER NOT NULL DEFAULT 0,
		started_at DATETIME,
		completed_at DATETIME,
		UNIQUE (project_id, phase_id, order_index)
	)`,
	`CREATE TABLE tasks (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		organization_id TEXT NOT NULL,
		project_id TEXT NOT NULL,
		project_stage_id TEXT,
		title TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'to_do',
		duration_days INTEGER NOT NULL DEFAULT 1,
		estimated_hours REAL NOT NULL DEFAULT 0,
		required_capability TEXT,
		assignee_id TEXT,
		auto_assigned INTEGER NOT NULL DEFAULT 0,
		deadline DATETIME,
		tags TEXT
	)`,
}

// NewSQLiteTestDB creates an in-memory SQLite database with the roadmap
// schema. Each call returns an isolated database.
func NewSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A second pooled connection would see an empty in-memory database
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	for _, ddl := range roadmapDDL {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}

	return db
}
