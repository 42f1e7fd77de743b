package db

import "embed"

// Migrations содержит SQL-миграции схемы каталога для PostgreSQL.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir — каталог миграций внутри Migrations.
const MigrationsDir = "migrations"
