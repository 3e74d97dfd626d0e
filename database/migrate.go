// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"os"

	"footballhub/models"

	"golang.org/x/crypto/bcrypt"
)

// RunMigrations runs all database migrations.
func RunMigrations() {
	db := GetDB()

	if err := db.AutoMigrate(
		&models.Member{},
		&models.Team{},
		&models.Player{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes()
	seedAdmin()
}

func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_players_team ON players(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_players_name ON players(player_name)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_player_created ON comments(player_id, created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_author ON comments(author_id)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_name_lower ON teams(LOWER(team_name))")
}

// seedAdmin creates the initial admin account when ADMIN_MEMBERNAME and
// ADMIN_PASSWORD are set and no such member exists yet.
func seedAdmin() {
	membername := os.Getenv("ADMIN_MEMBERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if membername == "" || password == "" {
		return
	}

	db := GetDB()

	var existing models.Member
	if err := db.Where("membername = ?", membername).First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.Member{
		Membername: membername,
		Password:   string(hashed),
		Name:       "Administrator",
		YOB:        1990,
		IsAdmin:    true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin account: %v", err)
		return
	}
	log.Printf("Seeded admin account %q", membername)
}
