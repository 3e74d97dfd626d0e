// services/services_test.go - shared test fixtures
package services

import (
	"testing"

	"footballhub/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database with the full schema.
// A single connection keeps every query on the same :memory: instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Member{},
		&models.Team{},
		&models.Player{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// seedTeam inserts a team directly, bypassing service validation.
func seedTeam(t *testing.T, db *gorm.DB, name string) models.Team {
	t.Helper()
	team := models.Team{TeamName: name}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("seed team %q: %v", name, err)
	}
	return team
}

// seedPlayer inserts a player assigned to the given team.
func seedPlayer(t *testing.T, db *gorm.DB, name string, teamID uint) models.Player {
	t.Helper()
	player := models.Player{
		PlayerName:  name,
		Image:       "/img/" + name + ".png",
		Cost:        100,
		Information: "test player",
		TeamID:      &teamID,
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("seed player %q: %v", name, err)
	}
	return player
}

// seedMember inserts a member with a known bcrypt-free password hash; tests
// that authenticate go through the service instead.
func seedMember(t *testing.T, db *gorm.DB, membername string, isAdmin bool) models.Member {
	t.Helper()
	member := models.Member{
		Membername: membername,
		Password:   "not-a-real-hash",
		Name:       "Member " + membername,
		YOB:        1990,
		IsAdmin:    isAdmin,
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("seed member %q: %v", membername, err)
	}
	return member
}
