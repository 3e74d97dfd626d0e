// handlers/handlers_test.go - shared fixtures for endpoint tests
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"footballhub/middleware"
	"footballhub/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret-test-secret-test-secret!"

// newTestApp builds the API surface against a throwaway in-memory database.
// The route table mirrors the server's, minus the rate limiters so tests
// never trip them.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

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

	if err := db.AutoMigrate(&models.Member{}, &models.Team{}, &models.Player{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	Init(db, zap.NewNop().Sugar())

	app := fiber.New()
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", Login)
	auth.Post("/register", Register)
	auth.Post("/logout", Logout)
	auth.Get("/profile", middleware.AuthMiddleware, GetProfile)
	auth.Post("/profile", middleware.AuthMiddleware, UpdateProfile)
	auth.Post("/change-password", middleware.AuthMiddleware, ChangePassword)

	api.Get("/teams", GetTeams)
	api.Get("/teams/:id", GetTeam)
	api.Post("/teams", middleware.AdminMiddleware, CreateTeam)
	api.Put("/teams/:id", middleware.AdminMiddleware, UpdateTeam)
	api.Delete("/teams/:id", middleware.AdminMiddleware, DeleteTeam)

	api.Get("/players", GetPlayers)
	api.Get("/players/:id", GetPlayer)
	api.Post("/players", middleware.AdminMiddleware, CreatePlayer)
	api.Put("/players/:id", middleware.AdminMiddleware, UpdatePlayer)
	api.Delete("/players/:id", middleware.AdminMiddleware, DeletePlayer)

	api.Post("/players/:id/comments", middleware.AuthMiddleware, AddComment)
	api.Put("/players/:id/comments/:cid/edit", middleware.AuthMiddleware, EditComment)
	api.Delete("/players/:id/comments/:cid/delete", middleware.AuthMiddleware, DeleteComment)

	api.Get("/accounts", middleware.AdminMiddleware, GetAccounts)

	return app, db
}

// newMember registers an account through the service and optionally
// promotes it; returns the member and a session token for it.
func newMember(t *testing.T, db *gorm.DB, membername string, admin bool) (models.Member, string) {
	t.Helper()

	member, err := memberService.Register(membername, "secret123", "Member "+membername, 1990)
	if err != nil {
		t.Fatalf("register %q: %v", membername, err)
	}
	if admin {
		if err := db.Model(member).Update("is_admin", true).Error; err != nil {
			t.Fatalf("promote %q: %v", membername, err)
		}
		member.IsAdmin = true
	}

	token, err := generateToken(member)
	if err != nil {
		t.Fatalf("token for %q: %v", membername, err)
	}
	return *member, token
}

// request runs one call through the app and decodes the JSON envelope.
func request(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return resp, decoded
}

func seedTeamAndPlayer(t *testing.T, db *gorm.DB) (models.Team, models.Player) {
	t.Helper()

	team := models.Team{TeamName: "Testers FC"}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	player := models.Player{
		PlayerName:  "Test Player",
		Image:       "/img/test.png",
		Cost:        10,
		Information: "A player for tests.",
		TeamID:      &team.ID,
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("seed player: %v", err)
	}
	return team, player
}
