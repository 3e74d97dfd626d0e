// client/api.go - REST API client
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"footballhub/models"
)

// ErrNotAuthenticated marks 401/403 responses so callers can prompt for a
// login instead of printing a raw failure.
var ErrNotAuthenticated = errors.New("not authenticated: please login first")

// API talks to the server. Requests carry the stored session token as a
// Bearer header and time out after 30 seconds.
type API struct {
	BaseURL string
	Session *Session
	http    *http.Client
}

func NewAPI(baseURL string, session *Session) *API {
	return &API{
		BaseURL: baseURL,
		Session: session,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope is the {success, message?, data?} response shape. Login
// additionally carries the member at the top level.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	User    *models.Member  `json:"user"`
}

func (a *API) do(method, path string, body interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := a.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrNotAuthenticated
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("unexpected response: %w", err)
	}
	if !env.Success {
		if env.Message == "" {
			env.Message = "request failed"
		}
		return &env, errors.New(env.Message)
	}
	return &env, nil
}

// sessionToken pulls the session cookie out of a login response.
func sessionToken(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			return c.Value
		}
	}
	return ""
}

// Login authenticates and persists the snapshot plus session token.
func (a *API) Login(membername, password string) (*models.Member, error) {
	raw, err := json.Marshal(map[string]string{
		"membername": membername,
		"password":   password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, a.BaseURL+"/auth/login", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("unexpected response: %w", err)
	}
	if !env.Success || env.User == nil {
		if env.Message == "" {
			env.Message = "login failed"
		}
		return nil, errors.New(env.Message)
	}

	if err := a.Session.Set(*env.User, sessionToken(resp)); err != nil {
		return nil, err
	}
	return env.User, nil
}

// Logout ends the session server-side and clears the local snapshot. The
// snapshot is cleared even when the request fails.
func (a *API) Logout() error {
	_, reqErr := a.do(http.MethodPost, "/auth/logout", nil)
	if clearErr := a.Session.Clear(); clearErr != nil {
		return clearErr
	}
	if reqErr != nil && !errors.Is(reqErr, ErrNotAuthenticated) {
		return reqErr
	}
	return nil
}

// Register creates an account. The server does not log the member in.
func (a *API) Register(membername, password, name string, yob int) (string, error) {
	env, err := a.do(http.MethodPost, "/auth/register", map[string]interface{}{
		"membername": membername,
		"password":   password,
		"name":       name,
		"YOB":        yob,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ProfileData is the GET /auth/profile payload.
type ProfileData struct {
	User     models.Member             `json:"user"`
	Comments []models.MemberCommentRow `json:"comments"`
}

// Profile fetches the session member and their comments, refreshing the
// local snapshot.
func (a *API) Profile() (*ProfileData, error) {
	env, err := a.do(http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var data ProfileData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}

	if token := a.Session.Token(); token != "" {
		if err := a.Session.Set(data.User, token); err != nil {
			return nil, err
		}
	}
	return &data, nil
}

// UpdateProfile updates name/year of birth and patches the snapshot in
// place so other commands see the new name without a refetch.
func (a *API) UpdateProfile(name string, yob int) (string, error) {
	env, err := a.do(http.MethodPost, "/auth/profile", map[string]interface{}{
		"name": name,
		"YOB":  yob,
	})
	if err != nil {
		return "", err
	}
	if err := a.Session.Patch(name, yob); err != nil {
		return "", err
	}
	return env.Message, nil
}

// ChangePassword calls the change-password endpoint. The new/confirm match
// check belongs to the caller; the server re-verifies the current password.
func (a *API) ChangePassword(currentPassword, newPassword string) (string, error) {
	env, err := a.do(http.MethodPost, "/auth/change-password", map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Players lists players, optionally narrowed by a search string and team id.
func (a *API) Players(search string, teamID uint) ([]models.Player, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if teamID != 0 {
		query.Set("team", strconv.FormatUint(uint64(teamID), 10))
	}
	path := "/players"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	env, err := a.do(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Players []models.Player `json:"players"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return data.Players, nil
}

// Player fetches one player with comments embedded, newest first.
func (a *API) Player(id uint) (*models.PlayerDetail, error) {
	env, err := a.do(http.MethodGet, "/players/"+strconv.FormatUint(uint64(id), 10), nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Player models.PlayerDetail `json:"player"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return &data.Player, nil
}

// Teams lists every team.
func (a *API) Teams() ([]models.Team, error) {
	env, err := a.do(http.MethodGet, "/teams", nil)
	if err != nil {
		return nil, err
	}

	var teams []models.Team
	if err := json.Unmarshal(env.Data, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Team fetches a single team.
func (a *API) Team(id uint) (*models.Team, error) {
	env, err := a.do(http.MethodGet, "/teams/"+strconv.FormatUint(uint64(id), 10), nil)
	if err != nil {
		return nil, err
	}

	var team models.Team
	if err := json.Unmarshal(env.Data, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// CreateTeam creates a team (admin session required).
func (a *API) CreateTeam(name string) (string, error) {
	env, err := a.do(http.MethodPost, "/teams", map[string]string{"teamName": name})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// AddComment posts a comment on a player.
func (a *API) AddComment(playerID uint, rating int, content string) (string, error) {
	env, err := a.do(http.MethodPost, "/players/"+strconv.FormatUint(uint64(playerID), 10)+"/comments",
		map[string]interface{}{"rating": rating, "content": content})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Accounts lists member accounts (admin session required).
func (a *API) Accounts() ([]models.Member, error) {
	env, err := a.do(http.MethodGet, "/accounts", nil)
	if err != nil {
		return nil, err
	}

	var members []models.Member
	if err := json.Unmarshal(env.Data, &members); err != nil {
		return nil, err
	}
	return members, nil
}
