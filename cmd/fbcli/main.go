// cmd/fbcli/main.go - terminal client for the football hub API.
//
// Usage:
//
//	fbcli [-url http://localhost:3000] <command> [args]
//
// The session (member snapshot + token) is kept in a local JSON file, so
// login survives across invocations until logout.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"footballhub/client"
	"footballhub/models"
)

const defaultURL = "http://localhost:3000/api"

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: fbcli [-url URL] <command> [args]

Commands:
  register                     create an account
  login                        sign in and store the session
  logout                       sign out and clear the session
  whoami                       show the stored session member
  profile                      show profile and own comments
  update-profile               change display name / year of birth
  change-password              change password
  players [-search S] [-team ID]   list players
  player <id>                  show one player with comments
  comment <player-id> <1-3> <text...>  rate and comment a player
  teams                        list teams
  team <id>                    show one team with its roster
  create-team <name...>        create a team (admin)
  accounts                     list all accounts (admin)`)
	os.Exit(2)
}

// prompt reads one trimmed line from stdin after printing the label.
func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

func fail(err error) {
	if errors.Is(err, client.ErrNotAuthenticated) {
		fmt.Println("You need to login first. Run: fbcli login")
		os.Exit(1)
	}
	log.Fatal(err)
}

func teamName(p models.Player) string {
	if p.Team == nil {
		return "-"
	}
	return p.Team.TeamName
}

func printPlayers(players []models.Player) {
	if len(players) == 0 {
		fmt.Println("No players found.")
		return
	}
	for _, p := range players {
		captain := ""
		if p.IsCaptain {
			captain = " (captain)"
		}
		fmt.Printf("%4d  %-25s %-20s cost %d%s\n", p.ID, p.PlayerName, teamName(p), p.Cost, captain)
	}
}

func stars(rating int) string {
	return strings.Repeat("*", rating)
}

func main() {
	baseURL := flag.String("url", defaultURL, "API base URL")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
	}

	session, err := client.NewSession("")
	if err != nil {
		log.Fatal(err)
	}
	api := client.NewAPI(*baseURL, session)
	in := bufio.NewReader(os.Stdin)

	args := flag.Args()
	switch args[0] {
	case "register":
		membername := prompt(in, "Membername: ")
		name := prompt(in, "Name: ")
		yobStr := prompt(in, "Year of birth: ")
		password := prompt(in, "Password: ")
		yob, err := strconv.Atoi(yobStr)
		if err != nil {
			log.Fatal("year of birth must be a number")
		}
		msg, err := api.Register(membername, password, name, yob)
		if err != nil {
			fail(err)
		}
		fmt.Println(msg)

	case "login":
		membername := prompt(in, "Membername: ")
		password := prompt(in, "Password: ")
		user, err := api.Login(membername, password)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Membername)

	case "logout":
		if err := api.Logout(); err != nil {
			fail(err)
		}
		fmt.Println("Logged out.")

	case "whoami":
		user, ok := session.Current()
		if !ok {
			fmt.Println("Not logged in.")
			os.Exit(1)
		}
		role := "member"
		if user.IsAdmin {
			role = "admin"
		}
		fmt.Printf("%s (%s), born %d, %s\n", user.Name, user.Membername, user.YOB, role)

	case "profile":
		data, err := api.Profile()
		if err != nil {
			fail(err)
		}
		fmt.Printf("%s (%s), born %d\n", data.User.Name, data.User.Membername, data.User.YOB)
		if len(data.Comments) == 0 {
			fmt.Println("No comments yet.")
			return
		}
		fmt.Println("Comments:")
		for _, c := range data.Comments {
			fmt.Printf("  %-25s %-3s %s\n", c.PlayerName, stars(c.Rating), c.Content)
		}

	case "update-profile":
		name := prompt(in, "Name: ")
		yobStr := prompt(in, "Year of birth: ")
		yob, err := strconv.Atoi(yobStr)
		if err != nil {
			log.Fatal("year of birth must be a number")
		}
		msg, err := api.UpdateProfile(name, yob)
		if err != nil {
			fail(err)
		}
		fmt.Println(msg)

	case "change-password":
		current := prompt(in, "Current password: ")
		newPass := prompt(in, "New password: ")
		confirm := prompt(in, "Confirm new password: ")
		if err := client.CheckPasswordMatch(newPass, confirm); err != nil {
			log.Fatal(err)
		}
		msg, err := api.ChangePassword(current, newPass)
		if err != nil {
			fail(err)
		}
		fmt.Println(msg)

	case "players":
		fs := flag.NewFlagSet("players", flag.ExitOnError)
		search := fs.String("search", "", "filter by player name")
		team := fs.Uint("team", 0, "filter by team id")
		_ = fs.Parse(args[1:])
		players, err := api.Players(*search, uint(*team))
		if err != nil {
			fail(err)
		}
		printPlayers(players)

	case "player":
		if len(args) < 2 {
			usage()
		}
		id, err := parseID(args[1])
		if err != nil {
			log.Fatal(err)
		}
		p, err := api.Player(id)
		if err != nil {
			fail(err)
		}
		captain := ""
		if p.IsCaptain {
			captain = ", captain"
		}
		fmt.Printf("%s (%s%s)\ncost: %d\n%s\n", p.PlayerName, teamName(p.Player), captain, p.Cost, p.Information)
		if len(p.Comments) == 0 {
			fmt.Println("\nNo comments yet.")
			return
		}
		fmt.Println("\nComments:")
		for _, c := range p.Comments {
			fmt.Printf("  %-3s %s (by %s)\n", stars(c.Rating), c.Content, c.Author.Name)
		}

	case "comment":
		if len(args) < 4 {
			usage()
		}
		id, err := parseID(args[1])
		if err != nil {
			log.Fatal(err)
		}
		rating, err := strconv.Atoi(args[2])
		if err != nil {
			log.Fatal("rating must be a number between 1 and 3")
		}
		content := strings.Join(args[3:], " ")
		if err := client.CheckComment(rating, content); err != nil {
			log.Fatal(err)
		}
		msg, err := api.AddComment(id, rating, content)
		if err != nil {
			fail(err)
		}
		fmt.Println(msg)

	case "teams":
		teams, err := api.Teams()
		if err != nil {
			fail(err)
		}
		if len(teams) == 0 {
			fmt.Println("No teams found.")
			return
		}
		for _, t := range teams {
			fmt.Printf("%4d  %s\n", t.ID, t.TeamName)
		}

	case "team":
		if len(args) < 2 {
			usage()
		}
		id, err := parseID(args[1])
		if err != nil {
			log.Fatal(err)
		}

		// The team and its roster load independently; one failing does
		// not hide the other.
		var (
			wg         sync.WaitGroup
			team       *models.Team
			teamErr    error
			players    []models.Player
			playersErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			team, teamErr = api.Team(id)
		}()
		go func() {
			defer wg.Done()
			players, playersErr = api.Players("", id)
		}()
		wg.Wait()

		if teamErr != nil {
			fmt.Printf("team: %v\n", teamErr)
		} else {
			fmt.Println(team.TeamName)
		}
		if playersErr != nil {
			fmt.Printf("roster: %v\n", playersErr)
		} else {
			printPlayers(players)
		}
		if teamErr != nil && playersErr != nil {
			os.Exit(1)
		}

	case "create-team":
		if len(args) < 2 {
			usage()
		}
		name := strings.Join(args[1:], " ")
		teams, err := api.Teams()
		if err != nil {
			fail(err)
		}
		if err := client.CheckNewTeamName(teams, name); err != nil {
			log.Fatal(err)
		}
		msg, err := api.CreateTeam(name)
		if err != nil {
			fail(err)
		}
		fmt.Println(msg)

	case "accounts":
		members, err := api.Accounts()
		if err != nil {
			fail(err)
		}
		for _, m := range members {
			role := "member"
			if m.IsAdmin {
				role = "admin"
			}
			fmt.Printf("%4d  %-20s %-25s %s\n", m.ID, m.Membername, m.Name, role)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		usage()
	}
}
