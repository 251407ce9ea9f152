// Package cli is the interactive FitLife Tracker client. It keeps the login
// session cached on disk, talks to the server over the REST API, and drops
// the session the moment the server stops accepting its token.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/dto"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/client/api"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/client/session"
	exdomain "github.com/Induma-Magammana/FitLife-Tracker/internal/exercises/domain"
	favdomain "github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/domain"
	tipsdomain "github.com/Induma-Magammana/FitLife-Tracker/internal/tips/domain"
)

type App struct {
	api     *api.Client
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(apiClient *api.Client, sess *session.Session, in io.Reader, out io.Writer) *App {
	return &App{
		api:     apiClient,
		session: sess,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// fail reports a command error. An auth rejection additionally clears the
// cached session, so the next prompt asks the user to log in again.
func (a *App) fail(err error) {
	if api.IsAuthError(err) && a.isLoggedIn() {
		if clearErr := a.session.OnAuthError(); clearErr != nil {
			a.printf("error: %v", clearErr)
		}
		a.printf("Session expired, please log in again.")
		return
	}
	a.printf("error: %v", err)
}

func (a *App) status() string {
	switch a.session.State() {
	case session.StateAuthenticated:
		return a.session.User().Email
	case session.StateExpiredPendingReauth:
		return "session expired"
	default:
		return "not logged in"
	}
}

// Run drives the read-eval-print loop until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	a.printf("FitLife Tracker CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "fitlife (%s)> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout()
		case "whoami":
			a.whoami(ctx)
		case "profile":
			a.updateProfile(ctx)
		case "passwd":
			a.changePassword(ctx)
		case "exercises":
			a.exercises(ctx, strings.Join(args, " "))
		case "exercise":
			if len(args) == 0 {
				a.printf("Usage: exercise <id>")
				continue
			}
			a.exercise(ctx, args[0])
		case "filters":
			a.filters(ctx)
		case "tips":
			a.tips(ctx, strings.Join(args, " "))
		case "favs":
			a.favourites(ctx)
		case "fav":
			if len(args) == 0 {
				a.printf("Usage: fav <exercise id>")
				continue
			}
			a.addFavourite(ctx, args[0])
		case "unfav":
			if len(args) == 0 {
				a.printf("Usage: unfav <exercise name>")
				continue
			}
			a.removeFavourite(ctx, strings.Join(args, " "))
		case "unfav-all":
			a.clearFavourites(ctx)
		case "exit", "quit":
			a.printf("Bye!")
			return
		default:
			a.printf("Unknown command: %s", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		a.printf("Available commands: whoami, profile, passwd, exercises [search], exercise <id>, filters, tips [category], favs, fav <id>, unfav <name>, unfav-all, logout, exit")
	} else {
		a.printf("Available commands: register, login, exercises [search], exercise <id>, filters, tips [category], exit")
	}
}

func (a *App) register(ctx context.Context) {
	firstName, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	lastName, err := GetSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		a.fail(err)
		return
	}

	out, err := a.api.Register(ctx, dto.RegisterInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		a.fail(err)
		return
	}
	if err := a.startSession(out); err != nil {
		a.fail(err)
		return
	}
	a.printf("Registered and logged in as %s", out.User.Email)
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		a.fail(err)
		return
	}

	out, err := a.api.Login(ctx, dto.LoginInput{Email: email, Password: password})
	if err != nil {
		a.fail(err)
		return
	}
	if err := a.startSession(out); err != nil {
		a.fail(err)
		return
	}
	a.printf("Logged in as %s", out.User.Email)
}

// startSession persists the fresh token and user snapshot.
func (a *App) startSession(out *dto.AuthOutput) error {
	return a.session.Login(session.Data{
		Token: out.Token,
		User: &session.User{
			ID:        out.User.ID,
			FirstName: out.User.FirstName,
			LastName:  out.User.LastName,
			Email:     out.User.Email,
		},
	})
}

func (a *App) logout() {
	if err := a.session.Logout(); err != nil {
		a.fail(err)
		return
	}
	a.printf("Logged out.")
}

func (a *App) whoami(ctx context.Context) {
	user, err := a.api.Me(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("%s %s <%s> (id %s)", user.FirstName, user.LastName, user.Email, user.ID)
}

func (a *App) updateProfile(ctx context.Context) {
	a.printf("Leave a field empty to keep its current value.")
	firstName, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	lastName, err := GetSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.fail(err)
		return
	}

	user, err := a.api.UpdateProfile(ctx, dto.UpdateProfileInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	})
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("Profile updated: %s %s <%s>", user.FirstName, user.LastName, user.Email)
}

func (a *App) changePassword(ctx context.Context) {
	current, err := GetPassword(a.out, "Current password")
	if err != nil {
		a.fail(err)
		return
	}
	next, err := GetPassword(a.out, "New password")
	if err != nil {
		a.fail(err)
		return
	}

	if err := a.api.ChangePassword(ctx, dto.ChangePasswordInput{
		CurrentPassword: current,
		NewPassword:     next,
	}); err != nil {
		a.fail(err)
		return
	}
	a.printf("Password changed.")
}

func (a *App) exercises(ctx context.Context, search string) {
	exercises, err := a.api.Exercises(ctx, exdomain.Query{Search: search})
	if err != nil {
		a.fail(err)
		return
	}
	if len(exercises) == 0 {
		a.printf("No exercises found.")
		return
	}
	for _, ex := range exercises {
		a.printf("[%s] %s (%s, %s, %s)", ex.ID, ex.Name, ex.Muscle, ex.Type, ex.Difficulty)
	}
}

func (a *App) exercise(ctx context.Context, id string) {
	ex, err := a.api.Exercise(ctx, id)
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("%s (%s, %s, %s, equipment: %s)", ex.Name, ex.Muscle, ex.Type, ex.Difficulty, ex.Equipment)
	a.printf("%s", ex.Instructions)
}

func (a *App) filters(ctx context.Context) {
	f, err := a.api.ExerciseFilters(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("Muscles: %s", strings.Join(f.Muscles, ", "))
	a.printf("Difficulties: %s", strings.Join(f.Difficulties, ", "))
	a.printf("Types: %s", strings.Join(f.Types, ", "))
	a.printf("Equipment: %s", strings.Join(f.Equipment, ", "))
}

func (a *App) tips(ctx context.Context, category string) {
	tips, err := a.api.Tips(ctx, tipsdomain.Query{Category: category})
	if err != nil {
		a.fail(err)
		return
	}
	for _, tip := range tips {
		a.printf("[%s] %s: %s", tip.Category, tip.Title, tip.Content)
	}
}

func (a *App) favourites(ctx context.Context) {
	favs, err := a.api.Favourites(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	if len(favs) == 0 {
		a.printf("No favourites yet.")
		return
	}
	for _, fav := range favs {
		a.printf("%s (%s, %s)", fav.Name, fav.Muscle, fav.Difficulty)
	}
}

// addFavourite resolves the exercise in the catalog first, so the server
// stores the full denormalized entry.
func (a *App) addFavourite(ctx context.Context, exerciseID string) {
	ex, err := a.api.Exercise(ctx, exerciseID)
	if err != nil {
		a.fail(err)
		return
	}

	favs, err := a.api.AddFavourite(ctx, favdomain.Favourite{
		ExerciseID:   ex.ID,
		Name:         ex.Name,
		Type:         ex.Type,
		Muscle:       ex.Muscle,
		Equipment:    ex.Equipment,
		Difficulty:   ex.Difficulty,
		Instructions: ex.Instructions,
	})
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("Added %s. You now have %d favourite(s).", ex.Name, len(favs))
}

func (a *App) removeFavourite(ctx context.Context, name string) {
	favs, err := a.api.RemoveFavourite(ctx, name)
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("Removed %s. %d favourite(s) left.", name, len(favs))
}

func (a *App) clearFavourites(ctx context.Context) {
	if err := a.api.ClearFavourites(ctx); err != nil {
		a.fail(err)
		return
	}
	a.printf("All favourites cleared.")
}
