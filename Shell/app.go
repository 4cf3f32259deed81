package Shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Tractor/ApiClient"
	"Tractor/Inventory"
	"Tractor/Session"
)

// App is the console shell: it owns navigation and is the one place that
// reacts to an expired session.
type App struct {
	Api       *ApiClient.Client
	Session   *Session.Store
	Router    *Router
	Inventory *Inventory.Manager

	in  *bufio.Scanner
	out io.Writer
}

func NewApp(api *ApiClient.Client, session *Session.Store, in io.Reader, out io.Writer) *App {
	return &App{
		Api:       api,
		Session:   session,
		Router:    &Router{Session: session},
		Inventory: Inventory.NewManager(api),
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Success and Error make the shell the Dashboard.Notifier: transient
// messages, printed and forgotten.
func (a *App) Success(msg string) { fmt.Fprintln(a.out, "[ok]", msg) }
func (a *App) Error(msg string)   { fmt.Fprintln(a.out, "[error]", msg) }

// Run drives the navigation state machine until stdin closes or the user
// quits.
func (a *App) Run(ctx context.Context) {
	for {
		switch a.Router.State() {
		case Unauthenticated:
			if !a.authMenu(ctx) {
				return
			}
		default:
			if !a.mainMenu(ctx) {
				return
			}
		}
	}
}

// authMenu is the entry point while nobody is logged in: login, register or
// leave.
func (a *App) authMenu(ctx context.Context) bool {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== Tractor Sales Console ===")
	fmt.Fprintln(a.out, "1. Login")
	fmt.Fprintln(a.out, "2. Register")
	fmt.Fprintln(a.out, "q. Quit")

	choice, ok := a.prompt("Select")
	if !ok {
		return false
	}
	switch choice {
	case "1", "":
		return a.loginPage(ctx)
	case "2":
		return a.registerPage(ctx)
	case "q", "Q":
		return false
	}
	a.Error("Unknown option")
	return true
}

func (a *App) loginPage(ctx context.Context) bool {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "--- Login ---")
	email, ok := a.prompt("Email")
	if !ok {
		return false
	}
	password, ok := a.prompt("Password")
	if !ok {
		return false
	}

	if err := a.Session.Login(ctx, a.Api, email, password); err != nil {
		a.Error(err.Error())
		return true
	}
	a.Success("Login successful!")
	return true
}

// registerPage creates an account and sends the user back to login; the
// server decides the role, new accounts never self-assign admin.
func (a *App) registerPage(ctx context.Context) bool {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "--- Register ---")
	username, ok := a.prompt("Username")
	if !ok {
		return false
	}
	email, ok := a.prompt("Email")
	if !ok {
		return false
	}
	password, ok := a.prompt("Password")
	if !ok {
		return false
	}
	if username == "" || email == "" || password == "" {
		a.Error("Username, email and password are required")
		return true
	}

	_, err := a.Api.Register(ctx, ApiClient.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		a.resolveErr(err, "Registration failed. Please try again.")
		return true
	}
	a.Success("Registration successful! Please log in.")
	return true
}

// menuEntry pairs a label with the route it requests. The router still gets
// the last word on where the request lands.
type menuEntry struct {
	label string
	path  string
}

func (a *App) menuFor(state State) []menuEntry {
	entries := []menuEntry{
		{"Dashboard", RouteDashboard},
		{"Record normal sale", RouteNormalSale},
		{"Record exchange sale", RouteExchangeSale},
		{"Used vehicles", RouteUsedVehicles},
		{"Notifications", RouteNotifications},
	}
	if state == AuthenticatedAdmin {
		entries = append(entries,
			menuEntry{"New vehicle inventory", RouteNewVehicles},
			menuEntry{"Export sales register", RouteReports},
		)
	}
	return entries
}

func (a *App) mainMenu(ctx context.Context) bool {
	user, _ := a.Session.CurrentUser()
	entries := a.menuFor(a.Router.State())

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "=== %s (%s) ===\n", user.Username, user.Role)
	for i, e := range entries {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, e.label)
	}
	fmt.Fprintln(a.out, "0. Logout")
	fmt.Fprintln(a.out, "q. Quit")

	choice, ok := a.prompt("Select")
	if !ok {
		return false
	}
	switch choice {
	case "q", "Q":
		return false
	case "0":
		a.Session.Logout()
		a.Success("Logged out")
		return true
	}

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(entries) {
		a.Error("Unknown option")
		return true
	}

	a.openPage(ctx, entries[n-1].path)
	return true
}

// openPage resolves the requested path through the router and renders the
// page it lands on. Each page runs under its own cancellable context,
// cancelled the moment the page is left, so a slow response cannot touch a
// view the user already navigated away from.
func (a *App) openPage(parent context.Context, path string) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	switch a.Router.Resolve(path) {
	case RouteDashboard:
		a.dashboardPage(ctx)
	case RouteNormalSale:
		a.normalSalePage(ctx)
	case RouteExchangeSale:
		a.exchangeSalePage(ctx)
	case RouteNewVehicles:
		a.newVehiclesPage(ctx)
	case RouteUsedVehicles:
		a.usedVehiclesPage(ctx)
	case RouteNotifications:
		a.notificationsPage(ctx)
	case RouteReports:
		a.reportsPage(ctx)
	case RouteLogin:
		// Redirected here by the router; the Run loop picks it up.
	}
}

// resolveErr is the central error sink for page actions. An expired session
// tears the login down globally; everything else surfaces as a transient
// message with the server's wording when there is one.
func (a *App) resolveErr(err error, fallback string) {
	if err == nil {
		return
	}
	if errors.Is(err, ApiClient.ErrAuthExpired) {
		a.Session.Clear()
		a.Error("Session expired. Please log in again.")
		return
	}
	var apiErr *ApiClient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		a.Error(apiErr.Message)
		return
	}
	a.Error(fallback)
}

func (a *App) prompt(label string) (string, bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) promptYesNo(label string) bool {
	answer, ok := a.prompt(label + " (y/n)")
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
