package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/wardydev/bri-finder-admin/internal/api"
	"github.com/wardydev/bri-finder-admin/internal/config"
	"github.com/wardydev/bri-finder-admin/internal/logging"
	"github.com/wardydev/bri-finder-admin/internal/models"
	"github.com/wardydev/bri-finder-admin/internal/services"
	"github.com/wardydev/bri-finder-admin/internal/session"
)

// Screen names the two list surfaces of the admin tool.
type Screen string

const (
	ScreenLocations Screen = "locations"
	ScreenComments  Screen = "comments"
)

// locationScreen bundles the controllers behind the ATM directory screen.
type locationScreen struct {
	collection *services.Collection[models.Location]
	confirm    *services.ConfirmFlow
	editor     *services.Editor
}

func newLocationScreen(client api.Client, log logging.Logger) *locationScreen {
	s := &locationScreen{}
	s.collection = services.NewCollection(client.ListLocations, log.With("screen", ScreenLocations))
	s.confirm = services.NewConfirmFlow(client.DeleteLocation, s.collection.Refresh, log)
	s.editor = services.NewEditor(
		models.LocationFields(),
		func(ctx context.Context, fields map[string]string, files []api.Upload) error {
			_, err := client.CreateLocation(ctx, fields, files)
			return err
		},
		func(ctx context.Context, id string, fields map[string]string, files []api.Upload) error {
			_, err := client.UpdateLocation(ctx, id, fields, files)
			return err
		},
		s.collection.Refresh,
		log,
	)
	return s
}

// commentScreen bundles the controllers behind the moderation screen.
// Comments are delete-only; there is no editor.
type commentScreen struct {
	collection *services.Collection[models.Comment]
	confirm    *services.ConfirmFlow
}

func newCommentScreen(client api.Client, log logging.Logger) *commentScreen {
	s := &commentScreen{}
	s.collection = services.NewCollection(client.ListComments, log.With("screen", ScreenComments))
	s.confirm = services.NewConfirmFlow(client.DeleteComment, s.collection.Refresh, log)
	return s
}

// App is the interactive admin client.
type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader

	auth      *services.AuthService
	locations *locationScreen
	comments  *commentScreen

	screen   Screen
	userName string
}

func NewApp(c *config.Config, log logging.Logger) *App {
	sess := session.New()
	client := api.New(c.APIBaseURL, sess,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
	)

	return &App{
		config:    c,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		auth:      services.NewAuthService(client, sess, log),
		locations: newLocationScreen(client, log),
		comments:  newCommentScreen(client, log),
		screen:    ScreenLocations,
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.LoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.isLoggedIn() {
		s += string(a.screen)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the interactive session: a login prompt followed by the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to BRI-Finder Admin (type 'help' for commands)")

	_ = a.Login(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
