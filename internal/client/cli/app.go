package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/crmdash/internal/client/api"
	"github.com/dmitrijs2005/crmdash/internal/client/config"
	"github.com/dmitrijs2005/crmdash/internal/client/session"
)

type backend interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	GetDetails(ctx context.Context, s *session.Session) (*api.Record, error)
	SaveDetails(ctx context.Context, s *session.Session, d api.Details) (*api.Record, string, error)
}

type sessionStore interface {
	Load() (*session.Session, error)
	Save(*session.Session) error
	Clear() error
}

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	config   *config.Config
	remote   backend
	sessions sessionStore
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{config: c, reader: bufio.NewReader(os.Stdin)}
}

// Run executes the command line args (without the program name).
func (a *App) Run(ctx context.Context, args []string, out io.Writer) error {
	root := a.RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}

// client and store are built lazily so they see the final flag values.
func (a *App) client() backend {
	if a.remote == nil {
		a.remote = api.NewClient(a.config.ServerURL, a.config.Timeout)
	}
	return a.remote
}

func (a *App) store() (sessionStore, error) {
	if a.sessions == nil {
		path := a.config.SessionFile
		if path == "" {
			p, err := session.DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		a.sessions = session.NewFileStore(path)
	}
	return a.sessions, nil
}
