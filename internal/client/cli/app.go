package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"

	"storedash/internal/client/api"
	"storedash/internal/client/catalog"
	"storedash/internal/client/config"
	"storedash/internal/client/services"
	"storedash/internal/client/session"
	"storedash/internal/client/storage"
	"storedash/internal/logging"
)

// App holds the wired client components and the interactive session state.
type App struct {
	config      *config.Config
	authService services.AuthService
	loader      *catalog.Loader
	log         logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	loggedIn bool
	userName string
}

// NewApp opens the local database and wires the API client, session store,
// auth service and catalog loader.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, httpClient, log)

	store := session.NewSQLiteStore(db)
	auth := services.NewAuthService(apiClient, store)
	loader := catalog.NewLoader(apiClient, cfg.PageSize, log)

	return &App{
		config:      cfg,
		authService: auth,
		loader:      loader,
		log:         log,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run gates on the stored session, then hands control to the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.Splash(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the local database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// getStatus renders the prompt suffix: the signed-in username, if any.
func (a *App) getStatus() string {
	if !a.loggedIn {
		return ""
	}
	if a.userName == "" {
		return "(signed in)"
	}
	return "(" + a.userName + ")"
}
