package commands

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/api"
	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
)

// Set at build time with -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func New() *cobra.Command {
	so := &options.ServiceOptions{}

	cmd := &cobra.Command{
		Use:           "taskr",
		Short:         options.Wrap80("Create, search, run and inspect tasks on a remote task service."),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if so.Debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddServiceArgs(cmd, so)

	AddCommands(cmd, so)
	return cmd
}

func AddCommands(topLevel *cobra.Command, so *options.ServiceOptions) {
	addList(topLevel, so)
	addSearch(topLevel, so)
	addGet(topLevel, so)
	addAdd(topLevel, so)
	addEdit(topLevel, so)
	addDelete(topLevel, so)
	addExec(topLevel, so)
	addHistory(topLevel, so)
	addCheck(topLevel)
	addMCP(topLevel, so)
	addCompletions(topLevel, so)
	addVersion(topLevel)
}

// newStore builds the task store from config, letting --api-url win.
func newStore(so *options.ServiceOptions) (*store.Store, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	baseURL := cfg.BaseURL()
	if so.APIURL != "" {
		baseURL = so.APIURL
	}

	c, err := api.New(baseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
		api.WithUserAgent(cfg.UserAgent()),
		api.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, err
	}
	return store.New(c, store.WithLogger(slog.Default())), nil
}

func printer(cmd *cobra.Command) *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: cmd.OutOrStdout()}
}
