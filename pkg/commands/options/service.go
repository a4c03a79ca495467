package options

import (
	"github.com/spf13/cobra"
)

// ServiceOptions select the task service to talk to.
type ServiceOptions struct {
	APIURL string
	Debug  bool
}

func AddServiceArgs(cmd *cobra.Command, o *ServiceOptions) {
	cmd.PersistentFlags().StringVar(&o.APIURL, "api-url", "",
		"Base URL of the task service. Overrides TASKR_API_URL and the config file.")
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Enable debug logging.")
}
