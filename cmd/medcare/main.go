// Command medcare runs the MedCare clinical dashboard in the terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"medcare/internal/ui"
)

const (
	Version = "0.1.0"
	appName = "medcare"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the command-line overrides applied on top of the config file.
type options struct {
	configPath string
	route      string
	faults     []string
	logFile    string
	verbose    bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Terminal clinical-operations dashboard",
		Long: `MedCare shows appointments, patients, records, the schedule, messages,
clinical tools and emergency response in one terminal dashboard.

Each screen runs inside a fault-isolation boundary: a screen that fails shows
a "Something went wrong" panel with a retry action while the header and
sidebar keep working. Use --fault to arm a screen to fail for a drill.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (default ~/.config/medcare/config.yaml)")
	cmd.Flags().StringVarP(&opts.route, "route", "r", "", "Route to open first, e.g. /emergency")
	cmd.Flags().StringArrayVar(&opts.faults, "fault", nil, "Arm a render fault on a route (repeatable)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", `Log file path ("-" disables logging)`)
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(routesCmd(), versionCmd())
	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the dashboard routes and their go-to keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoutes(cmd.OutOrStdout(), ui.Routes())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}

func printRoutes(w io.Writer, routes []ui.Route) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tSCREEN\tKEYS")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\tSPC g %s\n", r.Path, r.Label, r.Key)
	}
	return tw.Flush()
}
