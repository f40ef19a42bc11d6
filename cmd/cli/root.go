package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-web/pkg/config"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// options flags globales del CLI.
type options struct {
	apiURL  string
	timeout time.Duration
	variant string
	verbose bool

	out io.Writer
	log *logger.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{out: stdout}

	root := &cobra.Command{
		Use:   "inventario",
		Short: "Cliente de línea de comandos del backend de inventario",
		Long: `inventario consulta y opera el backend REST de inventario y ventas:
productos, estadísticas, dashboard, carga de pedidos y mantenimiento.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "info"
			if opts.verbose {
				level = "debug"
			}
			opts.log = logger.New(logger.Config{Env: "development", Level: level, Component: "cli", Output: stderr})
			return applyConfigDefaults(cmd, opts)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api", "", "origen del backend (por defecto API_BASE_URL)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "timeout por petición (por defecto API_TIMEOUT_SECONDS)")
	flags.StringVar(&opts.variant, "dashboard", "", "variante del dashboard: inventory_stats | purchases")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log de depuración")

	root.AddCommand(
		newProductsCmd(opts),
		newStatsCmd(opts),
		newDashboardCmd(opts),
		newUploadCmd(opts),
		newPurgeSalesCmd(opts),
		newResetInventoryCmd(opts),
	)
	return root
}

// applyConfigDefaults completa los flags no indicados con pkg/config.
func applyConfigDefaults(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("api") {
		opts.apiURL = cfg.API.BaseURL
	}
	if !flags.Changed("timeout") {
		opts.timeout = cfg.API.Timeout()
	}
	if !flags.Changed("dashboard") {
		opts.variant = cfg.API.DashboardVariant
	}
	return nil
}

func (o *options) client() (*backend.Client, error) {
	variant, err := backend.ParseDashboardVariant(o.variant)
	if err != nil {
		return nil, err
	}
	return backend.NewClient(o.apiURL,
		backend.WithTimeout(o.timeout),
		backend.WithDashboardVariant(variant),
	)
}

// printResponse escribe el cuerpo del backend; JSON se indenta.
func (o *options) printResponse(resp *backend.Response) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, resp.Body, "", "  "); err != nil {
		_, werr := o.out.Write(resp.Body)
		return werr
	}
	pretty.WriteByte('\n')
	_, err := pretty.WriteTo(o.out)
	return err
}

// describe traduce un rechazo del backend a un error legible.
func describe(err error) error {
	var se *backend.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("%s %s: HTTP %d: %s", se.Method, se.Path, se.StatusCode(), bytes.TrimSpace(se.Response.Body))
	}
	return err
}
