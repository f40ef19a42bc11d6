package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-web/internal/infrastructure/charset"
)

// errNotConfirmed acciones destructivas sin --yes.
var errNotConfirmed = errors.New("acción destructiva: confirme con --yes")

// call ejecuta una operación simple del cliente e imprime la respuesta.
// fn recibe el cliente primero para aceptar expresiones de método
// como (*backend.Client).GetProducts.
func call(opts *options, name string, fn func(*backend.Client, context.Context) (*backend.Response, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		c, err := opts.client()
		if err != nil {
			return err
		}
		opts.log.ForOp(name).Debug().Str("backend", c.BaseURL()).Msg("llamando al backend")
		resp, err := fn(c, cmd.Context())
		if err != nil {
			return describe(err)
		}
		return opts.printResponse(resp)
	}
}

func newProductsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products [id]",
		Short: "Lista productos o muestra uno por id",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return call(opts, "get_product", func(c *backend.Client, ctx context.Context) (*backend.Response, error) {
				return c.GetProduct(ctx, args[0])
			})(cmd, args)
		}
		return call(opts, "get_products", (*backend.Client).GetProducts)(cmd, args)
	}
	return cmd
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Estadísticas del inventario",
		Args:  cobra.NoArgs,
		RunE:  call(opts, "get_inventory_stats", (*backend.Client).GetInventoryStats),
	}
}

func newDashboardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Ejecuta las llamadas del dashboard en paralelo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			calls, err := backend.DashboardCalls(c.DashboardVariant())
			if err != nil {
				return err
			}
			results, err := c.GetDashboardStats(cmd.Context())
			if err != nil {
				return describe(err)
			}
			for i, name := range calls {
				fmt.Fprintf(opts.out, "# %s\n", name)
				if err := opts.printResponse(results[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newUploadCmd(opts *options) *cobra.Command {
	var encoding string
	cmd := &cobra.Command{
		Use:   "upload <archivo>",
		Short: "Carga un archivo de pedidos de venta (POST /sales/upload)",
		Long: fmt.Sprintf(`Carga la exportación de pedidos de la plataforma de venta.
Con --charset el archivo (CSV o texto) se transcodifica a UTF-8 antes de
enviarlo; los Excel (.xlsx/.xls) se envían sin --charset.
Codificaciones soportadas: %v`, charset.Supported()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			content, err := charset.NewReader(f, encoding)
			if err != nil {
				return err
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			opts.log.ForOp("upload_sales_order").Info().Str("file", args[0]).Str("charset", encoding).Msg("cargando pedidos")

			form := backend.NewFormData().AddFile("file", filepath.Base(args[0]), content)
			resp, err := c.UploadSalesOrder(cmd.Context(), form)
			if err != nil {
				return describe(err)
			}
			return opts.printResponse(resp)
		},
	}
	cmd.Flags().StringVar(&encoding, "charset", "", "codificación del archivo (vacío = UTF-8)")
	return cmd
}

func newPurgeSalesCmd(opts *options) *cobra.Command {
	return destructiveCmd(opts, "purge-sales", "Elimina todos los pedidos de venta (DELETE /sales/all)",
		"delete_all_sales_orders", (*backend.Client).DeleteAllSalesOrders)
}

func newResetInventoryCmd(opts *options) *cobra.Command {
	return destructiveCmd(opts, "reset-inventory", "Reinicia el inventario (DELETE /inventory/clear)",
		"clear_inventory", (*backend.Client).ClearInventory)
}

func destructiveCmd(opts *options, use, short, op string, fn func(*backend.Client, context.Context) (*backend.Response, error)) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			opts.log.ForOp(op).Warn().Msg("acción destructiva confirmada")
			return call(opts, op, fn)(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirmar la acción")
	return cmd
}
