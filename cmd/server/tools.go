package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fueldelivery/models"
	"fueldelivery/report"
	"fueldelivery/repository"
	"fueldelivery/service"
	"fueldelivery/utils"
)

var nextNumberCmd = &cobra.Command{
	Use:   "next-number",
	Short: "Print the next DO number for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStores(cfg, false)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := service.NewOrderService(st.Orders, repository.NewMemoryDraftRepo(time.Minute), service.Defaults{})
		next, err := svc.NextDONumber(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

var exportOpts struct {
	format       string
	out          string
	years        []int
	transporters []string
	fuelTypes    []string
	search       string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered order report as xlsx or csv",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportOpts.format != report.FormatXLSX && exportOpts.format != report.FormatCSV {
		return errors.Errorf("unknown format %q, use xlsx or csv", exportOpts.format)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStores(cfg, false)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := service.NewOrderService(st.Orders, repository.NewMemoryDraftRepo(time.Minute), service.Defaults{})
	view, err := svc.Report(cmd.Context(), report.Filter{
		Years:        exportOpts.years,
		Transporters: exportOpts.transporters,
		FuelTypes:    exportOpts.fuelTypes,
		Search:       exportOpts.search,
	})
	if err != nil {
		return err
	}

	out := exportOpts.out
	if out == "" {
		out = report.ReportFileName(exportOpts.format, time.Now())
	}
	if err := writeExport(out, exportOpts.format, cmd.OutOrStdout(), view.Rows); err != nil {
		return err
	}
	log.Info().Str("file", out).Int("rows", view.Count).Str("total_qty", view.TotalQtyText).Msg("report exported")
	return nil
}

// writeExport writes rows to the file at out, or to stdout when out is "-".
// A failed close is returned since it can mean the file was not flushed.
func writeExport(out, format string, stdout io.Writer, rows []models.DeliveryOrder) (err error) {
	if out == "-" {
		return report.Write(stdout, format, utils.ReportSheet, rows)
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close export file")
		}
	}()
	return report.Write(f, format, utils.ReportSheet, rows)
}

var operatorCmd = &cobra.Command{
	Use:   "operator",
	Short: "Manage operator logins",
}

var operatorAddCmd = &cobra.Command{
	Use:   "add USERNAME PASSWORD",
	Short: "Create an operator login (postgres and mongo backends)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStores(cfg, false)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		if err := st.Operators.CreateOperator(ctx, args[0], args[1]); err != nil {
			return err
		}
		log.Info().Str("username", args[0]).Msg("operator created")
		return nil
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportOpts.format, "format", report.FormatXLSX, "xlsx or csv")
	f.StringVar(&exportOpts.out, "out", "", "output file, - for stdout (default rekap_do_YYYYMMDD.<format>)")
	f.IntSliceVar(&exportOpts.years, "year", nil, "keep orders dated in these years")
	f.StringSliceVar(&exportOpts.transporters, "transporter", nil, "keep these transporters")
	f.StringSliceVar(&exportOpts.fuelTypes, "fuel-type", nil, "keep these fuel types")
	f.StringVar(&exportOpts.search, "search", "", "DO number, client or driver contains (3+ characters)")

	operatorCmd.AddCommand(operatorAddCmd)
	rootCmd.AddCommand(nextNumberCmd, exportCmd, operatorCmd)
}
