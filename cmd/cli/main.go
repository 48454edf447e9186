package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"homolo/adapters/excel"
	"homolo/app"
	"homolo/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "homolo",
		Short: "Builds parent/symbol/name/input_cost layers from tabular inputs",
	}

	rootCmd.AddCommand(
		newFinancialCmd(),
		newPersonnelCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService() *app.LayerService {
	return app.NewLayerService(excel.NewDataReader(), excel.NewLayerWriter(), config.LoadDefaults())
}

func newFinancialCmd() *cobra.Command {
	var req app.FinancialRequest

	cmd := &cobra.Command{
		Use:   "financial",
		Short: "Build a financial layer from a code/description/value table",
		Long: `Build a financial layer from a code/description/value table.

Example: homolo financial -i entrada.xlsx -o salida.xlsx --parent 10.01 \
    --parent-name "Resultados financieros" --sheet-name "10 Resultados financieros"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newService().BuildFinancialLayer(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("OK -> %s (sheet %q, %d rows)\n", result.Output, req.SheetName, result.Rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.InputPath, "input", "i", "", "input file (CSV/XLSX)")
	cmd.Flags().StringVar(&req.Sheet, "sheet", "", "input sheet name when the input is a workbook")
	cmd.Flags().StringVarP(&req.OutputPath, "output", "o", "", "output xlsx path")
	cmd.Flags().StringVar(&req.SheetName, "sheet-name", "Resultados", "output sheet name")
	cmd.Flags().StringVar(&req.Parent, "parent", "", "parent symbol (e.g. 10.01)")
	cmd.Flags().StringVar(&req.ParentName, "parent-name", "Datos que fluyen", "display name of the parent header row")
	cmd.Flags().BoolVar(&req.NoParentRow, "no-parent-row", false, "skip the parent header row")
	cmd.Flags().IntVar(&req.Pad, "pad", 2, "zero-pad width for numeric codes")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("parent")

	return cmd
}

func newPersonnelCmd() *cobra.Command {
	var req app.PersonnelRequest

	cmd := &cobra.Command{
		Use:   "personnel",
		Short: "Build the personnel layer (roles -> employees hierarchy)",
		Long: `Build the personnel layer from a roles table (code, role) and an
employees table (id, name, cost, role and/or cargo).

Example: homolo personnel --roles roles.xlsx --employees empleados.xlsx -o salida.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newService().BuildPersonnelLayer(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("OK -> %s (%d rows)\n", result.Output, result.Rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.RolesPath, "roles", "", "roles table (CSV/XLSX)")
	cmd.Flags().StringVar(&req.RolesSheet, "roles-sheet", "", "roles sheet name")
	cmd.Flags().StringVar(&req.EmployeesPath, "employees", "", "employees table (CSV/XLSX)")
	cmd.Flags().StringVar(&req.EmployeesSheet, "employees-sheet", "", "employees sheet name")
	cmd.Flags().StringVarP(&req.OutputPath, "output", "o", "", "output xlsx path")
	cmd.Flags().StringVar(&req.SheetName, "sheet-name", "20 Personal", "output sheet name")
	cmd.Flags().StringVar(&req.ParentCode, "parent-code", "20", "layer code the hierarchy hangs under")
	_ = cmd.MarkFlagRequired("roles")
	_ = cmd.MarkFlagRequired("employees")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
