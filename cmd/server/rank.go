package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"medalboard/internal/engine"
	"medalboard/internal/models"
)

func newRankCmd() *cobra.Command {
	var (
		year  int
		order string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the top 10 countries of an Olympic year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			o, err := models.ParseOrder(order)
			if err != nil {
				return err
			}
			ds, err := engine.NewStore(nil).Load(cfg.DataPath)
			if err != nil {
				return err
			}
			return printRanking(cmd.OutOrStdout(), ds, year, o)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Olympic year (default: the earliest in the dataset)")
	cmd.Flags().StringVar(&order, "order", string(models.OrderDescending), "descending or ascending")
	return cmd
}

func printRanking(w io.Writer, ds *engine.Dataset, year int, order models.Order) error {
	if year == 0 {
		if years := engine.ListYears(ds); len(years) > 0 {
			year = years[0]
		}
	}

	slice := engine.YearSlice(ds, year)
	if len(slice.Records) == 0 {
		_, err := fmt.Fprintf(w, "no results for %d\n", year)
		return err
	}

	rows := make([][]string, 0, engine.TopN)
	for i, r := range engine.RankedMedalTable(slice.Records, order) {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.CountryName,
			strconv.Itoa(r.Gold),
			strconv.Itoa(r.Silver),
			strconv.Itoa(r.Bronze),
			strconv.Itoa(r.MedalSum()),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "COUNTRY", "GOLD", "SILVER", "BRONZE", "TOTAL").
		Rows(rows...)

	if _, err := fmt.Fprintf(w, "%d Summer Olympics, %s, %s\n", year, slice.HostCity(), slice.HostCountry()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
