package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/service"
	"github.com/spf13/cobra"
)

type historyEntry struct {
	ID          string `json:"id"`
	Idea        string `json:"idea"`
	ProjectName string `json:"projectName"`
	PricingType string `json:"pricingType"`
	CreatedAt   string `json:"createdAt"`
}

func newHistoryCmd(state *rootState) *cobra.Command {
	var (
		limit  int
		format string
		id     string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived ventures",
		Long:  "Lists ventures kept in the archive. With the default in-memory database this is empty outside a session; set db.path to keep history.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unsupported format %q (want table or json)", format)
			}
			app, closeApp, err := state.load(true)
			if err != nil {
				return err
			}
			defer closeApp()
			if app.Archive == nil {
				return fmt.Errorf("history is not configured")
			}

			if id != "" {
				v, err := app.Archive.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if format == "json" {
					return service.EncodeVenture(cmd.OutOrStdout(), service.FormatJSON, v.Data)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatVentureSummary(v.Data)+"\n\n"+formatter.FormatOverview(v.Data))
				return nil
			}

			items, err := app.Archive.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				entries := make([]historyEntry, 0, len(items))
				for _, it := range items {
					entries = append(entries, historyEntry{
						ID:          it.ID,
						Idea:        it.Idea,
						ProjectName: it.ProjectName,
						PricingType: string(it.Data.Config.PricingModel.Type),
						CreatedAt:   it.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			list := make([]domain.ArchivedVenture, 0, len(items))
			for _, it := range items {
				list = append(list, *it)
			}
			fmt.Fprintln(out, formatter.FormatHistory(list, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of ventures to list")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")
	cmd.Flags().StringVar(&id, "id", "", "show one archived venture instead of the list")
	return cmd
}
