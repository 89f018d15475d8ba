package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emilianohg/slotbook/internal/export"
	"github.com/emilianohg/slotbook/internal/links"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/ranking"
)

var shortlistCmd = &cobra.Command{
	Use:   "shortlist",
	Short: "List the top rated applicants across all sessions",
	Run: func(cmd *cobra.Command, args []string) {
		withApp("shortlist", func(a *app) error {
			minRating := a.cfg.MinRating
			if cmd.Flags().Changed("min-rating") {
				minRating, _ = cmd.Flags().GetInt("min-rating")
			}
			if err := models.ValidateRating(minRating); err != nil {
				return err
			}

			all, err := a.repo.ListAll()
			if err != nil {
				return err
			}

			entries := ranking.TopCandidates(all, minRating)
			if len(entries) == 0 {
				fmt.Printf("No candidates rated %d-5 yet.\n", minRating)
				return nil
			}
			for _, e := range entries {
				rate := e.StartRate
				if rate == "" {
					rate = "Not specified"
				}
				fmt.Printf("%d*  %-24s %-8s %-14s %-14s %s\n",
					e.Rating, e.Name, e.Position, rate, e.Phone, e.InterviewDate.Format())
			}
			return nil
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export completed interviews as CSV",
	Long: `Export completed interviews as CSV.

Examples:
  slotbook export                      # every completed interview
  slotbook export --today              # today's interviews only
  slotbook export --date 2024-06-01 -o -   # one day, to stdout`,
	Run: func(cmd *cobra.Command, args []string) {
		withApp("export", func(a *app) error {
			var filter export.Filter
			if today, _ := cmd.Flags().GetBool("today"); today {
				filter.Date = models.Today()
			}
			if raw, _ := cmd.Flags().GetString("date"); raw != "" {
				d, err := models.ParseDate(raw)
				if err != nil {
					return err
				}
				filter.Date = d
			}

			all, err := a.repo.ListAll()
			if err != nil {
				return err
			}
			if len(export.Rows(all, filter)) == 0 {
				fmt.Println("No completed interviews to export.")
				return nil
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "-" {
				_, err := export.WriteCSV(os.Stdout, all, filter)
				return err
			}
			if output == "" {
				output = filepath.Join(a.cfg.ExportsOutput, export.Filename(models.Today()))
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := export.WriteCSV(f, all, filter)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d interviews to %s\n", n, output)
			return nil
		})
	},
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Print or open session links",
}

var linkReserveCmd = &cobra.Command{
	Use:   "reserve <session-id>",
	Short: "Print the public reservation link for a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withApp("link reserve", func(a *app) error {
			if _, err := a.repo.GetSession(args[0]); err != nil {
				return err
			}
			fmt.Println(links.ReservationURL(a.cfg.BaseURL, args[0]))
			return nil
		})
	},
}

var linkListingCmd = &cobra.Command{
	Use:   "listing <session-id>",
	Short: "Print the admin listing link for a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withApp("link listing", func(a *app) error {
			if _, err := a.repo.GetSession(args[0]); err != nil {
				return err
			}
			fmt.Println(links.ListingURL(a.cfg.BaseURL, args[0]))
			return nil
		})
	},
}

var linkOpenCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Resolve a reservation or listing link and show what it presents",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withApp("link open", func(a *app) error {
			view, err := links.NewResolver(a.repo).ResolveURL(args[0])
			if err != nil {
				return err
			}
			if view.Link.Kind == links.KindReserve {
				fmt.Printf("Open slots on %s:\n", view.Session.Date.Format())
				if len(view.Session.Slots) == 0 {
					fmt.Println("  none, every slot is booked")
				}
				for _, slot := range view.Session.Slots {
					fmt.Printf("  %s  (%s)\n", slot.Time, slot.ID)
				}
				return nil
			}
			printSession(view.Session)
			return nil
		})
	},
}

func init() {
	shortlistCmd.Flags().Int("min-rating", 0, "Lowest rating to include (default from config)")

	exportCmd.Flags().Bool("today", false, "Only interviews from sessions dated today")
	exportCmd.Flags().String("date", "", "Only interviews from sessions on this date (YYYY-MM-DD)")
	exportCmd.Flags().StringP("output", "o", "", "Output file, or - for stdout (default in exports_output)")

	linkCmd.AddCommand(linkReserveCmd, linkListingCmd, linkOpenCmd)
}
