package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/duplicates"
	"github.com/emilianohg/slotbook/internal/links"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/repository"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage interview sessions",
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an interview session and its slots",
	Long: `Create an interview session for one day. Slots are generated every
step minutes from the start time up to the end time.

Examples:
  slotbook session create --date 2024-06-01 --start 09:00 --end 12:00
  slotbook session create --date 2024-06-01 --start 13:00 --end 15:00 --step 30`,
	Run: func(cmd *cobra.Command, args []string) {
		withApp("session create", func(a *app) error {
			dateFlag, _ := cmd.Flags().GetString("date")
			startFlag, _ := cmd.Flags().GetString("start")
			endFlag, _ := cmd.Flags().GetString("end")
			step, _ := cmd.Flags().GetInt("step")
			if step == 0 {
				step = a.cfg.StepMinutes
			}

			date, err := models.ParseDate(dateFlag)
			if err != nil {
				return err
			}
			start, err := models.ParseTimeOfDay(startFlag)
			if err != nil {
				return err
			}
			end, err := models.ParseTimeOfDay(endFlag)
			if err != nil {
				return err
			}

			session, err := a.repo.CreateSession(date, start, end, step)
			if err != nil {
				return err
			}

			fmt.Printf("Created session %s\n", session.ID)
			fmt.Printf("Date: %s, %s-%s, %d slots\n", session.Date.Format(), session.StartTime, session.EndTime, len(session.Slots))
			fmt.Printf("Reservation link: %s\n", links.ReservationURL(a.cfg.BaseURL, session.ID))
			return nil
		})
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interview sessions",
	Run: func(cmd *cobra.Command, args []string) {
		withApp("session list", func(a *app) error {
			past, _ := cmd.Flags().GetBool("past")

			sessions, err := a.repo.ListSessions()
			if err != nil {
				return err
			}
			if past {
				sessions = repository.Past(sessions, models.Today())
			}

			if len(sessions) == 0 {
				fmt.Println("No interview sessions yet.")
				return nil
			}
			for _, s := range sessions {
				fmt.Printf("%s  %s  %s-%s  %d/%d booked\n",
					s.ID, s.Date, s.StartTime, s.EndTime, s.BookedCount(), len(s.Slots))
			}
			fmt.Println()
			return a.printLastSaved()
		})
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the slots of a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withApp("session show", func(a *app) error {
			session, err := a.repo.GetSession(args[0])
			if err != nil {
				return err
			}
			all, err := a.repo.ListAll()
			if err != nil {
				return err
			}
			printSession(duplicates.Annotate(*session, all))
			return nil
		})
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and every booking in it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withApp("session delete", func(a *app) error {
			if err := a.repo.DeleteSession(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted session %s\n", args[0])
			return nil
		})
	},
}

func init() {
	sessionCreateCmd.Flags().String("date", string(models.Today()), "Interview date (YYYY-MM-DD)")
	sessionCreateCmd.Flags().String("start", "", "First slot time (HH:MM)")
	sessionCreateCmd.Flags().String("end", "", "Last slot time (HH:MM)")
	sessionCreateCmd.Flags().Int("step", 0, "Minutes between slots (default from config)")
	sessionCreateCmd.MarkFlagRequired("start")
	sessionCreateCmd.MarkFlagRequired("end")

	sessionListCmd.Flags().Bool("past", false, "Only sessions before today, most recent first")

	sessionCmd.AddCommand(sessionCreateCmd, sessionListCmd, sessionShowCmd, sessionDeleteCmd)
}

func printSession(s models.Session) {
	fmt.Printf("%s (%s)\n", s.Date.Format(), s.ID)
	fmt.Printf("%s-%s, %d of %d slots booked\n\n", s.StartTime, s.EndTime, s.BookedCount(), len(s.Slots))

	for _, slot := range s.Slots {
		line := fmt.Sprintf("  %s  %-10s", slot.Time, slot.State())
		if a := slot.Interviewee; a != nil {
			line += fmt.Sprintf(" %s, %s, %s", a.Name, a.Phone, a.Position)
			if a.Rating != nil {
				line += fmt.Sprintf(", rated %d", *a.Rating)
			}
			if a.IsDuplicate {
				line += "  [applied before]"
			}
		}
		fmt.Println(line)
	}
}

// findSlot accepts a slot id or its HH:MM time.
func findSlot(s *models.Session, ref string) (models.Slot, error) {
	if i, ok := s.SlotByID(ref); ok {
		return s.Slots[i], nil
	}
	if t, err := models.ParseTimeOfDay(ref); err == nil {
		if i, ok := s.SlotByTime(t); ok {
			return s.Slots[i], nil
		}
	}
	return models.Slot{}, apperr.NotFound("slot", strings.TrimSpace(ref))
}
