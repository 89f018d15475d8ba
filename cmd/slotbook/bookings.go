package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/models"
	"github.com/emilianohg/slotbook/internal/records"
)

// slotCommand builds a "<verb> <session-id> <slot>" command around one
// lifecycle call.
func slotCommand(use, short string, run func(a *app, cmd *cobra.Command, session *models.Session, slot models.Slot) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <session-id> <slot-id|HH:MM>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			withApp(use, func(a *app) error {
				session, err := a.repo.GetSession(args[0])
				if err != nil {
					return err
				}
				slot, err := findSlot(session, args[1])
				if err != nil {
					return err
				}
				return run(a, cmd, session, slot)
			})
		},
	}
}

func intakeFlags(cmd *cobra.Command) models.Intake {
	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")
	position, _ := cmd.Flags().GetString("position")
	return models.Intake{Name: name, Phone: phone, Position: models.Position(position)}
}

func addIntakeFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Applicant name")
	cmd.Flags().String("phone", "", "Applicant phone")
	cmd.Flags().String("position", "", "Helper, Painter or Foreman")
}

var bookCmd = slotCommand("book", "Book an available slot for an applicant",
	func(a *app, cmd *cobra.Command, session *models.Session, slot models.Slot) error {
		updated, err := a.svc.Book(session.ID, slot.ID, intakeFlags(cmd))
		if err != nil {
			return err
		}
		fmt.Printf("Booked %s at %s\n", intakeFlags(cmd).Name, slot.Time)
		printSession(*updated)
		return nil
	})

var confirmCmd = slotCommand("confirm", "Confirm the applicant will attend",
	func(a *app, cmd *cobra.Command, session *models.Session, slot models.Slot) error {
		if _, err := a.svc.ConfirmAttendance(session.ID, slot.ID); err != nil {
			return err
		}
		fmt.Printf("Confirmed %s\n", slot.Time)
		return nil
	})

var cancelCmd = slotCommand("cancel", "Mark the applicant as unconfirmed",
	func(a *app, cmd *cobra.Command, session *models.Session, slot models.Slot) error {
		if _, err := a.svc.CancelAttendance(session.ID, slot.ID); err != nil {
			return err
		}
		fmt.Printf("Attendance at %s is no longer confirmed\n", slot.Time)
		return nil
	})

var startCmd = slotCommand("start", "Print the interview record template for a booking as YAML",
	func(a *app, cmd *cobra.Command, session *models.Session, slot models.Slot) error {
		record, err := a.svc.StartInterview(session.ID, slot.ID)
		if err != nil {
			return err
		}
		if record.Location == "" && len(a.cfg.Locations) > 0 {
			record.Location = a.cfg.Locations[0]
		}
		return records.Encode(os.Stdout, record)
	})

var completeCmd = slotCommand("complete", "Record the interview outcome",
	func(a *app, cmd *cobra.Command, session *models.Session, slot models.Slot) error {
		record, err := a.svc.StartInterview(session.ID, slot.ID)
		if err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("record"); path != "" {
			if err := records.LoadFile(path, record); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("rating") {
			rating, _ := cmd.Flags().GetInt("rating")
			record.Rating = &rating
		}
		if cmd.Flags().Changed("start-rate") {
			record.StartRate, _ = cmd.Flags().GetString("start-rate")
		}
		if cmd.Flags().Changed("notes") {
			record.Notes, _ = cmd.Flags().GetString("notes")
		}

		if _, err := a.svc.CompleteInterview(session.ID, slot.ID, *record); err != nil {
			return err
		}
		fmt.Printf("Interview at %s completed\n", slot.Time)
		return nil
	})

var editCmd = slotCommand("edit", "Change a booking's applicant details or move it to another time",
	func(a *app, cmd *cobra.Command, session *models.Session, slot models.Slot) error {
		if !slot.IsBooked {
			return apperr.ErrNotBooked
		}

		identity := models.Intake{
			Name:     slot.Interviewee.Name,
			Phone:    slot.Interviewee.Phone,
			Position: slot.Interviewee.Position,
		}
		override := intakeFlags(cmd)
		if override.Name != "" {
			identity.Name = override.Name
		}
		if override.Phone != "" {
			identity.Phone = override.Phone
		}
		if override.Position != "" {
			identity.Position = override.Position
		}

		newTime := slot.Time
		if raw, _ := cmd.Flags().GetString("time"); raw != "" {
			t, err := models.ParseTimeOfDay(raw)
			if err != nil {
				return err
			}
			newTime = t
		}

		updated, err := a.svc.EditBooking(session.ID, slot.ID, newTime, identity)
		if err != nil {
			return err
		}
		printSession(*updated)
		return nil
	})

var unbookCmd = slotCommand("unbook", "Delete a booking and free the slot",
	func(a *app, cmd *cobra.Command, session *models.Session, slot models.Slot) error {
		if _, err := a.svc.DeleteBooking(session.ID, slot.ID); err != nil {
			return err
		}
		fmt.Printf("Slot %s is available again\n", slot.Time)
		return nil
	})

func init() {
	addIntakeFlags(bookCmd)
	bookCmd.MarkFlagRequired("name")
	bookCmd.MarkFlagRequired("phone")
	bookCmd.MarkFlagRequired("position")

	addIntakeFlags(editCmd)
	editCmd.Flags().String("time", "", "Move the booking to this slot time (HH:MM)")

	completeCmd.Flags().String("record", "", "YAML file with the interview answers (see 'slotbook start')")
	completeCmd.Flags().Int("rating", 0, "Rating from 0 to 5")
	completeCmd.Flags().String("start-rate", "", "Agreed starting rate")
	completeCmd.Flags().String("notes", "", "Interviewer notes")
}
