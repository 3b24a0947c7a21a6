package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/balkashynov/healthclub/internal/booking"
	"github.com/balkashynov/healthclub/internal/db"
	"github.com/balkashynov/healthclub/internal/parser"
)

func checkID(s string) error {
	_, err := parser.ParseID(s)
	return err
}

func checkDateTime(s string) error {
	_, err := parser.ParseDateTime(s)
	return err
}

func checkFloat(s string) error {
	_, err := parser.ParseOptionalFloat(s)
	return err
}

func checkInt(s string) error {
	_, err := parser.ParseOptionalInt(s)
	return err
}

// ids parses already checked id fields
func ids(values map[string]string, keys ...string) []uint {
	out := make([]uint, len(keys))
	for i, k := range keys {
		out[i], _ = parser.ParseID(values[k])
	}
	return out
}

// MainMenu returns the options of the interactive menu
func MainMenu(store *db.Store, booker *booking.Booker) []MenuOption {
	return []MenuOption{
		{"Register new member", func() Form { return registerMemberForm(store) }},
		{"Update member fitness goal", func() Form { return updateGoalForm(store) }},
		{"Add health metric for a member", func() Form { return healthMetricForm(store) }},
		{"Book PT session", func() Form { return bookPTForm(booker) }},
		{"View trainer schedule", func() Form { return trainerScheduleForm(store) }},
		{"Trainer member lookup", func() Form { return memberLookupForm(store) }},
		{"Create class session (admin)", func() Form { return classSessionForm(booker) }},
		{"Create invoice (admin)", func() Form { return invoiceForm(store) }},
		{"Exit", nil},
	}
}

func registerMemberForm(store *db.Store) Form {
	return Form{
		Title: "👤 Register New Member",
		Fields: []Field{
			{Key: "name", Label: "Full name", Required: true},
			{Key: "email", Label: "Email", Placeholder: "must be unique", Required: true},
			{Key: "dob", Label: "Date of birth", Placeholder: "YYYY-MM-DD (Enter to skip)", Check: func(s string) error {
				_, err := parser.ParseDate(s)
				return err
			}},
			{Key: "gender", Label: "Gender"},
			{Key: "phone", Label: "Phone"},
		},
		Submit: func(ctx context.Context, v map[string]string) (string, error) {
			dob, _ := parser.ParseDate(v["dob"])
			member, err := store.RegisterMember(ctx, db.RegisterMemberRequest{
				FullName:    v["name"],
				Email:       v["email"],
				DateOfBirth: dob,
				Gender:      v["gender"],
				Phone:       v["phone"],
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("✅ Member registered with id: %d", member.ID), nil
		},
	}
}

func updateGoalForm(store *db.Store) Form {
	return Form{
		Title: "🎯 Update Fitness Goal",
		Fields: []Field{
			{Key: "member", Label: "Member id", Required: true, Check: checkID},
			{Key: "goal", Label: "New goal", Placeholder: "Enter to keep the current goal"},
			{Key: "target", Label: "Target weight (kg)", Check: checkFloat},
		},
		Submit: func(ctx context.Context, v map[string]string) (string, error) {
			target, _ := parser.ParseOptionalFloat(v["target"])
			member, err := store.UpdateMemberGoal(ctx, db.UpdateGoalRequest{
				MemberID:     ids(v, "member")[0],
				FitnessGoal:  v["goal"],
				TargetWeight: target,
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("✅ Goal updated for %s", member.FullName), nil
		},
	}
}

func healthMetricForm(store *db.Store) Form {
	return Form{
		Title: "❤️ Add Health Metric",
		Fields: []Field{
			{Key: "member", Label: "Member id", Required: true, Check: checkID},
			{Key: "at", Label: "Recorded at", Placeholder: "YYYY-MM-DD HH:MM (Enter for now)", Check: checkDateTime},
			{Key: "weight", Label: "Weight (kg)", Check: checkFloat},
			{Key: "hr", Label: "Heart rate (bpm)", Check: checkInt},
			{Key: "fat", Label: "Body fat %", Check: checkFloat},
		},
		Submit: func(ctx context.Context, v map[string]string) (string, error) {
			req := db.HealthMetricRequest{MemberID: ids(v, "member")[0]}
			if v["at"] != "" {
				at, _ := parser.ParseDateTime(v["at"])
				req.RecordedAt = &at
			}
			req.Weight, _ = parser.ParseOptionalFloat(v["weight"])
			req.HeartRate, _ = parser.ParseOptionalInt(v["hr"])
			req.BodyFatPercentage, _ = parser.ParseOptionalFloat(v["fat"])

			metric, err := store.AddHealthMetric(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("✅ Health metric recorded with id: %d", metric.ID), nil
		},
	}
}

func bookPTForm(booker *booking.Booker) Form {
	return Form{
		Title: "🏋️ Book PT Session",
		Fields: []Field{
			{Key: "member", Label: "Member id", Required: true, Check: checkID},
			{Key: "trainer", Label: "Trainer id", Required: true, Check: checkID},
			{Key: "room", Label: "Room id", Required: true, Check: checkID},
			{Key: "start", Label: "Start time", Placeholder: "YYYY-MM-DD HH:MM", Required: true, Check: checkDateTime},
			{Key: "end", Label: "End time", Placeholder: "YYYY-MM-DD HH:MM", Required: true, Check: checkDateTime},
		},
		Submit: func(ctx context.Context, v map[string]string) (string, error) {
			id := ids(v, "member", "trainer", "room")
			start, _ := parser.ParseDateTime(v["start"])
			end, _ := parser.ParseDateTime(v["end"])

			sessionID, err := booker.BookPTSession(ctx, booking.PTRequest{
				MemberID: id[0], TrainerID: id[1], RoomID: id[2], Start: start, End: end,
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("✅ PT session booked with id: %d", sessionID), nil
		},
	}
}

func trainerScheduleForm(store *db.Store) Form {
	return Form{
		Title:  "📅 Trainer Schedule",
		Fields: []Field{{Key: "trainer", Label: "Trainer id", Required: true, Check: checkID}},
		Submit: func(ctx context.Context, v map[string]string) (string, error) {
			sched, err := store.TrainerSchedule(ctx, ids(v, "trainer")[0])
			if err != nil {
				return "", err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Schedule for %s\n", sched.Trainer.FullName)
			if len(sched.Entries) == 0 {
				b.WriteString("No sessions scheduled.")
			}
			for _, e := range sched.Entries {
				fmt.Fprintf(&b, "\n[%s #%d] %s  %s  %s (%s)", e.Kind, e.ID, parser.FormatWindow(e.StartTime, e.EndTime), e.RoomName, e.Title, e.Status)
			}
			return b.String(), nil
		},
	}
}

func memberLookupForm(store *db.Store) Form {
	return Form{
		Title:  "🔎 Member Lookup",
		Fields: []Field{{Key: "name", Label: "Part of member name", Required: true}},
		Submit: func(ctx context.Context, v map[string]string) (string, error) {
			results, err := store.LookupMembers(ctx, v["name"])
			if err != nil {
				return "", err
			}
			if len(results) == 0 {
				return "No members found.", nil
			}

			var b strings.Builder
			for i, r := range results {
				if i > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "#%d %s", r.MemberID, r.FullName)
				if r.FitnessGoal != nil {
					fmt.Fprintf(&b, "  goal: %s", *r.FitnessGoal)
				}
				if r.RecordedAt == nil {
					b.WriteString("  (no metrics yet)")
					continue
				}
				fmt.Fprintf(&b, "  last metric %s", r.RecordedAt.Local().Format(parser.DateTimeLayout))
				if r.Weight != nil {
					fmt.Fprintf(&b, "  %.1f kg", *r.Weight)
				}
				if r.HeartRate != nil {
					fmt.Fprintf(&b, "  %d bpm", *r.HeartRate)
				}
				if r.BodyFatPercentage != nil {
					fmt.Fprintf(&b, "  %.1f%% fat", *r.BodyFatPercentage)
				}
			}
			return b.String(), nil
		},
	}
}

func classSessionForm(booker *booking.Booker) Form {
	return Form{
		Title: "🧘 Create Class Session",
		Fields: []Field{
			{Key: "title", Label: "Class title", Required: true},
			{Key: "room", Label: "Room id", Required: true, Check: checkID},
			{Key: "trainer", Label: "Trainer id", Required: true, Check: checkID},
			{Key: "capacity", Label: "Capacity", Required: true, Check: func(s string) error {
				n, err := parser.ParseOptionalInt(s)
				if err != nil {
					return err
				}
				if *n <= 0 {
					return fmt.Errorf("capacity must be a positive number")
				}
				return nil
			}},
			{Key: "start", Label: "Start time", Placeholder: "YYYY-MM-DD HH:MM", Required: true, Check: checkDateTime},
			{Key: "end", Label: "End time", Placeholder: "YYYY-MM-DD HH:MM", Required: true, Check: checkDateTime},
		},
		Submit: func(ctx context.Context, v map[string]string) (string, error) {
			id := ids(v, "room", "trainer")
			capacity, _ := parser.ParseOptionalInt(v["capacity"])
			start, _ := parser.ParseDateTime(v["start"])
			end, _ := parser.ParseDateTime(v["end"])

			classID, err := booker.CreateClassSession(ctx, booking.ClassRequest{
				Title: v["title"], RoomID: id[0], TrainerID: id[1], Capacity: *capacity, Start: start, End: end,
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("✅ Class session created with id: %d", classID), nil
		},
	}
}

func invoiceForm(store *db.Store) Form {
	return Form{
		Title: "🧾 Create Invoice",
		Fields: []Field{
			{Key: "member", Label: "Member id", Required: true, Check: checkID},
			{Key: "amount", Label: "Amount", Required: true, Check: func(s string) error {
				_, err := parser.ParseAmount(s)
				return err
			}},
			{Key: "description", Label: "Description", Placeholder: "e.g. monthly membership, PT package"},
		},
		Submit: func(ctx context.Context, v map[string]string) (string, error) {
			amount, _ := parser.ParseAmount(v["amount"])
			inv, err := store.CreateInvoice(ctx, db.InvoiceRequest{
				MemberID:    ids(v, "member")[0],
				Amount:      amount,
				Description: v["description"],
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("✅ Invoice created with id: %d (%s)", inv.ID, inv.Amount.StringFixed(2)), nil
		},
	}
}
