package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/db"
	"github.com/balkashynov/healthclub/internal/parser"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Register members and track their goals and health metrics",
}

var memberRegisterCmd = &cobra.Command{
	Use:     "register",
	Short:   "Register a new member",
	Example: `  healthclub member register --name "John Doe" --email john@example.com --dob 1995-05-10`,
	Args:    cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		dobStr, _ := cmd.Flags().GetString("dob")
		gender, _ := cmd.Flags().GetString("gender")
		phone, _ := cmd.Flags().GetString("phone")

		dob, err := parser.ParseDate(dobStr)
		if err != nil {
			return err
		}

		member, err := a.store.RegisterMember(cmd.Context(), db.RegisterMemberRequest{
			FullName:    name,
			Email:       email,
			DateOfBirth: dob,
			Gender:      gender,
			Phone:       phone,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Member registered with id: %d\n", member.ID)
		return nil
	}),
}

var memberGoalCmd = &cobra.Command{
	Use:   "goal [member-id]",
	Short: "Update a member's fitness goal and target weight",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		memberID, err := parser.ParseID(args[0])
		if err != nil {
			return err
		}
		goal, _ := cmd.Flags().GetString("goal")
		targetStr, _ := cmd.Flags().GetString("target-weight")
		target, err := parser.ParseOptionalFloat(targetStr)
		if err != nil {
			return err
		}
		if strings.TrimSpace(goal) == "" && target == nil {
			return fmt.Errorf("nothing to update: pass --goal and/or --target-weight")
		}

		member, err := a.store.UpdateMemberGoal(cmd.Context(), db.UpdateGoalRequest{
			MemberID:     memberID,
			FitnessGoal:  goal,
			TargetWeight: target,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Goal updated for %s\n", member.FullName)
		if member.FitnessGoal != nil {
			fmt.Fprintf(out, "Goal: %s\n", *member.FitnessGoal)
		}
		if member.TargetWeight != nil {
			fmt.Fprintf(out, "Target weight: %.1f kg\n", *member.TargetWeight)
		}
		return nil
	}),
}

var memberMetricCmd = &cobra.Command{
	Use:   "metric [member-id]",
	Short: "Record a health metric for a member",
	Example: `  healthclub member metric 1 --weight 78.5 --heart-rate 62
  healthclub member metric 1 --at "2025-01-06 08:00" --body-fat 21`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		memberID, err := parser.ParseID(args[0])
		if err != nil {
			return err
		}

		req := db.HealthMetricRequest{MemberID: memberID}
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			t, err := parser.ParseDateTime(at)
			if err != nil {
				return err
			}
			req.RecordedAt = &t
		}
		weight, _ := cmd.Flags().GetString("weight")
		if req.Weight, err = parser.ParseOptionalFloat(weight); err != nil {
			return err
		}
		heartRate, _ := cmd.Flags().GetString("heart-rate")
		if req.HeartRate, err = parser.ParseOptionalInt(heartRate); err != nil {
			return err
		}
		bodyFat, _ := cmd.Flags().GetString("body-fat")
		if req.BodyFatPercentage, err = parser.ParseOptionalFloat(bodyFat); err != nil {
			return err
		}

		metric, err := a.store.AddHealthMetric(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Health metric recorded with id: %d\n", metric.ID)
		return nil
	}),
}

var memberLookupCmd = &cobra.Command{
	Use:   "lookup [name]",
	Short: "Find members by name with their latest health metric",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		results, err := a.store.LookupMembers(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No members found.")
			return nil
		}

		fmt.Fprintf(out, "%-4s %-25s %-25s %-17s %-8s %-5s %s\n", "ID", "NAME", "GOAL", "LAST METRIC", "WEIGHT", "HR", "BODY FAT")
		fmt.Fprintln(out, strings.Repeat("-", 95))
		for _, r := range results {
			fmt.Fprintf(out, "%-4d %-25s %-25s %-17s %-8s %-5s %s\n",
				r.MemberID,
				truncate(r.FullName, 25),
				truncate(deref(r.FitnessGoal), 25),
				formatOptionalTime(r.RecordedAt),
				formatOptionalFloat(r.Weight, "%.1f"),
				formatOptionalInt(r.HeartRate),
				formatOptionalFloat(r.BodyFatPercentage, "%.1f%%"))
		}
		return nil
	}),
}

func init() {
	memberRegisterCmd.Flags().StringP("name", "n", "", "Full name")
	memberRegisterCmd.Flags().StringP("email", "e", "", "Email (must be unique)")
	memberRegisterCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	memberRegisterCmd.Flags().String("gender", "", "Gender")
	memberRegisterCmd.Flags().String("phone", "", "Phone number")

	memberGoalCmd.Flags().StringP("goal", "g", "", "New goal description (empty keeps the current one)")
	memberGoalCmd.Flags().String("target-weight", "", "Target weight in kg")

	memberMetricCmd.Flags().String("at", "", "When it was recorded (YYYY-MM-DD HH:MM, default now)")
	memberMetricCmd.Flags().String("weight", "", "Weight in kg")
	memberMetricCmd.Flags().String("heart-rate", "", "Resting heart rate in bpm")
	memberMetricCmd.Flags().String("body-fat", "", "Body fat percentage")

	memberCmd.AddCommand(memberRegisterCmd, memberGoalCmd, memberMetricCmd, memberLookupCmd)
}
