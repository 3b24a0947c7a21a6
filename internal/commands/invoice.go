package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/db"
	"github.com/balkashynov/healthclub/internal/parser"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Bill members",
}

var invoiceCreateCmd = &cobra.Command{
	Use:     "create [member-id] [amount]",
	Short:   "Create an unpaid invoice (admin)",
	Example: `  healthclub invoice create 1 49.99 --description "monthly membership"`,
	Args:    cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		memberID, err := parser.ParseID(args[0])
		if err != nil {
			return err
		}
		amount, err := parser.ParseAmount(args[1])
		if err != nil {
			return err
		}
		description, _ := cmd.Flags().GetString("description")

		inv, err := a.store.CreateInvoice(cmd.Context(), db.InvoiceRequest{
			MemberID:    memberID,
			Amount:      amount,
			Description: description,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Invoice created with id: %d (%s, %s)\n", inv.ID, inv.Amount.StringFixed(2), inv.Status)
		return nil
	}),
}

func init() {
	invoiceCreateCmd.Flags().StringP("description", "d", "", "e.g. monthly membership, PT package")
	invoiceCmd.AddCommand(invoiceCreateCmd)
}
