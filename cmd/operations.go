/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// propertiesCmd represents the properties command
var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List the configured properties and their table roles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printResult(newOperationsClient().ListProperties())
	},
}

// propertyCmd represents the property command
var propertyCmd = &cobra.Command{
	Use:   "property <propertyId>",
	Short: "Show one configured property",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := newOperationsClient().GetProperty(args[0])
		if err != nil {
			log.Fatalf("Error getting property: %v", err)
		}
		printResult(result)
	},
}

// bookingsCmd represents the bookings command
var bookingsCmd = &cobra.Command{
	Use:   "bookings <propertyId>",
	Short: "List bookings whose stay intersects a date range",
	Long: `List the property's bookings whose stay intersects the inclusive
[start, end] date range. With no dates the range starts today (UTC) and spans
the configured default number of days.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		maxRecords, _ := cmd.Flags().GetInt("maxRecords")
		result, err := newOperationsClient().ListBookingsByRange(cmd.Context(), args[0], start, end, maxRecords)
		if err != nil {
			log.Fatalf("Error listing bookings: %v", err)
		}
		printResult(result)
	},
}

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today <propertyId>",
	Short: "Show today's and tomorrow's check-ins and check-outs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := newOperationsClient().TodaysCheckinsCheckouts(cmd.Context(), args[0])
		if err != nil {
			log.Fatalf("Error building check-in/check-out digest: %v", err)
		}
		printResult(result)
	},
}

// findBookingCmd represents the find-booking command
var findBookingCmd = &cobra.Command{
	Use:   "find-booking <propertyId> <query>",
	Short: "Search a property's bookings by guest name or email substring",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		maxRecords, _ := cmd.Flags().GetInt("maxRecords")
		result, err := newOperationsClient().FindBookingByGuest(cmd.Context(), args[0], args[1], maxRecords)
		if err != nil {
			log.Fatalf("Error searching bookings: %v", err)
		}
		printResult(result)
	},
}

// guestContactCmd represents the guest-contact command
var guestContactCmd = &cobra.Command{
	Use:   "guest-contact <query>",
	Short: "Find guests across all properties with their correlated bookings",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		maxRecords, _ := cmd.Flags().GetInt("maxRecords")
		result, err := newOperationsClient().GetGuestContact(cmd.Context(), args[0], maxRecords)
		if err != nil {
			log.Fatalf("Error looking up guest contact: %v", err)
		}
		printResult(result)
	},
}

// contactsCmd represents the contacts command
var contactsCmd = &cobra.Command{
	Use:   "contacts <propertyId>",
	Short: "List a property's contacts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		maxRecords, _ := cmd.Flags().GetInt("maxRecords")
		result, err := newOperationsClient().ListContacts(cmd.Context(), args[0], maxRecords)
		if err != nil {
			log.Fatalf("Error listing contacts: %v", err)
		}
		printResult(result)
	},
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
	rootCmd.AddCommand(propertyCmd)
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(findBookingCmd)
	rootCmd.AddCommand(guestContactCmd)
	rootCmd.AddCommand(contactsCmd)

	bookingsCmd.Flags().StringP("start", "s", "", "Range start date (YYYY-MM-DD), defaults to today")
	bookingsCmd.Flags().StringP("end", "e", "", "Range end date (YYYY-MM-DD), defaults to start plus the configured range")
	bookingsCmd.Flags().IntP("maxRecords", "m", 0, "Maximum records to return")
	findBookingCmd.Flags().IntP("maxRecords", "m", 0, "Maximum records to return")
	guestContactCmd.Flags().IntP("maxRecords", "m", 0, "Maximum records to return per table")
	contactsCmd.Flags().IntP("maxRecords", "m", 0, "Maximum records to return")
}
