/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stayops/airtable-booking-gateway/airtable"
	"github.com/stayops/airtable-booking-gateway/ops"
	"github.com/stayops/airtable-booking-gateway/registry"
)

var log = logrus.New()

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "airtable-booking-gateway",
	Short: "Read-only query gateway for Airtable-backed property bookings",
	Long: `airtable-booking-gateway runs composed read queries against the
Airtable bases of one or more configured properties: date-ranged booking
lookups, check-in/check-out digests, guest search, contact listing and
cross-property guest-to-booking correlation.

Properties, their tables and per-table field allow-lists are defined in a
YAML config file; the API key comes from the config or AIRTABLE_API_KEY.
Every command prints its result as JSON on stdout.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logVerbosity, _ := cmd.Flags().GetString("verbosity")
		logLevel, err := logrus.ParseLevel(logVerbosity)
		if err != nil {
			log.Fatalf("Invalid log level: %s", logVerbosity)
		}
		log.SetLevel(logLevel)
		log.SetFormatter(&logrus.TextFormatter{})
		if viper.GetBool("structuredLogs") {
			log.SetFormatter(&logrus.JSONFormatter{})
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringP("verbosity", "v", "info", "Log level (trace, debug, info, warn, error)")
}

func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.BindEnv("apiKey", "AIRTABLE_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	log.Debugf("Using config file: %s", viper.ConfigFileUsed())
}

// newOperationsClient wires the registry, fetcher and operations clients from
// the loaded configuration.
func newOperationsClient() *ops.OperationsClient {
	apiKey := viper.GetString("apiKey")
	if apiKey == "" {
		log.Fatal("No API key configured: set apiKey in the config file or AIRTABLE_API_KEY")
	}

	properties, err := propertiesFromConfig()
	if err != nil {
		log.Fatalf("Error parsing properties from config: %v", err)
	}

	registryClient := registry.NewRegistryClient(properties, log)
	fetchClient := airtable.NewFetchClient(apiKey, viper.GetInt("maxRecords"), log)
	if baseURL := viper.GetString("baseUrl"); baseURL != "" {
		fetchClient.BaseURL = baseURL
	}

	return ops.NewOperationsClient(registryClient, fetchClient, viper.GetInt("defaultRangeDays"), log)
}

// printResult writes one operation result as JSON to stdout.
func printResult(result any) {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("Error during Marshal(): ", err)
	}
	os.Stdout.Write(encoded)
	os.Stdout.Write([]byte("\n"))
}
