package main

import (
	"fmt"
	"os"

	"product-catalog/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// v holds configuration shared by every command; flags bind into it.
var v = viper.New()

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Product catalogue REST API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	config.SetDefaults(v)

	rootCmd.PersistentFlags().IntP("port", "p", 3000, "Port to run the server on")
	rootCmd.PersistentFlags().String("host", "0.0.0.0", "Host to bind the server to")
	_ = v.BindPFlag("server.port", rootCmd.PersistentFlags().Lookup("port"))
	_ = v.BindPFlag("server.host", rootCmd.PersistentFlags().Lookup("host"))
}

func main() {
	// A missing .env is normal outside local development; real environment
	// variables always win over the file.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
