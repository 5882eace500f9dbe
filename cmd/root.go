package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "eletroseed",
	Short: "Populate the EletroPlus store database with sample data",
	Long: `
eletroseed fills an already-migrated EletroPlus schema with internally
consistent sample data for development and testing: categories, products,
users, shipping addresses, coupons, carts, orders, payments, reviews,
banners and contact messages.

The whole run executes inside a single transaction. Any failure rolls
everything back and leaves the database untouched.

Database Support:
- PostgreSQL
- MySQL
- SQLite`,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			cmd.Printf("eletroseed version %s\n", Version)
			return
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./eletroseed.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("eletroseed.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
