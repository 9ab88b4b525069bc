// internal/cli/show_config.go
package dlbench

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// showCmd groups the inspection subcommands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display dlbench settings",
}

// showConfigCmd prints the merged configuration (flags > config > defaults).
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the merged benchmark configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("configuration is not initialized")
		}
		pp.Println(cfg)
		return nil
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
