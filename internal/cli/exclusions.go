package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/addonscan/pkg/exclude"
)

// exclusionsCommand prints the effective exclusion set.
func (c *CLI) exclusionsCommand() *cobra.Command {
	var (
		excludeFile string
		count       bool
	)

	cmd := &cobra.Command{
		Use:   "exclusions",
		Short: "Print the package names dropped before any lookup",
		Long: `Print the package names dropped before any lookup, one per line.

The set is the built-in denylist plus the names from --exclude-file (or
exclude_file in the config file).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("exclude-file") {
				cfg.ExcludeFile = excludeFile
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			var extra []string
			if cfg.ExcludeFile != "" {
				if extra, err = exclude.Load(cfg.ExcludeFile); err != nil {
					return err
				}
			}
			set := exclude.New(extra)

			if count {
				fmt.Fprintln(c.out, set.Len())
				return nil
			}
			for _, name := range set.Names() {
				fmt.Fprintln(c.out, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&excludeFile, "exclude-file", "", "file with extra package names to exclude")
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of names")

	return cmd
}
