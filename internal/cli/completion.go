package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for addonscan.

To load completions:

Bash:
  $ source <(addonscan completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ addonscan completion bash > /etc/bash_completion.d/addonscan
  # macOS:
  $ addonscan completion bash > $(brew --prefix)/etc/bash_completion.d/addonscan

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ addonscan completion zsh > "${fpath[1]}/_addonscan"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ addonscan completion fish | source

  # To load completions for each session, execute once:
  $ addonscan completion fish > ~/.config/fish/completions/addonscan.fish

PowerShell:
  PS> addonscan completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> addonscan completion powershell > addonscan.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
