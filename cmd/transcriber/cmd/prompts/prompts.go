package prompts

import (
	"fmt"

	"github.com/spf13/cobra"

	"gemini-transcriber/internal/config"
	"gemini-transcriber/internal/prompt"
)

var (
	configPath string
	promptsDir string
)

var Cmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the available prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if promptsDir != "" {
			cfg.Paths.Prompts = promptsDir
		}

		catalog, err := prompt.Load(cfg.Paths.Prompts)
		if err != nil {
			return err
		}

		for _, t := range catalog {
			fmt.Printf("%s. %s\n", t.ID, t.Title)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "config file")
	Cmd.Flags().StringVar(&promptsDir, "prompts-dir", "", "prompt templates folder (overrides config)")
}
