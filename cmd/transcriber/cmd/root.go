package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gemini-transcriber/cmd/transcriber/cmd/prompts"
	"gemini-transcriber/cmd/transcriber/cmd/run"
	"gemini-transcriber/cmd/transcriber/cmd/version"
	"gemini-transcriber/cmd/transcriber/cmd/watch"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcriber",
	Short: "Batch audio transcription with the Gemini API",
	Long: `Batch audio transcription with the Gemini API.
- Drop audio files into the Audio folder
- Pick a prompt template from the prompts folder to set the transcription style
- Each file is sent to Gemini and the text lands in the Transcriptions folder`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(prompts.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
