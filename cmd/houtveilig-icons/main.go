package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Polder-Labs/houtveilig"
	"github.com/Polder-Labs/houtveilig/logging"
	"github.com/Polder-Labs/houtveilig/utils"
	"github.com/spf13/cobra"
)

// Version indicates the current build version.
var Version = "dev"

var (
	// Flags
	configPath string
	outputDir  string
	workers    int
	verify     bool
	debug      bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:           "houtveilig-icons",
	Short:         "Generate the HoutVeilig web app icons",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&outputDir, "out", "o", "", "Output directory (default \"icons\")")
	flags.IntVar(&workers, "conc", 1, "Number of icons to generate concurrently")
	flags.BoolVar(&verify, "verify", false, "Check every generated file")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.StringVar(&logFile, "log-file", "", "Write a JSON log to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText("Error generating the icons:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := houtveilig.LoadConfig(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	proc, err := houtveilig.NewProcessor(cfg, logger)
	if err != nil {
		return err
	}
	emitter := houtveilig.NewEmitter(cfg, logger)

	spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText("HoutVeilig", utils.StatusMessage),
		utils.DecorateText("generating icons...", utils.DefaultMessage),
	), 80*time.Millisecond, true)

	now := time.Now()
	spinner.Start()
	results, err := emitter.Run(proc)
	spinner.Stop()

	out := cmd.OutOrStdout()
	houtveilig.PrintResults(out, results)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		dir = cfg.OutputDir
	}
	houtveilig.PrintSummary(out, dir, time.Since(now))

	return nil
}

// applyFlags overrides the configuration with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *houtveilig.Config) {
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("conc") {
		cfg.Workers = workers
	}
	if flags.Changed("verify") {
		cfg.Verify = verify
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
}
