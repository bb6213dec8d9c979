package main

import (
	"fmt"
	"os"

	"galleray/internal/config"
	"galleray/internal/errors"
	"galleray/internal/gui"
	"galleray/internal/log"
	"galleray/internal/scan"
	"galleray/internal/tui"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
)

// Entry point for the application
func main() {
	var strict bool

	rootCmd := &cobra.Command{
		Use:     "galleray [directory]",
		Short:   "A minimalist image gallery",
		Long:    `Galleray opens a directory of images and lets you step through them with buttons or the keyboard.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return runGUI(dir, strict)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/galleray/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail startup when the directory argument is unusable")

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(pickCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.IsEmptyDirectory(err) {
			os.Exit(66) // EX_NOINPUT
		}
		os.Exit(1)
	}
}

// loadConfig resolves the configuration. An unreadable file means defaults
// plus a warning, not a crash.
func loadConfig() *config.Config {
	log.SetDebug(debug)

	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		log.Warnf("Could not load config: %v. Using default settings.", err)
		cfg = config.New()
	}
	return cfg
}

// runGUI launches the viewer window
func runGUI(dir string, strict bool) error {
	cfg := loadConfig()
	if dir == "" {
		dir = cfg.Directories.Default
	}

	scanner, err := scan.New(cfg.Scan.IncludePatterns...)
	if err != nil {
		return err
	}

	// Strict mode turns an unusable startup directory into a non-zero exit
	// instead of an in-window message.
	if dir != "" && (strict || cfg.Settings.Strict) {
		if _, err := scanner.Scan(dir); err != nil {
			return err
		}
	}

	app := gui.NewApp(cfg, scanner)
	app.Run(dir)
	return nil
}

// scanCmd lists the images of a directory without opening a window
func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [directory]",
		Short: "List the supported images in a directory",
		Long:  `Scan a directory and print the image set that the viewer would load, in display order.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			dir, err := targetDir(args, cfg)
			if err != nil {
				return err
			}

			scanner, err := scan.New(cfg.Scan.IncludePatterns...)
			if err != nil {
				return err
			}
			images, err := scanner.Scan(dir)
			if err != nil {
				return err
			}
			if len(images) == 0 {
				return errors.NewScanError("no supported images found", dir, errors.EmptyDirectory, nil)
			}
			for _, img := range images {
				fmt.Fprintln(cmd.OutOrStdout(), img.Path)
			}
			return nil
		},
	}
}

// pickCmd browses a directory in the terminal and prints the chosen image
func pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [directory]",
		Short: "Pick an image from a directory in the terminal",
		Long:  `Browse the image set of a directory in a terminal UI and print the selected path, for use in shell pipelines.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			dir, err := targetDir(args, cfg)
			if err != nil {
				return err
			}

			scanner, err := scan.New(cfg.Scan.IncludePatterns...)
			if err != nil {
				return err
			}
			paths, err := scanner.Paths(dir)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.NewScanError("no supported images found", dir, errors.EmptyDirectory, nil)
			}

			choice, err := tui.Pick(paths)
			if err != nil {
				return err
			}
			if choice != "" {
				fmt.Fprintln(cmd.OutOrStdout(), choice)
			}
			return nil
		},
	}
}

// targetDir resolves the positional directory argument, falling back to the
// configured default and finally the working directory.
func targetDir(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Directories.Default != "" {
		return cfg.Directories.Default, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error getting current directory: %w", err)
	}
	return wd, nil
}
