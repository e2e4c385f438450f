// Package cmd provides the entrypoint and CLI command configuration for the
// lazyfit application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kpumuk/lazyfit/internal/config"
	"github.com/kpumuk/lazyfit/internal/health"
	"github.com/kpumuk/lazyfit/internal/ui"
)

func buildVersion(version, commit, date, builtBy string) string {
	result := version
	if commit != "" {
		result = fmt.Sprintf("%s\ncommit: %s", result, commit)
	}
	if date != "" {
		result = fmt.Sprintf("%s\nbuilt at: %s", result, date)
	}
	if builtBy != "" {
		result = fmt.Sprintf("%s\nbuilt by: %s", result, builtBy)
	}
	result = fmt.Sprintf("%s\ngoos: %s\ngoarch: %s", result, runtime.GOOS, runtime.GOARCH)
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
		result = fmt.Sprintf("%s\nmodule version: %s, checksum: %s", result, info.Main.Version, info.Main.Sum)
	}

	return result
}

// Execute initializes and runs the lazyfit terminal application.
func Execute(version, commit, date, builtBy string) error {
	rootCmd := &cobra.Command{
		Use:   "lazyfit",
		Short: "A terminal dashboard for daily activity metrics.",
		Long:  "A terminal dashboard for daily activity metrics.",
		Args:  cobra.NoArgs,
	}

	rootCmd.Version = buildVersion(version, commit, date, builtBy)
	rootCmd.SetVersionTemplate(`lazyfit {{printf "version %s\n" .Version}}`)

	rootCmd.Flags().String(
		"cpuprofile",
		"",
		"write cpu profile to file",
	)

	rootCmd.Flags().BoolP(
		"help",
		"h",
		false,
		"help for lazyfit",
	)

	rootCmd.Flags().String(
		"api",
		"",
		"activity API URL (default "+health.DefaultAPIURL+")",
	)
	rootCmd.Flags().Int(
		"refresh",
		0,
		"refresh interval in seconds",
	)
	rootCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "url":
			name = "api"
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cpuprofile, err := cmd.Flags().GetString("cpuprofile")
		if err != nil {
			return fmt.Errorf("parse cpuprofile flag: %w", err)
		}

		apiURL, err := cmd.Flags().GetString("api")
		if err != nil {
			return fmt.Errorf("parse api flag: %w", err)
		}

		refresh, err := cmd.Flags().GetInt("refresh")
		if err != nil {
			return fmt.Errorf("parse refresh flag: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		// Flags win over the config file.
		if apiURL == "" {
			apiURL = cfg.APIURL
		}
		if refresh <= 0 {
			refresh = cfg.RefreshSeconds
		}

		client, err := health.NewClient(apiURL)
		if err != nil {
			return fmt.Errorf("create API client: %w", err)
		}

		var profileFile *os.File
		if cpuprofile != "" {
			file, err := os.Create(cpuprofile)
			if err != nil {
				return fmt.Errorf("create cpuprofile file: %w", err)
			}
			profileFile = file
			if err := pprof.StartCPUProfile(profileFile); err != nil {
				_ = profileFile.Close()
				return fmt.Errorf("start cpu profile: %w", err)
			}
			defer func() {
				pprof.StopCPUProfile()
				_ = profileFile.Close()
			}()
		}

		app := ui.New(client, time.Duration(refresh)*time.Second)
		p := tea.NewProgram(app)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run lazyfit: %w", err)
		}

		return nil
	}

	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(rootCmd.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}
