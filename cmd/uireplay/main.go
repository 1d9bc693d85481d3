package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/uireplay/internal/cliconfig"
	"github.com/bft-labs/uireplay/pkg/codec"
	"github.com/bft-labs/uireplay/pkg/log"
	"github.com/bft-labs/uireplay/pkg/replay"
	"github.com/bft-labs/uireplay/pkg/session"
)

const longHelp = `Inspect, convert and watch uireplay input recordings.

Recordings are produced by applications embedding the uireplay library and
stored as timestamped frame streams in binary or JSON form. This tool works
on those files from the outside: summarize them, translate between formats,
apply the merge pass offline, and follow a directory for new recordings.

Configure via ~/.uireplay/config.toml, UIREPLAY_* environment variables, or
flags, in that order of increasing precedence.`

const exampleUsage = `  uireplay inspect uireplay_2026-08-28T10:00:00Z.bin
  uireplay convert session.bin session.json
  uireplay latest --dir ~/recordings
  uireplay watch --dir ~/recordings`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "uireplay",
		Short:   "Inspect, convert and watch uireplay input recordings",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.uireplay/config.toml)")
	root.PersistentFlags().StringVar(&cfg.Dir, "dir", cfg.Dir, "recordings directory")
	root.PersistentFlags().StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "recording file name prefix")
	root.PersistentFlags().StringVar(&cfg.Format, "format", cfg.Format, "recording format (binary or json)")
	root.PersistentFlags().BoolVar(&cfg.Postprocess, "postprocess", cfg.Postprocess, "apply the merge pass when converting")
	root.PersistentFlags().BoolVar(&cfg.Simplify, "simplify", cfg.Simplify, "reserved for symmetry with the library config")
	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	// Merge file and env config before any subcommand runs, respecting
	// flags the user set explicitly.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}
		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cliconfig.ApplyFileConfig(&cfg, fc, changed)
		}
		cliconfig.ApplyEnvConfig(&cfg, changed)

		return cfg.Validate()
	}

	store := codec.NewStore(session.WireMarshaler{})

	root.AddCommand(newInspectCmd(store))
	root.AddCommand(newConvertCmd(store, &cfg))
	root.AddCommand(newCompactCmd(store))
	root.AddCommand(newLatestCmd(&cfg))
	root.AddCommand(newWatchCmd(&cfg))

	if err := root.Execute(); err != nil {
		logger := cliconfig.Logger(cfg.Debug)
		logger.Error().Err(err).Msg("uireplay")
		os.Exit(1)
	}
}

func newInspectCmd(store *codec.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a recording's frames and events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := store.Load(args[0])
			if err != nil {
				return err
			}
			total := 0
			for i, f := range frames {
				fmt.Fprintf(cmd.OutOrStdout(), "frame %4d  %s  %d event(s)\n",
					i, f.Time.RFC3339(), len(f.Events))
				total += len(f.Events)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d frame(s), %d event(s)\n", len(frames), total)
			return nil
		},
	}
}

func newConvertCmd(store *codec.Store, cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a recording in the format implied by the output extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := store.Load(args[0])
			if err != nil {
				return err
			}
			if cfg.Postprocess {
				frames = session.Compact(frames)
			}
			if err := store.Save(args[1], frames); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames)\n", args[1], len(frames))
			return nil
		},
	}
}

func newCompactCmd(store *codec.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "compact <in> <out>",
		Short: "Apply the merge pass to a recording",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := store.Load(args[0])
			if err != nil {
				return err
			}
			merged := session.Compact(frames)
			if err := store.Save(args[1], merged); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d frames -> %d frames\n", len(frames), len(merged))
			return nil
		},
	}
}

func newLatestCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print the recording a fresh replay session would pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := codec.Discover(cfg.Dir, cfg.Prefix)
			if !ok {
				return fmt.Errorf("no %q recording in %s", cfg.Prefix, cfg.Dir)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newWatchCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the recordings directory and report new recordings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WrapZerolog(cliconfig.Logger(cfg.Debug))

			w := replay.NewWatcher(cfg.Dir, cfg.Prefix, logger, func(path string) {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if err := w.Start(ctx); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer w.Close()

			if path, ok := w.Latest(); ok {
				logger.Info("existing recording", log.String("path", path))
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-sigCh:
				logger.Info("received signal, stopping")
			case <-ctx.Done():
			}
			return nil
		},
	}
}
