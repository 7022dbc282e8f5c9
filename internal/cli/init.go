package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vitals-sh/vitals/internal/config"
	"github.com/vitals-sh/vitals/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .vitals.yaml configuration",
	Long: `Write a starter .vitals.yaml in the current directory with the
default settings spelled out, ready to edit.

Examples:
  vitals init
  vitals init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

const configHeader = `# vitals configuration
#
# interval:               frame tick period (e.g. 250ms, 1s)
# history:                max samples kept per metric stream, 0 = unbounded
# process_refresh_frames: rebuild the process list every N frames
# disk_refresh_frames:    rebuild the disk snapshot every N frames, 0 = startup only
`

func initCommand(force bool) error {
	path := config.ConfigFileName

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			path+" already exists",
			"Use --force to overwrite it")
	}

	// Durations marshal as nanosecond integers, so write the interval as a
	// human-readable string instead of encoding the Config struct directly.
	def := config.DefaultConfig()
	starter := struct {
		Interval             string `yaml:"interval"`
		History              int    `yaml:"history"`
		ProcessRefreshFrames int    `yaml:"process_refresh_frames"`
		DiskRefreshFrames    int    `yaml:"disk_refresh_frames"`
	}{
		Interval:             def.Interval.String(),
		History:              def.History,
		ProcessRefreshFrames: def.ProcessRefreshFrames,
		DiskRefreshFrames:    def.DiskRefreshFrames,
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfig, "Failed to encode default config")
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return errors.WrapWithSuggestion(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
