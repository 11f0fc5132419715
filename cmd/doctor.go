package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clipsplit/deps"
)

// Version is the release version, overridable at build time.
var Version = "0.1.0"

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required external tools are installed",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		ok := true
		for _, check := range []struct {
			name string
			fn   func() error
		}{
			{"ffmpeg", deps.CheckFfmpeg},
			{"ffprobe", deps.CheckFfprobe},
		} {
			if err := check.fn(); err != nil {
				fmt.Printf("  ✗ %s\n    %v\n", check.name, err)
				ok = false
			} else {
				fmt.Printf("  ✓ %s\n", check.name)
			}
		}

		fmt.Println()
		if !ok {
			fmt.Println("Some dependencies are missing.")
			os.Exit(1)
		}
		fmt.Println("All dependencies are installed.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clipsplit %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}
