package main

import (
	"fmt"
	"os"

	"github.com/mzhai/cjkfont/pkg/cjkfont"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cjkfont",
	Short: "cjkfont locates CJK-capable system fonts",
	Long: `A diagnostic tool for the cjkfont library.

It shows which filesystem locations are scanned for CJK fonts on each
platform and which candidate a resolution would select on this machine.

Examples:
  # List the candidate paths for this platform
  cjkfont paths

  # List the candidate paths for another platform
  cjkfont paths --platform windows

  # Report the status of every candidate on this machine
  cjkfont probe`,
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the candidate font paths in scan order",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := cjkfont.Current()
		if name, _ := cmd.Flags().GetString("platform"); name != "" {
			var err error
			p, err = parsePlatform(name)
			if err != nil {
				return err
			}
		}
		paths := cjkfont.CandidatePathsOn(p)
		if len(paths) == 0 {
			fmt.Fprintf(os.Stderr, "No candidate paths on platform %q\n", p)
			return nil
		}
		for _, path := range paths {
			fmt.Println(path)
		}
		return nil
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report the status of each candidate on this machine",
	Long: `Walk the current platform's candidate list in scan order, printing
whether each path is missing, unreadable, or would be selected. The walk
stops at the first selectable candidate, mirroring the resolver.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := cjkfont.Current()
		paths := cjkfont.CandidatePathsOn(p)
		if len(paths) == 0 {
			return cjkfont.ErrUnsupportedPlatform
		}
		for _, path := range paths {
			if _, err := os.Stat(path); err != nil {
				fmt.Printf("missing     %s\n", path)
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Printf("unreadable  %v\n", &cjkfont.ReadError{Path: path, Err: err})
				continue
			}
			fmt.Printf("selected    %s (%d bytes)\n", path, len(data))
			return nil
		}
		return &cjkfont.NotFoundError{Platform: p}
	},
}

func parsePlatform(name string) (cjkfont.Platform, error) {
	switch name {
	case "windows":
		return cjkfont.Windows, nil
	case "macos", "darwin":
		return cjkfont.MacOS, nil
	case "linux":
		return cjkfont.Linux, nil
	case "other":
		return cjkfont.Other, nil
	}
	return cjkfont.Other, fmt.Errorf("unknown platform %q", name)
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(probeCmd)

	pathsCmd.Flags().StringP("platform", "p", "", "Platform to list paths for (windows, macos, linux, other)")
}
