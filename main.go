// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/keys"
)

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Height-balanced binary search tree explorer and verifier [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = newDefaultConfig()
	}

	var keyType string

	newSession := func() Session {
		kind, err := keys.ParseKind(keyType)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		renders := NewRenderCache(time.Duration(config.View.CacheMinutes) * time.Minute)
		session, err := NewSession(kind, renders)
		if err != nil {
			log.Fatalf("Error creating session: %v", err)
		}
		return session
	}

	explore := func(cmd *cobra.Command, args []string) {
		if err := runBubbleTeaApp(newSession()); err != nil {
			log.Fatalf("Error running explorer: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens a terminal UI where you insert, erase and look up keys while the tree redraws`),
		Args:  cobra.NoArgs,
		Run:   explore,
	}

	var cmdEval = &cobra.Command{
		Use:   "eval [FILE]",
		Short: "Run session commands from a file or stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Eval executes one session command per line and prints each result"),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keepGoing, _ := cmd.Flags().GetBool("keep-going")

			var in io.Reader = os.Stdin
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("Error opening %s: %v", args[0], err)
				}
				defer file.Close()
				in = file
			}

			failed, err := runEval(in, os.Stdout, os.Stderr, newSession(), keepGoing)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s❌ %v%s\n", Error, err, Reset)
				os.Exit(1)
			}
			if failed > 0 {
				fmt.Fprintf(os.Stderr, "%s⚠️  %d commands failed%s\n", Warning, failed, Reset)
			}
		},
	}
	cmdEval.Flags().Bool("keep-going", false, "continue after a failing command")

	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Insert every key in FILE and verify the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Load inserts one key per line, optionally erases another key file, prints traversals and verifies the result"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			eraseFile, _ := cmd.Flags().GetString("erase")
			order, _ := cmd.Flags().GetString("order")
			draw, _ := cmd.Flags().GetBool("print")

			opts := LoadOptions{Order: order, Print: draw}
			var err error
			if opts.Insert, err = readKeyFile(args[0]); err != nil {
				log.Fatalf("Error reading keys: %v", err)
			}
			if eraseFile != "" {
				if opts.Erase, err = readKeyFile(eraseFile); err != nil {
					log.Fatalf("Error reading keys: %v", err)
				}
			}
			if config.Check.ShowProgress {
				opts.Progress = os.Stderr
			}

			if _, err := runLoad(os.Stdout, newSession(), opts); err != nil {
				fmt.Fprintf(os.Stderr, "%s❌ %v%s\n", Error, err, Reset)
				os.Exit(1)
			}
		},
	}
	cmdLoad.Flags().String("erase", "", "key file whose keys are erased after loading")
	cmdLoad.Flags().String("order", "", "traversal to print: pre, in, post or all")
	cmdLoad.Flags().Bool("print", false, "draw the tree after loading")

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Randomized insert/erase verification",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Check builds trees of many sizes from random keys and verifies every invariant after each mutation"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			kind, err := keys.ParseKind(keyType)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			opts := CheckOptions{
				Kind:         kind,
				Sizes:        config.Check.Sizes,
				Seed:         config.Check.Seed,
				MaxKey:       config.Check.MaxKey,
				StringLength: config.Check.StringLength,
			}
			if cmd.Flags().Changed("sizes") {
				opts.Sizes, _ = cmd.Flags().GetIntSlice("sizes")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if opts.Seed == 0 {
				opts.Seed = time.Now().UnixNano()
			}
			if config.Check.ShowProgress {
				opts.Progress = os.Stderr
			}

			fmt.Printf("%s🎲 %s keys, seed %d%s\n", Info, kind, opts.Seed, Reset)
			results, err := RunRandomCheck(opts)
			printCheckResults(os.Stdout, results)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s❌ %v%s\n", Error, err, Reset)
				os.Exit(1)
			}
			fmt.Printf("%s✅ all %d sizes verified%s\n", Green, len(results), Reset)
		},
	}
	cmdCheck.Flags().IntSlice("sizes", nil, "tree sizes to check (default from config)")
	cmdCheck.Flags().Int64("seed", 0, "random seed; 0 picks a time-based seed")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings shows ~/.avltree.yaml, creating it with defaults if missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		// Default to run command when no subcommand is provided
		Run: explore,
	}
	rootCmd.PersistentFlags().StringVar(&keyType, "keys", config.Tree.KeyType, "key type: int, string or float")
	rootCmd.AddCommand(cmdRun, cmdEval, cmdLoad, cmdCheck, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
