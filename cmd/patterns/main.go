// Command patterns lists, inspects, and runs the design pattern demos.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MSREDDY199/Design-Patterns/catalog"
)

var (
	listCategory string
	runAll       bool
)

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Explore classic design patterns through runnable demos",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered demos",
	Long:  `The list command prints every registered demo with its category and a one-line summary. Use --category to show a single chapter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		demos := catalog.Demos()
		if listCategory != "" {
			var err error
			demos, err = catalog.ByCategory(catalog.Category(listCategory))
			if err != nil {
				return err
			}
		}
		w := cmd.OutOrStdout()
		for _, d := range demos {
			fmt.Fprintf(w, "%-24s %-12s %s\n", d.Name, d.Category, d.Brief)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run [name]...",
	Short: "Run one or more demos by name",
	Long:  `The run command executes the named demos in order and prints their transcripts. Pass --all to run every registered demo instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if runAll {
			names = catalog.Names()
		}
		if len(names) == 0 {
			return fmt.Errorf("no demos to run: name at least one or pass --all")
		}

		w := cmd.OutOrStdout()
		for i, name := range names {
			if len(names) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "=== %s ===\n", name)
			}
			if err := catalog.Run(name, w); err != nil {
				return err
			}
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show details for a single demo",
	Long:  `The info command prints the demo's category, summary, and the package that implements it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Name:     %s\n", d.Name)
		fmt.Fprintf(w, "Category: %s\n", d.Category)
		fmt.Fprintf(w, "Package:  %s\n", d.Doc)
		fmt.Fprintf(w, "Brief:    %s\n", d.Brief)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only show demos from one category (creational, structural, behavioral)")
	runCmd.Flags().BoolVarP(&runAll, "all", "a", false, "run every registered demo")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(infoCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
