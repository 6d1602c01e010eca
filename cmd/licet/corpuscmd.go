package licet

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/licet/licet/internal/corpus"
)

func init() {
	corpusCmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect or manage the SPDX corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := corpus.Load(flagCorpusPath)
			fmt.Printf("corpus entries: %d\n", c.Len())
			for _, id := range c.IDs() {
				e, _ := c.Get(id)
				fmt.Printf("  %-16s %s\n", id, e.Name)
			}
			return nil
		},
	}
	rootCmd.AddCommand(corpusCmd)

	corpusCmd.AddCommand(&cobra.Command{
		Use:   "refresh <file>",
		Short: "Validate an SPDX license-list JSON file and cache it for later runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := corpus.SaveCache(b); err != nil {
				return fmt.Errorf("cache corpus: %w", err)
			}
			fmt.Println("corpus cached")
			return nil
		},
	})

	corpusCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the cached corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := corpus.ClearCache(); err != nil {
				return err
			}
			fmt.Println("corpus cache cleared")
			return nil
		},
	})
}
