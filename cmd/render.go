package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
)

var renderCmd = &cobra.Command{
	Use:   "render <definition>",
	Short: "Show the domain bootstrap without running it",
	Long: `Prints the command configure would run and every file it would write
first (rendered WLST scripts, asadmin password files). Nothing is written
to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	c, err := loadContainer(args[0])
	if err != nil {
		return err
	}

	r, err := app.Default.Render(cmd.Context(), c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", r.Command.String())

	files := make([]string, 0, len(r.Files))
	for path := range r.Files {
		files = append(files, path)
	}
	sort.Strings(files)

	for _, path := range files {
		fmt.Fprintf(out, "\n--- %s\n", path)
		content := r.Files[path]
		fmt.Fprint(out, content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Fprintln(out)
		}
	}
	return nil
}
