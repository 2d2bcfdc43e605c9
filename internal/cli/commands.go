package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

func (c *CLI) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the project collection as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(app *bootstrap.App) error {
				text, err := app.Store.Export()
				if err != nil {
					return err
				}
				c.printf("%s\n", text)
				return nil
			})
		},
	}
}

func (c *CLI) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the project collection with an exported list",
		Long: `Replace the whole project collection with the JSON list in <file>
("-" reads standard input). Every project gets a new id. Invalid input leaves
the stored collection untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.readInput(args[0])
			if err != nil {
				return err
			}
			return c.withApp(cmd.Context(), func(app *bootstrap.App) error {
				if err := app.Store.Import(string(data)); err != nil {
					return err
				}
				c.printf("imported %d projects\n", app.Store.Count())
				return nil
			})
		},
	}
}

func (c *CLI) newClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes")
			}
			return c.withApp(cmd.Context(), func(app *bootstrap.App) error {
				n := app.Store.Count()
				app.Store.Clear()
				c.printf("removed %d projects\n", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm removal")
	return cmd
}

type statsOutput struct {
	Count     int               `json:"count"`
	Completed int               `json:"completed"`
	NextID    int               `json:"next_id"`
	ByTech    []techCountOutput `json:"by_tech"`
}

type techCountOutput struct {
	Tech  string `json:"tech"`
	Count int    `json:"count"`
}

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the stored projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(app *bootstrap.App) error {
				out := statsOutput{
					Count:     app.Store.Count(),
					Completed: app.Store.CompletedCount(),
					NextID:    app.Store.NextID(),
					ByTech:    []techCountOutput{},
				}
				for _, g := range app.Store.GroupedByTech() {
					out.ByTech = append(out.ByTech, techCountOutput{Tech: g.Tech, Count: len(g.Projects)})
				}

				if c.jsonOutput {
					return c.printJSON(out)
				}
				c.printf("projects:  %d\n", out.Count)
				c.printf("completed: %d\n", out.Completed)
				c.printf("next id:   %d\n", out.NextID)
				for _, t := range out.ByTech {
					c.printf("  %-24s %d\n", t.Tech, t.Count)
				}
				return nil
			})
		},
	}
}

func (c *CLI) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the demo projects to an empty collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(app *bootstrap.App) error {
				if app.Store.HasAny() {
					c.printf("collection already has %d projects, nothing seeded\n", app.Store.Count())
					return nil
				}
				added := app.Store.AddMany(domain.SeedProjects())
				c.printf("seeded %d projects\n", len(added))
				return nil
			})
		},
	}
}

func (c *CLI) readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(c.in)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
