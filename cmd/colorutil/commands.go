package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/colors"
	"github.com/BeatGlow/colors/pixel"
)

func (a *app) convertCmd() *cobra.Command {
	var from565 bool
	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "convert between RGB888 and RGB565",
		Long:  "convert an RGB888 color (0xRRGGBB, #rrggbb or palette name) to RGB565, or an RGB565 color to RGB888 with --from565",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error {
				w := cmd.OutOrStdout()
				if from565 {
					c, err := parse565(args[0])
					if err != nil {
						return err
					}
					wide := pixel.To888(c)
					a.log.Debug("converted", "rgb565", c.Hex(), "rgb888", wide.Hex())
					fmt.Fprintln(w, "RGB565 "+describe(c))
					fmt.Fprintln(w, "RGB888 "+describe(wide))
					return nil
				}

				p, err := a.selectedPalette()
				if err != nil {
					return err
				}
				c, err := parse888(args[0], p)
				if err != nil {
					return err
				}
				narrow := pixel.To565(c)
				a.log.Debug("converted", "rgb888", c.Hex(), "rgb565", narrow.Hex())
				fmt.Fprintln(w, "RGB888 "+describe(c))
				fmt.Fprintln(w, "RGB565 "+describe(narrow))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&from565, "from565", false, "input is a 16-bit RGB565 value")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var mixed bool
	cmd := &cobra.Command{
		Use:   "compare <color> <color>",
		Short: "print the similarity of two colors",
		Long:  "print the similarity of two RGB888 colors, from 0 (black versus white) to 1 (identical); with --565 the second color is an RGB565 value and both are compared in RGB565 space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error {
				p, err := a.selectedPalette()
				if err != nil {
					return err
				}
				c1, err := parse888(args[0], p)
				if err != nil {
					return err
				}

				var similarity float64
				if mixed {
					c2, err := parse565(args[1])
					if err != nil {
						return err
					}
					similarity = pixel.MixedSimilarity(c1, c2)
				} else {
					c2, err := parse888(args[1], p)
					if err != nil {
						return err
					}
					similarity = pixel.Similarity(c1, c2)
				}
				a.log.Debug("compared", "a", args[0], "b", args[1], "mixed", mixed, "similarity", similarity)
				fmt.Fprintf(cmd.OutOrStdout(), "similarity %.4f\n", similarity)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&mixed, "565", false, "second color is a 16-bit RGB565 value")
	return cmd
}

func (a *app) closestCmd() *cobra.Command {
	var use565 bool
	cmd := &cobra.Command{
		Use:   "closest <color>",
		Short: "find the most similar palette color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error {
				p, err := a.selectedPalette()
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()

				if use565 {
					query, err := parse565(args[0])
					if err != nil {
						return err
					}
					c, err := colors.Closest565(p, query)
					if err != nil {
						return err
					}
					a.log.Debug("closest", "query", query.Hex(), "match", c.String())
					fmt.Fprintf(w, "%s similarity=%.4f\n", describe(c), pixel.Similarity(query, c))
					return nil
				}

				query, err := parse888(args[0], p)
				if err != nil {
					return err
				}
				i, similarity, err := p.ClosestIndex(query)
				if err != nil {
					return err
				}
				a.log.Debug("closest", "query", query.Hex(), "index", i, "match", p[i].String())
				fmt.Fprintf(w, "%s similarity=%.4f\n", describe(p[i]), similarity)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&use565, "565", false, "query is a 16-bit RGB565 value, compared in RGB565 space")
	return cmd
}

func (a *app) lookupCmd() *cobra.Command {
	var use565 bool
	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "look up a palette color by its exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error {
				p, err := a.selectedPalette()
				if err != nil {
					return err
				}
				if use565 {
					c, err := colors.Convert[pixel.Format565](p).Lookup(args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), describe(c))
					return nil
				}
				c, err := p.Lookup(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), describe(c))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&use565, "565", false, "search the palette converted to RGB565")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the palette colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error {
				p, err := a.selectedPalette()
				if err != nil {
					return err
				}
				a.log.Debug("listing palette", "palette", a.palette, "size", len(p))
				for _, c := range p {
					fmt.Fprintln(cmd.OutOrStdout(), describe(c))
				}
				return nil
			})
		},
	}
}
