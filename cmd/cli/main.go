package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"portuguese101/internal/config"
	"portuguese101/internal/fragment"
	"portuguese101/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const categorySkeleton = `<!DOCTYPE html><html><body><div id="category"></div></body></html>`

func main() {
	clientConfig, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// stdout carries the rendered markup
	logger, err := logging.New(clientConfig.Log, "stderr")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	var baseURL string
	rootCmd := &cobra.Command{
		Use:   "portuguese101",
		Short: "Load vocabulary fragments the way the browser page does",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ValidateBaseURL(baseURL)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", clientConfig.BaseURL, "URL of the vocabulary page")

	rootCmd.AddCommand(
		newRenderCmd(&baseURL, logger),
		newCategoriesCmd(&baseURL, logger),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRenderCmd(baseURL *string, logger *zap.Logger) *cobra.Command {
	var category string
	var strict bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the page, load categories and optionally a noun table, print the result",
		Long: `Fetch the vocabulary page, fire its ready event so the category list loads,
and, when --category is given, request that category's table at the same time.

Failed fragments leave their container untouched, as in the browser.

Example: portuguese101 render --base-url http://localhost:8080/ --category food`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), *baseURL, category, strict, logger)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category id to request a table for")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when a fragment fails to load")

	return cmd
}

func runRender(ctx context.Context, baseURL, category string, strict bool, logger *zap.Logger) error {
	page, err := fragment.FetchPage(ctx, baseURL)
	if err != nil {
		return err
	}
	loader := fragment.NewLoader(baseURL, page, fragment.WithLogger(logger))

	done := loader.Bootstrap(ctx)

	// The two requests are independent; one failing does not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		page.MarkReady()
		return <-done
	})
	if category != "" {
		g.Go(func() error {
			return loader.GenerateTableFor(ctx, category)
		})
	}
	loadErr := g.Wait()

	html, err := page.HTML()
	if err != nil {
		return err
	}
	fmt.Println(html)

	if loadErr != nil {
		logger.Warn("fragment not loaded", zap.Error(loadErr))
		if strict {
			return loadErr
		}
	}
	return nil
}

func newCategoriesCmd(baseURL *string, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the category selector fragment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := fragment.ParsePage(strings.NewReader(categorySkeleton))
			if err != nil {
				return err
			}

			loader := fragment.NewLoader(*baseURL, page, fragment.WithLogger(logger))
			if err := loader.LoadCategories(cmd.Context()); err != nil {
				return err
			}

			markup, err := page.InnerHTML(fragment.CategoryContainerID)
			if err != nil {
				return err
			}
			fmt.Println(markup)
			return nil
		},
	}
}
