package main

import (
	"fmt"
	"strings"

	"github.com/acwang/folio-core/pkg/client"
	"github.com/spf13/cobra"
)

func newPortfolioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Manage portfolio items",
	}
	cmd.AddCommand(
		newPortfolioListCmd(),
		newPortfolioCreateCmd(),
		newPortfolioUpdateCmd(),
		newPortfolioDeleteCmd(),
	)
	return cmd
}

func newPortfolioListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List portfolio items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			mgr := client.PortfolioManager(c, confirmDelete)
			if err := mgr.Refresh(); err != nil {
				return err
			}
			for _, item := range mgr.Items() {
				fmt.Printf("%s  %-30s  [%s]\n", item.ID, item.Title, strings.Join(item.Tags, ", "))
			}
			return nil
		},
	}
}

func newPortfolioCreateCmd() *cobra.Command {
	var draft client.PortfolioDraft
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a portfolio item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			mgr := client.PortfolioManager(c, confirmDelete)
			if err := mgr.Save(draft, ""); err != nil {
				return err
			}
			fmt.Printf("Saved. %d items total.\n", len(mgr.Items()))
			return nil
		},
	}
	addPortfolioDraftFlags(cmd, &draft)
	return cmd
}

func newPortfolioUpdateCmd() *cobra.Command {
	var draft client.PortfolioDraft
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a portfolio item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			mgr := client.PortfolioManager(c, confirmDelete)
			if err := mgr.Refresh(); err != nil {
				return err
			}

			// Edits start from the stored item so unset flags keep
			// their value.
			current, ok := findPortfolioItem(mgr.Items(), args[0])
			if !ok {
				return fmt.Errorf("no portfolio item with id %s", args[0])
			}
			merged := portfolioDraftFrom(current)
			merged.Title = firstNonEmpty(draft.Title, merged.Title)
			merged.Description = firstNonEmpty(draft.Description, merged.Description)
			merged.Content = firstNonEmpty(draft.Content, merged.Content)
			merged.ImageURL = firstNonEmpty(draft.ImageURL, merged.ImageURL)
			merged.GithubURL = firstNonEmpty(draft.GithubURL, merged.GithubURL)
			merged.DemoURL = firstNonEmpty(draft.DemoURL, merged.DemoURL)
			if cmd.Flags().Changed("tags") {
				merged.Tags = draft.Tags
			}

			if err := mgr.Save(merged, args[0]); err != nil {
				return err
			}
			fmt.Printf("Saved. %d items total.\n", len(mgr.Items()))
			return nil
		},
	}
	addPortfolioDraftFlags(cmd, &draft)
	return cmd
}

func addPortfolioDraftFlags(cmd *cobra.Command, draft *client.PortfolioDraft) {
	cmd.Flags().StringVar(&draft.Title, "title", "", "item title")
	cmd.Flags().StringVar(&draft.Description, "description", "", "short description")
	cmd.Flags().StringVar(&draft.Content, "content", "", "rich text content")
	cmd.Flags().StringVar(&draft.ImageURL, "image-url", "", "preview image URL")
	cmd.Flags().StringVar(&draft.GithubURL, "github-url", "", "repository URL")
	cmd.Flags().StringVar(&draft.DemoURL, "demo-url", "", "live demo URL")
	cmd.Flags().StringSliceVar(&draft.Tags, "tags", nil, "comma-separated tags")
}

func findPortfolioItem(items []client.Portfolio, id string) (client.Portfolio, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return client.Portfolio{}, false
}

func portfolioDraftFrom(item client.Portfolio) client.PortfolioDraft {
	return client.PortfolioDraft{
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Content,
		ImageURL:    item.ImageURL,
		GithubURL:   item.GithubURL,
		DemoURL:     item.DemoURL,
		Tags:        item.Tags,
	}
}

func newPortfolioDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a portfolio item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			mgr := client.PortfolioManager(c, confirmDelete)
			if err := mgr.Refresh(); err != nil {
				return err
			}
			if err := mgr.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("%d items remain.\n", len(mgr.Items()))
			return nil
		},
	}
}
