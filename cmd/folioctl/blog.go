package main

import (
	"fmt"

	"github.com/acwang/folio-core/pkg/client"
	"github.com/spf13/cobra"
)

func newBlogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Manage blog posts",
	}
	cmd.AddCommand(
		newBlogListCmd(),
		newBlogCreateCmd(),
		newBlogUpdateCmd(),
		newBlogDeleteCmd(),
	)
	return cmd
}

func newBlogListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blog posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			var posts []client.BlogPost
			if all {
				posts, err = c.ListAllBlogPosts()
			} else {
				posts, err = c.ListBlogPosts()
			}
			if err != nil {
				return err
			}
			for _, post := range posts {
				state := "draft"
				if post.IsPublished {
					state = "published"
				}
				fmt.Printf("%s  %-40s  %s\n", post.ID, post.Title, state)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include unpublished drafts (requires login)")
	return cmd
}

func newBlogCreateCmd() *cobra.Command {
	var draft client.BlogPostDraft
	var publish bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blog post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("publish") {
				draft.IsPublished = &publish
			}
			mgr := client.BlogManager(c, confirmDelete)
			if err := mgr.Save(draft, ""); err != nil {
				return err
			}
			fmt.Printf("Saved. %d posts total.\n", len(mgr.Items()))
			return nil
		},
	}
	addBlogDraftFlags(cmd, &draft, &publish)
	return cmd
}

func newBlogUpdateCmd() *cobra.Command {
	var draft client.BlogPostDraft
	var publish bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			mgr := client.BlogManager(c, confirmDelete)
			if err := mgr.Refresh(); err != nil {
				return err
			}

			// Edits start from the stored post so unset flags keep
			// their value, publish state included.
			current, ok := findBlogPost(mgr.Items(), args[0])
			if !ok {
				return fmt.Errorf("no blog post with id %s", args[0])
			}
			merged := blogDraftFrom(current)
			merged.Title = firstNonEmpty(draft.Title, merged.Title)
			merged.Subtitle = firstNonEmpty(draft.Subtitle, merged.Subtitle)
			merged.Content = firstNonEmpty(draft.Content, merged.Content)
			merged.CoverImage = firstNonEmpty(draft.CoverImage, merged.CoverImage)
			if cmd.Flags().Changed("tags") {
				merged.Tags = draft.Tags
			}
			if cmd.Flags().Changed("publish") {
				merged.IsPublished = &publish
			}

			if err := mgr.Save(merged, args[0]); err != nil {
				return err
			}
			fmt.Printf("Saved. %d posts total.\n", len(mgr.Items()))
			return nil
		},
	}
	addBlogDraftFlags(cmd, &draft, &publish)
	return cmd
}

func addBlogDraftFlags(cmd *cobra.Command, draft *client.BlogPostDraft, publish *bool) {
	cmd.Flags().StringVar(&draft.Title, "title", "", "post title")
	cmd.Flags().StringVar(&draft.Subtitle, "subtitle", "", "post subtitle")
	cmd.Flags().StringVar(&draft.Content, "content", "", "markdown content")
	cmd.Flags().StringVar(&draft.CoverImage, "cover-image", "", "cover image URL")
	cmd.Flags().StringSliceVar(&draft.Tags, "tags", nil, "comma-separated tags")
	cmd.Flags().BoolVar(publish, "publish", false, "publish the post (--publish=false to unpublish)")
}

func findBlogPost(posts []client.BlogPost, id string) (client.BlogPost, bool) {
	for _, post := range posts {
		if post.ID == id {
			return post, true
		}
	}
	return client.BlogPost{}, false
}

func blogDraftFrom(post client.BlogPost) client.BlogPostDraft {
	published := post.IsPublished
	return client.BlogPostDraft{
		Title:       post.Title,
		Subtitle:    post.Subtitle,
		Content:     post.Content,
		CoverImage:  post.CoverImage,
		Tags:        post.Tags,
		IsPublished: &published,
	}
}

func newBlogDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			mgr := client.BlogManager(c, confirmDelete)
			if err := mgr.Refresh(); err != nil {
				return err
			}
			if err := mgr.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("%d posts remain.\n", len(mgr.Items()))
			return nil
		},
	}
}
