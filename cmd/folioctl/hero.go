package main

import (
	"fmt"

	"github.com/acwang/folio-core/pkg/client"
	"github.com/spf13/cobra"
)

func newHeroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hero",
		Short: "Manage the hero section",
	}
	cmd.AddCommand(newHeroShowCmd(), newHeroSetCmd())
	return cmd
}

func newHeroShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current hero settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			hero, err := c.GetHero()
			if err != nil {
				return err
			}
			fmt.Printf("Title:    %s\n", hero.MainTitle)
			fmt.Printf("Subtitle: %s\n", hero.Subtitle)
			fmt.Printf("Buttons:  %q / %q\n", hero.Button1Label, hero.Button2Label)
			if hero.BioContent != "" {
				fmt.Printf("\n%s\n", hero.BioContent)
			}
			return nil
		},
	}
}

func newHeroSetCmd() *cobra.Command {
	var draft client.HeroDraft
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the hero settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			// The update is a full replace; start from the current
			// record so unset flags keep their value.
			current, err := c.GetHero()
			if err != nil {
				return err
			}
			merged := client.HeroDraft{
				MainTitle:          firstNonEmpty(draft.MainTitle, current.MainTitle),
				Subtitle:           firstNonEmpty(draft.Subtitle, current.Subtitle),
				BackgroundImageURL: firstNonEmpty(draft.BackgroundImageURL, current.BackgroundImageURL),
				PersonalPhotoURL:   firstNonEmpty(draft.PersonalPhotoURL, current.PersonalPhotoURL),
				BioContent:         firstNonEmpty(draft.BioContent, current.BioContent),
				Button1Label:       firstNonEmpty(draft.Button1Label, current.Button1Label),
				Button2Label:       firstNonEmpty(draft.Button2Label, current.Button2Label),
			}
			if err := merged.Validate(); err != nil {
				return err
			}

			hero, err := c.UpdateHero(merged)
			if err != nil {
				return err
			}
			fmt.Printf("Updated. Title is now %q.\n", hero.MainTitle)
			return nil
		},
	}
	cmd.Flags().StringVar(&draft.MainTitle, "title", "", "main title")
	cmd.Flags().StringVar(&draft.Subtitle, "subtitle", "", "subtitle")
	cmd.Flags().StringVar(&draft.BackgroundImageURL, "background-url", "", "background image URL")
	cmd.Flags().StringVar(&draft.PersonalPhotoURL, "photo-url", "", "personal photo URL")
	cmd.Flags().StringVar(&draft.BioContent, "bio", "", "bio markdown")
	cmd.Flags().StringVar(&draft.Button1Label, "button1", "", "first button label")
	cmd.Flags().StringVar(&draft.Button2Label, "button2", "", "second button label")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
