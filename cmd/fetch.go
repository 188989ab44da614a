package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/storacha/appstore/pkg/config"
	"github.com/storacha/appstore/pkg/content"
)

var FetchCmd = &cli.Command{
	Name:      "fetch",
	Usage:     "Fetch a blob from the content store as text or as an image.",
	ArgsUsage: "<hash>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "kind",
			Usage: "text or image",
			Value: content.KindText.String(),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write an image to this file instead of printing a data URI.",
		},
	},
	Action: func(cCtx *cli.Context) error {
		if cCtx.Args().Len() != 1 {
			return fmt.Errorf("expected a content hash")
		}
		kind, err := content.ParseKind(cCtx.String("kind"))
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(cCtx)
		if err != nil {
			return err
		}
		store, closeStore, err := newContentStore(cCtx.Context, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		hash := cCtx.Args().First()
		switch kind {
		case content.KindImage:
			img, err := content.FetchImage(cCtx.Context, store, hash)
			if err != nil {
				return err
			}
			if out := cCtx.String("output"); out != "" {
				if err := os.WriteFile(out, img.Data, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}
				fmt.Printf("wrote %d bytes (%s) to %s\n", len(img.Data), img.ContentType, out)
				return nil
			}
			fmt.Println(img.DataURI())
		default:
			text, err := content.FetchText(cCtx.Context, store, hash)
			if err != nil {
				return err
			}
			fmt.Println(text)
		}
		return nil
	},
}
