package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/model"
	"github.com/storacha/appstore/pkg/publish"
)

var ErrListingNotFound = errors.New("listing not found")

var AddCmd = &cli.Command{
	Name:  "add",
	Usage: "Create a pending listing from a name, description, icon and package.",
	Flags: []cli.Flag{
		RequiredStringFlag(NameFlag),
		RequiredStringFlag(DescriptionFlag),
		RequiredStringFlag(IconFlag),
		RequiredStringFlag(PackageFlag),
	},
	Action: func(cCtx *cli.Context) error {
		e, err := setupEnv(cCtx, os.Stdout)
		if err != nil {
			return err
		}
		defer e.Close()

		form := &publish.Form{
			Name:        cCtx.String(NameFlag.Name),
			Description: cCtx.String(DescriptionFlag.Name),
		}
		if err := chooseFiles(cCtx, form); err != nil {
			return err
		}

		out, err := e.workflow.Publish(cCtx.Context, e.state, form, publish.ModeCreate, nil)
		if err != nil {
			return err
		}
		printOutcome(out)
		return nil
	},
}

var UpdateCmd = &cli.Command{
	Name:  "update",
	Usage: "Update a pending listing. Unset flags keep the stored values.",
	Flags: []cli.Flag{
		RequiredUint64Flag(ListingIDFlag),
		NameFlag,
		DescriptionFlag,
		IconFlag,
		PackageFlag,
	},
	Action: func(cCtx *cli.Context) error {
		e, err := setupEnv(cCtx, os.Stdout)
		if err != nil {
			return err
		}
		defer e.Close()

		l, err := e.lookupListing(cCtx.Context, cCtx.Uint64(ListingIDFlag.Name))
		if err != nil {
			return err
		}
		desc, err := content.FetchText(cCtx.Context, e.content, l.DescriptionHash)
		if err != nil {
			return fmt.Errorf("loading stored description: %w", err)
		}
		existing := &publish.Existing{Listing: l, Description: desc}

		form := &publish.Form{Name: l.Name, Description: desc}
		if cCtx.IsSet(NameFlag.Name) {
			form.Name = cCtx.String(NameFlag.Name)
		}
		if cCtx.IsSet(DescriptionFlag.Name) {
			form.Description = cCtx.String(DescriptionFlag.Name)
		}
		if err := chooseFiles(cCtx, form); err != nil {
			return err
		}

		out, err := e.workflow.Publish(cCtx.Context, e.state, form, publish.ModeUpdate, existing)
		if err != nil {
			return err
		}
		if out.Skipped {
			fmt.Println("nothing changed")
			return nil
		}
		printOutcome(out)
		return nil
	},
}

var PublishCmd = &cli.Command{
	Name:  "publish",
	Usage: "Publish a pending listing.",
	Flags: []cli.Flag{RequiredUint64Flag(ListingIDFlag)},
	Action: func(cCtx *cli.Context) error {
		return changeStatus(cCtx, model.StatusPublished)
	},
}

var RemoveCmd = &cli.Command{
	Name:  "remove",
	Usage: "Remove a published listing.",
	Flags: []cli.Flag{RequiredUint64Flag(ListingIDFlag)},
	Action: func(cCtx *cli.Context) error {
		return changeStatus(cCtx, model.StatusRemoved)
	},
}

func changeStatus(cCtx *cli.Context, to model.Status) error {
	e, err := setupEnv(cCtx, os.Stdout)
	if err != nil {
		return err
	}
	defer e.Close()

	l, err := e.lookupListing(cCtx.Context, cCtx.Uint64(ListingIDFlag.Name))
	if err != nil {
		return err
	}
	if to == model.StatusRemoved {
		return e.workflow.RemoveListing(cCtx.Context, e.state, l)
	}
	return e.workflow.PublishListing(cCtx.Context, e.state, l)
}

// lookupListing reads the admin and the listing with id from the registry.
func (e *env) lookupListing(ctx context.Context, id uint64) (model.Listing, error) {
	admin, err := e.registry.GetAdmin(ctx)
	if err != nil {
		return model.Listing{}, err
	}
	e.state.SetAdmin(admin)

	listings, err := e.registry.GetProjects(ctx, 0, e.cfg.Sync.PageSize)
	if err != nil {
		return model.Listing{}, err
	}
	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return model.Listing{}, fmt.Errorf("listing %d: %w", id, ErrListingNotFound)
}

// chooseFiles attaches the icon and package named by flags. Size limits are
// enforced when the form is submitted.
func chooseFiles(cCtx *cli.Context, form *publish.Form) error {
	if p := cCtx.String(IconFlag.Name); p != "" {
		f, err := publish.OpenFile(p)
		if err != nil {
			return err
		}
		form.Icon = f
	}
	if p := cCtx.String(PackageFlag.Name); p != "" {
		f, err := publish.OpenFile(p)
		if err != nil {
			return err
		}
		form.Package = f
	}
	return nil
}

func printOutcome(out publish.Outcome) {
	if out.Receipt == nil {
		return
	}
	fmt.Printf("transaction %s\n", out.Receipt.TxHash.Hex())
	if out.Receipt.Listing != nil {
		fmt.Printf("listing #%d version %d is %s\n", out.Receipt.Listing.ID, out.Receipt.Listing.Version, out.Receipt.Listing.Status)
	}
	for _, p := range out.Assets.Uploaded {
		fmt.Printf("  uploaded %s\n", p)
	}
}
