package cli

import "fmt"

type ClearCmd struct{}

func (c *ClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entries to clear.")
		return nil
	}

	fmt.Printf("⚠️  WARNING: This will permanently delete all %d entries.\n", len(entries))
	fmt.Println("A backup of your current store will be created first.")

	ok, err := ctx.confirm("Continue?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Clear cancelled.")
		return nil
	}

	// Destructive and unrecoverable, so ask twice.
	ok, err = ctx.confirm("Really delete everything?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Clear cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ClearEntries(); err != nil {
		return err
	}

	fmt.Printf("Deleted %d entries. Settings were kept.\n", len(entries))
	return nil
}
