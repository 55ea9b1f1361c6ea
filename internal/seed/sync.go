package seed

import (
	"context"
	"fmt"

	"conectacausa/internal/kv"
)

// Sync writes the seed collections to durable storage so every process
// starts from the same data instead of each falling back to its own
// in-memory defaults.
//
// Keys that already hold a value are left alone unless reset is set, in
// which case users and opportunities are overwritten with the seed and the
// application list is emptied.
func Sync(ctx context.Context, c *kv.Collections, reset bool) error {
	fmt.Println("Starting collection sync...")

	written := 0
	skipped := 0

	steps := []struct {
		key   string
		write func() error
	}{
		{kv.UsersKey, func() error { return kv.Save(ctx, c, kv.UsersKey, Users()) }},
		{kv.OpportunitiesKey, func() error { return kv.Save(ctx, c, kv.OpportunitiesKey, Opportunities()) }},
		{kv.ApplicationsKey, func() error { return kv.Save(ctx, c, kv.ApplicationsKey, Applications()) }},
	}

	for _, step := range steps {
		if !reset {
			exists, err := c.Has(ctx, step.key)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", step.key, err)
			}
			if exists {
				fmt.Printf("  Keeping existing %s\n", step.key)
				skipped++
				continue
			}
		}

		fmt.Printf("  Writing seed %s\n", step.key)
		if err := step.write(); err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.key, err)
		}
		written++
	}

	fmt.Printf("\nSync complete: %d written, %d kept\n", written, skipped)
	return nil
}
