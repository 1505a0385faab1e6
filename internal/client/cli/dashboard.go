package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"storedash/internal/client/api"
	"storedash/internal/client/catalog"
	"storedash/internal/client/models"
)

// enterDashboard performs the dashboard "mount": fetch the profile for the
// prompt, load the first product page, and print it with the aggregate.
func (a *App) enterDashboard(ctx context.Context) {
	profile, err := a.authService.Profile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.expireSession()
			return
		}
		fmt.Fprintf(a.out, "Failed to fetch profile: %v\n", err)
	} else {
		a.userName = profile.Username
		fmt.Fprintf(a.out, "Hello, %s!\n", profile.FullName())
	}

	if err := a.loader.Load(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.expireSession()
			return
		}
		fmt.Fprintf(a.out, "Failed to load products: %v\n", err)
		return
	}

	s := a.loader.Snapshot()
	a.printProducts(s.Items)
	a.printStats(s)
}

// List prints the loaded products, fetching the first page when nothing
// has been loaded yet.
func (a *App) List(ctx context.Context) error {
	if !a.loggedIn {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	s := a.loader.Snapshot()
	if len(s.Items) == 0 && s.HasMore {
		if err := a.loader.Load(ctx); err != nil && !errors.Is(err, catalog.ErrBusy) {
			fmt.Fprintf(a.out, "Failed to load products: %v\n", err)
			return err
		}
		s = a.loader.Snapshot()
	}

	a.printProducts(s.Items)
	a.printFooter(s)
	return nil
}

// More loads the next page and prints the newly appended products. A
// trigger while a load is pending or after the last page is a no-op.
func (a *App) More(ctx context.Context) error {
	if !a.loggedIn {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	before := len(a.loader.Snapshot().Items)

	loaded, err := a.loader.LoadMore(ctx)
	if err != nil {
		// Surfaced rather than swallowed: the user asked for this page.
		fmt.Fprintf(a.out, "Failed to load more products: %v\n", err)
		return err
	}
	if !loaded {
		fmt.Fprintln(a.out, "No more products to load.")
		return nil
	}

	s := a.loader.Snapshot()
	a.printProducts(s.Items[before:])
	a.printFooter(s)
	return nil
}

// Refresh refetches the catalog from the first page, replacing everything
// loaded so far.
func (a *App) Refresh(ctx context.Context) error {
	if !a.loggedIn {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	if err := a.loader.Refresh(ctx); err != nil {
		fmt.Fprintf(a.out, "Failed to refresh products: %v\n", err)
		return err
	}

	s := a.loader.Snapshot()
	a.printProducts(s.Items)
	a.printStats(s)
	return nil
}

// Stats prints the aggregate over the currently loaded products. The
// aggregate is recomputed from the snapshot on every call; it is never
// cached on the loader.
func (a *App) Stats(ctx context.Context) error {
	if !a.loggedIn {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	a.printStats(a.loader.Snapshot())
	return nil
}

// Show prints the details of one loaded product by ID.
func (a *App) Show(ctx context.Context, id string) error {
	if !a.loggedIn {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	productID, err := strconv.Atoi(id)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid product id: %s\n", id)
		return err
	}

	for _, p := range a.loader.Snapshot().Items {
		if p.ID == productID {
			a.printProductDetails(p)
			return nil
		}
	}

	fmt.Fprintf(a.out, "Product %d is not loaded. Try 'more' to load further pages.\n", productID)
	return nil
}

func (a *App) printProducts(items []models.Product) {
	for _, p := range items {
		fmt.Fprintf(a.out, "  [%d] %s  $%.2f (%s)\n", p.ID, p.Title, p.Price, p.Category)
	}
}

func (a *App) printFooter(s catalog.Snapshot) {
	if s.HasMore {
		fmt.Fprintf(a.out, "Showing %d of %d products. Type 'more' to load the next page.\n", len(s.Items), s.Total)
	} else {
		fmt.Fprintf(a.out, "Showing all %d products.\n", len(s.Items))
	}
}

func (a *App) printStats(s catalog.Snapshot) {
	stats := catalog.ComputeStats(s.Items)
	fmt.Fprintf(a.out, "Loaded: %d of %d | Categories: %d | Average price: $%.2f\n",
		stats.Count, s.Total, stats.Categories, stats.AveragePrice)
}

func (a *App) printProductDetails(p models.Product) {
	fmt.Fprintf(a.out, "%s\n", p.Title)
	fmt.Fprintf(a.out, "  ID:       %d\n", p.ID)
	fmt.Fprintf(a.out, "  Brand:    %s\n", p.Brand)
	fmt.Fprintf(a.out, "  Category: %s\n", p.Category)
	fmt.Fprintf(a.out, "  Price:    $%.2f\n", p.Price)
	fmt.Fprintf(a.out, "  Rating:   %.2f\n", p.Rating)
	if p.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", p.Description)
	}
	if p.Thumbnail != "" {
		fmt.Fprintf(a.out, "  Thumbnail: %s\n", p.Thumbnail)
	}
	for _, img := range p.Images {
		fmt.Fprintf(a.out, "  Image:     %s\n", img)
	}
}
