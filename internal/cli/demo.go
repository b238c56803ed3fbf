package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/services"
)

// DemoCommand walks a fresh store through every operation and prints what
// happens at each step.
type DemoCommand struct {
	Backend string

	out io.Writer
}

func NewDemoCommand() *DemoCommand {
	return &DemoCommand{out: os.Stdout}
}

func (cmd *DemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)

	fs.StringVar(&cmd.Backend, "backend", string(config.StoreBackendMemory), "Store backend: memory or sqlite")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s demo [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Run a scripted tour of the book store.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *DemoCommand) Run() error {
	dbCfg := config.Database{Path: config.DefaultDatabasePath, LogLevel: "silent"}
	handle, err := services.OpenStore(config.StoreBackend(cmd.Backend), dbCfg)
	if err != nil {
		return err
	}
	defer handle.Close()

	fmt.Fprintf(cmd.out, "Running demo on the %s backend\n", handle.Backend)
	return RunDemo(handle.Store, cmd.out)
}

// RunDemo exercises the store end to end. It returns an error only when the
// store misbehaves, not for the failures the script provokes on purpose.
func RunDemo(store *bookstore.Store, out io.Writer) error {
	step := func(title string) { fmt.Fprintf(out, "\n=== %s ===\n", title) }
	list := func(books []entities.Book) {
		if len(books) == 0 {
			fmt.Fprintln(out, "  (none)")
		}
		for _, book := range books {
			fmt.Fprintf(out, "  %s\n", formatBook(book))
		}
	}

	step("Creating books")
	requests := []entities.CreateBookRequest{
		{Title: "  The Hobbit ", Author: "J.R.R. Tolkien", Year: 1937},
		{Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Year: 1954},
		{Title: "Dune", Author: "Frank Herbert", Year: 1965},
		{Title: "Foundation", Author: "Isaac Asimov", Year: 1951},
		{Title: "I, Robot", Author: "Isaac Asimov", Year: 1950},
	}
	created := make([]entities.Book, 0, len(requests))
	for _, req := range requests {
		book, err := store.Create(req)
		if err != nil {
			return fmt.Errorf("create %q: %w", req.Title, err)
		}
		created = append(created, book)
		fmt.Fprintf(out, "  created %s\n", formatBook(book))
	}
	fmt.Fprintf(out, "Store holds %d books\n", store.Count())

	step("Rejected creation")
	if _, err := store.Create(entities.CreateBookRequest{Title: "   ", Author: "Nobody", Year: 2000}); err != nil {
		fmt.Fprintf(out, "  %s error: %v\n", bookstore.KindOf(err), err)
	}
	if _, err := store.Create(entities.CreateBookRequest{Title: "Tomorrow", Author: "Nobody", Year: 9999}); err != nil {
		fmt.Fprintf(out, "  %s error: %v\n", bookstore.KindOf(err), err)
	}
	fmt.Fprintf(out, "Store still holds %d books\n", store.Count())

	step("Searching")
	fmt.Fprintln(out, "Author contains \"tolkien\":")
	list(store.FindByAuthor("tolkien"))
	fmt.Fprintln(out, "Title contains \"ring\":")
	list(store.FindByTitle("ring"))
	fmt.Fprintln(out, "Published in 1951:")
	list(store.FindByYear(1951))

	step("Updating")
	newTitle := "Dune (40th Anniversary Edition)"
	updated, found, err := store.Update(created[2].ID, entities.UpdateBookRequest{Title: &newTitle})
	if err != nil || !found {
		return fmt.Errorf("update %s failed: found=%v err=%v", created[2].ID, found, err)
	}
	fmt.Fprintf(out, "  updated %s\n", formatBook(updated))

	badYear := -5
	if _, _, err := store.Update(created[2].ID, entities.UpdateBookRequest{Year: &badYear}); err != nil {
		fmt.Fprintf(out, "  %s error: %v\n", bookstore.KindOf(err), err)
	}
	if _, found, _ := store.Update("missing-id", entities.UpdateBookRequest{Title: &newTitle}); !found {
		fmt.Fprintln(out, "  update of missing-id found nothing")
	}

	step("Safe variants")
	outcome := store.SafeCreate(entities.CreateBookRequest{Title: "Neuromancer", Author: "William Gibson", Year: 1984})
	if outcome.IsOK() {
		fmt.Fprintf(out, "  safeCreate ok: %s\n", formatBook(outcome.Value()))
	}
	outcome = store.SafeCreate(entities.CreateBookRequest{Title: "Untitled", Author: "", Year: 1984})
	if !outcome.IsOK() {
		fmt.Fprintf(out, "  safeCreate failed: %v\n", outcome.Err())
	}
	outcome = store.SafeUpdate("missing-id", entities.UpdateBookRequest{Title: &newTitle})
	if !outcome.IsOK() {
		fmt.Fprintf(out, "  safeUpdate failed: %v\n", outcome.Err())
	}

	step("Pagination")
	for number := 1; ; number++ {
		page := store.GetPaginated(number, 2)
		fmt.Fprintf(out, "Page %d of %d (next=%v, previous=%v)\n", page.CurrentPage, page.TotalPages, page.HasNext, page.HasPrevious)
		list(page.Records)
		if !page.HasNext {
			break
		}
	}

	step("Deleting")
	fmt.Fprintf(out, "  delete %s: %v\n", created[0].ID, store.Delete(created[0].ID))
	fmt.Fprintf(out, "  delete again: %v\n", store.Delete(created[0].ID))
	if err := store.SafeDelete(created[0].ID); err != nil {
		fmt.Fprintf(out, "  safeDelete failed: %v\n", err)
	}

	step("Final state")
	list(store.FindAll())
	fmt.Fprintf(out, "Store holds %d books\n", store.Count())
	store.Clear()
	fmt.Fprintf(out, "After clear, empty=%v\n", store.IsEmpty())

	return nil
}
