package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/services"
	"github.com/mrlokans/bookshelf/internal/validation"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const shellMenu = `
=== Bookshelf ===
 1) Add book
 2) List all books
 3) Find by id
 4) Search by title
 5) Search by author
 6) Search by year
 7) Update book
 8) Delete book
 9) Show page
10) Count books
11) Clear all books
 0) Quit
`

type ShellCommand struct {
	Backend  string
	Seed     bool
	SeedPath string
	JSON     bool
	PageSize int

	in  io.Reader
	out io.Writer
}

func NewShellCommand() *ShellCommand {
	return &ShellCommand{in: os.Stdin, out: os.Stdout}
}

func (cmd *ShellCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)

	fs.StringVar(&cmd.Backend, "backend", string(config.StoreBackendMemory), "Store backend: memory or sqlite")
	fs.BoolVar(&cmd.Seed, "seed", false, "Start with the sample books loaded")
	fs.StringVar(&cmd.SeedPath, "seed-file", "", "YAML file with books to load (implies -seed)")
	fs.BoolVar(&cmd.JSON, "json", false, "Print book lists as JSON")
	fs.IntVar(&cmd.PageSize, "page-size", config.DefaultPageSize, "Page size for the paged listing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s shell [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Manage books from an interactive menu. Nothing is kept after exit.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s shell\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s shell -seed -json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s shell -backend sqlite -seed-file ./books.yaml\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.SeedPath != "" {
		cmd.Seed = true
	}
	if cmd.PageSize < 1 {
		return fmt.Errorf("page-size must be positive")
	}
	return nil
}

func (cmd *ShellCommand) Run() error {
	dbCfg := config.Database{Path: config.DefaultDatabasePath, LogLevel: "silent"}
	handle, err := services.OpenStore(config.StoreBackend(cmd.Backend), dbCfg)
	if err != nil {
		return err
	}
	defer handle.Close()

	if cmd.Seed {
		requests, err := demo.LoadSeed(cmd.SeedPath)
		if err != nil {
			return fmt.Errorf("failed to load seed: %w", err)
		}
		result := demo.Seed(handle.Store, requests)
		fmt.Fprintf(cmd.out, "Loaded %d sample books\n", result.Created)
	}

	shell := NewShell(handle.Store, cmd.in, cmd.out)
	shell.JSON = cmd.JSON
	shell.PageSize = cmd.PageSize
	return shell.Loop()
}

// Shell is a line-oriented menu over a store. Store errors are printed and
// the loop carries on; only read failures end it early.
type Shell struct {
	JSON     bool
	PageSize int

	store   *bookstore.Store
	scanner *bufio.Scanner
	out     io.Writer
}

func NewShell(store *bookstore.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		PageSize: config.DefaultPageSize,
		store:    store,
		scanner:  bufio.NewScanner(in),
		out:      out,
	}
}

// Loop runs the menu until the user quits or input ends.
func (s *Shell) Loop() error {
	for {
		fmt.Fprint(s.out, shellMenu)
		choice, ok := s.prompt("Choice")
		if !ok {
			fmt.Fprintln(s.out, "\nGoodbye")
			return s.scanner.Err()
		}

		switch choice {
		case "1":
			s.add()
		case "2":
			s.printBooks(s.store.FindAll())
		case "3":
			s.findByID()
		case "4":
			if query, ok := s.prompt("Title contains"); ok {
				s.printBooks(s.store.FindByTitle(query))
			}
		case "5":
			if query, ok := s.prompt("Author contains"); ok {
				s.printBooks(s.store.FindByAuthor(query))
			}
		case "6":
			s.findByYear()
		case "7":
			s.update()
		case "8":
			s.delete()
		case "9":
			s.page()
		case "10":
			fmt.Fprintf(s.out, "%d book(s) stored\n", s.store.Count())
		case "11":
			s.clear()
		case "0", "q", "quit", "exit":
			fmt.Fprintln(s.out, "Goodbye")
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown choice %q\n", choice)
		}
	}
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// promptRaw keeps surrounding whitespace so the store's own trimming and
// blank checks apply.
func (s *Shell) promptRaw(label string) (string, bool) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Shell) add() {
	title, ok := s.promptRaw("Title")
	if !ok {
		return
	}
	author, ok := s.promptRaw("Author")
	if !ok {
		return
	}
	yearRaw, ok := s.prompt("Year")
	if !ok {
		return
	}

	req := entities.CreateBookRequest{Title: title, Author: author}
	year, err := validation.ParseYear(yearRaw)
	if err != nil {
		// Text rules are reported before the year type.
		if textErr := validation.ValidateCreate(req); textErr != nil {
			s.printError(bookstore.FromValidation(textErr))
			return
		}
		s.printError(bookstore.FromValidation(err))
		return
	}
	req.Year = year

	outcome := s.store.SafeCreate(req)
	if !outcome.IsOK() {
		s.printError(outcome.Err())
		return
	}
	fmt.Fprintf(s.out, "Added %s\n", formatBook(outcome.Value()))
}

func (s *Shell) findByID() {
	id, ok := s.prompt("Id")
	if !ok {
		return
	}
	book, found := s.store.FindByID(id)
	if !found {
		s.printError(bookstore.NewNotFoundError(id))
		return
	}
	fmt.Fprintln(s.out, formatBook(book))
}

func (s *Shell) findByYear() {
	raw, ok := s.prompt("Year")
	if !ok {
		return
	}
	year, err := validation.ParseYear(raw)
	if err != nil {
		s.printError(bookstore.FromValidation(err))
		return
	}
	s.printBooks(s.store.FindByYear(year))
}

// update leaves a field untouched when its answer is blank.
func (s *Shell) update() {
	id, ok := s.prompt("Id")
	if !ok {
		return
	}
	fmt.Fprintln(s.out, "Leave a field blank to keep it.")

	var req entities.UpdateBookRequest
	title, ok := s.promptRaw("New title")
	if !ok {
		return
	}
	if title != "" {
		req.Title = &title
	}
	author, ok := s.promptRaw("New author")
	if !ok {
		return
	}
	if author != "" {
		req.Author = &author
	}
	yearRaw, ok := s.prompt("New year")
	if !ok {
		return
	}
	if yearRaw != "" {
		year, err := validation.ParseYear(yearRaw)
		if err != nil {
			s.printError(bookstore.FromValidation(err))
			return
		}
		req.Year = &year
	}

	outcome := s.store.SafeUpdate(id, req)
	if !outcome.IsOK() {
		s.printError(outcome.Err())
		return
	}
	fmt.Fprintf(s.out, "Updated %s\n", formatBook(outcome.Value()))
}

func (s *Shell) delete() {
	id, ok := s.prompt("Id")
	if !ok {
		return
	}
	if err := s.store.SafeDelete(id); err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintf(s.out, "Deleted %s\n", id)
}

func (s *Shell) page() {
	raw, ok := s.prompt("Page")
	if !ok {
		return
	}
	number := 1
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintf(s.out, "Error: page must be a number\n")
			return
		}
		number = n
	}

	page := s.store.GetPaginated(number, s.PageSize)
	if s.JSON {
		s.printJSON(page)
		return
	}
	fmt.Fprintf(s.out, "Page %d of %d (%d books)\n", page.CurrentPage, page.TotalPages, page.TotalRecords)
	s.printBooks(page.Records)
	if page.HasPrevious {
		fmt.Fprintln(s.out, "  < previous page available")
	}
	if page.HasNext {
		fmt.Fprintln(s.out, "  > next page available")
	}
}

func (s *Shell) clear() {
	answer, ok := s.prompt("Remove every book? (y/N)")
	if !ok {
		return
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(s.out, "Cancelled")
		return
	}
	removed := s.store.RemoveAll()
	fmt.Fprintf(s.out, "Removed %d book(s)\n", removed)
}

func (s *Shell) printBooks(books []entities.Book) {
	if s.JSON {
		s.printJSON(books)
		return
	}
	if len(books) == 0 {
		fmt.Fprintln(s.out, "No books found")
		return
	}
	for i, book := range books {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, formatBook(book))
	}
}

func (s *Shell) printJSON(v any) {
	data, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, string(data))
}

func (s *Shell) printError(err error) {
	switch bookstore.KindOf(err) {
	case bookstore.KindValidation:
		fmt.Fprintf(s.out, "Invalid input: %v\n", err)
	case bookstore.KindNotFound:
		fmt.Fprintf(s.out, "Not found: %v\n", err)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func formatBook(book entities.Book) string {
	return fmt.Sprintf("%q by %s (%d) [%s]", book.Title, book.Author, book.Year, book.ID)
}
