package shelf

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ValentinKolb/dShelf/lib/card"
	"github.com/ValentinKolb/dShelf/lib/shelf"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	formStyle    = lipgloss.NewStyle().Width(6).Foreground(lipgloss.Color("#B91C1C"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

var (
	tabsCmd = &cobra.Command{
		Use:   "tabs",
		Short: "Lists the tabs of the shelf in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tabs, err := rpcShelf.Tabs()
			if err != nil {
				return err
			}
			for _, tab := range tabs {
				fmt.Println(tab)
			}
			return nil
		},
	}
	tabCmd = &cobra.Command{
		Use:   "tab [tab]",
		Short: "Lists the books of a tab with their form numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := rpcShelf.BooksForTab(args[0])
			if err != nil {
				return err
			}
			fmt.Println(headingStyle.Render(fmt.Sprintf("%s (%d)", view.Tab, len(view.Entries))))
			if len(view.Entries) == 0 {
				fmt.Println(dimStyle.Render("no books on this tab"))
			}
			for _, e := range view.Entries {
				fmt.Printf("%s%s %s\n", formStyle.Render(e.FormNumber), e.Book.Title, dimStyle.Render("by "+e.Book.Author))
			}
			return nil
		},
	}
	booksCmd = &cobra.Command{
		Use:   "books",
		Short: "Lists every book of the shelf in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := rpcShelf.AllBooks()
			if err != nil {
				return err
			}
			for _, b := range books {
				fmt.Printf("%-4s %-18s %s\n", b.Library, b.Category, b)
			}
			return nil
		},
	}
	verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Checks that every book has a category and a library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := rpcShelf.Verify()
			if err != nil {
				return err
			}
			fmt.Printf("total books: %d\n", report.TotalBooks)
			printCounts("categories", report.CategoryCounts)
			printCounts("libraries", report.LibraryCounts)
			if report.Ok() {
				fmt.Println("catalog is complete")
				return nil
			}
			for _, e := range report.Errors {
				fmt.Println(e)
			}
			return shelf.NewError(shelf.RetCIncompleteCatalog, fmt.Sprintf("%d problems found", len(report.Errors)))
		},
	}
	formCmd = &cobra.Command{
		Use:   "form [tab] [index]",
		Short: "Prints the form number of a position on a tab",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}
			form, err := rpcShelf.FormNumber(args[0], index)
			if err != nil {
				return err
			}
			fmt.Println(form)
			return nil
		},
	}
	libraryCmd = &cobra.Command{
		Use:   "library [title]",
		Short: "Prints the library a title is assigned to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := rpcShelf.AssignLibrary(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", lib.Name, lib.ShortName)
			return nil
		},
	}
	stampCmd = &cobra.Command{
		Use:   "stamp [date] [color]",
		Short: "Prints the placement of a checkout stamp",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var color shelf.StampColor
			if len(args) == 2 {
				color = shelf.StampColor(args[1])
			}
			stamp, class, err := rpcShelf.Stamp(args[0], color)
			if err != nil {
				return err
			}
			fmt.Printf("date=%s, x=%dpx, y=%dpx, rotate=%ddeg, class=%s\nfont=%s\n",
				stamp.Date, stamp.OffsetX, stamp.OffsetY, stamp.Rotation, class, stamp.Font)
			return nil
		},
	}
	cardCmd = &cobra.Command{
		Use:   "card [tab] [index]",
		Short: "Renders the library card of a book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}
			c, ok, err := rpcShelf.Card(args[0], index)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no book at position %d of tab %q", index, args[0])
			}
			fmt.Println(card.Render(c))
			return nil
		},
	}
	analysisCmd = &cobra.Command{
		Use:   "analysis",
		Short: "Prints the literary profile of the shelf owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := rpcShelf.Analysis()
			if err != nil {
				return err
			}
			fmt.Println(report.String())
			return nil
		},
	}
)

// printCounts prints a count map sorted by key
func printCounts(title string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %-20s %d\n", k, counts[k])
	}
}
