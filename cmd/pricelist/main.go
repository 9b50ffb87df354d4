// Command pricelist is a terminal front for the pricelist backend,
// built on the client SDK. It plays the role the browser views play:
// it renders whatever the session and locale containers hold and
// reacts to broadcast failures instead of branching on errors.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/123fakturera/pricelist-system/pkg/client"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	server := os.Getenv("PRICELIST_SERVER")
	if server == "" {
		server = "http://localhost:3000"
	}
	dataPath := os.Getenv("PRICELIST_DATA")
	if dataPath == "" {
		home, _ := os.UserHomeDir()
		dataPath = filepath.Join(home, ".pricelist", "session.json")
	}

	store, err := client.NewStore(dataPath)
	if err != nil {
		return err
	}

	broadcaster := client.NewBroadcaster()
	session := client.NewSession(store, broadcaster)

	var locale *client.Locale
	cl := client.New(client.Options{
		BaseURL:     server,
		Broadcaster: broadcaster,
		Token:       session.Token,
		Language:    func() string { return locale.Current() },
	})
	locale = client.NewLocale(cl, store)

	// Failure banners; the session container already reacts to session
	// errors by clearing credentials.
	broadcaster.OnBackendError(func(e client.BackendError) {
		fmt.Fprintf(os.Stderr, "! %s (returncode %s) — try again\n", e.Message, e.Returncode)
	})
	broadcaster.OnSessionError(func(e client.SessionError) {
		fmt.Fprintf(os.Stderr, "! %s\n", e.Message)
	})

	ctx := session.Context()
	locale.Bootstrap(ctx)

	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: pricelist login <email> <password>")
		}
		res, err := session.Login(ctx, cl, args[1], args[2])
		if err != nil {
			return fmt.Errorf("login failed")
		}
		fmt.Printf("logged in as %s <%s>\n", res.User.Name, res.User.Email)

	case "logout":
		if err := session.Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")

	case "list":
		search := ""
		if len(args) > 1 {
			search = args[1]
		}
		res, err := cl.Pricelist(ctx, search)
		if err != nil {
			return fmt.Errorf("could not load the price list")
		}
		printItems(locale, res.Data)

	case "search":
		return interactiveSearch(cl, session, locale)

	case "add":
		form, err := formFromArgs(args[1:])
		if err != nil {
			return err
		}
		input, ferrs := form.Input()
		if ferrs != nil {
			for _, fe := range ferrs {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, locale.Translate(fe.Message))
			}
			return fmt.Errorf("invalid input")
		}
		res, err := cl.CreateItem(ctx, input)
		if err != nil {
			return fmt.Errorf("could not save the product")
		}
		fmt.Printf("created %s (%s)\n", res.Data.ProductService, res.Data.ID)

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: pricelist delete <id>")
		}
		if _, err := cl.DeleteItem(ctx, args[1]); err != nil {
			return fmt.Errorf("could not delete the product")
		}
		fmt.Println("deleted")

	case "terms":
		res, err := cl.FetchTerms(ctx)
		if err != nil {
			return fmt.Errorf("could not load terms")
		}
		t := res.Terms
		for _, section := range []string{
			t.Introduction, t.Services, t.UserResponsibilities,
			t.Payments, t.Liability, t.Termination, t.Changes, t.Contact,
		} {
			fmt.Println(section)
			fmt.Println()
		}

	case "langs":
		for _, l := range locale.Supported() {
			marker := " "
			if l.Code == locale.Current() {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, l.Code, l.Name)
		}

	case "lang":
		if len(args) != 2 {
			return fmt.Errorf("usage: pricelist lang <code>")
		}
		if err := locale.ChangeLanguage(ctx, args[1]); err != nil {
			return fmt.Errorf("could not switch language")
		}
		fmt.Println("language set to", locale.Current())

	default:
		usage()
	}
	return nil
}

// interactiveSearch reads terms line by line and debounces them into
// list fetches, printing each delivered result set.
func interactiveSearch(cl *client.Client, session *client.Session, locale *client.Locale) error {
	searcher := client.NewSearcher(cl, session.Context, 0, func(items []client.PriceItem, err error) {
		if err != nil {
			return // already reported via broadcast banner
		}
		printItems(locale, items)
	})
	defer searcher.Stop()

	fmt.Println("type to search, empty line to quit")
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return sc.Err()
		}
		searcher.Update(line)
	}
	return sc.Err()
}

func printItems(locale *client.Locale, items []client.PriceItem) {
	if len(items) == 0 {
		fmt.Println(locale.Translate("pricelist.error_not_found"))
		return
	}
	for _, it := range items {
		fmt.Printf("%-12s %-30s %10s %10s %6s %8s\n",
			it.ArticleNo, it.ProductService,
			fmtFloat(it.InPrice), fmtFloat(it.Price),
			fmtString(it.Unit), fmtInt(it.InStock))
	}
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtString(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

// formFromArgs parses key=value pairs into an ItemForm.
func formFromArgs(args []string) (client.ItemForm, error) {
	var form client.ItemForm
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return form, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch key {
		case "articleNo":
			form.ArticleNo = value
		case "productService":
			form.ProductService = value
		case "inPrice":
			form.InPrice = value
		case "price":
			form.Price = value
		case "unit":
			form.Unit = value
		case "inStock":
			form.InStock = value
		case "description":
			form.Description = value
		default:
			return form, fmt.Errorf("unknown field %q", key)
		}
	}
	return form, nil
}

func usage() {
	fmt.Println(`usage: pricelist <command>

  login <email> <password>   authenticate and persist the session
  logout                     clear the persisted session
  list [search]              list price items
  search                     interactive debounced search
  add key=value ...          create an item (articleNo= productService= ...)
  delete <id>                delete an item
  terms                      show the legal terms
  langs                      list supported languages
  lang <code>                switch display language

environment: PRICELIST_SERVER (default http://localhost:3000),
             PRICELIST_DATA   (default ~/.pricelist/session.json)`)
}
