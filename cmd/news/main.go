// Command news is a terminal client for the NewsPress API with an offline
// local article cache.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/ujsag/newspress/internal/client/cache"
	"github.com/ujsag/newspress/internal/client/catalog"
	"github.com/ujsag/newspress/internal/client/rest"
	"github.com/ujsag/newspress/internal/client/session"
	"github.com/ujsag/newspress/pkg/logger"
)

type clientConfig struct {
	APIURL        string        `env:"NEWS_API_URL, default=http://localhost:8080"`
	DataDir       string        `env:"NEWS_DATA_DIR"`
	Reconcile     bool          `env:"NEWS_RECONCILE_CREATES, default=false"`
	LogLevel      string        `env:"NEWS_LOG_LEVEL, default=error"`
	RequestWindow time.Duration `env:"NEWS_TIMEOUT, default=30s"`
}

func usage() {
	fmt.Fprintf(os.Stderr, `news - NewsPress terminal client

Usage:
  news <cmd> [args]

Commands:
  register   -u <email> -p <password>
  login      -u <email> -p <password>     (saves token + role)
  logout
  whoami
  refresh                                 (rotate the token pair)
  list                                    (merged server + local articles)
  show       -id <n>
  add        -title <t> [-desc <d>] [-author <id>]
  edit       -id <n> -title <t> [-desc <d>]
  rm         -id <n>
  authors
  author     -id <n>
  addauthor  -name <name>
`)
	os.Exit(2)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	var cfg clientConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		fail(err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = session.DefaultDir()
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestWindow)
	defer cancel()

	sessions := session.NewStore(cfg.DataDir)
	api := rest.New(cfg.APIURL, sessions)
	store := cache.NewStore(cfg.DataDir)
	cat := catalog.New(api, store, catalog.Options{ReconcileOnCreate: cfg.Reconcile}, log)

	switch cmd {

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		email := fs.String("u", "", "email")
		password := fs.String("p", "", "password")
		_ = fs.Parse(args)
		if *email == "" || *password == "" {
			fail(errors.New("need -u and -p"))
		}
		if err := api.Register(ctx, *email, *password); err != nil {
			fail(err)
		}
		fmt.Println("registered:", *email)

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("u", "", "email")
		password := fs.String("p", "", "password")
		_ = fs.Parse(args)
		if *email == "" || *password == "" {
			fail(errors.New("need -u and -p"))
		}
		if err := establishSession(ctx, cfg.APIURL, sessions, *email, *password); err != nil {
			if errors.Is(err, rest.ErrUnauthorized) {
				fail(errors.New("invalid credentials"))
			}
			fail(err)
		}
		fmt.Println("logged in as", *email)

	case "logout":
		if sess, ok := sessions.Load(); ok {
			// revoke server-side, but clear locally regardless
			if err := api.Logout(ctx, sess.RefreshToken); err != nil {
				log.Debug().Err(err).Msg("server-side logout failed")
			}
		}
		if err := sessions.Clear(); err != nil {
			fail(err)
		}
		fmt.Println("logged out")

	case "whoami":
		sess, ok := sessions.Load()
		if !ok {
			fmt.Println("not logged in")
			return
		}
		fmt.Printf("%s (%s)\n", sess.Email, sess.Role)

	case "refresh":
		sess, ok := sessions.Load()
		if !ok {
			fail(errors.New("not logged in"))
		}
		pair, err := api.Refresh(ctx, sess.RefreshToken)
		if err != nil {
			fail(err)
		}
		sess.AccessToken = pair.AccessToken
		sess.RefreshToken = pair.RefreshToken
		sess.ExpiresAt = time.Now().Add(time.Duration(pair.ExpiresIn) * time.Second)
		if err := sessions.Save(sess); err != nil {
			fail(err)
		}
		fmt.Println("token refreshed")

	case "list":
		cat.Refresh(ctx)
		for _, a := range cat.Items() {
			marker := " "
			if a.Local() {
				marker = "*"
			}
			fmt.Printf("%s %5d  %-40s %s\n", marker, a.ID, a.Title, a.AuthorName)
		}

	case "show":
		id := mustID(args)
		if id < 0 {
			cat.Refresh(ctx)
			for _, a := range cat.Items() {
				if a.ID == id {
					printArticle(a)
					return
				}
			}
			fail(errors.New("not found in local cache"))
		}
		art, err := api.GetArticle(ctx, id)
		if err != nil {
			fail(err)
		}
		printArticle(catalogView(*art))

	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		title := fs.String("title", "", "article title")
		desc := fs.String("desc", "", "article description")
		authorID := fs.Int("author", 0, "author id")
		_ = fs.Parse(args)
		if *title == "" {
			fail(catalog.ErrEmptyTitle)
		}
		cat.Refresh(ctx)
		art, err := cat.Create(ctx, *title, *desc, *authorID, "")
		if err != nil {
			fmt.Fprintln(os.Stderr, "saved locally; server create failed:", err)
		}
		fmt.Printf("created article %d\n", art.ID)

	case "edit":
		fs := flag.NewFlagSet("edit", flag.ExitOnError)
		id := fs.Int("id", 0, "article id")
		title := fs.String("title", "", "new title")
		desc := fs.String("desc", "", "new description")
		_ = fs.Parse(args)
		if *id == 0 {
			fail(errors.New("need -id"))
		}
		if *title == "" {
			fail(catalog.ErrEmptyTitle)
		}
		cat.Refresh(ctx)
		var found *catalog.Article
		for _, a := range cat.Items() {
			if a.ID == *id {
				a := a
				found = &a
				break
			}
		}
		if found == nil {
			fail(errors.New("article not found"))
		}
		found.Title = *title
		if *desc != "" {
			found.Description = *desc
		}
		if err := cat.Update(ctx, *found); err != nil {
			fail(err)
		}
		fmt.Printf("updated article %d\n", *id)

	case "rm":
		id := mustID(args)
		cat.Refresh(ctx)
		if err := cat.Delete(ctx, id); err != nil {
			fail(err)
		}
		fmt.Printf("deleted article %d\n", id)

	case "authors":
		list, err := api.ListAuthors(ctx)
		if err != nil {
			fail(err)
		}
		for _, a := range list {
			fmt.Printf("%5d  %-30s %d articles\n", a.ID, a.Name, a.ArticleCount)
		}

	case "author":
		id := mustID(args)
		author, err := api.GetAuthor(ctx, id)
		if err != nil {
			fail(err)
		}
		fmt.Printf("%d  %s\n", author.ID, author.Name)
		for _, a := range author.Articles {
			fmt.Printf("  %5d  %s  (%s)\n", a.ID, a.Title, a.CreatedDate.Format("2006-01-02"))
		}

	case "addauthor":
		fs := flag.NewFlagSet("addauthor", flag.ExitOnError)
		name := fs.String("name", "", "author name")
		_ = fs.Parse(args)
		if *name == "" {
			fail(errors.New("name must not be empty"))
		}
		author, err := api.CreateAuthor(ctx, rest.AuthorInput{Name: *name})
		if err != nil {
			switch {
			case errors.Is(err, rest.ErrUnauthorized):
				fail(errors.New("login required"))
			case errors.Is(err, rest.ErrForbidden):
				fail(errors.New("admin role required"))
			}
			fail(err)
		}
		fmt.Printf("created author %d\n", author.ID)

	default:
		usage()
	}
}

// establishSession exchanges credentials for a token pair and persists the
// session. The role lookup must use the fresh access token directly; the
// session file is not written yet, so a store-backed client would send the
// info request anonymously.
func establishSession(ctx context.Context, apiURL string, sessions *session.Store, email, password string) error {
	api := rest.New(apiURL, sessions)
	pair, err := api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	role := lookupRole(ctx, rest.New(apiURL, rest.StaticToken(pair.AccessToken)))
	return sessions.Save(session.Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Email:        email,
		Role:         role,
		ExpiresAt:    time.Now().Add(time.Duration(pair.ExpiresIn) * time.Second),
	})
}

// lookupRole queries /manage/info for the user's role. Best-effort: any
// failure falls back to plain User.
func lookupRole(ctx context.Context, api *rest.Client) string {
	info, err := api.CurrentUser(ctx)
	if err != nil || len(info.Roles) == 0 {
		return "User"
	}
	for _, r := range info.Roles {
		if r == "Admin" {
			return r
		}
	}
	return info.Roles[0]
}

func mustID(args []string) int {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	id := fs.Int("id", 0, "article id")
	_ = fs.Parse(args)
	if *id == 0 {
		fail(errors.New("need -id"))
	}
	return *id
}

func printArticle(a catalog.Article) {
	fmt.Printf("id:      %d\n", a.ID)
	fmt.Printf("title:   %s\n", a.Title)
	if a.Description != "" {
		fmt.Printf("desc:    %s\n", a.Description)
	}
	if a.AuthorName != "" {
		fmt.Printf("author:  %s\n", a.AuthorName)
	}
	fmt.Printf("created: %s\n", a.CreatedDate.Format(time.RFC3339))
	if a.UpdatedDate != nil {
		fmt.Printf("updated: %s\n", a.UpdatedDate.Format(time.RFC3339))
	}
}

func catalogView(a rest.Article) catalog.Article {
	out := catalog.Article{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		AuthorID:    a.AuthorID,
		CreatedDate: a.CreatedDate,
		UpdatedDate: a.UpdatedDate,
	}
	if a.Author != nil {
		out.AuthorName = a.Author.Name
	}
	return out
}
