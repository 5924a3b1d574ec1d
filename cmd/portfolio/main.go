// Package main runs the portfolio content shell: an interactive client for
// curating the locally persisted project collection, browsing blog posts,
// and sending contact messages.
package main

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Abhi22shek/portfolio-core/internal/collection"
	"github.com/Abhi22shek/portfolio-core/internal/config"
	"github.com/Abhi22shek/portfolio-core/internal/form"
	"github.com/Abhi22shek/portfolio-core/internal/gate"
	"github.com/Abhi22shek/portfolio-core/internal/logger"
	"github.com/Abhi22shek/portfolio-core/internal/models"
	"github.com/Abhi22shek/portfolio-core/internal/notify"
	"github.com/Abhi22shek/portfolio-core/internal/posts"
	"github.com/Abhi22shek/portfolio-core/internal/render"
	"github.com/Abhi22shek/portfolio-core/internal/seed"
	"github.com/Abhi22shek/portfolio-core/internal/store"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// app bundles the wired components the shell commands operate on.
type app struct {
	col     *collection.Collection
	gate    *gate.Gate
	form    *form.Form
	rec     *render.Reconciler
	printer *render.Printer
	sender  notify.Sender
	source  posts.Source
	filter  models.Filter
}

// repl runs the interactive shell loop, accepting commands to curate the
// collection and browse content.
func repl(a *app) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("portfolio> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, list, filter <tag|all>, posts, read <slug>, contact, unlock, lock, add, feature <id>, remove <id>, reset, exit")
		case "list":
			a.printer.Cards(a.rec.Cards())
		case "filter":
			if len(args) < 2 {
				fmt.Println("Usage: filter <tag|all>")
				continue
			}
			a.filter = models.Filter{ActiveTag: args[1]}
			transitions := a.rec.Apply(a.col.FilteredBy(a.filter))
			a.printer.Transitions(transitions)
			a.printer.Cards(a.rec.Cards())
		case "unlock":
			fmt.Print("Password: ")
			if !scanner.Scan() {
				return
			}
			if err := a.gate.Authenticate(strings.TrimSpace(scanner.Text())); err != nil {
				fmt.Println("Incorrect password")
			} else {
				fmt.Println("Admin mode active. You can now add, feature, and remove entries.")
			}
		case "lock":
			a.gate.Lock()
			fmt.Println("Admin mode off")
		case "add":
			if !a.gate.Unlocked() {
				fmt.Println("Unlock admin mode first")
				continue
			}
			draft := promptDraft(scanner)
			entry, err := a.form.Submit(&draft)
			if err != nil {
				fmt.Println("Could not add entry:", err)
				continue
			}
			fmt.Printf("Added %q (%s)\n", entry.Title, entry.ID)
			a.refresh()
		case "feature":
			if len(args) < 2 {
				fmt.Println("Usage: feature <id>")
				continue
			}
			if !a.gate.Unlocked() {
				fmt.Println("Unlock admin mode first")
				continue
			}
			if err := a.col.ToggleFeatured(args[1]); err != nil {
				fmt.Println("Entry not found")
				continue
			}
			a.refresh()
		case "remove":
			if len(args) < 2 {
				fmt.Println("Usage: remove <id>")
				continue
			}
			if !a.gate.Unlocked() {
				fmt.Println("Unlock admin mode first")
				continue
			}
			if err := a.col.Remove(args[1]); err != nil {
				fmt.Println("Entry not found")
				continue
			}
			fmt.Println("Entry removed")
			a.refresh()
			a.rec.Forget(args[1])
		case "reset":
			if !a.gate.Unlocked() {
				fmt.Println("Unlock admin mode first")
				continue
			}
			a.col.Reset()
			fmt.Println("Collection cleared")
			a.refresh()
		case "contact":
			sendContact(scanner, a.sender)
		case "posts":
			listPosts(a.source)
		case "read":
			if len(args) < 2 {
				fmt.Println("Usage: read <slug>")
				continue
			}
			readPost(a.source, args[1])
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// refresh re-applies the current filter after a mutation and prints the
// resulting transitions.
func (a *app) refresh() {
	transitions := a.rec.Apply(a.col.FilteredBy(a.filter))
	a.printer.Transitions(transitions)
}

// sendContact collects and validates a contact message, then sends it once.
// A failed send is reported; the user resubmits manually.
func sendContact(scanner *bufio.Scanner, sender notify.Sender) {
	msg := promptContact(scanner)
	if err := form.ValidateContact(msg); err != nil {
		fmt.Println("Message not sent:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	result, err := sender.Send(ctx, msg)
	if err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			fmt.Println("Contact is not configured.")
			return
		}
		fmt.Println("Failed to send message. Please try again.")
		return
	}
	if !result.OK {
		fmt.Println("Message rejected:", result.Reason)
		return
	}
	fmt.Println("Message sent. Thank you!")
}

// listPosts prints the blog index, newest first.
func listPosts(source posts.Source) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metas, err := source.ListPosts(ctx)
	if err != nil {
		fmt.Println("Could not load posts:", err)
		return
	}
	if len(metas) == 0 {
		fmt.Println("No posts yet.")
		return
	}
	for _, m := range metas {
		fmt.Printf("%s  %s — %s\n", m.Date, m.Slug, m.Title)
	}
}

// readPost prints a single rendered post.
func readPost(source posts.Source, slug string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	post, err := source.GetPost(ctx, slug)
	if err != nil {
		fmt.Println("Could not load post:", err)
		return
	}
	fmt.Printf("# %s (%s)\n\n%s\n", post.Meta.Title, post.Meta.Date, post.Body)
}

// main parses configuration and starts the shell.
func main() {
	var showVer bool
	flag.BoolVar(&showVer, "version", false, "show build version and date")

	options := config.Parse()

	if showVer {
		fmt.Printf("Portfolio Shell\nVersion: %s\nBuild Date: %s\n",
			cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))
		return
	}

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init("info"); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	// Wire the store, collection, gate, and form.
	st := store.New(options.StoreDir, zapLogger)
	col := collection.New(st, "projects", zapLogger)
	col.Hydrate(seed.Entries())

	g := gate.New(options.AdminPassword)
	if options.AdminPassword == "" {
		zapLogger.Warn("ADMIN_PASSWORD is not set; admin mode cannot be unlocked")
	}

	a := &app{
		col:     col,
		gate:    g,
		form:    form.New(g, col),
		rec:     render.NewReconciler(),
		printer: render.NewPrinter(os.Stdout),
		sender:  notify.NewHTTPSender(&http.Client{Timeout: 15 * time.Second}, options.NotifyURL, zapLogger),
		source:  posts.NewDirSource(options.ContentDir, zapLogger),
		filter:  models.Filter{ActiveTag: models.FilterAll},
	}

	// Prime the view with the highlight reel.
	a.rec.Apply(col.FilteredBy(a.filter))

	zapLogger.Info("portfolio shell started",
		zap.String("store", options.StoreDir),
		zap.String("content", options.ContentDir))

	repl(a)
}
