package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"shortlink/internal/auth"
	"shortlink/pkg/client"
)

const (
	envAPIAddress = "SHORTLINK_API"
	envToken      = "SHORTLINK_TOKEN"
	envJWTSecret  = "JWT_SECRET_KEY"

	defaultAPIAddress = "http://localhost:8080"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, os.Args[2:])
	case "create":
		err = runCreate(ctx, os.Args[2:])
	case "delete":
		err = runDelete(ctx, os.Args[2:])
	case "restore":
		err = runRestore(ctx, os.Args[2:])
	case "check":
		err = runCheck(ctx, os.Args[2:])
	case "token":
		err = runToken(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: shortlink-cli <list|create|delete|restore|check|token> [flags]")
}

func newClient() (*client.Client, error) {
	baseURL := os.Getenv(envAPIAddress)
	if baseURL == "" {
		baseURL = defaultAPIAddress
	}

	var opts []client.Option
	if token := os.Getenv(envToken); token != "" {
		opts = append(opts, client.WithToken(token))
	}
	return client.New(baseURL, opts...)
}

func runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	scope := fs.String("type", "public", "Link scope: public or personalized")
	trash := fs.Bool("trash", false, "Show soft-deleted links instead of active ones")
	fs.Parse(args)

	api, err := newClient()
	if err != nil {
		return err
	}

	links, err := api.List(ctx, *scope, *trash)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tCLICKS\tURL\tID")
	for _, l := range links {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", l.Slug, l.Clicks, l.OriginalURL, l.ID)
	}
	return w.Flush()
}

func runCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	slug := fs.String("slug", "", "Desired slug, empty to auto-generate")
	originalURL := fs.String("url", "", "Destination URL (required)")
	description := fs.String("description", "", "Optional description")
	personalized := fs.Bool("personalized", false, "Create a personalized link (requires token)")
	fs.Parse(args)

	if *originalURL == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-url is required")
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	link, err := api.Create(ctx, client.CreateLinkParams{
		Slug:           *slug,
		OriginalURL:    *originalURL,
		Description:    *description,
		IsPersonalized: *personalized,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created %s -> %s (id %s)\n", link.Slug, link.OriginalURL, link.ID)
	return nil
}

func runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "Link ID (required)")
	fs.Parse(args)

	if *id == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-id is required")
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	if err := api.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Println("link moved to trash")
	return nil
}

func runRestore(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	id := fs.String("id", "", "Link ID (required)")
	fs.Parse(args)

	if *id == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-id is required")
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	if err := api.Restore(ctx, *id); err != nil {
		return err
	}
	fmt.Println("link restored")
	return nil
}

func runCheck(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	slug := fs.String("slug", "", "Slug to check (required)")
	fs.Parse(args)

	if *slug == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-slug is required")
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	exists, err := api.CheckSlug(ctx, *slug)
	if err != nil {
		return err
	}
	if exists {
		fmt.Println("taken")
	} else {
		fmt.Println("free")
	}
	return nil
}

// runToken выписывает dev-токен тем же секретом, что проверяет сервер.
func runToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	userID := fs.String("user", "", "User ID to embed as subject (required)")
	ttl := fs.Duration("ttl", 24*time.Hour, "Token lifetime")
	fs.Parse(args)

	if *userID == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-user is required")
	}

	secret := os.Getenv(envJWTSecret)
	if secret == "" {
		return fmt.Errorf("%s must be set", envJWTSecret)
	}

	verifier, err := auth.NewJWTVerifier(secret)
	if err != nil {
		return err
	}

	token, err := verifier.Issue(*userID, *ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
