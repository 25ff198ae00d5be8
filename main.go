package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lastnpcalex/ATProto/app"
	"github.com/lastnpcalex/ATProto/infra/bluesky"
	"github.com/lastnpcalex/ATProto/infra/config"
	"github.com/lastnpcalex/ATProto/tui"
)

var version = "dev"

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		if strings.HasPrefix(args[0], "-") {
			return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
		}
		// A bare argument is a post URL or at:// URI to open directly.
		return cliRun, args[0]
	}
}

func usage() string {
	return "Usage: atproto [post URL or at:// URI] [--version|-version|-v] [--help|-h]"
}

func promptCredentialsPath(r *bufio.Reader) (string, error) {
	fmt.Print("Enter the credentials file path (JSON): ")
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func main() {
	mode, arg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		fmt.Printf("ATProto %s\n", version)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", arg, usage())
		os.Exit(1)
	}

	// 1. Load credentials from the path given on stdin.
	path, err := promptCredentialsPath(bufio.NewReader(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading credentials path: %v\n", err)
		os.Exit(1)
	}
	creds, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "credentials: %v\n", err)
		os.Exit(1)
	}

	// 2. Build infrastructure and log in.
	client := bluesky.NewClient(creds.Service)
	fmt.Println("Logging in to Bluesky...")
	if err := client.Login(context.Background(), creds.Username, creds.Password); err != nil {
		fmt.Fprintf(os.Stderr, "login: %v\n", err)
		os.Exit(1)
	}

	// 3. Build services (concrete types satisfy app.* interfaces).
	postSvc := bluesky.NewPostService(client)
	identitySvc := bluesky.NewIdentityService(client)
	resolver := app.NewResolver(identitySvc)

	// A CLI argument wins over the bluesky_url from the credentials file.
	initialURL := arg
	if initialURL == "" {
		initialURL = creds.BlueskyURL
	}

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Posts:      postSvc,
		Resolver:   resolver,
		InitialURL: initialURL,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "atproto: %v\n", err)
		os.Exit(1)
	}
}
