package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/stevegt/envi"
	"github.com/stevegt/gemchat/core"
	"github.com/stevegt/gemchat/gemini"
	. "github.com/stevegt/goadapt"
)

// ErrMissingAPIKey is returned when no API key was given on the command
// line or in the environment.
var ErrMissingAPIKey = errors.New("no API key: use --api-key or set GEMINI_API_KEY")

// cmdChat holds the flags for the chat loop.  There are no
// subcommands.
type cmdChat struct {
	APIKey   string           `name:"api-key" short:"k" help:"Gemini API key.  Falls back to GEMINI_API_KEY, which may be set in a .env file."`
	Model    string           `help:"Model to chat with.  Falls back to GEMINI_MODEL, then ${default_model}."`
	Timeout  time.Duration    `default:"60s" help:"Timeout for each request to the API."`
	Sentinel string           `default:":exit" help:"Input that ends the conversation (any case)."`
	Verbose  bool             `short:"v" help:"Show debug and progress information on stderr."`
	Version  kong.VersionFlag `help:"Show version and exit."`
}

// CliConfig contains the configuration for gemchat's cli
type CliConfig struct {
	// Name is the name of the program
	Name string
	// Description is a short description of the program
	Description string
	// Version is the version of the program
	Version string
	// Exit is the function to call to exit the program
	Exit   func(int)
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Endpoint is the API base URL, including the API version
	Endpoint string
	// EnvFile is loaded into the environment, without overriding
	// variables that are already set, before the API key is looked up
	EnvFile string
}

// NewCliConfig returns a new Config struct with default values populated
func NewCliConfig() *CliConfig {
	return &CliConfig{
		Name:        "gemchat",
		Description: "A command-line tool for having a conversation with Google's Gemini API.",
		Version:     core.CodeVersion(),
		Exit:        func(i int) { os.Exit(i) },
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Endpoint:    gemini.DefaultEndpoint,
		EnvFile:     ".env",
	}
}

// Cli parses the given arguments and then runs the conversation.
//
// We use this function instead of kong.Parse() so that we can pass in
// the arguments to parse and the stdio to use.  This allows us to more
// easily test the cli.
func Cli(args []string, config *CliConfig) (rc int, err error) {
	defer Return(&err)

	// capture goadapt stdio
	SetStdio(
		config.Stdin,
		config.Stdout,
		config.Stderr,
	)
	defer SetStdio(nil, nil, nil)

	options := []kong.Option{
		kong.Name(config.Name),
		kong.Description(config.Description),
		kong.Exit(config.Exit),
		kong.Writers(config.Stdout, config.Stderr),
		kong.Vars{
			"version":       config.Version,
			"default_model": gemini.DefaultModel,
		},
	}

	var cli cmdChat
	parser, err := kong.New(&cli, options...)
	Ck(err)
	ctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		rc = 1
		return
	}
	Debug("ctx: %+v", ctx)

	// kong has already printed the version and called Exit
	if cli.Version {
		return
	}

	if cli.Verbose {
		os.Setenv("DEBUG", "1")
	}

	loadEnvFile(config.EnvFile)

	apiKey := cli.APIKey
	if apiKey == "" {
		apiKey = envi.String("GEMINI_API_KEY", "")
	}
	if apiKey == "" {
		Fpf(config.Stderr, "%s: error: %v\n", config.Name, ErrMissingAPIKey)
		return 1, ErrMissingAPIKey
	}

	model := cli.Model
	if model == "" {
		model = envi.String("GEMINI_MODEL", gemini.DefaultModel)
	}

	gc := gemini.NewClient(apiKey, model)
	gc.Endpoint = config.Endpoint
	gc.HTTPClient.Timeout = cli.Timeout
	Debug("model %s, endpoint %s, timeout %v", gc.Model, gc.Endpoint, cli.Timeout)

	chat := core.NewChat(gc, config.Stdin, config.Stdout, config.Stderr)
	chat.Sentinel = cli.Sentinel
	err = chat.Run(context.Background())
	if err != nil {
		Fpf(config.Stderr, "%s: error: %v\n", config.Name, err)
		rc = 1
		return
	}
	return
}

// loadEnvFile loads fn into the environment if it exists.
func loadEnvFile(fn string) {
	if fn == "" {
		return
	}
	_, err := os.Stat(fn)
	if err != nil {
		Debug("no env file %s", fn)
		return
	}
	err = godotenv.Load(fn)
	if err != nil {
		Debug("loading %s: %v", fn, err)
	}
}
