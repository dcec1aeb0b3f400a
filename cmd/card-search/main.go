package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-greeting-cards/internal/adapter"
	"github.com/feral-file/ff-greeting-cards/internal/config"
	"github.com/feral-file/ff-greeting-cards/internal/loader"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/providers/ethereum"
	"github.com/feral-file/ff-greeting-cards/internal/search"
	"github.com/feral-file/ff-greeting-cards/internal/wallet"
)

var (
	configFile string
	envPath    string
	opts       searchOptions
)

var rootCmd = &cobra.Command{
	Use:   "card-search [term]",
	Short: "Search the newest greeting cards",
	Long: `Load the newest window of greeting cards from the contract, filter and sort
them and print the result as JSON.

Examples:
  card-search
  card-search "happy new year" --festival "New Year"
  card-search --date-range week --has-image --sort-by name --sort-order asc`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			opts.Term = args[0]
		}
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to configuration file")
	flags.StringVar(&envPath, "env", "config/", "Path to environment files")
	flags.StringVar(&opts.Festival, "festival", "", "Keep cards of this festival (case-insensitive)")
	flags.StringVar(&opts.DateRange, "date-range", "all", "Creation window: all|today|week|month|year")
	flags.StringVar(&opts.Owner, "owner", "", "Keep cards held by this address")
	flags.BoolVar(&opts.HasImage, "has-image", false, "Keep only cards with a real image")
	flags.StringVar(&opts.MessageLength, "message-length", "all", "Message bucket: all|short|medium|long")
	flags.StringVar(&opts.SortBy, "sort-by", "newest", "Sort key: newest|oldest|popular|name|festival|messageLength")
	flags.StringVar(&opts.SortOrder, "sort-order", "desc", "Sort order: asc|desc")
	flags.IntVar(&opts.Window, "window", 0, "Number of newest tokens to load (defaults to loader.window_size)")
	flags.IntVar(&opts.Limit, "limit", 0, "Maximum number of cards to print (0 prints all)")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	config.ChdirRepoRoot()
	cfg, err := config.LoadCardSearchConfig(configFile, envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "card-search",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Flush(2 * time.Second)

	client, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	defer client.Close()

	// Reads only, the session stays disconnected
	ledger, err := ethereum.NewLedger(ethereum.Config{
		ChainID:         cfg.Ethereum.ChainID,
		ContractAddress: cfg.Ethereum.ContractAddress,
	}, client, wallet.NewSession())
	if err != nil {
		return err
	}

	clock := adapter.NewClock()
	cardLoader := loader.NewLoader(loader.Config{MaxConcurrency: cfg.Loader.MaxConcurrency}, ledger, clock, nil)
	defer cardLoader.Close()

	locale, err := cfg.Search.Tag()
	if err != nil {
		return err
	}

	if opts.Window <= 0 {
		opts.Window = cfg.Loader.WindowSize
	}

	logger.DebugCtx(ctx, "Searching cards",
		zap.String("term", opts.Term),
		zap.Int("window", opts.Window))

	return searchCards(ctx, opts, cardLoader, search.NewEngine(locale, clock), os.Stdout)
}
