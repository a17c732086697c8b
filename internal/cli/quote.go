package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"atcmoney/internal/models"
	"atcmoney/internal/provider"
	"atcmoney/pkg/utils"
)

// MaxQuoteSymbols caps the number of symbols fetched per quote command.
const MaxQuoteSymbols = 5

func newQuoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quote <symbol>...",
		Short: "Get quotes for one or more symbols",
		Long: `Fetch and display the current market quote for each symbol.

At most five symbols are fetched per invocation; extra symbols are
skipped with a warning.`,
		Example: `  atcmoney quote GOOGL
  atcmoney quote GOOGL MSFT AAPL`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Provider == nil {
				output.Error("Quote provider not configured.")
				return fmt.Errorf("provider not configured")
			}

			symbols := args
			if len(symbols) > MaxQuoteSymbols {
				app.Logger.Warn().
					Int("max", MaxQuoteSymbols).
					Msgf("No more than %d symbols supported at a time, will skip symbols after %s",
						MaxQuoteSymbols, symbols[MaxQuoteSymbols])
				symbols = symbols[:MaxQuoteSymbols]
			}

			results := make(map[string]*models.Quote, len(symbols))
			for _, arg := range symbols {
				symbol := strings.ToUpper(arg)
				quote, err := fetchQuote(ctx, app, symbol)
				if err != nil {
					app.Logger.Warn().Err(err).Str("symbol", symbol).Msg("Failed to fetch quote")
					continue
				}
				results[symbol] = quote
				if !output.IsJSON() {
					output.Printf("%s: %v %s\n", symbol, quote.Price, quote.Currency)
				}
			}

			if output.IsJSON() {
				return output.JSON(results)
			}
			return nil
		},
	}
}

// fetchQuote asks the provider for a quote, retrying transient failures.
func fetchQuote(ctx context.Context, app *App, symbol string) (*models.Quote, error) {
	cfg := utils.DefaultRetryConfig()
	cfg.Retryable = provider.IsTransient
	return utils.RetryWithResult(ctx, cfg, func() (*models.Quote, error) {
		return app.Provider.GetQuote(ctx, symbol)
	})
}
