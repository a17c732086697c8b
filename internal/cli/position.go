package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"atcmoney/internal/accounting"
	"atcmoney/internal/errors"
	"atcmoney/internal/logging"
	"atcmoney/internal/models"
	"atcmoney/pkg/utils"
)

// Price basis choices for trade registration.
const (
	priceBasisTotal = "Total"
	priceBasisUnit  = "Unit"
)

func newPositionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position",
		Short: "List and manage positions",
		Long: `List held positions and register buy/sell trades against them.

Without a subcommand, all held positions are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPositions(cmd, app)
		},
	}

	cmd.AddCommand(newPositionDetailsCmd(app))
	cmd.AddCommand(newPositionTradeCmd(app, models.SideBuy))
	cmd.AddCommand(newPositionTradeCmd(app, models.SideSell))

	return cmd
}

func listPositions(cmd *cobra.Command, app *App) error {
	output := NewOutput(cmd)
	if app.Store == nil {
		output.Error("Position store not configured.")
		return fmt.Errorf("store not configured")
	}

	positions, err := app.Store.Load()
	if err != nil {
		output.Error("Failed to load positions: %v", err)
		return err
	}

	if output.IsJSON() {
		return output.JSON(positions)
	}

	for _, symbol := range sortedSymbols(positions) {
		pos := positions[symbol]
		output.Printf("symbol: %s, quantity: %s, cost: %s\n",
			pos.Symbol,
			utils.FormatQuantity(pos.Quantity),
			utils.FormatMoney(pos.Cost, string(pos.Currency)))
	}
	return nil
}

func newPositionDetailsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Show valuation and gains for one position",
		Long: `Show a position together with its current market valuation.

Gains are only shown when the quote currency matches the position
currency; no conversion is attempted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Position store not configured.")
				return fmt.Errorf("store not configured")
			}

			positions, err := app.Store.Load()
			if err != nil {
				output.Error("Failed to load positions: %v", err)
				return err
			}

			symbol, _ := cmd.Flags().GetString("symbol")
			if symbol == "" {
				if len(positions) == 0 {
					output.Warning("No positions held.")
					return nil
				}
				prompter := NewPrompter(cmd.InOrStdin(), output)
				symbol, err = prompter.Select("Which symbol do you want details for?", sortedSymbols(positions))
				if err != nil {
					return err
				}
			}
			symbol = strings.ToUpper(symbol)
			logger := logging.WithSymbol(app.Logger, symbol)

			pos, ok := positions[symbol]
			if !ok {
				logger.Warn().Err(errors.ErrPositionNotFound).Msg("No position found for symbol")
				output.Warning("No position found for %s", symbol)
				return nil
			}

			quote, err := fetchQuote(ctx, app, symbol)
			if err != nil {
				logger.Warn().Err(err).Msg("Failed to fetch quote")
				printPosition(output, pos)
				return nil
			}

			printPositionDetails(output, pos, quote)
			return nil
		},
	}
	cmd.Flags().StringP("symbol", "s", "", "position symbol to get details for")
	return cmd
}

func printPosition(output *Output, pos models.Position) {
	output.Printf("symbol: %s, quantity: %s, cost: %s\n",
		pos.Symbol,
		utils.FormatQuantity(pos.Quantity),
		utils.FormatMoney(pos.Cost, string(pos.Currency)))
}

func printPositionDetails(output *Output, pos models.Position, quote *models.Quote) {
	if output.IsJSON() {
		details := map[string]interface{}{
			"position":      pos,
			"current_price": quote,
		}
		if pos.Currency == quote.Currency {
			if pnl, err := pos.CalculatePnL(quote.Price); err == nil {
				details["pnl"] = pnl
			}
		}
		output.JSON(details)
		return
	}

	printPosition(output, pos)
	if pos.Currency == quote.Currency {
		pnl, err := pos.CalculatePnL(quote.Price)
		if err == nil {
			gains := utils.FormatMoney(pnl.AbsoluteGains, string(pos.Currency))
			output.Printf("absolute gains: %s, relative gain: %s\n",
				output.ColoredString(output.PnLColor(pnl.AbsoluteGains), gains),
				utils.FormatGainPercent(pnl.RelativeGains))
		}
	}
	output.Printf("current price: %v %s\n", quote.Price, quote.Currency)
	output.Printf("current total value: %s\n",
		utils.FormatMoney(pos.MarketValue(quote.Price), string(quote.Currency)))
}

func newPositionTradeCmd(app *App, side models.Side) *cobra.Command {
	use := "buy"
	short := "Register a buy trade"
	if side == models.SideSell {
		use = "sell"
		short = "Register a sell trade"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + ` against the matching position.

Symbol, quantity, price, price basis and currency are collected
interactively. The trade is merged into the existing position for the
symbol, realizing profit or loss on opposite-direction trades.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return registerTrade(cmd, app, side)
		},
	}
}

// registerTrade collects trade input, applies it to the matching
// position and persists the result.
func registerTrade(cmd *cobra.Command, app *App, side models.Side) error {
	output := NewOutput(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if app.Store == nil {
		output.Error("Position store not configured.")
		return fmt.Errorf("store not configured")
	}

	trade, err := promptTrade(cmd, output, side)
	if err != nil {
		return err
	}

	positions, err := app.Store.Load()
	if err != nil {
		output.Error("Failed to load positions: %v", err)
		return err
	}

	var existing *models.Position
	if pos, ok := positions[trade.Symbol]; ok {
		existing = &pos
	}

	// A trade opening a brand new position must reference a symbol the
	// provider knows; otherwise typos would create phantom positions.
	if existing == nil {
		if app.Provider == nil {
			output.Error("Quote provider not configured.")
			return fmt.Errorf("provider not configured")
		}
		if _, err := fetchQuote(ctx, app, trade.Symbol); err != nil {
			app.Logger.Warn().Err(err).Str("symbol", trade.Symbol).Msg("Symbol validation failed")
			output.Warning("Market provider failed to find quote, aborting trade")
			return nil
		}
	}

	result, pnl, err := accounting.ApplyTrade(trade, existing)
	if err != nil {
		output.Error("Failed to apply trade: %v", err)
		return err
	}

	if result == nil {
		delete(positions, trade.Symbol)
	} else {
		positions[trade.Symbol] = *result
	}

	if err := app.Store.Store(positions); err != nil {
		output.Error("Failed to store positions: %v", err)
		return err
	}

	logging.LogTrade(app.Logger, trade.Symbol, string(trade.Side()), trade.Quantity, trade.UnitPrice)

	if result == nil {
		output.Success("Position in %s fully liquidated", trade.Symbol)
	} else {
		output.Success("Position updated to %s units", utils.FormatQuantity(result.Quantity))
	}
	if pnl != nil {
		gains := utils.FormatMoney(pnl.AbsoluteGains, string(trade.Currency))
		output.Printf("realized gains: %s (%s)\n",
			output.ColoredString(output.PnLColor(pnl.AbsoluteGains), gains),
			utils.FormatGainPercent(pnl.RelativeGains))
	}
	return nil
}

// promptTrade interactively collects and validates the trade input.
func promptTrade(cmd *cobra.Command, output *Output, side models.Side) (models.Trade, error) {
	prompter := NewPrompter(cmd.InOrStdin(), output)

	symbol, err := prompter.Text("What is the instrument symbol?")
	if err != nil {
		return models.Trade{}, err
	}
	symbol = strings.ToUpper(symbol)

	action := "buy"
	if side == models.SideSell {
		action = "sell"
	}
	quantity, err := prompter.Float(
		fmt.Sprintf("How many units are you %sing?", action),
		func(v float64) bool { return v > 0 },
	)
	if err != nil {
		return models.Trade{}, err
	}

	price, err := prompter.Float("What is the price?", func(v float64) bool { return v >= 0 })
	if err != nil {
		return models.Trade{}, err
	}

	basis, err := prompter.Select("Is this the Total or Unit price?", []string{priceBasisTotal, priceBasisUnit})
	if err != nil {
		return models.Trade{}, err
	}

	currencies := make([]string, len(models.Currencies))
	for i, c := range models.Currencies {
		currencies[i] = string(c)
	}
	code, err := prompter.Select("What is the currency?", currencies)
	if err != nil {
		return models.Trade{}, err
	}
	currency, err := models.ParseCurrency(code)
	if err != nil {
		return models.Trade{}, err
	}

	unitPrice := price
	if basis == priceBasisTotal {
		unitPrice = price / quantity
	}
	if side == models.SideSell {
		quantity = -quantity
	}

	return models.NewTrade(symbol, currency, quantity, unitPrice)
}

func sortedSymbols(positions map[string]models.Position) []string {
	symbols := make([]string, 0, len(positions))
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
