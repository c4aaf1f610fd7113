package tools

import (
	"context"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/ledger"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SellResult ответ на продажу; Position пуст при полной продаже
type SellResult struct {
	Position   *ledger.Position `json:"position"`
	Liquidated bool             `json:"liquidated"`
}

// PositionBuyHandler обрабатывает покупку актива
func PositionBuyHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "position_buy", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		userID, err := requiredString(params, "user_id")
		if err != nil {
			return nil, err
		}
		class, err := stringParam(params, "asset_class")
		if err != nil {
			return nil, err
		}
		symbol, err := stringParam(params, "symbol")
		if err != nil {
			return nil, err
		}

		// для акций количество передается как shares
		quantityKey := "quantity"
		if ledger.AssetClass(class) == ledger.Stock {
			quantityKey = "shares"
		}
		q, hasQuantity, err := optionalFloat(params, quantityKey)
		if err != nil {
			return nil, err
		}
		price, _, err := optionalFloat(params, "price_per_unit")
		if err != nil {
			return nil, err
		}

		req := ledger.BuyRequest{
			UserID:       userID,
			AssetClass:   ledger.AssetClass(class),
			Symbol:       symbol,
			PricePerUnit: price,
		}
		if hasQuantity {
			req.Quantity = &q
		}

		span.SetAttributes(
			attribute.String("user_id", userID),
			attribute.String("asset_class", class),
			attribute.String("symbol", symbol),
			attribute.Float64("quantity", q),
		)

		pos, err := d.Ledger.Buy(req)
		if err != nil {
			metrics.LedgerOperations.WithLabelValues("buy", class, "error").Inc()
			return nil, err
		}
		metrics.LedgerOperations.WithLabelValues("buy", class, "success").Inc()
		span.SetAttributes(attribute.String("position_id", pos.ID))
		return pos, nil
	})
}

// PositionSellHandler обрабатывает продажу части или всей позиции
func PositionSellHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "position_sell", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		userID, err := requiredString(params, "user_id")
		if err != nil {
			return nil, err
		}
		positionID, err := requiredString(params, "position_id")
		if err != nil {
			return nil, err
		}
		q, hasQuantity, err := optionalFloat(params, "quantity")
		if err != nil {
			return nil, err
		}

		req := ledger.SellRequest{UserID: userID, PositionID: positionID}
		if hasQuantity {
			req.Quantity = &q
		}

		span.SetAttributes(
			attribute.String("user_id", userID),
			attribute.String("position_id", positionID),
			attribute.Float64("quantity", q),
		)

		class := "unknown"
		if before, err := d.Ledger.Position(userID, positionID); err == nil {
			class = string(before.AssetClass)
		}

		pos, err := d.Ledger.Sell(req)
		if err != nil {
			metrics.LedgerOperations.WithLabelValues("sell", class, "error").Inc()
			return nil, err
		}
		metrics.LedgerOperations.WithLabelValues("sell", class, "success").Inc()
		span.SetAttributes(attribute.Bool("liquidated", pos == nil))
		return SellResult{Position: pos, Liquidated: pos == nil}, nil
	})
}

// PositionsListHandler возвращает позиции пользователя
func PositionsListHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "positions_list", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		userID, err := requiredString(params, "user_id")
		if err != nil {
			return nil, err
		}
		positions, err := d.Ledger.Positions(userID)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.Int("positions", len(positions)))
		if positions == nil {
			positions = []ledger.Position{}
		}
		return positions, nil
	})
}

// PositionsRevalueHandler обновляет текущие цены позиций из справочника
func PositionsRevalueHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "positions_revalue", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		userID, err := requiredString(params, "user_id")
		if err != nil {
			return nil, err
		}
		positions, err := d.Ledger.Revalue(userID, d.Prices)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.Int("positions", len(positions)))
		if positions == nil {
			positions = []ledger.Position{}
		}
		return positions, nil
	})
}

// WalletOpenHandler возвращает кошелек пользователя, создавая его при необходимости
func WalletOpenHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "wallet_open", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		userID, err := requiredString(params, "user_id")
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.String("user_id", userID))
		return d.Wallets.Open(userID)
	})
}

// WalletDepositHandler зачисляет средства на кошелек
func WalletDepositHandler(d Deps) ToolHandler {
	return walletMoveHandler(d, "wallet_deposit", d.Wallets.Deposit)
}

// WalletWithdrawHandler списывает средства с кошелька
func WalletWithdrawHandler(d Deps) ToolHandler {
	return walletMoveHandler(d, "wallet_withdraw", d.Wallets.Withdraw)
}

func walletMoveHandler(d Deps, toolName string, move func(userID, currency string, amount float64) (ledger.Wallet, error)) ToolHandler {
	return instrument(d.Tracer, toolName, func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		userID, err := requiredString(params, "user_id")
		if err != nil {
			return nil, err
		}
		currency, err := requiredString(params, "currency")
		if err != nil {
			return nil, err
		}
		amount, err := floatParam(params, "amount")
		if err != nil {
			return nil, err
		}

		span.SetAttributes(
			attribute.String("user_id", userID),
			attribute.String("currency", currency),
			attribute.Float64("amount", amount),
		)
		return move(userID, currency, amount)
	})
}

// TransactionsListHandler возвращает журнал операций пользователя
func TransactionsListHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "transactions_list", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		userID, err := requiredString(params, "user_id")
		if err != nil {
			return nil, err
		}
		records, err := d.Wallets.Transactions(userID)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.Int("records", len(records)))
		if records == nil {
			records = []ledger.TransactionRecord{}
		}
		return records, nil
	})
}
