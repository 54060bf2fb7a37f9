package strategies

import "github.com/rustyeddy/ticklab/market"

// book is the shared Flat/Long bookkeeping every strategy embeds. enter and
// exit are the only transitions; exit appends the completed trade. A
// position still open when the series ends produces no trade.
type book struct {
	long   bool
	entry  market.Tick
	trades []Trade
}

func (b *book) enter(t market.Tick) {
	b.long = true
	b.entry = t
}

func (b *book) exit(t market.Tick) {
	pl := t.Price - b.entry.Price
	b.trades = append(b.trades, Trade{
		EntryTime:     b.entry.Time,
		EntryPrice:    b.entry.Price,
		ExitTime:      t.Time,
		ExitPrice:     t.Price,
		ProfitLoss:    pl,
		ProfitLossPct: pl / b.entry.Price * 100,
	})
	b.long = false
}

func (b *book) Trades() []Trade {
	return b.trades
}
