package engine

import (
	"crypto/md5"
	"fmt"
	"math/big"
	"time"
)

// DailyQuote picks a quote deterministically from the tier's list. The same
// day index, calendar date and category always yield the same quote; a new
// calendar date redistributes the whole plan's quotes. This function is
// total and is the designated fallback whenever the model omits a quote.
func (c TierConfig) DailyQuote(day int, restDay bool, date time.Time) string {
	category := "workout"
	list := c.WorkoutQuotes
	if restDay {
		category = "rest"
		list = c.RestQuotes
	}
	if len(list) == 0 {
		return "Every day is a step toward your goal."
	}

	seed := fmt.Sprintf("%s-%s-day%d-%s", c.Tag, date.Format("2006-01-02"), day, category)
	sum := md5.Sum([]byte(seed))

	// The full 128-bit digest is reduced mod the list length, matching a
	// uniform redistribution when any part of the seed changes.
	idx := new(big.Int).Mod(
		new(big.Int).SetBytes(sum[:]),
		big.NewInt(int64(len(list))),
	)
	return list[idx.Int64()]
}
