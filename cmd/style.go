package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/powchain/ledger"
)

func printChain(l *ledger.Ledger) {
	for i, b := range l.Blocks() {
		printBlock(i, b)
	}
}

func printBlock(height int, b *ledger.Block) {
	pterm.Println(blockPanel(height, b))
}

func blockPanel(height int, b *ledger.Block) string {
	h := b.Header()
	info := pterm.Sprintfln("Hash:       %s", pterm.LightGreen(b.Hash()))
	info += pterm.Sprintfln("Prev hash:  %s", h.PrevHash())
	info += pterm.Sprintfln("Merkle:     %s", h.Merkle())
	info += pterm.Sprintfln("Time:       %s", h.Time().Format(time.RFC3339Nano))
	info += pterm.Sprintfln("Nonce:      %d", h.Nonce())
	info += pterm.Sprintfln("Difficulty: %d", h.Difficulty())
	info += pterm.Sprintfln("Count:      %d", b.Count())
	info += transactionTable(b.Transactions())

	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightYellow(fmt.Sprintf("|BLOCK #%d|", height))
	return pbox.WithTitle(title).WithTitleTopCenter().Sprint(info)
}

func transactionTable(txs []ledger.Transaction) string {
	data := pterm.TableData{{"#", "Sender", "Receiver", "Amount"}}
	for i, tx := range txs {
		sender := tx.Sender
		if tx.IsReward() {
			sender = pterm.LightCyan(sender)
		}
		data = append(data, []string{strconv.Itoa(i), sender, tx.Receiver, formatAmount(tx.Amount)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err.Error()
	}
	return table
}

func printPending(txs []ledger.Transaction) {
	if len(txs) == 0 {
		pterm.Info.Println("No pending transactions")
		return
	}
	pterm.Info.Printfln("%d pending transactions", len(txs))
	pterm.Println(transactionTable(txs))
}

func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
