package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/powchain/ledger"
)

const (
	optTransaction = "New transaction"
	optMine        = "Mine block"
	optDifficulty  = "Change difficulty"
	optReward      = "Change reward"
	optMiner       = "Change miner address"
	optChain       = "Show chain"
	optPending     = "Show pending transactions"
	optVerify      = "Verify chain"
	optExit        = "Exit"
)

var menuOptions = []string{
	optTransaction, optMine, optDifficulty, optReward, optMiner,
	optChain, optPending, optVerify, optExit,
}

// miningContext is cancelled by Ctrl-C so a long search can be abandoned
// without leaving the program.
func miningContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

func menu(ctx context.Context, l *ledger.Ledger) error {
	for {
		pterm.Println()
		selected, err := pterm.DefaultInteractiveSelect.
			WithDefaultText("Menu").
			WithOptions(menuOptions).
			WithMaxHeight(len(menuOptions)).
			Show()
		if err != nil {
			return err
		}

		switch selected {
		case optTransaction:
			newTransaction(l)
		case optMine:
			mineBlock(ctx, l)
		case optDifficulty:
			changeDifficulty(l)
		case optReward:
			changeReward(l)
		case optMiner:
			changeMiner(l)
		case optChain:
			printChain(l)
		case optPending:
			printPending(l.Pending())
		case optVerify:
			if err := l.Verify(); err != nil {
				pterm.Error.Printfln("Chain is corrupted: %s", err)
			} else {
				pterm.Success.Printfln("All %d blocks are valid", l.Len())
			}
		case optExit:
			pterm.Info.Println("Exiting!")
			return nil
		default:
			pterm.Warning.Println("Invalid option please retry")
		}
	}
}

// ask keeps prompting until parse accepts the answer.
func ask[T any](text string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		pterm.Error.Printfln("Invalid value: %s", err)
	}
}

func newTransaction(l *ledger.Ledger) {
	sender, err := ask("Enter sender address", parseAddress)
	if err != nil {
		return
	}
	receiver, err := ask("Enter receiver address", parseAddress)
	if err != nil {
		return
	}
	amount, err := ask("Enter amount", parseAmount)
	if err != nil {
		return
	}
	if l.SubmitTransaction(sender, receiver, amount) {
		pterm.Success.Println("Transaction added successfully")
	} else {
		pterm.Error.Println("Failed to add new transaction")
	}
}

func mineBlock(ctx context.Context, l *ledger.Ledger) {
	text := fmt.Sprintf("Mining block #%d at difficulty %d (Ctrl-C to abort) ...", l.Len(), l.Difficulty())
	spinner, _ := pterm.DefaultSpinner.Start(text)
	mctx, stop := miningContext(ctx)
	defer stop()
	block, err := l.CreateBlock(mctx)
	if err != nil {
		spinner.Fail(fmt.Sprintf("Failed to generate new block: %s", err))
		return
	}
	spinner.Success("Block generated successfully")
	printBlock(l.Len()-1, block)
}

func changeDifficulty(l *ledger.Ledger) {
	pterm.Info.Printfln("Current difficulty: %d", l.Difficulty())
	d, err := ask("Enter new difficulty", parseDifficulty)
	if err != nil {
		return
	}
	if err := l.SetDifficulty(d); err != nil {
		pterm.Error.Printfln("Failed to update difficulty: %s", err)
		return
	}
	pterm.Success.Println("Updated difficulty")
}

func changeReward(l *ledger.Ledger) {
	pterm.Info.Printfln("Current reward: %v", l.Reward())
	r, err := ask("Enter new reward", parseAmount)
	if err != nil {
		return
	}
	if l.SetReward(r) {
		pterm.Success.Println("Updated reward")
	} else {
		pterm.Error.Println("Failed to update reward")
	}
}

func changeMiner(l *ledger.Ledger) {
	pterm.Info.Printfln("Current miner address: %s", l.MinerAddress())
	a, err := ask("Enter new miner address", parseAddress)
	if err != nil {
		return
	}
	l.SetMinerAddress(a)
	pterm.Success.Println("Updated miner address")
}
