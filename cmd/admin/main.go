package main

import (
	"blackjack-server/internal/config"
	"blackjack-server/internal/jwt"
	"blackjack-server/pkg/db"
	"blackjack-server/pkg/ledger"
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var command = flag.String("c", "token", "specifies the command (token, balance, credit)")
var account = flag.String("account", "", "the wallet account, prompted for if empty")

func main() {
	flag.Parse()

	acct := *account
	if acct == "" {
		acct = getAccount()
		if acct == "" {
			os.Exit(1)
		}
	}

	switch *command {
	case "token":
		jwt.LoadKeys()
		token, err := jwt.Sign(acct)
		if err != nil {
			logrus.WithError(err).Fatal("could not sign token")
		}

		fmt.Println(token)
	case "balance":
		balance, err := newLedger().Balance(context.Background(), acct)
		if err != nil {
			logrus.WithError(err).Fatal("could not get balance")
		}

		fmt.Println(ledger.FormatAmount(balance))
	case "credit":
		tokens, err := getTokens()
		if err != nil {
			logrus.WithError(err).Fatal("could not get amount")
		}

		balance, err := newLedger().Credit(context.Background(), acct, ledger.Tokens(tokens), "admin credit")
		if err != nil {
			logrus.WithError(err).Fatal("could not credit account")
		}

		fmt.Printf("New balance %s\n", ledger.FormatAmount(balance))
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func newLedger() ledger.Ledger {
	cfg := config.Instance().Ledger
	if cfg.Driver != config.LedgerDriverPostgres {
		logrus.WithField("driver", cfg.Driver).Fatal("admin commands require the postgres ledger")
	}

	return ledger.NewPostgres(db.Instance(), cfg.StartingBalance)
}

func getAccount() string {
	for {
		str, err := getInput("Account")
		if err != nil {
			logrus.WithError(err).Warn("could not read account")
		}

		if str == "" {
			return ""
		}

		if strings.ContainsAny(str, " \t") {
			_, _ = fmt.Fprintln(os.Stderr, "account must not contain whitespace")
			continue
		}

		return str
	}
}

func getTokens() (int64, error) {
	str, err := getInput("Whole tokens to credit")
	if err != nil {
		return 0, err
	}

	tokens, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, err
	}

	if tokens <= 0 {
		return 0, errors.New("amount must be greater than zero")
	}

	return tokens, nil
}

func getInput(question string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("stdin is not a terminal, use flags instead")
	}

	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
