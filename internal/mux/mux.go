package mux

import (
	"blackjack-server/internal/config"
	"blackjack-server/internal/jwt"
	"blackjack-server/pkg/room"
	"blackjack-server/pkg/table"
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxAccountKey ctxKey = iota
)

// AccountHeader is the response header that echoes the authenticated account
const AccountHeader = "Blackjack-Account"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	options options
	version string
	table   *table.Table
	pitBoss *room.PitBoss

	// store for testing purposes
	authRouter *gmux.Router
}

type options struct {
	// allowDeposits enables crediting an account through POST /deposit
	allowDeposits bool
	ledgerDriver  string
}

// NewMux returns a new HTTP mux
func NewMux(version string, tbl *table.Table) *Mux {
	pitBoss := room.NewPitBoss(tbl)
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		table:   tbl,
		pitBoss: pitBoss,
		options: options{
			allowDeposits: config.Instance().Ledger.AllowDeposits,
			ledgerDriver:  config.Instance().Ledger.Driver,
		},
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodGet).Path("/balance").Handler(this.getBalance())
		r.Methods(http.MethodPost).Path("/deposit").Handler(this.postDeposit())
		r.Methods(http.MethodPost).Path("/withdraw").Handler(this.postWithdraw())

		rr := r.PathPrefix("/round").Subrouter()
		rr.Methods(http.MethodGet).Path("").Handler(this.getRound())
		rr.Methods(http.MethodPost).Path("/bet").Handler(this.postRoundBet())
		rr.Methods(http.MethodPost).Path("/deal").Handler(this.postRoundAction(this.table.Deal))
		rr.Methods(http.MethodPost).Path("/hit").Handler(this.postRoundAction(this.table.Hit))
		rr.Methods(http.MethodPost).Path("/stand").Handler(this.postRoundAction(this.table.Stand))

		r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())
	}

	return this
}

// Close stops the websocket dispatcher
func (m *Mux) Close() {
	m.pitBoss.EndShift()
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		account, err := jwt.ValidAccount(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxAccountKey, account)
		w.Header().Set(AccountHeader, account)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func accountFromContext(ctx context.Context) string {
	account, _ := ctx.Value(ctxAccountKey).(string)
	return account
}
