package handler

import (
	"errors"
	"net/http"

	calcdomain "family-dues-go/internal/domain/calculation"
	familydomain "family-dues-go/internal/domain/family"
	ledgerdomain "family-dues-go/internal/domain/ledger"
	statementdomain "family-dues-go/internal/domain/statement"
	weddingdomain "family-dues-go/internal/domain/wedding"
	"family-dues-go/pkg/logger"
)

type Handlers struct {
	Families     *familydomain.Service
	Ledger       *ledgerdomain.Service
	Calculations *calcdomain.Service
	Statements   *statementdomain.Service
	Wedding      *weddingdomain.Service
	log          logger.Logger
}

func New(families *familydomain.Service, ledger *ledgerdomain.Service, calculations *calcdomain.Service, statements *statementdomain.Service, wedding *weddingdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Families:     families,
		Ledger:       ledger,
		Calculations: calculations,
		Statements:   statements,
		Wedding:      wedding,
		log:          log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func isNotFound(err error) bool {
	return errors.Is(err, familydomain.ErrFamilyNotFound) ||
		errors.Is(err, familydomain.ErrMemberNotFound)
}
