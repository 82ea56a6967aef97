// Package schedule derives dated installment plans from contract payment
// terms. Terms are immutable value records: Derive returns a new record
// with the installment amount recomputed, and Compute produces the dated
// rows fresh on every call. Invalid or incomplete inputs yield an empty
// schedule, never an error; the caller treats that as "nothing to show".
package schedule

import (
	"fmt"
	"time"

	"github.com/advocflow/docgen/pkg/money"
)

// PaymentMethod enumerates how the contract fee is paid.
type PaymentMethod string

const (
	Boleto       PaymentMethod = "BOLETO BANCÁRIO"
	Pix          PaymentMethod = "PIX"
	CreditCard   PaymentMethod = "CARTÃO DE CRÉDITO"
	BankTransfer PaymentMethod = "TRANSFERÊNCIA BANCÁRIA"
	Cash         PaymentMethod = "DINHEIRO"
	CashUpfront  PaymentMethod = "À VISTA"
)

// SinglePayment reports whether the method settles the whole fee in one
// payment. Single-payment methods have no entry or installment rows.
func (m PaymentMethod) SinglePayment() bool {
	switch m {
	case Pix, CreditCard, CashUpfront:
		return true
	}
	return false
}

// String returns the display form used inside document clauses.
func (m PaymentMethod) String() string { return string(m) }

// Terms captures the financial inputs of a fee contract. The zero value
// means "no payment terms entered yet". Installment is derived from the
// other fields via Derive and is never set directly while the inputs are
// valid.
//
// Switching Method to a single-payment mode deliberately keeps the entry
// and installment fields: Compute ignores them, so no data is lost if
// the operator switches back.
type Terms struct {
	Total       money.Cents
	Method      PaymentMethod
	Entry       money.Cents
	EntryDate   time.Time
	EntryMethod PaymentMethod
	Count       int
	DueDay      int
	Installment money.Cents
}

// Derive returns a copy of t with Installment recomputed as
// round((Total-Entry)/Count). Callers must re-derive after every change
// to Total, Entry, or Count. When the inputs are incomplete the previous
// Installment is preserved unchanged.
//
// The division does not redistribute rounding remainders: 1000,00 over 3
// gives three rows of 333,33, one cent short of the total. Known
// limitation, kept until the rounding policy is confirmed.
func Derive(t Terms) Terms {
	if t.Total <= 0 || t.Count <= 0 {
		return t
	}
	remaining := t.Total - t.Entry
	count := money.Cents(t.Count)

	// Round half away from zero in integer arithmetic.
	q := (2*remaining + count) / (2 * count)
	t.Installment = q
	return t
}

// Entry is one row of the payment schedule table.
type Entry struct {
	Seq     int
	Label   string
	DueDate time.Time
	Amount  money.Cents
}

// Compute derives the full dated schedule for t. The result is never
// persisted; identical terms always produce an identical schedule.
//
// Single-payment methods yield exactly one row for the total, dated at
// EntryDate (a zero EntryDate means "on execution" and is left zero for
// the renderer to label). Installment mode yields an optional entry row
// followed by Count rows, one month apart, on DueDay of each month with
// the standard year carry across December.
func Compute(t Terms) []Entry {
	if t.Total <= 0 {
		return nil
	}

	if t.Method.SinglePayment() {
		return []Entry{{
			Seq:     1,
			Label:   "Pagamento único",
			DueDate: t.EntryDate,
			Amount:  t.Total,
		}}
	}

	if t.EntryDate.IsZero() {
		return nil
	}

	var entries []Entry
	if t.Entry > 0 {
		entries = append(entries, Entry{
			Seq:     0,
			Label:   "Entrada",
			DueDate: t.EntryDate,
			Amount:  t.Entry,
		})
	}

	if t.Count <= 0 {
		return entries
	}

	dueDay := t.DueDay
	if dueDay < 1 || dueDay > 31 {
		dueDay = 10
	}

	t = Derive(t)
	year, month, _ := t.EntryDate.Date()
	for i := 1; i <= t.Count; i++ {
		// time.Date normalizes both the month overflow (year carry) and
		// a due day past the end of the month.
		due := time.Date(year, month+time.Month(i), dueDay, 0, 0, 0, 0, t.EntryDate.Location())
		entries = append(entries, Entry{
			Seq:     i,
			Label:   fmt.Sprintf("Parcela %d/%d", i, t.Count),
			DueDate: due,
			Amount:  t.Installment,
		})
	}
	return entries
}

// FormatDate renders a schedule date as dd/mm/yyyy; the zero time renders
// as the on-execution wording used by the contract clauses.
func FormatDate(d time.Time) string {
	if d.IsZero() {
		return "na assinatura"
	}
	return d.Format("02/01/2006")
}
