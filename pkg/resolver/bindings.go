package resolver

import (
	"strconv"
	"strings"

	"github.com/advocflow/docgen/pkg/money"
	"github.com/advocflow/docgen/pkg/party"
)

// binding resolves one token. resolve returns the display value and
// whether the underlying field is filled; unfilled required bindings
// render the blank-fill sentinel, unfilled optional ones render nothing.
type binding struct {
	resolve  func(party.Data) (string, bool)
	optional bool
	prefix   string
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// standardBindings builds the fixed token table. Fallback chains follow
// the document wording: person fields fall back to the entity's legal
// representative, address fields fall back to the company seat, so the
// same clause text serves both PF and PJ templates.
func standardBindings() map[string]binding {
	text := func(fn func(party.Data) string) binding {
		return binding{resolve: func(d party.Data) (string, bool) {
			v := strings.TrimSpace(fn(d))
			return v, v != ""
		}}
	}
	moneyVal := func(fn func(party.Data) money.Cents) binding {
		return binding{resolve: func(d party.Data) (string, bool) {
			c := fn(d)
			if c == 0 {
				return "", false
			}
			return money.FormatBRL(c), true
		}}
	}

	return map[string]binding{
		"NOME": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.Name }),
				pjField(d, func(e party.Entity) string { return e.LegalName }),
				partnerField(d, func(p party.PartnershipData) string { return p.Manager }))
		}),
		"ESTADO CIVIL": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.MaritalStatus }),
				repField(d, func(r party.Representative) string { return r.MaritalStatus }))
		}),
		"PROFISSÃO": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.Profession }),
				repField(d, func(r party.Representative) string { return r.Profession }))
		}),
		"NACIONALIDADE": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.Nationality }),
				repField(d, func(r party.Representative) string { return r.Nationality }))
		}),
		"CPF": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.CPF }),
				repField(d, func(r party.Representative) string { return r.CPF }))
		}),
		"RUA": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.Street }),
				repField(d, func(r party.Representative) string { return r.Address }),
				pjField(d, func(e party.Entity) string { return e.Address }))
		}),
		"BAIRRO": {
			optional: true,
			prefix:   ", ",
			resolve: func(d party.Data) (string, bool) {
				v := first(pfField(d, func(p party.Individual) string { return p.District }),
					pjField(d, func(e party.Entity) string { return e.District }))
				return v, v != ""
			},
		},
		"CEP": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.CEP }),
				repField(d, func(r party.Representative) string { return r.CEP }),
				pjField(d, func(e party.Entity) string { return e.CEP }))
		}),
		"CIDADE": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.City }),
				repField(d, func(r party.Representative) string { return r.City }),
				pjField(d, func(e party.Entity) string { return e.City }))
		}),
		"ESTADO": text(func(d party.Data) string {
			return first(pfField(d, func(p party.Individual) string { return p.State }),
				repField(d, func(r party.Representative) string { return r.State }),
				pjField(d, func(e party.Entity) string { return e.State }),
				partnerField(d, func(p party.PartnershipData) string { return p.SignState }))
		}),
		"NUMERO DE PROCESSO": text(func(d party.Data) string { return d.CaseNumber }),

		"VALOR TOTAL": moneyVal(func(d party.Data) money.Cents { return d.Terms.Total }),
		"ENTRADA":     moneyVal(func(d party.Data) money.Cents { return d.Terms.Entry }),
		"VALOR DA PARCELA": moneyVal(func(d party.Data) money.Cents {
			return d.Terms.Installment
		}),
		"DATA DE ENTRADA": {resolve: func(d party.Data) (string, bool) {
			if d.Terms.EntryDate.IsZero() {
				return "", false
			}
			return d.Terms.EntryDate.Format("02/01/2006"), true
		}},
		"VEZES DE PARCELAS": {resolve: func(d party.Data) (string, bool) {
			if d.Terms.Count <= 0 {
				return "", false
			}
			return strconv.Itoa(d.Terms.Count), true
		}},
		"DATA DE PAGAMENTO DAS PARCELAS": {resolve: func(d party.Data) (string, bool) {
			if d.Terms.DueDay < 1 || d.Terms.DueDay > 31 {
				return "", false
			}
			return strconv.Itoa(d.Terms.DueDay), true
		}},
		"FORMA DE PAGAMENTO": text(func(d party.Data) string {
			return string(d.Terms.Method)
		}),

		"DIA": {resolve: func(d party.Data) (string, bool) {
			if d.SignDate.IsZero() {
				return "", false
			}
			return d.SignDate.Format("02"), true
		}},
		"MÊS": {resolve: func(d party.Data) (string, bool) {
			if d.SignDate.IsZero() {
				return "", false
			}
			return monthNames[d.SignDate.Month()-1], true
		}},
		"ANO": {resolve: func(d party.Data) (string, bool) {
			if d.SignDate.IsZero() {
				return "", false
			}
			return d.SignDate.Format("2006"), true
		}},

		"NOME DA EMPRESA": text(func(d party.Data) string {
			return pjField(d, func(e party.Entity) string { return e.LegalName })
		}),
		"CNPJ DA EMPRESA": text(func(d party.Data) string {
			return pjField(d, func(e party.Entity) string { return e.CNPJ })
		}),
		"ENDEREÇO DA SEDE": text(func(d party.Data) string {
			return pjField(d, func(e party.Entity) string { return e.Address })
		}),
		"BAIRRO DA SEDE": text(func(d party.Data) string {
			return pjField(d, func(e party.Entity) string { return e.District })
		}),
		"CIDADE DA SEDE": text(func(d party.Data) string {
			return pjField(d, func(e party.Entity) string { return e.City })
		}),
		"ESTADO DA SEDE": text(func(d party.Data) string {
			return pjField(d, func(e party.Entity) string { return e.State })
		}),
		"CEP DA SEDE": text(func(d party.Data) string {
			return pjField(d, func(e party.Entity) string { return e.CEP })
		}),

		"NOME DO REPRESENTANTE": text(func(d party.Data) string {
			return repField(d, func(r party.Representative) string { return r.Name })
		}),
		"NACIONALIDADE DO REPRESENTANTE": text(func(d party.Data) string {
			return repField(d, func(r party.Representative) string { return r.Nationality })
		}),
		"PROFISSÃO DO REPRESENTANTE": text(func(d party.Data) string {
			return repField(d, func(r party.Representative) string { return r.Profession })
		}),
		"ESTADO CIVIL DO REPRESENTANTE": text(func(d party.Data) string {
			return repField(d, func(r party.Representative) string { return r.MaritalStatus })
		}),
		"CPF DO REPRESENTANTE": text(func(d party.Data) string {
			return repField(d, func(r party.Representative) string { return r.CPF })
		}),
		"ENDEREÇO DO REPRESENTANTE": text(func(d party.Data) string {
			return repField(d, func(r party.Representative) string { return r.Address })
		}),
		"CIDADE DO REPRESENTANTE": text(func(d party.Data) string {
			return repField(d, func(r party.Representative) string { return r.City })
		}),
		"CEP DO REPRESENTANTE": text(func(d party.Data) string {
			return repField(d, func(r party.Representative) string { return r.CEP })
		}),

		"GESTOR": text(func(d party.Data) string {
			return partnerField(d, func(p party.PartnershipData) string { return p.Manager })
		}),
		"PARCEIRO": text(func(d party.Data) string {
			return partnerField(d, func(p party.PartnershipData) string { return p.Partner })
		}),
		"OAB DO PARCEIRO": text(func(d party.Data) string {
			return partnerField(d, func(p party.PartnershipData) string { return p.PartnerOAB })
		}),
		"TIPO DE AÇÃO": text(func(d party.Data) string {
			return partnerField(d, func(p party.PartnershipData) string { return p.ActionType })
		}),
		"PERCENTUAL": text(func(d party.Data) string {
			return partnerField(d, func(p party.PartnershipData) string { return p.Percentage })
		}),
	}
}

func first(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func pfField(d party.Data, fn func(party.Individual) string) string {
	if d.Individual == nil {
		return ""
	}
	return fn(*d.Individual)
}

func pjField(d party.Data, fn func(party.Entity) string) string {
	if d.Entity == nil {
		return ""
	}
	return fn(*d.Entity)
}

func repField(d party.Data, fn func(party.Representative) string) string {
	if d.Entity == nil {
		return ""
	}
	return fn(d.Entity.Representative)
}

func partnerField(d party.Data, fn func(party.PartnershipData) string) string {
	if d.Partnership == nil {
		return ""
	}
	return fn(*d.Partnership)
}
