// Package party defines the client-side data record a document is
// generated from. The record is a tagged union with one variant per
// party kind; the resolver pattern-matches on the variant instead of
// probing optional fields. Records are immutable per render: mutating
// helpers return a new value.
package party

import (
	"time"

	"github.com/advocflow/docgen/pkg/schedule"
)

// Kind classifies the contracting party.
type Kind string

const (
	PF          Kind = "PF"          // natural person
	PJ          Kind = "PJ"          // legal entity
	Partnership Kind = "PARTNERSHIP" // inter-counsel partnership
)

// ContractType selects which document bundle is generated.
type ContractType string

const (
	PFBundle        ContractType = "PF_BUNDLE"
	PJBundle        ContractType = "PJ_BUNDLE"
	PartnershipDeal ContractType = "PARTNERSHIP"
)

// PartyKind returns the party variant a contract type operates on.
func (c ContractType) PartyKind() Kind {
	switch c {
	case PJBundle:
		return PJ
	case PartnershipDeal:
		return Partnership
	default:
		return PF
	}
}

// Individual holds the natural-person fields.
type Individual struct {
	Name          string `json:"nome"`
	MaritalStatus string `json:"estadoCivil"`
	Profession    string `json:"profissao"`
	Nationality   string `json:"nacionalidade"`
	CPF           string `json:"cpf"`
	Street        string `json:"rua"`
	District      string `json:"bairro"`
	City          string `json:"cidade"`
	State         string `json:"estado"`
	CEP           string `json:"cep"`
}

// Representative is the natural person signing on behalf of an Entity.
type Representative struct {
	Name          string `json:"nome"`
	Nationality   string `json:"nacionalidade"`
	Profession    string `json:"profissao"`
	MaritalStatus string `json:"estadoCivil"`
	CPF           string `json:"cpf"`
	Address       string `json:"endereco"`
	City          string `json:"cidade"`
	State         string `json:"estado"`
	CEP           string `json:"cep"`
}

// Entity holds the legal-entity fields.
type Entity struct {
	LegalName      string         `json:"razaoSocial"`
	CNPJ           string         `json:"cnpj"`
	Address        string         `json:"enderecoSede"`
	District       string         `json:"bairroSede"`
	City           string         `json:"cidadeSede"`
	State          string         `json:"estadoSede"`
	CEP            string         `json:"cepSede"`
	Representative Representative `json:"representante"`
}

// Client is one named client inside a partnership agreement.
type Client struct {
	Name     string `json:"nome"`
	Document string `json:"documento"`
}

// PartnershipData holds the inter-counsel agreement fields.
type PartnershipData struct {
	Manager    string   `json:"gestor"`
	Partner    string   `json:"parceiro"`
	PartnerOAB string   `json:"oabParceiro"`
	Clients    []Client `json:"clientes"`
	ActionType string   `json:"tipoAcao"`
	Percentage string   `json:"percentual"`
	SignState  string   `json:"estadoAssinatura"`
}

// Data is the record a document render consumes. Exactly one variant is
// populated, selected by Kind; the shared fields apply to every kind.
type Data struct {
	Kind        Kind             `json:"kind"`
	Individual  *Individual      `json:"pf,omitempty"`
	Entity      *Entity          `json:"pj,omitempty"`
	Partnership *PartnershipData `json:"parceria,omitempty"`

	CaseNumber string         `json:"numProcesso,omitempty"`
	SignDate   time.Time      `json:"dataAssinatura,omitempty"`
	Terms      schedule.Terms `json:"honorarios,omitempty"`
}

// Normalize returns a copy of d with the derived payment fields
// recomputed. It is the pure-derivation replacement for the reactive
// recompute rule: run it after every record update.
func (d Data) Normalize() Data {
	d.Terms = schedule.Derive(d.Terms)
	return d
}

// DisplayName is the value shown in history listings: the person's name,
// the company's legal name, or the partnership manager.
func (d Data) DisplayName() string {
	switch d.Kind {
	case PJ:
		if d.Entity != nil {
			return d.Entity.LegalName
		}
	case Partnership:
		if d.Partnership != nil {
			return d.Partnership.Manager
		}
	default:
		if d.Individual != nil {
			return d.Individual.Name
		}
	}
	return ""
}

// DocumentNumber is the identifying document for history listings (CPF
// for PF, CNPJ for PJ).
func (d Data) DocumentNumber() string {
	switch d.Kind {
	case PJ:
		if d.Entity != nil {
			return d.Entity.CNPJ
		}
	case PF:
		if d.Individual != nil {
			return d.Individual.CPF
		}
	}
	return ""
}
