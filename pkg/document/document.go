// Package document holds the output types shared by the assembler and
// the renderers.
package document

// Kind enumerates the document templates the catalog can produce.
type Kind string

const (
	Honorarios       Kind = "HONORARIOS"
	Procuracao       Kind = "PROCURACAO"
	Hipossuficiencia Kind = "HIPOSSUFICIENCIA"
	Parceria         Kind = "PARCERIA"
)

// Footer carries the office metadata printed on every page.
type Footer struct {
	Office  string `json:"office"`
	Contact string `json:"contact"`
	Counsel string `json:"counsel"`
	OAB     string `json:"oab"`
}

// Rendered is a fully substituted document: an ordered list of logical
// page bodies ready for the external print/PDF collaborator. It has no
// lifecycle beyond the generation request that produced it.
type Rendered struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	Pages  []string `json:"pages"`
	Footer Footer   `json:"footer"`
}
