package main

import (
	"github.com/AlecAivazis/survey/v2"

	"github.com/advocflow/docgen/pkg/money"
	"github.com/advocflow/docgen/pkg/party"
	"github.com/advocflow/docgen/pkg/schedule"
)

// fillMissing prompts for the fields the record leaves empty. Only the
// natural-person variant gets the full treatment; other variants prompt
// for the shared fields.
func fillMissing(data *party.Data) error {
	if data.Kind == party.PF {
		if data.Individual == nil {
			data.Individual = &party.Individual{}
		}
		if err := fillIndividual(data.Individual); err != nil {
			return err
		}
	}

	if data.CaseNumber == "" {
		if err := ask("Número do processo", &data.CaseNumber); err != nil {
			return err
		}
	}
	if data.Terms.Total == 0 {
		var raw string
		if err := ask("Valor total (ex.: 1.200,00)", &raw); err != nil {
			return err
		}
		data.Terms.Total = money.Parse(raw)
	}
	if data.Terms.Method == "" {
		var method string
		prompt := &survey.Select{
			Message: "Forma de pagamento",
			Options: []string{
				string(schedule.Boleto),
				string(schedule.Pix),
				string(schedule.CreditCard),
				string(schedule.BankTransfer),
				string(schedule.Cash),
				string(schedule.CashUpfront),
			},
		}
		if err := survey.AskOne(prompt, &method); err != nil {
			return err
		}
		data.Terms.Method = schedule.PaymentMethod(method)
	}

	*data = data.Normalize()
	return nil
}

func fillIndividual(p *party.Individual) error {
	fields := []struct {
		label string
		dest  *string
	}{
		{"Nome completo", &p.Name},
		{"Estado civil", &p.MaritalStatus},
		{"Profissão", &p.Profession},
		{"Nacionalidade", &p.Nationality},
		{"CPF", &p.CPF},
		{"Rua e número", &p.Street},
		{"Bairro", &p.District},
		{"Cidade", &p.City},
		{"Estado", &p.State},
		{"CEP", &p.CEP},
	}
	for _, f := range fields {
		if *f.dest != "" {
			continue
		}
		if err := ask(f.label, f.dest); err != nil {
			return err
		}
	}
	return nil
}

func ask(label string, dest *string) error {
	return survey.AskOne(&survey.Input{Message: label}, dest)
}
