package snapshot

import "faepa_workflow/internal/domain/entities"

// Submission field names captured by the intake form.
const (
	FieldDirectorName       = "director_name"
	FieldControlNumber      = "control_number"
	FieldPayerType          = "payer_type"
	FieldOrganizationName   = "organization_name"
	FieldCNPJ               = "cnpj"
	FieldProviderName       = "provider_name"
	FieldCPF                = "cpf"
	FieldPhone              = "phone"
	FieldEmail              = "email"
	FieldAmount             = "amount"
	FieldServiceDescription = "service_description"
	FieldServicePeriod      = "service_period"
	FieldProject            = "project"
	FieldBank               = "bank"
	FieldAgency             = "agency"
	FieldAccount            = "account"
	FieldAccountType        = "account_type"
	FieldPixKey             = "pix_key"
)

// Display labels, as frozen in request snapshots.
const (
	LabelDirectorName       = "Nome do Diretor/Coordenador"
	LabelControlNumber      = "Número de Controle"
	LabelPayerType          = "Tipo de Prestador"
	LabelOrganizationName   = "Razão Social"
	LabelCNPJ               = "CNPJ"
	LabelProviderName       = "Nome do Prestador"
	LabelCPF                = "CPF"
	LabelPhone              = "Telefone"
	LabelEmail              = "E-mail"
	LabelAmount             = "Valor (R$)"
	LabelServiceDescription = "Descrição do Serviço"
	LabelServicePeriod      = "Período de Execução"
	LabelProject            = "Projeto"
	LabelBank               = "Banco"
	LabelAgency             = "Agência"
	LabelAccount            = "Conta"
	LabelAccountType        = "Tipo de Conta"
	LabelPixKey             = "Chave PIX"
)

const (
	payerTypeIndividualLabel   = "Pessoa Física"
	payerTypeOrganizationLabel = "Pessoa Jurídica"
)

type fieldDef struct {
	key   string
	label string
}

var (
	headFields = []fieldDef{
		{FieldDirectorName, LabelDirectorName},
		{FieldControlNumber, LabelControlNumber},
	}
	organizationFields = []fieldDef{
		{FieldOrganizationName, LabelOrganizationName},
		{FieldCNPJ, LabelCNPJ},
		{FieldProviderName, LabelProviderName},
	}
	individualFields = []fieldDef{
		{FieldProviderName, LabelProviderName},
		{FieldCPF, LabelCPF},
	}
	contactFields = []fieldDef{
		{FieldPhone, LabelPhone},
		{FieldEmail, LabelEmail},
		{FieldAmount, LabelAmount},
	}
	serviceFields = []fieldDef{
		{FieldServiceDescription, LabelServiceDescription},
		{FieldServicePeriod, LabelServicePeriod},
		{FieldProject, LabelProject},
	}
	payoutFields = []fieldDef{
		{FieldBank, LabelBank},
		{FieldAgency, LabelAgency},
		{FieldAccount, LabelAccount},
		{FieldAccountType, LabelAccountType},
		{FieldPixKey, LabelPixKey},
	}
)

// paymentFields returns the payment section layout for a payer type.
func paymentFields(pt entities.PayerType) []fieldDef {
	out := make([]fieldDef, 0, 10)
	out = append(out, headFields...)
	out = append(out, fieldDef{FieldPayerType, LabelPayerType})
	if pt == entities.PayerTypeOrganization {
		out = append(out, organizationFields...)
	} else {
		out = append(out, individualFields...)
	}
	return append(out, contactFields...)
}

func labels(defs []fieldDef) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.label
	}
	return out
}

func isPayoutLabel(label string) bool {
	for _, d := range payoutFields {
		if d.label == label {
			return true
		}
	}
	return false
}

func payerTypeLabel(pt entities.PayerType) string {
	if pt == entities.PayerTypeOrganization {
		return payerTypeOrganizationLabel
	}
	return payerTypeIndividualLabel
}

func payerTypeFromLabel(label string) (entities.PayerType, bool) {
	switch label {
	case payerTypeOrganizationLabel:
		return entities.PayerTypeOrganization, true
	case payerTypeIndividualLabel:
		return entities.PayerTypeIndividual, true
	}
	return "", false
}
