package fatturapa

// PaymentMethod is a ModalitaPagamento code.
type PaymentMethod string

const (
	MethodCash                   PaymentMethod = "MP01"
	MethodCheque                 PaymentMethod = "MP02"
	MethodBankersDraft           PaymentMethod = "MP03"
	MethodTreasuryCash           PaymentMethod = "MP04"
	MethodBankTransfer           PaymentMethod = "MP05"
	MethodPromissoryNote         PaymentMethod = "MP06"
	MethodBankSlip               PaymentMethod = "MP07"
	MethodPaymentCard            PaymentMethod = "MP08"
	MethodRID                    PaymentMethod = "MP09"
	MethodRIDUtilities           PaymentMethod = "MP10"
	MethodRIDFast                PaymentMethod = "MP11"
	MethodRIBA                   PaymentMethod = "MP12"
	MethodMAV                    PaymentMethod = "MP13"
	MethodTreasuryReceipt        PaymentMethod = "MP14"
	MethodSpecialAccountTransfer PaymentMethod = "MP15"
	MethodBankDomiciliation      PaymentMethod = "MP16"
	MethodPostalDomiciliation    PaymentMethod = "MP17"
	MethodPostalSlip             PaymentMethod = "MP18"
	MethodSEPADirectDebit        PaymentMethod = "MP19"
	MethodSEPADirectDebitCore    PaymentMethod = "MP20"
	MethodSEPADirectDebitB2B     PaymentMethod = "MP21"
	MethodWithholding            PaymentMethod = "MP22"

	DefaultPaymentMethod = MethodCash
)

var paymentMethods = []struct {
	method PaymentMethod
	label  string
}{
	{MethodCash, "contanti"},
	{MethodCheque, "assegno"},
	{MethodBankersDraft, "assegno circolare"},
	{MethodTreasuryCash, "contanti presso Tesoreria"},
	{MethodBankTransfer, "bonifico"},
	{MethodPromissoryNote, "vaglia cambiario"},
	{MethodBankSlip, "bollettino bancario"},
	{MethodPaymentCard, "carta di pagamento"},
	{MethodRID, "RID"},
	{MethodRIDUtilities, "RID utenze"},
	{MethodRIDFast, "RID veloce"},
	{MethodRIBA, "RIBA"},
	{MethodMAV, "MAV"},
	{MethodTreasuryReceipt, "quietanza erario"},
	{MethodSpecialAccountTransfer, "giroconto su conti di contabilità speciale"},
	{MethodBankDomiciliation, "domiciliazione bancaria"},
	{MethodPostalDomiciliation, "domiciliazione postale"},
	{MethodPostalSlip, "bollettino di c/c postale"},
	{MethodSEPADirectDebit, "SEPA Direct Debit"},
	{MethodSEPADirectDebitCore, "SEPA Direct Debit CORE"},
	{MethodSEPADirectDebitB2B, "SEPA Direct Debit B2B"},
	{MethodWithholding, "Trattenuta su somme già riscosse"},
}

// PaymentMethods returns every code in table order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	for i, p := range paymentMethods {
		out[i] = p.method
	}
	return out
}

// Label returns the Italian description, or "" for unknown codes.
func (m PaymentMethod) Label() string {
	for _, p := range paymentMethods {
		if p.method == m {
			return p.label
		}
	}
	return ""
}

func (m PaymentMethod) Valid() bool {
	return m.Label() != ""
}

// PaymentCondition is a CondizioniPagamento code.
type PaymentCondition string

const (
	ConditionInstalments PaymentCondition = "TP01"
	ConditionFull        PaymentCondition = "TP02"
	ConditionAdvance     PaymentCondition = "TP03"

	DefaultPaymentCondition = ConditionFull
)

func (c PaymentCondition) Valid() bool {
	switch c {
	case ConditionInstalments, ConditionFull, ConditionAdvance:
		return true
	}
	return false
}
