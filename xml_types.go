package fatturapa

import "encoding/xml"

// Namespace is the target namespace of the FatturaPA v1.2 schema.
const Namespace = "http://ivaservizi.agenziaentrate.gov.it/docs/xsd/fatture/v1.2"

// rootName is written with the "p" prefix; every child element is unqualified.
const rootName = "p:FatturaElettronica"

// Document is the FatturaElettronica tree. Numeric values are kept as the
// exact strings written to the XML.
type Document struct {
	XMLName xml.Name
	Xmlns   string `xml:"xmlns:p,attr"`
	Version string `xml:"versione,attr"`
	Header  Header `xml:"FatturaElettronicaHeader"`
	Body    Body   `xml:"FatturaElettronicaBody"`
}

type Header struct {
	Transmission Transmission `xml:"DatiTrasmissione"`
	Supplier     Supplier     `xml:"CedentePrestatore"`
	Customer     Customer     `xml:"CessionarioCommittente"`
}

type Transmission struct {
	TransmitterID FiscalID `xml:"IdTrasmittente"`
	ProgressiveID string   `xml:"ProgressivoInvio"`
	Format        string   `xml:"FormatoTrasmissione"`
	RecipientCode string   `xml:"CodiceDestinatario"`
	RecipientPEC  string   `xml:"PECDestinatario,omitempty"`
}

type FiscalID struct {
	Country string `xml:"IdPaese"`
	Code    string `xml:"IdCodice"`
}

type Supplier struct {
	Details SupplierDetails `xml:"DatiAnagrafici"`
	Seat    Seat            `xml:"Sede"`
}

type SupplierDetails struct {
	VATID     FiscalID `xml:"IdFiscaleIVA"`
	TaxCode   string   `xml:"CodiceFiscale,omitempty"`
	Registry  Registry `xml:"Anagrafica"`
	TaxRegime string   `xml:"RegimeFiscale"`
}

type Customer struct {
	Details CustomerDetails `xml:"DatiAnagrafici"`
	Seat    Seat            `xml:"Sede"`
}

type CustomerDetails struct {
	VATID    *FiscalID `xml:"IdFiscaleIVA,omitempty"`
	TaxCode  string    `xml:"CodiceFiscale,omitempty"`
	Registry Registry  `xml:"Anagrafica"`
}

// Registry holds either a denomination or a first/last name pair.
type Registry struct {
	Denomination string `xml:"Denominazione,omitempty"`
	FirstName    string `xml:"Nome,omitempty"`
	LastName     string `xml:"Cognome,omitempty"`
}

type Seat struct {
	Street   string `xml:"Indirizzo"`
	Postcode string `xml:"CAP"`
	City     string `xml:"Comune"`
	Province string `xml:"Provincia,omitempty"`
	Country  string `xml:"Nazione"`
}

type Body struct {
	General GeneralData   `xml:"DatiGenerali"`
	Goods   GoodsServices `xml:"DatiBeniServizi"`
	Payment *PaymentData  `xml:"DatiPagamento,omitempty"`
}

type GeneralData struct {
	Document GeneralDocument `xml:"DatiGeneraliDocumento"`
}

type GeneralDocument struct {
	Type     string   `xml:"TipoDocumento"`
	Currency string   `xml:"Divisa"`
	Date     string   `xml:"Data"`
	Number   string   `xml:"Numero"`
	Total    string   `xml:"ImportoTotaleDocumento,omitempty"`
	Reasons  []string `xml:"Causale"`
}

type GoodsServices struct {
	Lines   []LineDetail  `xml:"DettaglioLinee"`
	Summary []SummaryData `xml:"DatiRiepilogo"`
}

type LineDetail struct {
	Number      int    `xml:"NumeroLinea"`
	Description string `xml:"Descrizione"`
	Quantity    string `xml:"Quantita"`
	UnitPrice   string `xml:"PrezzoUnitario"`
	TotalPrice  string `xml:"PrezzoTotale"`
	VATRate     string `xml:"AliquotaIVA"`
	Nature      string `xml:"Natura,omitempty"`
}

type SummaryData struct {
	VATRate       string `xml:"AliquotaIVA"`
	Nature        string `xml:"Natura,omitempty"`
	TaxableAmount string `xml:"ImponibileImporto"`
	Tax           string `xml:"Imposta"`
}

type PaymentData struct {
	Condition string          `xml:"CondizioniPagamento"`
	Details   []PaymentDetail `xml:"DettaglioPagamento"`
}

type PaymentDetail struct {
	Method  string `xml:"ModalitaPagamento"`
	DueDate string `xml:"DataScadenzaPagamento,omitempty"`
	Amount  string `xml:"ImportoPagamento"`
	IBAN    string `xml:"IBAN,omitempty"`
}
