package render

import (
	"bytes"
	"html/template"
	"strings"

	"bmaBack/internal/models"
)

// Document renders the assembled document model into the HTML handed to the
// PDF converter. It is a pure function of the document and branding; all
// financial decisions were made upstream by the builder.
func Document(doc models.RenderableDocument, branding Branding) (string, error) {
	data := pageData{
		Doc:          doc,
		Branding:     branding,
		ShowPrevious: !doc.Totals.PreviousBalance.IsZero(),
	}

	var tmpl *template.Template
	switch doc.Kind {
	case models.KindPayment:
		tmpl = paymentTmpl
	case models.KindDefectsList:
		data.ColumnTitle = "Defects"
		tmpl = entriesTmpl
	case models.KindTechNotes:
		data.ColumnTitle = "Technician Notes"
		tmpl = entriesTmpl
	default:
		tmpl = itemsTmpl
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type pageData struct {
	Doc          models.RenderableDocument
	Branding     Branding
	ColumnTitle  string
	ShowPrevious bool
}

var tmplFuncs = template.FuncMap{
	"inc":     func(i int) int { return i + 1 },
	"upper":   strings.ToUpper,
	"money":   FormatMoney,
	"cell":    amountCell,
	"paycell": paymentCell,
	"sig":     signatureTag,
}

const styleBlock = `
    <style>
        {{.Branding.FontFace}}
        body {
            font-family: Roboto, Noto, Arial, sans-serif;
            font-size: 14px;
            line-height: 1.4286;
            background-color: #fafafa;
            margin: 0;
            padding: 16px;
        }
        .document-container {
            background-color: white;
            border-radius: 2px;
            max-width: 800px;
            margin: 0 auto;
            overflow: hidden;
        }
        .logo-section {
            text-align: center;
            padding: 24px;
            background-color: white;
            border-bottom: 1px solid #e0e0e0;
        }
        .logo-image {
            width: 725px;
            height: 100px;
            border-radius: 2px;
            display: flex;
            align-items: center;
            justify-content: center;
            font-size: 24px;
            color: white;
            font-weight: 500;
        }
        .header {
            background-color: #000;
            color: white;
            text-align: center;
            padding: 16px 24px;
            font-size: 16px;
            font-weight: 300;
            letter-spacing: .5px;
        }
        .detail-row {
            display: grid;
            grid-template-columns: 140px 1fr;
            column-gap: 8px;
            margin-bottom: 12px;
        }
        .detail-label { font-weight: bold; font-size: 16px; color: rgba(0,0,0,0.87); }
        .detail-value { font-size: 16px; color: rgba(0,0,0,0.87); text-align: left; }
        .items-table {
            border-collapse: collapse;
            width: 100%;
            margin: 0 24px 24px 0;
            background-color: white;
            border-radius: 2px;
            overflow: hidden;
        }
        .items-table th {
            background-color: #f5f5f5;
            border-bottom: 1px solid #e0e0e0;
            padding: 16px;
            text-align: left;
            font-weight: bold;
            font-size: 14px;
            text-transform: uppercase;
            letter-spacing: .5px;
        }
        .items-table td {
            border-bottom: 1px solid rgba(0,0,0,0.12);
            padding: 16px;
            font-size: 14px;
            color: rgba(0,0,0,0.87);
        }
        .total-row { background-color: #000 !important; color: white !important; }
        .total-row td {
            border-bottom: none !important;
            font-weight: 300;
            font-size: 16px;
            color: white !important;
            padding: 16px;
        }
        .notes-section { padding: 24px; background-color: #f5f5f5; margin-top: 16px; }
        .notes-title { margin-bottom: 16px; font-weight: 500; font-size: 16px; font-family: 'Mozilla Headline'; }
        .notes-list { margin: 0; padding-left: 24px; color: rgba(0,0,0,0.74); }
        .notes-list li { margin-bottom: 8px; line-height: 1.5; font-family: 'Mozilla Headline'; }
        #footer div {
            width: 80%;
            margin: 0 auto;
            text-align: center;
            font-size: 12px;
            font-family: 'Mozilla Headline';
        }
    </style>
`

const pageOpen = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Doc.Title}}</title>
` + styleBlock + `
</head>
<body>
    <div class="document-container">
        <div class="logo-section">
            <div class="logo-image">{{.Branding.LogoTag}}</div>
        </div>
        <div class="header">{{upper .Doc.Title}}</div>
`

const pageClose = `
        <footer id="footer">
            <div><p>Joy Is The Feeling Of Being Looked After By The Best - BMW CENTER For Your BMW.</p></div>
        </footer>
    </div>
</body>
</html>
`

const vehicleDetails = `
        <table style="width: 100%; table-layout: fixed; margin: 24px 0;">
            <tr>
                <td style="width: 50%; vertical-align: top; padding-left: 24px; padding-right: 32px;">
                    <div class="detail-row"><span class="detail-label">Customer Name:</span><div><span class="detail-value">{{.Doc.Header.ClientName}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Make And Model:</span><div><span class="detail-value">{{.Doc.Header.MakeModel}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Reg No:</span><div><span class="detail-value">{{.Doc.Header.RegNo}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Date:</span><div><span class="detail-value">{{.Doc.Header.Date}}</span></div></div>
                </td>
                <td style="width: 50%; vertical-align: top; padding-left: 32px;">
                    <div class="detail-row"><span class="detail-label">Chassis:</span><div><span class="detail-value">{{.Doc.Header.ChassisNo}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Engine:</span><div><span class="detail-value">{{.Doc.Header.EngineCode}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Mileage:</span><div><span class="detail-value">{{.Doc.Header.Mileage}}</span></div></div>
                </td>
            </tr>
        </table>
`

var itemsTmpl = template.Must(template.New("items").Funcs(tmplFuncs).Parse(pageOpen + vehicleDetails + `
        <table class="items-table">
            <thead>
                <tr>
                    <th>No.</th>
                    <th>Item</th>
                    <th>Quantity</th>
                    <th>Amount (Kshs)</th>
                    <th>Total (Kshs)</th>
                </tr>
            </thead>
            <tbody>
                {{range $i, $line := .Doc.Lines}}
                <tr class="item-row">
                    <td>{{inc $i}}</td>
                    <td>{{$line.Description}}</td>
                    <td>{{$line.DisplayQty}}</td>
                    <td>{{cell $line.UnitAmount}}</td>
                    <td>{{cell $line.LineTotal}}</td>
                </tr>
                {{end}}
                {{if .ShowPrevious}}
                <tr class="total-row">
                    <td colspan="4" style="text-align: right; font-weight: 500;">Sub Total</td>
                    <td style="font-weight: 500;">{{money .Doc.Totals.Subtotal}}</td>
                </tr>
                <tr class="total-row">
                    <td colspan="4" style="text-align: right; font-weight: 500;">Previous Balance</td>
                    <td style="font-weight: 500;">{{money .Doc.Totals.PreviousBalance}}</td>
                </tr>
                {{end}}
                <tr class="total-row">
                    <td colspan="4" style="text-align: right; font-weight: 500;">Grand Total</td>
                    <td style="font-weight: 500;">{{money .Doc.Totals.GrandTotal}}</td>
                </tr>
            </tbody>
        </table>
        {{if eq .Doc.Notes "estimate"}}
        <div class="notes-section">
            <div class="notes-title">NOTE: THE ABOVE ESTIMATE IS SUBJECT TO REVIEW DUE TO:</div>
            <ol class="notes-list">
                <li>Price change at the time of actual repair</li>
                <li>Further damages found during repairs</li>
                <li>100% Deposit on imported parts</li>
                <li>70% deposit on local parts on commencement</li>
            </ol>
        </div>
        {{else if eq .Doc.Notes "payment"}}
        <div class="notes-section">
            <div class="notes-title">NOTES: </div>
            <ol class="notes-list">
                <li>Thank you for choosing BMW CENTER LIMITED</li>
                <li>M-Pesa Paybill Number: 529914 Account Number: 155393</li>
                <li>Cheque Address to: BMW CENTER LIMITED</li>
            </ol>
        </div>
        {{end}}
` + pageClose))

var paymentTmpl = template.Must(template.New("payment").Funcs(tmplFuncs).Parse(pageOpen + vehicleDetails + `
        <table class="items-table">
            <thead>
                <tr>
                    <th>No.</th>
                    <th>Date</th>
                    <th>Ref</th>
                    <th>Mode</th>
                    <th>Invoiced</th>
                    <th>Paid</th>
                    <th>Discount</th>
                    <th>Balance</th>
                </tr>
            </thead>
            <tbody>
                {{range .Doc.Payments}}
                <tr class="item-row">
                    <td>{{.No}}</td>
                    <td>{{.Date}}</td>
                    <td>{{.JobCardRef}}</td>
                    <td>{{.Mode}}</td>
                    <td>{{paycell .Invoiced}}</td>
                    <td>{{paycell .Paid}}</td>
                    <td>{{paycell .Discount}}</td>
                    <td>{{paycell .Balance}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>
` + pageClose))

var entriesTmpl = template.Must(template.New("entries").Funcs(tmplFuncs).Parse(pageOpen + `
        <table style="width: 100%; table-layout: fixed; margin: 24px 0;">
            <tr>
                <td style="width: 50%; vertical-align: top; padding-left: 24px; padding-right: 32px;">
                    <div class="detail-row"><span class="detail-label">Customer Name:</span><div><span class="detail-value">{{.Doc.Header.ClientName}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Make And Model:</span><div><span class="detail-value">{{.Doc.Header.MakeModel}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Reg No:</span><div><span class="detail-value">{{.Doc.Header.RegNo}}</span></div></div>
                </td>
                <td style="width: 50%; vertical-align: top; padding-left: 32px;">
                    <div class="detail-row"><span class="detail-label">Engine:</span><div><span class="detail-value">{{.Doc.Header.EngineCode}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Chassis:</span><div><span class="detail-value">{{.Doc.Header.ChassisNo}}</span></div></div>
                    <div class="detail-row"><span class="detail-label">Date:</span><div><span class="detail-value">{{.Doc.Header.Date}}</span></div></div>
                    {{if .Doc.Technician}}<div class="detail-row"><span class="detail-label">Technician:</span><div><span class="detail-value">{{.Doc.Technician}}</span></div></div>{{end}}
                </td>
            </tr>
        </table>

        <table class="items-table">
            <thead><tr><th>No.</th><th>{{.ColumnTitle}}</th></tr></thead>
            <tbody>
                {{range .Doc.Entries}}
                <tr class="item-row"><td>{{.No}}</td><td>{{.Text}}</td></tr>
                {{end}}
            </tbody>
        </table>

        {{if .Doc.PreparedBy}}
        <table style="width: 100%; table-layout: fixed; margin: 24px 0;">
            <tr>
                <td style="width: 33.33%; vertical-align: top; padding: 0 16px;">
                    <div class="detail-row"><span class="detail-label">Prepared By:</span><div><span class="detail-value">{{.Doc.PreparedBy}}</span></div></div>
                </td>
                <td style="width: 33.33%; vertical-align: top; padding: 0 16px;">
                    <div class="detail-row"><span class="detail-label">Signature:</span><div><span class="detail-value">{{sig .Doc.SignaturePNG}}</span></div></div>
                </td>
            </tr>
        </table>
        {{end}}
` + pageClose))
