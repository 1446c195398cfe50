// Package label renders printable A6 shipping labels. The label carries the
// sender and recipient blocks, the parcel metrics and a Code 128 barcode of
// the tracking number.
package label

import (
	"bytes"
	"fmt"
	"image/png"

	"parcels/internal/pkg/errs"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/go-pdf/fpdf"
)

const (
	pageWidth  = 105.0
	pageHeight = 148.0
	margin     = 8.0

	barcodeWidthPx  = 400
	barcodeHeightPx = 80
)

// Data is everything the label shows. Weight and Dimensions print as "-"
// when absent.
type Data struct {
	TrackingNumber   string
	SenderName       string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	Weight           *float64
	Dimensions       *string
}

// Generator renders label PDFs. The zero value is ready to use.
type Generator struct{}

// NewGenerator creates a label generator.
func NewGenerator() Generator {
	return Generator{}
}

// Generate renders one A6 label and returns the PDF bytes.
func (g Generator) Generate(data Data) ([]byte, error) {
	if data.TrackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	barcodePNG, err := renderBarcode(data.TrackingNumber)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, data.TrackingNumber, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, "FROM", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 4.5, data.SenderName+"\n"+data.SenderAddress, "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, "TO", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 5.5, data.RecipientName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, data.RecipientAddress, "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4.5, fmt.Sprintf("Weight: %s    Dimensions: %s",
		formatWeight(data.Weight), formatDimensions(data.Dimensions)),
		"", 1, "L", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("barcode", opts, bytes.NewReader(barcodePNG))
	barcodeWidth := pageWidth - 2*margin
	pdf.ImageOptions("barcode", margin, pageHeight-margin-22, barcodeWidth, 18, false, opts, 0, "")

	pdf.SetY(pageHeight - margin - 4)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4, data.TrackingNumber, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderBarcode(trackingNumber string) ([]byte, error) {
	code, err := code128.Encode(trackingNumber)
	if err != nil {
		return nil, err
	}

	scaled, err := barcode.Scale(code, barcodeWidthPx, barcodeHeightPx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatWeight(weight *float64) string {
	if weight == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f kg", *weight)
}

func formatDimensions(dimensions *string) string {
	if dimensions == nil {
		return "-"
	}
	return *dimensions
}
