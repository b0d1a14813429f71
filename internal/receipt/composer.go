// Package receipt renders a booking receipt as a paginated PDF document.
// Every informational field appears twice: the English label/value on the
// left and the Arabic translation on the right, regardless of which language
// the operator used to fill the form.
package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tripoli-karting/tentdesk/internal/domain"
	"github.com/tripoli-karting/tentdesk/pkg/config"
)

const (
	pageWidth    = 595.28 // A4 portrait, points
	marginX      = 40.0
	marginTop    = 60.0
	contentWidth = pageWidth - 2*marginX
	halfWidth    = contentWidth / 2
)

// Composer turns a receipt into document bytes. It is a pure transformation:
// equal input yields a structurally identical document.
type Composer struct {
	cfg config.ReceiptConfig
}

func NewComposer(cfg config.ReceiptConfig) *Composer {
	return &Composer{cfg: cfg}
}

// Filename derives the download name from the tent code and receipt id, so a
// given receipt always regenerates under the same name.
func (c *Composer) Filename(r domain.Receipt) string {
	return fmt.Sprintf("receipt-%s-%s.pdf", r.TentCode, r.ID)
}

// Compose renders the document. It does not mutate its input and performs no
// I/O beyond the returned bytes.
func (c *Composer) Compose(r domain.Receipt) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	// Fixed metadata dates keep equal input producing identical bytes.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetMargins(marginX, marginTop, marginX)
	pdf.SetAutoPageBreak(true, marginTop)
	pdf.AddUTF8FontFromBytes("DejaVu", "", fontRegular)
	pdf.AddUTF8FontFromBytes("DejaVu", "B", fontBold)
	pdf.AddPage()

	c.banner(pdf)
	c.title(pdf)
	c.divider(pdf)

	c.fieldRow(pdf, "DATE", r.Date, "تاريخ الاستلام", r.Date, colorBlue)
	c.fieldRow(pdf, "RECEIVED FROM", r.ClientName, "وصلنا من السادة", r.ClientName, colorBlack)
	c.fieldRow(pdf, "AMOUNT", fmt.Sprintf("$%g", r.Price), "مبلغ وقدره", fmt.Sprintf("$%g", r.Price), colorBlue)
	c.labelRow(pdf, "FOR SUBSCRIPTION IN TRIPOLI KARTING RACE", "وذلك بدل اشتراك في مهرجان طرابلس للكارتينج")
	pdf.Ln(8)
	c.fieldRow(pdf, "TENT NO.", r.TentCode, "الخيمة رقم", r.TentCode, colorBlack)
	c.fieldRow(pdf, "USAGE PURPOSE", r.Usage, "جهة الاستعمال", r.Usage, colorBlack)
	pdf.Ln(6)

	if r.Services.Any() {
		c.servicesSection(pdf, r.Services)
	}

	c.zonesSection(pdf, r.Zones)

	if r.QtyCarFlags > 0 || r.QtyBannerFlags > 0 {
		c.fieldRow(pdf, "CAR FLAGS", fmt.Sprintf("%d", r.QtyCarFlags), "أعلام على السيارات", fmt.Sprintf("%d", r.QtyCarFlags), colorBlack)
		c.fieldRow(pdf, "BANNER FLAGS", fmt.Sprintf("%d", r.QtyBannerFlags), "أعلام على الأرصفة", fmt.Sprintf("%d", r.QtyBannerFlags), colorBlack)
		pdf.Ln(6)
	}

	if r.Notes != "" {
		c.notesSection(pdf, r.Notes)
	}

	c.footer(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type rgb struct{ r, g, b int }

var (
	colorBanner   = rgb{220, 38, 38}  // #dc2626
	colorBlue     = rgb{59, 130, 246} // #3b82f6
	colorBlack    = rgb{0, 0, 0}
	colorGray     = rgb{102, 102, 102} // #666666
	colorServices = rgb{249, 250, 251} // #f9fafb
	colorZones    = rgb{254, 243, 199} // #fef3c7
	colorNotes    = rgb{240, 249, 255} // #f0f9ff
)

// rtl flips a pure right-to-left string into visual order; the PDF engine
// writes glyphs left to right. None of the fixed Arabic strings contain
// digits, so a rune reversal is direction-correct.
func rtl(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// arabicLabel prepares a fixed Arabic label for drawing. Values typed by the
// operator are drawn as-is on both columns, matching the source layout.
func arabicLabel(s string) string {
	return rtl(s)
}

func (c *Composer) banner(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(colorBanner.r, colorBanner.g, colorBanner.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("DejaVu", "B", 16)
	pdf.CellFormat(contentWidth, 36, c.cfg.EventName, "", 1, "CM", true, 0, "")
	pdf.Ln(10)
}

func (c *Composer) title(pdf *fpdf.Fpdf) {
	y := pdf.GetY()

	pdf.SetTextColor(colorBlack.r, colorBlack.g, colorBlack.b)
	pdf.SetFont("DejaVu", "B", 14)
	pdf.CellFormat(halfWidth, 16, "RECEIPT", "", 0, "LM", false, 0, "")
	pdf.CellFormat(halfWidth, 16, arabicLabel("وصل استلام مبلغ"), "", 1, "RM", false, 0, "")

	pdf.SetY(y + 16)
	pdf.SetTextColor(colorGray.r, colorGray.g, colorGray.b)
	pdf.SetFont("DejaVu", "", 9)
	pdf.CellFormat(halfWidth, 12, c.cfg.SeasonEN, "", 0, "LM", false, 0, "")
	pdf.CellFormat(halfWidth, 12, arabicLabel(c.cfg.SeasonAR), "", 1, "RM", false, 0, "")
}

func (c *Composer) divider(pdf *fpdf.Fpdf) {
	pdf.Ln(10)
	y := pdf.GetY()
	pdf.SetDrawColor(colorBanner.r, colorBanner.g, colorBanner.b)
	pdf.SetLineWidth(2)
	pdf.Line(marginX, y, marginX+contentWidth, y)
	pdf.SetY(y + 15)
}

// fieldRow draws one bilingual label/value pair: English on the left, Arabic
// on the right.
func (c *Composer) fieldRow(pdf *fpdf.Fpdf, enLabel, enValue, arLabel, arValue string, valueColor rgb) {
	pdf.SetTextColor(colorGray.r, colorGray.g, colorGray.b)
	pdf.SetFont("DejaVu", "B", 8)
	pdf.CellFormat(halfWidth, 10, enLabel, "", 0, "LM", false, 0, "")
	pdf.CellFormat(halfWidth, 10, arabicLabel(arLabel), "", 1, "RM", false, 0, "")

	pdf.SetTextColor(valueColor.r, valueColor.g, valueColor.b)
	pdf.SetFont("DejaVu", "B", 10)
	pdf.CellFormat(halfWidth, 13, enValue, "", 0, "LM", false, 0, "")
	pdf.CellFormat(halfWidth, 13, arValue, "", 1, "RM", false, 0, "")
	pdf.Ln(10)
}

// labelRow draws a bilingual label-only line (no value underneath).
func (c *Composer) labelRow(pdf *fpdf.Fpdf, enLabel, arLabel string) {
	pdf.SetTextColor(colorGray.r, colorGray.g, colorGray.b)
	pdf.SetFont("DejaVu", "B", 8)
	pdf.CellFormat(halfWidth, 10, enLabel, "", 0, "LM", false, 0, "")
	pdf.CellFormat(halfWidth, 10, arabicLabel(arLabel), "", 1, "RM", false, 0, "")
}

func (c *Composer) servicesSection(pdf *fpdf.Fpdf, s domain.Services) {
	c.labelRow(pdf, "ADDITIONAL SERVICES", "خدمات أخرى")
	pdf.Ln(5)

	type line struct{ en, ar string }
	var lines []line
	if s.Electricity {
		lines = append(lines, line{"✓ ELECTRICITY", "✓ توفير كهرباء"})
	}
	if s.Chairs {
		lines = append(lines, line{"✓ CHAIRS", "✓ توفير كراسي"})
	}
	if s.Table {
		lines = append(lines, line{"✓ TABLE", "✓ توفير طاولات"})
	}

	boxHeight := float64(len(lines))*14 + 20
	y := pdf.GetY()
	pdf.SetFillColor(colorServices.r, colorServices.g, colorServices.b)
	pdf.Rect(marginX, y, contentWidth, boxHeight, "F")

	pdf.SetY(y + 10)
	pdf.SetTextColor(colorBlack.r, colorBlack.g, colorBlack.b)
	pdf.SetFont("DejaVu", "", 9)
	for _, l := range lines {
		pdf.SetX(marginX + 10)
		pdf.CellFormat(halfWidth-10, 14, l.en, "", 0, "LM", false, 0, "")
		pdf.CellFormat(halfWidth-10, 14, arabicLabel(l.ar), "", 1, "RM", false, 0, "")
	}
	pdf.SetY(y + boxHeight + 15)
}

// zonesSection always draws all six slots; selection only changes the mark.
func (c *Composer) zonesSection(pdf *fpdf.Fpdf, selected []string) {
	c.labelRow(pdf, "ADVERTISEMENTS ON TRACK", "إعلانات على مسار الحلبة")
	pdf.Ln(5)

	boxHeight := 90.0
	y := pdf.GetY()
	pdf.SetFillColor(colorZones.r, colorZones.g, colorZones.b)
	pdf.Rect(marginX, y, contentWidth, boxHeight, "F")

	isSelected := func(zone string) bool {
		for _, z := range selected {
			if z == zone {
				return true
			}
		}
		return false
	}

	slotWidth := (contentWidth - 20) / float64(len(domain.AdZones))
	pdf.SetY(y + 10)
	pdf.SetTextColor(colorBlack.r, colorBlack.g, colorBlack.b)
	for i, zone := range domain.AdZones {
		x := marginX + 10 + float64(i)*slotWidth
		pdf.SetXY(x, y+10)
		mark := "☐"
		if isSelected(zone) {
			mark = "☑"
		}
		pdf.SetFont("DejaVu", "", 12)
		pdf.CellFormat(slotWidth, 14, mark, "", 0, "CM", false, 0, "")
		pdf.SetXY(x, y+26)
		pdf.SetFont("DejaVu", "", 8)
		pdf.CellFormat(slotWidth, 10, "ZONE "+zone, "", 0, "CM", false, 0, "")
	}

	total := "None"
	if len(selected) > 0 {
		total = strings.Join(selected, ", ")
	}

	pdf.SetXY(marginX+10, y+48)
	pdf.SetTextColor(colorGray.r, colorGray.g, colorGray.b)
	pdf.SetFont("DejaVu", "B", 8)
	pdf.CellFormat(halfWidth-10, 10, "TOTAL QTY", "", 0, "LM", false, 0, "")
	pdf.CellFormat(halfWidth-10, 10, arabicLabel("العدد الإجمالي"), "", 1, "RM", false, 0, "")

	pdf.SetX(marginX + 10)
	pdf.SetTextColor(colorBlack.r, colorBlack.g, colorBlack.b)
	pdf.SetFont("DejaVu", "B", 10)
	pdf.CellFormat(halfWidth-10, 13, total, "", 0, "LM", false, 0, "")
	pdf.CellFormat(halfWidth-10, 13, total, "", 1, "RM", false, 0, "")

	pdf.SetY(y + boxHeight + 15)
}

func (c *Composer) notesSection(pdf *fpdf.Fpdf, notes string) {
	c.labelRow(pdf, "NOTES", "ملاحظات")
	pdf.Ln(5)

	y := pdf.GetY()
	pdf.SetFillColor(colorNotes.r, colorNotes.g, colorNotes.b)
	pdf.SetTextColor(colorBlack.r, colorBlack.g, colorBlack.b)
	pdf.SetFont("DejaVu", "", 9)

	pdf.SetXY(marginX, y)
	pdf.MultiCell(contentWidth, 14, "  "+notes, "", "LM", true)
	pdf.SetY(pdf.GetY() + 15)
}

func (c *Composer) footer(pdf *fpdf.Fpdf) {
	pdf.Ln(20)

	pdf.SetTextColor(colorGray.r, colorGray.g, colorGray.b)
	pdf.SetFont("DejaVu", "", 8)
	pdf.CellFormat(halfWidth, 10, "THIS RECEIPT IS NOT A TAX INVOICE", "", 0, "LM", false, 0, "")
	pdf.CellFormat(halfWidth, 10, arabicLabel("هذا الوصل لا يعتبر فاتورة ضريبية"), "", 1, "RM", false, 0, "")
	pdf.Ln(20)

	sigWidth := contentWidth * 0.45
	gap := contentWidth * 0.10
	y := pdf.GetY()

	pdf.SetX(marginX)
	pdf.CellFormat(sigWidth, 10, "RECEIVER'S SIGNATURE", "", 0, "LM", false, 0, "")
	pdf.SetX(marginX + sigWidth + gap)
	pdf.CellFormat(sigWidth, 10, arabicLabel("المستلم"), "", 1, "RM", false, 0, "")

	lineY := y + 34
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.Line(marginX, lineY, marginX+200, lineY)
	pdf.Line(marginX+sigWidth+gap+sigWidth-200, lineY, marginX+sigWidth+gap+sigWidth, lineY)

	pdf.SetY(lineY + 10)
	pdf.SetX(marginX)
	pdf.CellFormat(sigWidth, 10, "SIGNATURE", "", 0, "LM", false, 0, "")
	pdf.SetX(marginX + sigWidth + gap)
	pdf.CellFormat(sigWidth, 10, arabicLabel("الإمضاء"), "", 1, "RM", false, 0, "")
}
