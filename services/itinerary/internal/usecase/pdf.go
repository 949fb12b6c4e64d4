package usecase

import (
	"bytes"
	"fmt"
	"strings"

	"itinera/services/itinerary/internal/entity"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// PreviewDays is how many days an unpurchased export carries.
const PreviewDays = 2

type ExportMeta struct {
	ItineraryID  string
	Title        string
	Description  string
	CreatorName  string
	Location     string
	Price        float64
	DurationDays int
	LinkURL      string
}

type ExportSummary struct {
	DaysRendered int    `json:"days_rendered"`
	DaysOmitted  int    `json:"days_omitted"`
	Notice       string `json:"notice,omitempty"`
	Pages        int    `json:"pages"`
	Watermarked  bool   `json:"watermarked"`

	WatermarkedPages int `json:"watermarked_pages"`
}

// RenderPDF lays out the guide as an A4 document. Without a purchase only the
// first PreviewDays days are written and every page carries a PREVIEW mark.
func RenderPDF(content entity.ItineraryContent, meta ExportMeta, isPurchased bool) ([]byte, *ExportSummary, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	summary := &ExportSummary{Watermarked: !isPurchased}
	if !isPurchased {
		pdf.SetHeaderFunc(func() {
			drawWatermark(pdf)
			summary.WatermarkedPages++
		})
	}

	pdf.AddPage()

	title := meta.Title
	if title == "" {
		title = content.Cover.Title
	}

	// Title block
	pdf.SetFont("Arial", "B", 22)
	pdf.MultiCell(150, 10, tr(title), "", "L", false)
	if content.Cover.Subtitle != "" {
		pdf.SetFont("Arial", "I", 13)
		pdf.MultiCell(150, 7, tr(content.Cover.Subtitle), "", "L", false)
	}

	if meta.LinkURL != "" {
		png, err := qrcode.Encode(meta.LinkURL, qrcode.Medium, 256)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate QR code: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("qr", 170, 15, 25, 25, false, opts, 0, meta.LinkURL)
	}
	pdf.Ln(4)

	// Metadata lines
	pdf.SetFont("Arial", "", 11)
	destination := meta.Location
	if destination == "" {
		destination = content.Cover.Destination
	}
	for _, line := range metadataLines(content, meta, destination) {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	description := meta.Description
	if description == "" {
		description = content.Cover.Description
	}
	if description != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(description), "", "L", false)
		pdf.Ln(4)
	}

	days := content.DailyItinerary
	if !isPurchased && len(days) > PreviewDays {
		summary.DaysOmitted = len(days) - PreviewDays
		days = days[:PreviewDays]
	}

	for i, day := range days {
		writeDay(pdf, tr, i+1, day)
	}
	summary.DaysRendered = len(days)

	if summary.DaysOmitted > 0 {
		summary.Notice = fmt.Sprintf("%d more day(s) available after purchase", summary.DaysOmitted)
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(180, 40, 40)
		pdf.MultiCell(0, 7, tr(summary.Notice), "1", "C", false)
		pdf.SetTextColor(0, 0, 0)
	}

	summary.Pages = pdf.PageCount()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), summary, nil
}

func metadataLines(content entity.ItineraryContent, meta ExportMeta, destination string) []string {
	var lines []string
	if destination != "" {
		lines = append(lines, "Destination: "+destination)
	}

	switch {
	case meta.DurationDays > 0:
		lines = append(lines, fmt.Sprintf("Duration: %d days", meta.DurationDays))
	case content.Cover.Duration != "":
		lines = append(lines, "Duration: "+content.Cover.Duration)
	}

	lines = append(lines, fmt.Sprintf("Price: %.2f", meta.Price))

	if meta.CreatorName != "" {
		lines = append(lines, "Created by: "+meta.CreatorName)
	}
	return lines
}

func writeDay(pdf *gofpdf.Fpdf, tr func(string) string, n int, day entity.Day) {
	heading := fmt.Sprintf("Day %d", n)
	if day.Title != "" {
		heading += ": " + day.Title
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(235, 240, 250)
	pdf.CellFormat(0, 9, tr(heading), "", 1, "L", true, 0, "")
	pdf.Ln(1)

	blocks := []struct{ label, text string }{
		{"Morning", day.Morning},
		{"Afternoon", day.Afternoon},
		{"Evening", day.Evening},
		{"Meals", day.Meals},
		{"Tips", day.Tips},
		{"Estimated cost", day.EstimatedCost},
	}
	for _, b := range blocks {
		if strings.TrimSpace(b.text) == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(30, 6, tr(b.label), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(b.text), "", "L", false)
	}

	for _, a := range day.Activities {
		line := a.Name
		if a.Time != "" {
			line = a.Time + "  " + line
		}
		if a.Location != "" {
			line += " (" + a.Location + ")"
		}
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr("- "+line), "", "L", false)
		if a.Description != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 5, tr("   "+a.Description), "", "L", false)
		}
	}
	pdf.Ln(4)
}

func drawWatermark(pdf *gofpdf.Fpdf) {
	w, h := pdf.GetPageSize()
	pdf.SetFont("Arial", "B", 90)
	pdf.SetTextColor(225, 225, 225)
	pdf.TransformBegin()
	pdf.TransformRotate(45, w/2, h/2)
	textW := pdf.GetStringWidth("PREVIEW")
	pdf.Text(w/2-textW/2, h/2, "PREVIEW")
	pdf.TransformEnd()
}
