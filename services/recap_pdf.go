package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// RecapPDFData contient les informations nécessaires au récapitulatif PDF
// d'une réservation
type RecapPDFData struct {
	BookingID     string
	AdherentNom   string
	AdherentEmail string
	ActivityTitre string
	Categorie     string
	PeriodeDebut  string
	PeriodeFin    string
	Participants  int
	Status        string
	PrixTotal     string
}

// generateBookingQR encode l'ID de la réservation en QR code PNG,
// scanné à l'accueil pour retrouver la réservation
func generateBookingQR(bookingID string, size int) ([]byte, error) {
	qr, err := qrcode.New(bookingID, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la génération du QR code: %w", err)
	}

	pngBytes, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de l'encodage du QR code en PNG: %w", err)
	}

	return pngBytes, nil
}

// GenerateBookingRecapPDF génère le récapitulatif PDF d'une réservation,
// avec un QR code contenant l'ID de la réservation
func GenerateBookingRecapPDF(data RecapPDFData) ([]byte, error) {
	qrBytes, err := generateBookingQR(data.BookingID, 300)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// En-tête
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, "Recapitulatif de reservation", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 7, "Portail des adherents", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Séparateur
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.5)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(8)

	// QR code centré
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imgName := fmt.Sprintf("qr_%s", data.BookingID)
	pdf.RegisterImageOptionsReader(imgName, imgOpts, bytes.NewReader(qrBytes))
	qrX := (210.0 - 60.0) / 2
	pdf.ImageOptions(imgName, qrX, pdf.GetY(), 60, 60, false, imgOpts, 0, "")
	pdf.Ln(64)

	// Détails de la réservation
	rows := []struct {
		label string
		value string
	}{
		{"Adherent", data.AdherentNom},
		{"Email", data.AdherentEmail},
		{"Activite", data.ActivityTitre},
		{"Categorie", data.Categorie},
		{"Debut", data.PeriodeDebut},
		{"Fin", data.PeriodeFin},
		{"Participants", fmt.Sprintf("%d", data.Participants)},
		{"Statut", data.Status},
	}

	if data.PrixTotal != "" {
		rows = append(rows, struct {
			label string
			value string
		}{"Prix total", data.PrixTotal})
	}

	for _, row := range rows {
		pdf.SetX(30)
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(50, 9, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(100, 9, row.value, "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)

	// Pied de page
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 7, fmt.Sprintf("Reference: %s", data.BookingID), "", 1, "C", false, 0, "")
	pdf.MultiCell(0, 6, "Presentez ce recapitulatif (PDF ou capture) a votre arrivee.\nLe QR code permet de retrouver votre reservation.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erreur lors de la génération du PDF: %w", err)
	}

	return buf.Bytes(), nil
}
