package services

import (
	"bytes"
	"testing"
)

func TestGenerateBookingRecapPDF(t *testing.T) {
	data := RecapPDFData{
		BookingID:     "64f1a2b3c4d5e6f7a8b9c0d1",
		AdherentNom:   "Jean Dupont",
		AdherentEmail: "jean.dupont@example.com",
		ActivityTitre: "Maison de Biscarrosse",
		Categorie:     "maison",
		PeriodeDebut:  "01/07/2026",
		PeriodeFin:    "08/07/2026",
		Participants:  4,
		Status:        "confirmé",
		PrixTotal:     "560.00 EUR",
	}

	pdfBytes, err := GenerateBookingRecapPDF(data)
	if err != nil {
		t.Fatalf("GenerateBookingRecapPDF() erreur = %v", err)
	}

	if len(pdfBytes) == 0 {
		t.Fatal("GenerateBookingRecapPDF() ne doit pas retourner un PDF vide")
	}

	// Un fichier PDF commence toujours par %PDF-
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF-")) {
		t.Errorf("le contenu généré n'est pas un PDF valide: %q", pdfBytes[:8])
	}
}

func TestGenerateBookingRecapPDFSansPrix(t *testing.T) {
	data := RecapPDFData{
		BookingID:     "64f1a2b3c4d5e6f7a8b9c0d2",
		AdherentNom:   "Marie Martin",
		AdherentEmail: "marie.martin@example.com",
		ActivityTitre: "Sortie kayak",
		Categorie:     "activite",
		PeriodeDebut:  "15/08/2026",
		PeriodeFin:    "15/08/2026",
		Participants:  1,
		Status:        "en attente",
	}

	pdfBytes, err := GenerateBookingRecapPDF(data)
	if err != nil {
		t.Fatalf("GenerateBookingRecapPDF() erreur = %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("GenerateBookingRecapPDF() ne doit pas retourner un PDF vide")
	}
}

func TestGenerateBookingQR(t *testing.T) {
	pngBytes, err := generateBookingQR("64f1a2b3c4d5e6f7a8b9c0d1", 300)
	if err != nil {
		t.Fatalf("generateBookingQR() erreur = %v", err)
	}

	// Signature PNG
	if !bytes.HasPrefix(pngBytes, []byte("\x89PNG")) {
		t.Error("le QR code généré n'est pas un PNG valide")
	}
}
