package services

import (
	"testing"
)

// Le portail doit pouvoir démarrer sans credentials Firebase : les envois
// passent alors par un service inerte.
func TestDisabledFCMService(t *testing.T) {
	svc := NewDisabledFCMService()
	if svc == nil {
		t.Fatal("NewDisabledFCMService() ne doit pas retourner nil")
	}

	if err := svc.SendToToken("token-adherent", "Réservation confirmée", "Votre séjour est confirmé", nil); err != nil {
		t.Errorf("SendToToken sur service désactivé: %v", err)
	}

	success, failed, failedTokens := svc.SendToAll([]string{"t1", "t2"}, "Annonce", "Assemblée générale le 12/09", nil)
	if success != 0 || failed != 0 || len(failedTokens) != 0 {
		t.Errorf("SendToAll sur service désactivé: success=%d, failed=%d, failedTokens=%d", success, failed, len(failedTokens))
	}
}
