package uploads

import (
	"reflect"
	"testing"
)

func TestImageSetKept(t *testing.T) {
	s := NewImageSet([]string{"a.jpg", "b.jpg", "c.jpg"})

	s.RemoveInitial("b.jpg")
	want := []string{"a.jpg", "c.jpg"}
	if got := s.Kept(); !reflect.DeepEqual(got, want) {
		t.Errorf("Kept() = %v, attendu %v", got, want)
	}
	if got := s.Removed(); !reflect.DeepEqual(got, []string{"b.jpg"}) {
		t.Errorf("Removed() = %v", got)
	}
}

func TestImageSetRetraitRestaurationIdempotent(t *testing.T) {
	initial := []string{"a.jpg", "b.jpg"}
	s := NewImageSet(initial)

	s.RemoveInitial("a.jpg")
	s.RestoreInitial("a.jpg")

	if got := s.Kept(); !reflect.DeepEqual(got, initial) {
		t.Errorf("Kept() = %v, attendu la liste d'origine %v", got, initial)
	}
}

func TestImageSetRemoveInitialInconnue(t *testing.T) {
	s := NewImageSet([]string{"a.jpg"})
	// Retirer une URL hors de la liste initiale est sans effet
	s.RemoveInitial("z.jpg")
	if got := s.Kept(); !reflect.DeepEqual(got, []string{"a.jpg"}) {
		t.Errorf("Kept() = %v", got)
	}
}

func TestImageSetSignature(t *testing.T) {
	s := NewImageSet([]string{"a.jpg"})
	s.AddFile(FileMeta{Name: "photo.png", Size: 1024, LastModified: 1700000000})

	sig := s.Signature()
	if sig != "a.jpg|photo.png:1024:1700000000" {
		t.Errorf("Signature() = %q", sig)
	}
}

func TestImageSetChangedAuPlusUneFoisParEtat(t *testing.T) {
	s := NewImageSet([]string{"a.jpg", "b.jpg"})

	// L'état initial n'est pas un changement
	if s.Changed() {
		t.Error("Changed() ne doit pas signaler l'état initial")
	}

	s.RemoveInitial("a.jpg")
	if !s.Changed() {
		t.Error("Changed() doit signaler le retrait")
	}

	// Répéter la même mutation laisse l'état identique : pas de
	// nouvelle notification
	s.RemoveInitial("a.jpg")
	if s.Changed() {
		t.Error("Changed() ne doit pas re-signaler un état identique")
	}

	s.AddFile(FileMeta{Name: "n.png", Size: 10, LastModified: 1})
	if !s.Changed() {
		t.Error("Changed() doit signaler l'ajout de fichier")
	}
	if s.Changed() {
		t.Error("Changed() consommé, l'état n'a pas bougé")
	}
}

func TestImageSetRemoveFile(t *testing.T) {
	s := NewImageSet(nil)
	s.AddFile(FileMeta{Name: "a.png", Size: 1, LastModified: 1})
	s.AddFile(FileMeta{Name: "b.png", Size: 2, LastModified: 2})

	s.RemoveFile("a.png")
	files := s.Files()
	if len(files) != 1 || files[0].Name != "b.png" {
		t.Errorf("Files() = %v", files)
	}
}
