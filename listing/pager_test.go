package listing

import "testing"

func TestPagerTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{"25 éléments, pages de 10", 25, 10, 3},
		{"division exacte", 20, 10, 2},
		{"collection vide", 0, 10, 1},
		{"moins d'une page", 5, 8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.total, tt.size)
			if got := p.TotalPages(); got != tt.want {
				t.Errorf("TotalPages() = %d, attendu %d", got, tt.want)
			}
		})
	}
}

func TestPagerGoToHorsBornes(t *testing.T) {
	// 25 maisons, pages de 10 -> 3 pages ; la page 4 est refusée et la
	// page courante reste la dernière valeur valide
	p := NewPager(25, 10)
	p.GoTo(3)
	if p.Current() != 3 {
		t.Fatalf("Current() = %d, attendu 3", p.Current())
	}

	p.GoTo(4)
	if p.Current() != 3 {
		t.Errorf("GoTo(4) devrait être sans effet, Current() = %d", p.Current())
	}
	p.GoTo(0)
	if p.Current() != 3 {
		t.Errorf("GoTo(0) devrait être sans effet, Current() = %d", p.Current())
	}
	p.GoTo(-1)
	if p.Current() != 3 {
		t.Errorf("GoTo(-1) devrait être sans effet, Current() = %d", p.Current())
	}
}

func TestPagerSetTotalRemetPageUn(t *testing.T) {
	// Tout changement de filtre repasse par SetTotal : la page
	// courante revient à 1
	p := NewPager(50, 10)
	p.GoTo(4)
	if p.Current() != 4 {
		t.Fatalf("Current() = %d, attendu 4", p.Current())
	}

	p.SetTotal(12)
	if p.Current() != 1 {
		t.Errorf("après SetTotal, Current() = %d, attendu 1", p.Current())
	}
	if p.TotalPages() != 2 {
		t.Errorf("TotalPages() = %d, attendu 2", p.TotalPages())
	}
}

func TestPagerBoundsEtPage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	p := NewPager(len(items), 10)

	page1 := Page(p, items)
	if len(page1) != 10 || page1[0] != 0 {
		t.Errorf("page 1 = %v", page1)
	}

	p.GoTo(3)
	page3 := Page(p, items)
	if len(page3) != 5 || page3[0] != 20 || page3[4] != 24 {
		t.Errorf("page 3 = %v", page3)
	}
}

func TestPagerPageSizeInvalide(t *testing.T) {
	p := NewPager(10, 0)
	if p.PageSize() != 1 {
		t.Errorf("PageSize() = %d, attendu 1", p.PageSize())
	}
}
