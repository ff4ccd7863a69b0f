package listing

// Pager découpe une collection filtrée en pages de taille fixe.
// TotalPages vaut toujours au moins 1 : une collection vide a une
// page vide.
type Pager struct {
	pageSize   int
	current    int
	totalItems int
}

// NewPager crée un Pager positionné sur la page 1
func NewPager(totalItems, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}
	return &Pager{pageSize: pageSize, current: 1, totalItems: totalItems}
}

// Current retourne la page courante
func (p *Pager) Current() int {
	return p.current
}

// PageSize retourne la taille de page
func (p *Pager) PageSize() int {
	return p.pageSize
}

// TotalPages retourne ceil(totalItems / pageSize), minimum 1
func (p *Pager) TotalPages() int {
	pages := (p.totalItems + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// GoTo change la page courante. Hors de [1, TotalPages], l'appel est
// sans effet : la page courante reste la dernière valeur valide.
func (p *Pager) GoTo(page int) {
	if page < 1 || page > p.TotalPages() {
		return
	}
	p.current = page
}

// SetTotal met à jour le nombre d'éléments après un changement de
// filtre et ramène la page courante à 1
func (p *Pager) SetTotal(totalItems int) {
	if totalItems < 0 {
		totalItems = 0
	}
	p.totalItems = totalItems
	p.current = 1
}

// Bounds retourne les bornes [start, end) de la page courante
func (p *Pager) Bounds() (start, end int) {
	start = (p.current - 1) * p.pageSize
	if start > p.totalItems {
		start = p.totalItems
	}
	end = start + p.pageSize
	if end > p.totalItems {
		end = p.totalItems
	}
	return start, end
}

// Page retourne la tranche de la collection correspondant à la page
// courante du Pager
func Page[T any](p *Pager, items []T) []T {
	start, end := p.Bounds()
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
