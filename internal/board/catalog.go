package board

// DefaultVerses is the poem spread across the default board, keyed by space.
var DefaultVerses = map[int]string{
	1:  "Estas al inicio formado",
	4:  "Los dados ruedan y escapan a tu mano",
	7:  "Avanzas sin ningún atraso",
	10: "Entre casillas buscas el atajo",
	13: "No ves los dientes del engaño",
	15: "Y la boca de serpiente te lleva hacia abajo",
	18: "Se acerca mordiendo el fracaso",
	22: "Ganar parece algo lejano",
	25: "Tiras dados, que siga el relajo",
	28: "Atrás medio tablero ha quedado",
	31: "Entre risas pegas brincos y saltos",
	34: "Subes la escalera, peldaño a peldaño",
	37: "A la meta estás más cercano",
	40: "Avanzas, cuidando cada paso",
	43: "Escalas hasta lo más alto",
	46: "En la meta estás, has ganado",
}

// DefaultLadders move the player forward.
var DefaultLadders = []Remap{
	{From: 7, To: 23},
	{From: 10, To: 27},
	{From: 34, To: 44},
}

// DefaultSnakes move the player backward.
var DefaultSnakes = []Remap{
	{From: 15, To: 3},
	{From: 33, To: 18},
	{From: 42, To: 22},
}

// Board bundles a layout with its special spaces.
type Board struct {
	Layout Layout
	Spaces *Spaces
}

// New validates spaces against the layout and returns the combined board.
func New(layout Layout, verses map[int]string, ladders, snakes []Remap) (*Board, error) {
	spaces, err := NewSpaces(layout.TotalSpaces(), verses, ladders, snakes)
	if err != nil {
		return nil, err
	}
	return &Board{Layout: layout, Spaces: spaces}, nil
}

// Default returns the standard Serpientes & Poemas board.
func Default() *Board {
	b, err := New(DefaultLayout(), DefaultVerses, DefaultLadders, DefaultSnakes)
	if err != nil {
		// The default tables are hard-coded; failing here is a programming error.
		panic("default board failed validation: " + err.Error())
	}
	return b
}

// Final returns the winning space index.
func (b *Board) Final() int {
	return b.Layout.Final()
}
