package vterm

// Cell is a single grid position: one byte plus the attribute it was written
// with. Attribute changes never retroactively alter cells already written.
type Cell struct {
	Chr    byte
	Attrib Attribute
}

// emptyCell is the value every cleared or newly allocated Cell carries.
var emptyCell = Cell{Chr: 0x00, Attrib: DefaultAttribute}
