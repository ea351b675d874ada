package birds

// Record es la forma en que los adapters de storage y la API ven un Bird.
// ID es la clave: _id en Mongo, PRIMARY KEY en SQL.
type Record struct {
	ID      string `json:"id" bson:"_id,omitempty" db:"id"`
	Species string `json:"species" bson:"species" db:"species"`
	Size    string `json:"size" bson:"size" db:"size"`
}

// Record copia los campos del Bird a su forma persistible.
func (b *Bird) Record() Record {
	return Record{
		ID:      b.id,
		Species: b.species,
		Size:    b.size,
	}
}

// FromRecord reconstruye un Bird desde un Record. Es la inversa exacta de Bird.Record.
func FromRecord(r Record) Bird {
	return Bird{
		id:      r.ID,
		species: r.Species,
		size:    r.Size,
	}
}
